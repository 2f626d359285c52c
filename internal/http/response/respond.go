package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmcmadeira/madeira-bookings/pkg/logger"
)

// BookingResult is the response body of /api/send-booking.
type BookingResult struct {
	Success          bool   `json:"success"`
	BookingReference string `json:"bookingReference,omitempty"`
	Error            string `json:"error,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func Success(w http.ResponseWriter, bookingReference string) {
	WriteJSON(w, http.StatusOK, BookingResult{
		Success:          true,
		BookingReference: bookingReference,
	})
}

func Failure(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, BookingResult{
		Success: false,
		Error:   message,
	})
}

func MethodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	WriteJSON(w, http.StatusMethodNotAllowed, BookingResult{
		Success: false,
		Error:   "Method not allowed",
	})
}
