package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmcmadeira/madeira-bookings/internal/domain"
	"github.com/dmcmadeira/madeira-bookings/internal/http/response"
	"github.com/dmcmadeira/madeira-bookings/internal/service"
	"github.com/dmcmadeira/madeira-bookings/pkg/logger"
	"github.com/dmcmadeira/madeira-bookings/pkg/metrics"
)

type Handlers struct {
	notify *service.NotifyService
}

func New(notify *service.NotifyService) *Handlers {
	return &Handlers{notify: notify}
}

// SendBooking handles POST /api/send-booking
func (h *Handlers) SendBooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		metrics.BookingRequests.WithLabelValues("method_not_allowed").Inc()
		response.MethodNotAllowed(w, http.MethodPost)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		metrics.BookingRequests.WithLabelValues("bad_request").Inc()
		response.Failure(w, http.StatusBadRequest, "Unable to read request body")
		return
	}

	req, err := decodeBooking(body)
	if err != nil {
		logger.WarnContext(r.Context(), "Rejected booking payload", "error", err)
		metrics.BookingRequests.WithLabelValues("bad_request").Inc()
		response.Failure(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	logger.InfoContext(r.Context(), "📩 New booking payload received",
		"experience_id", req.ExperienceID,
		"contact_type", req.ContactType,
		"language", req.Language,
	)

	ref, err := h.notify.Dispatch(r.Context(), req)
	if err != nil {
		logger.ErrorContext(r.Context(), "Booking dispatch failed", "error", err)
		metrics.BookingRequests.WithLabelValues("error").Inc()
		response.Failure(w, http.StatusInternalServerError, errorMessage(err))
		return
	}

	metrics.BookingRequests.WithLabelValues("ok").Inc()
	response.Success(w, ref)
}

// decodeBooking accepts either a JSON object or a JSON string that
// itself contains the object, which is how some upstream proxies
// forward the body.
func decodeBooking(body []byte) (*domain.BookingRequest, error) {
	raw := body

	var wrapped string
	if err := json.Unmarshal(body, &wrapped); err == nil {
		raw = []byte(wrapped)
	}

	var req domain.BookingRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func errorMessage(err error) string {
	if errors.Is(err, service.ErrEmailNotConfigured) {
		return service.ErrEmailNotConfigured.Error()
	}
	if err == nil || err.Error() == "" {
		return "Unexpected server error."
	}
	return err.Error()
}
