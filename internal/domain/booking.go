package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Contact channels a guest can choose on the booking panel.
const (
	ContactEmail    = "email"
	ContactWhatsApp = "whatsapp"
)

// ExtraInfoEntry is one free-form question/answer pair from the booking
// panel. Values arrive as JSON scalars (bool, string or number).
type ExtraInfoEntry struct {
	Key   string
	Value any
}

// ExtraInfo preserves the insertion order of the submitted answers,
// which a plain map would lose.
type ExtraInfo []ExtraInfoEntry

func (e *ExtraInfo) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*e = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("extraInfoAnswers: expected object, got %v", tok)
	}

	entries := ExtraInfo{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("extraInfoAnswers: invalid key %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		if num, ok := value.(json.Number); ok {
			if f, err := num.Float64(); err == nil {
				value = f
			} else {
				value = num.String()
			}
		}
		entries = append(entries, ExtraInfoEntry{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*e = entries
	return nil
}

func (e ExtraInfo) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// BookingRequest is the untrusted payload built client-side by the
// booking panel and posted to /api/send-booking.
type BookingRequest struct {
	ExperienceID     string    `json:"experienceId"`
	ExperienceTitle  string    `json:"experienceTitle"`
	Category         string    `json:"category"`
	Date             string    `json:"date"` // YYYY-MM-DD, may be empty
	Adults           int       `json:"adults"`
	Children         int       `json:"children"`
	TotalEstimate    float64   `json:"totalEstimate"`
	ExtraInfoAnswers ExtraInfo `json:"extraInfoAnswers,omitempty"`
	ContactType      string    `json:"contactType"`
	ContactValue     string    `json:"contactValue"`
	Language         string    `json:"language"`
	CustomerName     string    `json:"customerName,omitempty"`
	SubmittedAt      string    `json:"submittedAt,omitempty"`

	// BookingReference is trusted and reused verbatim when supplied by
	// an upstream caller; otherwise one is derived per request.
	BookingReference string `json:"bookingReference,omitempty"`
}

// Lang returns the normalized locale code. Unknown locales fall back to
// English at template-lookup time, not here.
func (b *BookingRequest) Lang() string {
	return strings.ToLower(strings.TrimSpace(b.Language))
}

// SafeTotal guards against non-finite estimates sneaking in.
func (b *BookingRequest) SafeTotal() float64 {
	if math.IsNaN(b.TotalEstimate) || math.IsInf(b.TotalEstimate, 0) {
		return 0
	}
	return b.TotalEstimate
}

// WantsEmail reports whether the customer email channel is selected.
func (b *BookingRequest) WantsEmail() bool {
	return b.ContactType == ContactEmail && strings.TrimSpace(b.ContactValue) != ""
}

// WantsWhatsApp reports whether the customer WhatsApp channel is selected.
func (b *BookingRequest) WantsWhatsApp() bool {
	return b.ContactType == ContactWhatsApp && strings.TrimSpace(b.ContactValue) != ""
}

// OutboundMessage is one built, channel-specific message. Built once,
// sent once, discarded after the handler returns.
type OutboundMessage struct {
	Subject string
	Text    string
	To      string
}
