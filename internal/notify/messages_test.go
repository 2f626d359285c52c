package notify_test

import (
	"strings"
	"testing"

	"github.com/dmcmadeira/madeira-bookings/internal/domain"
	"github.com/dmcmadeira/madeira-bookings/internal/notify"
)

func sampleRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		ExperienceID:    "kayak-tour",
		ExperienceTitle: "Kayak Tour",
		Category:        "water",
		Date:            "2025-06-01",
		Adults:          2,
		Children:        1,
		TotalEstimate:   150,
		ContactType:     domain.ContactEmail,
		ContactValue:    "a@b.com",
		Language:        "en",
		CustomerName:    "Maria",
		SubmittedAt:     "2025-05-20T10:00:00Z",
	}
}

func TestBuildInternalEmail(t *testing.T) {
	req := sampleRequest()
	req.ExtraInfoAnswers = domain.ExtraInfo{{Key: "hasAllergies", Value: true}}

	msg := notify.BuildInternalEmail(req, "250601K-07", notify.DefaultOptions())

	if msg.Subject != "New pre-booking – Kayak Tour – 2025-06-01 – 250601K-07" {
		t.Errorf("unexpected subject: %q", msg.Subject)
	}

	for _, want := range []string{
		"Booking reference: 250601K-07",
		"=== Experience ===",
		"ID: kayak-tour",
		"Category: water",
		"Adults: 2",
		"Children: 1",
		"Estimated total: €150",
		"Name: Maria",
		"Has Allergies: Yes",
		"Preferred channel: email",
		"Contact value: a@b.com",
		"Language: en",
		"Submitted at: 2025-05-20T10:00:00Z",
	} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("internal email missing %q in:\n%s", want, msg.Text)
		}
	}
}

func TestBuildInternalEmailFallbacks(t *testing.T) {
	req := &domain.BookingRequest{}

	msg := notify.BuildInternalEmail(req, "", notify.DefaultOptions())

	if !strings.Contains(msg.Subject, "no date") {
		t.Errorf("expected no-date subject, got %q", msg.Subject)
	}
	for _, want := range []string{
		"ID: -",
		"Name: -",
		"Category: -",
		"Date: -",
		"Estimated total: €0",
		"No additional information provided.",
		"Preferred channel: -",
	} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("internal email missing fallback %q in:\n%s", want, msg.Text)
		}
	}
}

func TestBuildInternalEmailFlags(t *testing.T) {
	req := sampleRequest()
	opts := notify.Options{IncludeBookingReference: false, IncludeCustomerName: false}

	msg := notify.BuildInternalEmail(req, "250601K-07", opts)

	if strings.Contains(msg.Subject, "250601K-07") {
		t.Errorf("subject should omit reference: %q", msg.Subject)
	}
	if strings.Contains(msg.Text, "Booking reference") {
		t.Error("body should omit reference line")
	}
	if strings.Contains(msg.Text, "=== Guest ===") {
		t.Error("body should omit guest name block")
	}
}

func TestBuildCustomerEmailGating(t *testing.T) {
	cases := []struct {
		name         string
		contactType  string
		contactValue string
	}{
		{"whatsapp contact", domain.ContactWhatsApp, "+351939000000"},
		{"empty value", domain.ContactEmail, ""},
		{"whitespace value", domain.ContactEmail, "   "},
		{"unknown type", "phone", "a@b.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := sampleRequest()
			req.ContactType = tc.contactType
			req.ContactValue = tc.contactValue

			if msg := notify.BuildCustomerEmail(req, "ref", notify.DefaultOptions()); msg != nil {
				t.Errorf("expected nil message, got %+v", msg)
			}
		})
	}
}

func TestBuildCustomerEmailEnglish(t *testing.T) {
	req := sampleRequest()

	msg := notify.BuildCustomerEmail(req, "250601K-07", notify.DefaultOptions())
	if msg == nil {
		t.Fatal("expected a message")
	}

	if msg.To != "a@b.com" {
		t.Errorf("unexpected recipient: %q", msg.To)
	}
	if !strings.HasPrefix(msg.Subject, "Pre-booking received – Kayak Tour") {
		t.Errorf("unexpected subject: %q", msg.Subject)
	}
	for _, want := range []string{
		"Hello Maria,",
		"Booking reference: 250601K-07",
		"Estimated total: €150",
		"NOT the final booking confirmation",
	} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("customer email missing %q", want)
		}
	}
}

func TestBuildCustomerEmailPortuguese(t *testing.T) {
	for _, lang := range []string{"pt", "PT", "Pt"} {
		t.Run(lang, func(t *testing.T) {
			req := sampleRequest()
			req.Language = lang

			msg := notify.BuildCustomerEmail(req, "250601K-07", notify.DefaultOptions())
			if msg == nil {
				t.Fatal("expected a message")
			}

			if !strings.HasPrefix(msg.Subject, "Pré-reserva recebida") {
				t.Errorf("unexpected subject: %q", msg.Subject)
			}
			for _, want := range []string{
				"Olá Maria,",
				"Referência de reserva: 250601K-07",
				"NÃO é a confirmação final",
			} {
				if !strings.Contains(msg.Text, want) {
					t.Errorf("customer email missing %q", want)
				}
			}
		})
	}
}

func TestBuildCustomerEmailUnknownLocaleFallsBackToEnglish(t *testing.T) {
	req := sampleRequest()
	req.Language = "fr"

	msg := notify.BuildCustomerEmail(req, "ref", notify.DefaultOptions())
	if msg == nil {
		t.Fatal("expected a message")
	}
	if !strings.Contains(msg.Text, "Thank you for your request!") {
		t.Errorf("expected English template, got:\n%s", msg.Text)
	}
}

func TestBuildCustomerEmailWithoutName(t *testing.T) {
	req := sampleRequest()
	req.CustomerName = ""

	msg := notify.BuildCustomerEmail(req, "ref", notify.DefaultOptions())
	if msg == nil {
		t.Fatal("expected a message")
	}
	if !strings.Contains(msg.Text, "Hello,") {
		t.Errorf("expected plain greeting, got:\n%s", msg.Text)
	}
}

func TestBuildWhatsAppParams(t *testing.T) {
	req := sampleRequest()
	req.ContactType = domain.ContactWhatsApp
	req.ContactValue = "+351939000000"
	req.ExtraInfoAnswers = domain.ExtraInfo{{Key: "needsPickup", Value: false}}

	langCode, params := notify.BuildWhatsAppParams(req, "250601K-07")

	if langCode != "en_US" {
		t.Errorf("unexpected language code: %q", langCode)
	}
	want := []string{
		"Kayak Tour",
		"2025-06-01",
		"2",
		"1",
		"150.00€",
		"Needs Pickup: No",
		"250601K-07",
	}
	if len(params) != len(want) {
		t.Fatalf("expected %d params, got %d", len(want), len(params))
	}
	for i := range want {
		if params[i] != want[i] {
			t.Errorf("param %d: got %q, want %q", i+1, params[i], want[i])
		}
	}
}

func TestBuildWhatsAppParamsPortuguese(t *testing.T) {
	req := sampleRequest()
	req.Language = "PT"

	langCode, _ := notify.BuildWhatsAppParams(req, "ref")
	if langCode != "pt_PT" {
		t.Errorf("unexpected language code: %q", langCode)
	}
}

func TestBuildWhatsAppParamsFallbacks(t *testing.T) {
	req := &domain.BookingRequest{}

	_, params := notify.BuildWhatsAppParams(req, "")
	want := []string{"-", "-", "0", "0", "0.00€", "No additional information provided.", "-"}
	for i := range want {
		if params[i] != want[i] {
			t.Errorf("param %d: got %q, want %q", i+1, params[i], want[i])
		}
	}
}
