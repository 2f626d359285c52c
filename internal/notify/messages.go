package notify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmcmadeira/madeira-bookings/internal/domain"
)

// Options are the feature flags that used to exist as divergent handler
// variants.
type Options struct {
	IncludeBookingReference bool
	IncludeCustomerName     bool
}

func DefaultOptions() Options {
	return Options{IncludeBookingReference: true, IncludeCustomerName: true}
}

// BuildInternalEmail produces the operations notification. English-only:
// operators read one language regardless of customer locale.
func BuildInternalEmail(req *domain.BookingRequest, ref string, opts Options) domain.OutboundMessage {
	date := req.Date
	if strings.TrimSpace(date) == "" {
		date = "no date"
	}

	subject := fmt.Sprintf("New pre-booking – %s – %s", orDash(req.ExperienceTitle), date)
	if opts.IncludeBookingReference {
		subject += " – " + orDash(ref)
	}

	var b strings.Builder
	b.WriteString("New pre-booking received from the website.\n\n")
	if opts.IncludeBookingReference {
		fmt.Fprintf(&b, "Booking reference: %s\n\n", orDash(ref))
	}
	fmt.Fprintf(&b, "=== Experience ===\nID: %s\nName: %s\nCategory: %s\nDate: %s\n\n",
		orDash(req.ExperienceID), orDash(req.ExperienceTitle), orDash(req.Category), orDash(req.Date))
	fmt.Fprintf(&b, "Adults: %d\nChildren: %d\nEstimated total: €%s\n\n",
		req.Adults, req.Children, formatAmount(req.SafeTotal()))
	if opts.IncludeCustomerName {
		fmt.Fprintf(&b, "=== Guest ===\nName: %s\n\n", orDash(req.CustomerName))
	}
	fmt.Fprintf(&b, "=== Additional information from the guest ===\n%s\n\n",
		FormatExtraInfo(req.ExtraInfoAnswers))
	fmt.Fprintf(&b, "=== Guest contact ===\nPreferred channel: %s\nContact value: %s\n\n",
		orDash(req.ContactType), orDash(req.ContactValue))
	fmt.Fprintf(&b, "Language: %s\nSubmitted at: %s\n\n",
		orDash(req.Language), orDash(req.SubmittedAt))
	b.WriteString("Please check availability and contact the guest to confirm or adjust the booking details.")

	return domain.OutboundMessage{Subject: subject, Text: b.String()}
}

// BuildCustomerEmail produces the localized confirmation email, or nil
// when the guest did not choose the email channel.
func BuildCustomerEmail(req *domain.BookingRequest, ref string, opts Options) *domain.OutboundMessage {
	if !req.WantsEmail() {
		return nil
	}

	t := lookupTemplates(req.Lang())

	title := req.ExperienceTitle
	if strings.TrimSpace(title) == "" {
		title = t.titleFallback
	}

	subject := t.subjectPrefix + " – " + title
	if opts.IncludeBookingReference {
		subject += " – " + orDash(ref)
	}

	namePart := ""
	if opts.IncludeCustomerName && strings.TrimSpace(req.CustomerName) != "" {
		namePart = " " + req.CustomerName
	}

	refBlock := ""
	if opts.IncludeBookingReference {
		refBlock = t.refLabel + ": " + orDash(ref) + "\n\n"
	}

	text := fmt.Sprintf(t.body,
		namePart,
		refBlock,
		orDash(req.ExperienceTitle),
		orDash(req.Date),
		req.Adults,
		req.Children,
		"€"+formatAmount(req.SafeTotal()),
		FormatExtraInfo(req.ExtraInfoAnswers),
	)

	return &domain.OutboundMessage{Subject: subject, Text: text, To: req.ContactValue}
}

// BuildWhatsAppParams produces the template language code and the seven
// positional body parameters for the booking_pre_confirmation template:
// experience title, date, adults, children, total, additional info and
// booking reference, in that order. The order and count are part of the
// external template contract — the provider does not validate them.
func BuildWhatsAppParams(req *domain.BookingRequest, ref string) (langCode string, params []string) {
	t := lookupTemplates(req.Lang())

	params = []string{
		orDash(req.ExperienceTitle),
		orDash(req.Date),
		strconv.Itoa(req.Adults),
		strconv.Itoa(req.Children),
		fmt.Sprintf("%.2f€", req.SafeTotal()),
		FormatExtraInfo(req.ExtraInfoAnswers),
		orDash(ref),
	}
	return t.waLangCode, params
}
