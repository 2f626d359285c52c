package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmcmadeira/madeira-bookings/internal/domain"
	"github.com/dmcmadeira/madeira-bookings/internal/notify"
	"github.com/dmcmadeira/madeira-bookings/internal/platform/mailer"
	"github.com/dmcmadeira/madeira-bookings/pkg/config"
	"github.com/dmcmadeira/madeira-bookings/pkg/events"
	"github.com/dmcmadeira/madeira-bookings/pkg/logger"
	"github.com/dmcmadeira/madeira-bookings/pkg/metrics"
)

// ErrEmailNotConfigured is returned before any network attempt when the
// mandatory email transport is missing configuration. The text is part
// of the API contract.
var ErrEmailNotConfigured = errors.New("Email not configured.")

// WhatsAppSender is what the pipeline needs from the WhatsApp client.
type WhatsAppSender interface {
	Configured() bool
	SendTemplate(ctx context.Context, to, langCode string, params []string) error
}

// NotifyService turns one booking request into up to three outbound
// messages: internal email (mandatory), customer email and customer
// WhatsApp (each gated on the guest's contact choice).
type NotifyService struct {
	mailer    mailer.Service
	whatsapp  WhatsAppSender
	refs      *notify.ReferenceGenerator
	publisher events.Publisher

	email    config.EmailConfig
	waPolicy string
	opts     notify.Options
}

func NewNotifyService(
	m mailer.Service,
	wa WhatsAppSender,
	refs *notify.ReferenceGenerator,
	publisher events.Publisher,
	cfg *config.Config,
) *NotifyService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &NotifyService{
		mailer:    m,
		whatsapp:  wa,
		refs:      refs,
		publisher: publisher,
		email:     cfg.Email,
		waPolicy:  cfg.WhatsApp.FailurePolicy,
		opts: notify.Options{
			IncludeBookingReference: cfg.Booking.IncludeBookingReference,
			IncludeCustomerName:     cfg.Booking.IncludeCustomerName,
		},
	}
}

// Dispatch runs the pipeline: validate config, assign the reference,
// internal email, customer email, customer WhatsApp, in that order.
// Later sends are only attempted after earlier ones succeed.
func (s *NotifyService) Dispatch(ctx context.Context, req *domain.BookingRequest) (string, error) {
	if !s.email.Complete() {
		logger.ErrorContext(ctx, "Missing SMTP or booking email configuration")
		return "", ErrEmailNotConfigured
	}

	ref := s.refs.Generate(ctx, req)
	req.BookingReference = ref
	logger.InfoContext(ctx, "Booking reference assigned", "booking_reference", ref)

	internal := notify.BuildInternalEmail(req, ref, s.opts)
	err := s.mailer.Send(ctx, s.email.InternalEmail, internal.Subject, internal.Text)
	metrics.RecordSend(metrics.ChannelInternalEmail, err)
	if err != nil {
		return "", fmt.Errorf("send internal notification: %w", err)
	}

	if customer := notify.BuildCustomerEmail(req, ref, s.opts); customer != nil {
		err := s.mailer.Send(ctx, customer.To, customer.Subject, customer.Text)
		metrics.RecordSend(metrics.ChannelCustomerEmail, err)
		if err != nil {
			return "", fmt.Errorf("send customer confirmation: %w", err)
		}
	}

	if req.WantsWhatsApp() {
		if err := s.sendWhatsApp(ctx, req, ref); err != nil {
			return "", err
		}
	}

	if err := s.publisher.Publish(ctx, events.SubjectBookingNotified, req); err != nil {
		logger.WarnContext(ctx, "Failed to publish booking event", "error", err)
	}

	return ref, nil
}

func (s *NotifyService) sendWhatsApp(ctx context.Context, req *domain.BookingRequest, ref string) error {
	if s.whatsapp == nil || !s.whatsapp.Configured() {
		logger.WarnContext(ctx, "WhatsApp not configured, skipping send")
		return nil
	}

	langCode, params := notify.BuildWhatsAppParams(req, ref)
	err := s.whatsapp.SendTemplate(ctx, req.ContactValue, langCode, params)
	metrics.RecordSend(metrics.ChannelWhatsApp, err)
	if err == nil {
		return nil
	}

	if s.waPolicy == config.WhatsAppPolicyStrict {
		return fmt.Errorf("send whatsapp confirmation: %w", err)
	}

	// Best-effort policy: the emails already went out, a lost WhatsApp
	// message should not fail the booking.
	logger.ErrorContext(ctx, "WhatsApp send failed", "error", err, "policy", s.waPolicy)
	return nil
}
