package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Channel label values.
const (
	ChannelInternalEmail = "internal_email"
	ChannelCustomerEmail = "customer_email"
	ChannelWhatsApp      = "whatsapp"
)

var (
	// BookingRequests counts handled booking submissions by outcome.
	BookingRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_requests_total",
		Help: "Booking notification requests handled, by outcome.",
	}, []string{"outcome"})

	// MessagesSent counts delivery attempts per channel and outcome.
	MessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_messages_sent_total",
		Help: "Outbound booking messages, by channel and outcome.",
	}, []string{"channel", "outcome"})
)

func RecordSend(channel string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	MessagesSent.WithLabelValues(channel, outcome).Inc()
}
