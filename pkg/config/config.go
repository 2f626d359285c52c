package config

import (
	"os"
	"strconv"
	"time"
)

// WhatsApp failure policies. Strict fails the whole request when the
// WhatsApp send fails; best-effort logs the failure and keeps the 200.
const (
	WhatsAppPolicyStrict     = "strict"
	WhatsAppPolicyBestEffort = "best-effort"
)

type Config struct {
	Server   ServerConfig
	Email    EmailConfig
	WhatsApp WhatsAppConfig
	Booking  BookingConfig
	Redis    RedisConfig
	NATS     NATSConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type EmailConfig struct {
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPUseTLS    bool // insecure implicit-TLS fallback toggle; port 465 always implies TLS
	FromEmail     string
	InternalEmail string // operations mailbox for internal notifications
	MailerSendKey string // non-empty selects MailerSend over raw SMTP
	DevMode       bool   // print emails to logs instead of sending
}

// Complete reports whether every transport value required for a send is
// present. Checked per request, before any network attempt.
func (e EmailConfig) Complete() bool {
	if e.DevMode || e.MailerSendKey != "" {
		return e.FromEmail != "" && e.InternalEmail != ""
	}
	return e.SMTPHost != "" && e.SMTPPort != 0 && e.SMTPUser != "" &&
		e.SMTPPass != "" && e.FromEmail != "" && e.InternalEmail != ""
}

type WhatsAppConfig struct {
	Token         string
	PhoneNumberID string
	BaseURL       string
	FailurePolicy string // strict or best-effort
}

func (w WhatsAppConfig) Configured() bool {
	return w.Token != "" && w.PhoneNumberID != ""
}

// BookingConfig collapses the historical handler variants into flags.
type BookingConfig struct {
	IncludeBookingReference bool
	IncludeCustomerName     bool
}

type RedisConfig struct {
	URL string // optional; enables sequenced booking references
}

type NATSConfig struct {
	URL string // optional; enables booking event publishing
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Email: EmailConfig{
			SMTPHost:      getEnv("SMTP_HOST", ""),
			SMTPPort:      getInt("SMTP_PORT", 0),
			SMTPUser:      getEnv("SMTP_USER", ""),
			SMTPPass:      getEnv("SMTP_PASS", ""),
			SMTPUseTLS:    getBool("SMTP_USE_TLS", true),
			FromEmail:     getEnv("BOOKING_FROM_EMAIL", ""),
			InternalEmail: getEnv("BOOKING_TO_EMAIL", ""),
			MailerSendKey: getEnv("MAILERSEND_API_KEY", ""),
			DevMode:       getBool("EMAIL_DEV_MODE", false),
		},
		WhatsApp: WhatsAppConfig{
			Token:         getEnv("WHATSAPP_TOKEN", ""),
			PhoneNumberID: getEnv("WHATSAPP_PHONE_NUMBER_ID", ""),
			BaseURL:       getEnv("WHATSAPP_API_URL", "https://graph.facebook.com/v19.0"),
			FailurePolicy: getEnv("WHATSAPP_FAILURE_POLICY", WhatsAppPolicyBestEffort),
		},
		Booking: BookingConfig{
			IncludeBookingReference: getBool("INCLUDE_BOOKING_REFERENCE", true),
			IncludeCustomerName:     getBool("INCLUDE_CUSTOMER_NAME", true),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
