package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/dmcmadeira/madeira-bookings/internal/http/handlers"
	"github.com/dmcmadeira/madeira-bookings/internal/notify"
	"github.com/dmcmadeira/madeira-bookings/internal/platform/mailer"
	"github.com/dmcmadeira/madeira-bookings/internal/platform/whatsapp"
	"github.com/dmcmadeira/madeira-bookings/internal/service"
	"github.com/dmcmadeira/madeira-bookings/pkg/config"
	"github.com/dmcmadeira/madeira-bookings/pkg/events"
	"github.com/dmcmadeira/madeira-bookings/pkg/logger"
	mw "github.com/dmcmadeira/madeira-bookings/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	// Email transport: dev mode > MailerSend API > raw SMTP.
	var mailerService mailer.Service
	switch {
	case cfg.Email.DevMode:
		mailerService = mailer.NewDevMailer()
		logger.Info("Email dev mode enabled, printing messages to logs")
	case cfg.Email.MailerSendKey != "":
		ms, err := mailer.NewMailerSendMailer(cfg.Email.MailerSendKey, "What to Do Madeira", cfg.Email.FromEmail)
		if err != nil {
			logger.Error("Failed to configure MailerSend", "error", err)
			os.Exit(1)
		}
		mailerService = ms
	default:
		mailerService = mailer.NewSMTPMailer(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.FromEmail,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPass,
			cfg.Email.SMTPUseTLS,
		)
	}

	waClient := whatsapp.NewClient(cfg.WhatsApp.Token, cfg.WhatsApp.PhoneNumberID, cfg.WhatsApp.BaseURL)
	if !waClient.Configured() {
		logger.Warn("WhatsApp env vars not configured, WhatsApp sends will be skipped")
	}

	// Booking reference suffixes: Redis-sequenced when available,
	// random otherwise.
	var sequencer notify.Sequencer
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Error("Invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		sequencer = notify.NewRedisSequencer(redis.NewClient(opts))
		logger.Info("Using Redis-sequenced booking references")
	}
	refs := notify.NewReferenceGenerator(sequencer)

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		p, err := events.NewNATSPublisher(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer p.Close()
		publisher = p
	}

	notifyService := service.NewNotifyService(mailerService, waClient, refs, publisher, cfg)
	h := handlers.New(notifyService)

	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("bookings"))
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/api/send-booking", h.SendBooking)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down bookings service...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Bookings service shutdown error", "error", err)
		}
	}()

	logger.Info("Bookings service listening", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Bookings service failed", "error", err)
		os.Exit(1)
	}
}
