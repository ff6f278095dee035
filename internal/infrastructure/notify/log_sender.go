package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yng-express/parcel-admin/internal/core/ports"
)

// LogSender writes notifications to the log instead of delivering them.
// It stands in for the mail provider in environments without SMTP credentials.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, n ports.Notification) error {
	s.log.Info().
		Str("kind", string(n.Kind)).
		Str("tracking_number", n.TrackingNumber).
		Str("customer_email", n.CustomerEmail).
		Str("status", n.Status).
		Str("invoice_number", n.InvoiceNumber).
		Msg("notification dispatched")
	return nil
}
