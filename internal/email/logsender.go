package email

import (
	"context"
	"log/slog"
)

// LogSender implements Sender for local development. It logs messages
// instead of delivering them, so the service can run without a
// configured email API token.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a development sender that writes to the logger.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "email.logsender")}
}

// Send logs the message and reports success.
func (s *LogSender) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "email suppressed (dev mode)",
		"to", params.To,
		"subject", params.Subject,
		"text_len", len(params.TextBody),
		"html_len", len(params.HTMLBody),
	)

	return nil
}
