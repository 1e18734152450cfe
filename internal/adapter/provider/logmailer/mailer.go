// Package logmailer is a mail provider that writes messages to the log
// instead of sending them. It stands in until a real mail provider is wired.
package logmailer

import (
	"context"
	"log/slog"
)

// Mailer logs outgoing mail instead of delivering it.
type Mailer struct {
	log *slog.Logger
}

// New creates a new log-only mailer.
func New(log *slog.Logger) *Mailer {
	return &Mailer{log: log}
}

// SendPasswordReset logs the reset link that would have been mailed.
func (m *Mailer) SendPasswordReset(ctx context.Context, email, resetURL string) error {
	m.log.InfoContext(ctx, "password reset mail",
		slog.String("to", email),
		slog.String("reset_url", resetURL),
	)
	return nil
}
