package auth

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/club-studio/internal/logging"
)

// Mailer delivers sign-in links.
type Mailer interface {
	SendMagicLink(ctx context.Context, email, link string) error
}

// LogMailer writes links to the log instead of sending mail. Meant for local use.
type LogMailer struct {
	Logger *slog.Logger
}

func (m LogMailer) SendMagicLink(ctx context.Context, email, link string) error {
	logging.Info(logging.FromContext(ctx, m.Logger), "magic link issued",
		slog.String("email", email),
		slog.String("link", link),
	)
	return nil
}
