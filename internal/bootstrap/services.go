package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/dewinson2/MJCL/internal/auth"
	"github.com/dewinson2/MJCL/internal/config"
	"github.com/dewinson2/MJCL/internal/contact"
	"github.com/dewinson2/MJCL/internal/event"
	"github.com/dewinson2/MJCL/internal/job"
	"github.com/dewinson2/MJCL/internal/metrics"
	"github.com/dewinson2/MJCL/internal/slug"
)

// Services holds the application services handed to the HTTP layer.
type Services struct {
	Jobs    job.Service
	Contact contact.Service
	Auth    auth.Service
}

// InitializeServices wires the services over the repositories and bus.
func InitializeServices(cfg *config.Config, repos *Repositories, bus event.Bus) (*Services, error) {
	observer := metrics.SlugObserver{}
	slugs := slug.NewGenerator(repos.Jobs,
		slug.WithMaxAttempts(cfg.SlugMaxAttempts),
		slug.WithObserver(observer))

	authService, err := auth.NewService(auth.Config{
		AccessCodeHash: cfg.AdminAccessCodeHash,
		AccessCode:     cfg.AdminAccessCode,
		Secret:         cfg.SessionSecret,
		TTL:            cfg.SessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateAuth, err)
	}
	if !cfg.HasAdminAccess() {
		slog.Warn(LogMsgAdminLoginDisabledNotice)
	}

	return &Services{
		Jobs:    job.NewService(repos.Jobs, slugs, bus, job.WithRetryObserver(observer)),
		Contact: contact.NewService(repos.Contact, bus),
		Auth:    authService,
	}, nil
}
