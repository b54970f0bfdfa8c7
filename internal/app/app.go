// Package app provides the core business logic of the book donation service.
// Every operation takes the caller's identity explicitly, validates its payload,
// checks the caller's role or ownership through the domain policy and then
// delegates to the storage layer, which applies cross-entity changes atomically.
package app

import (
	"context"
	"errors"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
	"pustakdhaan/internal/pkg/logger"
	"pustakdhaan/internal/storage"
)

// App encapsulates the application logic and dependencies required to process requests.
// It interacts with the storage layer and uses a logger for error and activity logging.
type App struct {
	db     storage.Storage    // Database storage layer for persistent data operations.
	log    *logger.Logger     // Logger for logging application events and errors.
	badges domain.BadgePolicy // Thresholds used to recompute donor badges.
}

// Option customizes an App.
type Option func(*App)

// WithBadgePolicy overrides the default badge thresholds.
func WithBadgePolicy(policy domain.BadgePolicy) Option {
	return func(app *App) {
		app.badges = policy
	}
}

// NewApp creates and returns a new instance of App with the provided storage and logger dependencies.
func NewApp(db storage.Storage, log *logger.Logger, opts ...Option) *App {
	app := &App{db: db, log: log, badges: domain.DefaultBadgePolicy}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// authorize checks the capability against the token role and then against the
// role currently stored for the account, so a role change applies immediately.
func (app *App) authorize(ctx context.Context, identity models.Identity, capability domain.Capability) error {
	if err := domain.Authorize(identity, capability); err != nil {
		return err
	}

	user, err := app.db.GetUser(ctx, identity.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Unauthorized("account no longer exists")
	}
	if err != nil {
		return err
	}

	identity.Role = user.Role
	return domain.Authorize(identity, capability)
}
