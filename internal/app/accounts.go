package app

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
	"pustakdhaan/internal/pkg/auth"
	"pustakdhaan/internal/pkg/security"
)

// Register creates a donor account and returns a token for it.
func (app *App) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	user, err := app.CreateAccount(ctx, req, models.RoleDonor)
	if err != nil {
		return nil, err
	}
	return app.issueToken(user)
}

// CreateAccount creates an account holding the given role.
// Self-registration always passes RoleDonor; operators may create coordinators and admins.
func (app *App) CreateAccount(ctx context.Context, req models.RegisterRequest, role models.Role) (*models.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validatePayload(req); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, domain.InvalidOperation("unknown role %q", role)
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(strings.TrimSpace(req.Name), req.Email, req.Phone)
	user.PasswordHash = hash
	user.Role = role

	user, err = app.db.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	app.log.Info("account created", zap.String("user_id", user.ID.String()), zap.String("role", string(user.Role)))
	return user, nil
}

// Login verifies credentials and returns a token. Unknown emails and wrong
// passwords are reported identically.
func (app *App) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validatePayload(req); err != nil {
		return nil, err
	}

	user, err := app.db.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.Unauthorized("invalid email or password")
	}
	if err != nil {
		return nil, err
	}

	if err := security.CheckPassword(user.PasswordHash, req.Password); err != nil {
		app.log.Debug("login rejected", zap.String("user_id", user.ID.String()))
		return nil, domain.Unauthorized("invalid email or password")
	}

	return app.issueToken(user)
}

// Me returns the profile of the caller.
func (app *App) Me(ctx context.Context, identity models.Identity) (*models.User, error) {
	return app.db.GetUser(ctx, identity.UserID)
}

// ListUsers returns every account. Admin only.
func (app *App) ListUsers(ctx context.Context, identity models.Identity) ([]models.User, error) {
	if err := app.authorize(ctx, identity, domain.CapViewUsers); err != nil {
		return nil, err
	}
	return app.db.ListUsers(ctx)
}

// AssignRole changes the role of the account registered under email.
// Role-gated operations see the new role at once; the token claim follows on the next login.
func (app *App) AssignRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, domain.InvalidOperation("unknown role %q", role)
	}

	user, err := app.db.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if err := app.db.SetUserRole(ctx, user.ID, role); err != nil {
		return nil, err
	}

	app.log.Info("role assigned", zap.String("user_id", user.ID.String()),
		zap.String("from", string(user.Role)), zap.String("to", string(role)))
	user.Role = role
	return user, nil
}

func (app *App) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, err := auth.GenerateToken(models.Identity{UserID: user.ID, Role: user.Role})
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}
