// Package service contains the HTTP handlers of the book donation API.
// Handlers parse requests, resolve the caller identity placed in the context by the
// auth middleware, call the app package and translate domain errors into HTTP statuses.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pustakdhaan/internal/app"
	"pustakdhaan/internal/config"
	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
	"pustakdhaan/internal/pkg/auth"
	"pustakdhaan/internal/pkg/logger"
)

// errMissingIdentity is returned when a protected handler runs without the auth middleware.
var errMissingIdentity = domain.Unauthorized("unauthorized")

// handlers aggregates dependencies needed by HTTP handlers,
// including the application business logic and logger.
type handlers struct {
	app *app.App
	log *logger.Logger
}

// newHandlers initializes a new handlers instance with the provided app and logger dependencies.
func newHandlers(app *app.App, l *logger.Logger) *handlers {
	return &handlers{app: app, log: l}
}

func requestContext(req *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(req.Context(), config.RequestTimeout)
}

func identityOf(req *http.Request) (models.Identity, error) {
	identity, ok := auth.IdentityFromContext(req.Context())
	if !ok || identity.UserID == uuid.Nil {
		return models.Identity{}, errMissingIdentity
	}
	return identity, nil
}

// decodeBody reads the whole request body and unmarshals it into dst.
func decodeBody(req *http.Request, dst any) error {
	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(requestBody, dst)
}

func pathID(req *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(req, "id"))
	if err != nil {
		return uuid.Nil, domain.InvalidOperation("invalid id %q", chi.URLParam(req, "id"))
	}
	return id, nil
}

// statusFor maps an error onto its HTTP status and the message shown to the client.
// Errors outside the domain taxonomy are reported as a generic internal error.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrInvalidOperation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrInsufficientInventory):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	}
	return http.StatusInternalServerError, "internal server error"
}

func (handlers *handlers) writeError(res http.ResponseWriter, req *http.Request, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		handlers.log.Error("request failed", zap.String("uri", req.URL.Path), zap.Error(err))
	}
	writeErrorResponse(res, message, status)
}

func writeJSON(res http.ResponseWriter, statusCode int, payload any) {
	result, err := json.Marshal(payload)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	res.Write(result)
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}
