package service

import (
	"net/http"

	"pustakdhaan/internal/models"
)

// registerHandler creates a donor account and responds with a token.
func (handlers *handlers) registerHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	var registerRequest models.RegisterRequest
	if err := decodeBody(req, &registerRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	authResponse, err := handlers.app.Register(ctx, registerRequest)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusCreated, authResponse)
}

// loginHandler verifies credentials and responds with a token.
func (handlers *handlers) loginHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	var loginRequest models.LoginRequest
	if err := decodeBody(req, &loginRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	authResponse, err := handlers.app.Login(ctx, loginRequest)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, authResponse)
}

// meHandler returns the profile of the authenticated caller.
func (handlers *handlers) meHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	user, err := handlers.app.Me(ctx, identity)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, user)
}

// listUsersHandler returns every account to an admin.
func (handlers *handlers) listUsersHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	users, err := handlers.app.ListUsers(ctx, identity)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, users)
}
