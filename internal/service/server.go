package service

import (
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"

	"pustakdhaan/internal/app"
	"pustakdhaan/internal/pkg/auth"
	"pustakdhaan/internal/pkg/logger"
)

// Service encapsulates the HTTP server configuration, including the application's business logic,
// HTTP handlers, the server's run address, and a logger for event and error logging.
type Service struct {
	handlers   *handlers
	app        *app.App
	runAddress string
	log        *logger.Logger
}

// NewService creates and initializes a new Service instance.
// It sets up the handlers using the provided application and logger,
// and configures the server's run address.
func NewService(app *app.App, runAddress string, l *logger.Logger) *Service {
	handlers := newHandlers(app, l)
	return &Service{handlers: handlers, app: app, runAddress: runAddress, log: l}
}

// RunAddress returns the address the service listens on.
func (service *Service) RunAddress() string {
	return service.runAddress
}

// NewRouter sets up and returns a new chi.Router instance with the necessary middleware and routes.
// Every request gets a request id, panic recovery and access logging; everything except
// registration, login and the public book catalogue requires a bearer token.
func (service *Service) NewRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(service.log.WithLogging())
	router.Use(middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", service.handlers.registerHandler)
		r.Post("/auth/login", service.handlers.loginHandler)
		r.Get("/books", service.handlers.listBooksHandler)
		r.Get("/books/{id}", service.handlers.getBookHandler)

		r.Group(func(r chi.Router) {
			r.Use(auth.CheckJWTMiddleware())

			r.Get("/auth/me", service.handlers.meHandler)
			r.Get("/auth/users", service.handlers.listUsersHandler)

			r.Post("/books", service.handlers.createBookHandler)
			r.Get("/books/my/books", service.handlers.myBooksHandler)
			r.Put("/books/{id}", service.handlers.updateBookHandler)
			r.Delete("/books/{id}", service.handlers.deleteBookHandler)

			r.Post("/requests", service.handlers.submitRequestHandler)
			r.Get("/requests/received", service.handlers.receivedRequestsHandler)
			r.Get("/requests/sent", service.handlers.sentRequestsHandler)
			r.Get("/requests/{id}", service.handlers.getRequestHandler)
			r.Put("/requests/{id}/status", service.handlers.setRequestStatusHandler)

			r.Post("/drives", service.handlers.createDriveHandler)
			r.Get("/drives", service.handlers.listDrivesHandler)
			r.Get("/drives/active", service.handlers.listActiveDrivesHandler)
			r.Put("/drives/{id}/status", service.handlers.setDriveStatusHandler)

			r.Post("/donations", service.handlers.submitDonationHandler)
			r.Get("/donations", service.handlers.listDonationsHandler)
			r.Get("/donations/mine", service.handlers.myDonationsHandler)
			r.Put("/donations/{id}/status", service.handlers.setDonationStatusHandler)

			r.Post("/schools", service.handlers.createSchoolHandler)
			r.Get("/schools", service.handlers.listSchoolsHandler)

			r.Post("/allocations", service.handlers.allocateHandler)
			r.Get("/allocations", service.handlers.listAllocationsHandler)
			r.Put("/allocations/{id}/status", service.handlers.setAllocationStatusHandler)
		})
	})
	return router
}
