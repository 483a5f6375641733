package http

import (
	"log/slog"
	"net/http"

	"eventsmanager/internal/delivery/http/controllers"
	"eventsmanager/internal/delivery/http/middleware"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Developers  *controllers.DeveloperController
	Events      *controllers.EventController
	Invitations *controllers.InvitationController
}

// NewRouter initializes the HTTP router with all application routes.
// metricsHandler is mounted at /metrics when non-nil.
func NewRouter(c Controllers, metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Developers
	mux.HandleFunc("GET /developer", c.Developers.GetDevelopers)
	mux.HandleFunc("POST /developer", c.Developers.CreateDeveloper)
	mux.HandleFunc("GET /developer/{email}", c.Developers.GetDeveloperByEmail)
	mux.HandleFunc("GET /developer/{email}/invitation", c.Developers.GetDeveloperInvitations)

	// Events
	mux.HandleFunc("GET /event", c.Events.GetEvents)
	mux.HandleFunc("POST /event", c.Events.CreateEvent)
	mux.HandleFunc("GET /event/{eventId}", c.Events.GetEventByID)

	// Invitations
	mux.HandleFunc("POST /event/{eventId}/invitation", c.Invitations.SendInvitations)
	mux.HandleFunc("GET /event/{eventId}/invitation", c.Invitations.GetInvitations)
	mux.HandleFunc("GET /event/{eventId}/invitation/accepted", c.Invitations.GetAcceptedInvitations)
	mux.HandleFunc("PUT /event/{eventId}/invitation/{inviteId}/response", c.Invitations.RespondToInvitation)

	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// Middleware wraps the router with the request pipeline, outermost first:
// request id, panic recovery, CORS, logging and, when recorder is non-nil,
// route metrics.
func Middleware(router http.Handler, logger *slog.Logger, recorder middleware.HTTPRecorder, allowedOrigins []string) http.Handler {
	h := router
	if recorder != nil {
		h = middleware.Metrics(recorder, h)
	}
	h = middleware.LoggingMiddleware(logger, h)
	h = middleware.CORS(allowedOrigins, h)
	h = middleware.Recover(logger, h)
	return middleware.RequestID(h)
}
