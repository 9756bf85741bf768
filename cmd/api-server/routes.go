package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/protomem/timeclock/docs"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (app *application) configureSwagger() {
	docs.SwaggerInfo.Title = "Timeclock"
	docs.SwaggerInfo.Description = "Web API - Employee clock-in/out and total time"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmtHTTPAddr(app.config.http.host, app.config.http.port)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}
}

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)

	mux.Get("/api/v1/status", app.handleStatus)
	mux.Get("/api/v1/permissions", app.handlePermissions)

	mux.Post("/api/v1/persons", app.handleCreatePerson)
	mux.Get("/api/v1/persons", app.handleFindPersons)
	mux.Get("/api/v1/persons/{personId}", app.handleGetPerson)
	mux.Patch("/api/v1/persons/{personId}", app.handleUpdatePerson)
	mux.Delete("/api/v1/persons/{personId}", app.handleDeletePerson)

	mux.Post("/api/v1/persons/{personId}/sessions/start", app.handleStartSession)
	mux.Post("/api/v1/persons/{personId}/sessions/stop", app.handleStopSession)
	mux.Get("/api/v1/persons/{personId}/sessions/open", app.handleOpenSession)
	mux.Get("/api/v1/persons/{personId}/sessions", app.handleListPersonSessions)
	mux.Patch("/api/v1/persons/{personId}/sessions/{sessionId}", app.handleEditSession)
	mux.Delete("/api/v1/persons/{personId}/sessions/{sessionId}", app.handleDeleteSession)
	mux.Get("/api/v1/sessions", app.handleListSessions)

	mux.Get("/api/v1/persons/{personId}/total-time", app.handleGetTotalTime)
	mux.Post("/api/v1/persons/{personId}/total-time/recompute", app.handleRecomputeTotalTime)
	mux.Get("/api/v1/total-time", app.handleListTotalTime)

	mux.Handle("/metrics", promhttp.Handler())

	mux.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(
			"http://"+fmtHTTPAddr(app.config.http.host, app.config.http.port)+"/swagger/doc.json",
		),
	))

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		parsedRoutes = append(parsedRoutes, route.Pattern)
	}
	return parsedRoutes
}
