package main

import (
	"net/http"

	"github.com/protomem/timeclock/internal/model"
	"github.com/protomem/timeclock/internal/request"
	"github.com/protomem/timeclock/internal/response"
	"github.com/protomem/timeclock/internal/tracker"
	"github.com/protomem/timeclock/internal/validator"
)

// Handle Start Session
// @Summary Clock in
// @Description Open a work session for the person
// @Tags sessions
// @Produce json
// @Param personId path int true "Person ID"
// @Success 201 {object} main.responseSession
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Person not found"
// @Failure 409 {object} any "Session already open"
// @Failure 500 {object} any "Internal server error"
// @Router /persons/{personId}/sessions/start [post]
func (app *application) handleStartSession(w http.ResponseWriter, r *http.Request) {
	personID, err := personIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	session, err := app.tracker.StartSession(r.Context(), personID)
	if err != nil {
		app.trackerError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, responseSession{Session: session}); err != nil {
		app.serverError(w, r, err)
	}
}

type responseSession struct {
	Session model.Session `json:"session"`
}

// Handle Stop Session
// @Summary Clock out
// @Description Close the person's open session and refresh their total time
// @Tags sessions
// @Produce json
// @Param personId path int true "Person ID"
// @Success 200 {object} tracker.StopResult
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "No open session"
// @Failure 500 {object} any "Internal server error"
// @Router /persons/{personId}/sessions/stop [post]
func (app *application) handleStopSession(w http.ResponseWriter, r *http.Request) {
	personID, err := personIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	res, err := app.tracker.StopSession(r.Context(), personID)
	if err != nil {
		app.trackerError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, res); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Open Session
// @Summary Current session
// @Description Get the person's open session, if any
// @Tags sessions
// @Produce json
// @Param personId path int true "Person ID"
// @Success 200 {object} main.responseSession
// @Failure 404 {object} any "No open session"
// @Router /persons/{personId}/sessions/open [get]
func (app *application) handleOpenSession(w http.ResponseWriter, r *http.Request) {
	personID, err := personIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	session, err := app.tracker.OpenSession(r.Context(), personID)
	if err != nil {
		app.trackerError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseSession{Session: session}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle List Person Sessions
// @Summary Person sessions
// @Tags sessions
// @Produce json
// @Param personId path int true "Person ID"
// @Success 200 {object} main.responseSessions
// @Failure 404 {object} any "Person not found"
// @Router /persons/{personId}/sessions [get]
func (app *application) handleListPersonSessions(w http.ResponseWriter, r *http.Request) {
	personID, err := personIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	sessions, err := app.tracker.ListPersonSessions(r.Context(), personID)
	if err != nil {
		app.trackerError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseSessions{Sessions: sessions}); err != nil {
		app.serverError(w, r, err)
	}
}

type responseSessions struct {
	Sessions []model.Session `json:"sessions"`
}

// Handle List Sessions
// @Summary All sessions
// @Description List every person's sessions with their names
// @Tags sessions
// @Produce json
// @Success 200 {object} main.responseSessionEntries
// @Router /sessions [get]
func (app *application) handleListSessions(w http.ResponseWriter, r *http.Request) {
	entries, err := app.tracker.ListAllSessions(r.Context())
	if err != nil {
		app.trackerError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseSessionEntries{Sessions: entries}); err != nil {
		app.serverError(w, r, err)
	}
}

type responseSessionEntries struct {
	Sessions []model.SessionEntry `json:"sessions"`
}

// Handle Edit Session
// @Summary Edit session
// @Description Replace a session's start and/or stop and refresh the total time
// @Tags sessions
// @Accept json
// @Produce json
// @Param personId path int true "Person ID"
// @Param sessionId path int true "Session ID"
// @Param input body tracker.SessionPatch true "Timestamps as YYYY-MM-DD HH:MM:SS"
// @Success 200 {object} tracker.EditResult
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Session not found"
// @Failure 422 {object} validator.Validator "Invalid timestamps"
// @Failure 500 {object} any "Internal server error"
// @Router /persons/{personId}/sessions/{sessionId} [patch]
func (app *application) handleEditSession(w http.ResponseWriter, r *http.Request) {
	personID, err := personIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	sessionID, err := sessionIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var input tracker.SessionPatch
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateRequestEditSession(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	res, err := app.tracker.EditSession(r.Context(), personID, sessionID, input)
	if err != nil {
		app.trackerError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, res); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Delete Session
// @Summary Delete session
// @Description Delete a closed session and refresh the total time
// @Tags sessions
// @Produce json
// @Param personId path int true "Person ID"
// @Param sessionId path int true "Session ID"
// @Success 200 {object} main.responseTotalTime
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Session not found"
// @Failure 500 {object} any "Internal server error"
// @Router /persons/{personId}/sessions/{sessionId} [delete]
func (app *application) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	personID, err := personIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	sessionID, err := sessionIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	total, err := app.tracker.DeleteSession(r.Context(), personID, sessionID)
	if err != nil {
		app.trackerError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseTotalTime{TotalTime: total}); err != nil {
		app.serverError(w, r, err)
	}
}
