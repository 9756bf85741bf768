package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/protomem/timeclock/internal/ctxstore"
	"github.com/protomem/timeclock/internal/model"
	"github.com/protomem/timeclock/internal/response"
	"github.com/protomem/timeclock/internal/validator"
)

func (app *application) requestLogger(r *http.Request) *slog.Logger {
	return app.logger.With(
		_traceIDKey.String(), ctxstore.FromOr(r.Context(), _traceIDKey, ""),
	)
}

func (app *application) reportServerError(r *http.Request, err error) {
	var (
		message = err.Error()
		method  = r.Method
		url     = r.URL.String()
	)

	requestAttrs := slog.Group("request", "method", method, "url", url)
	app.requestLogger(r).Error(message, requestAttrs)
}

func (app *application) errorMessage(w http.ResponseWriter, r *http.Request, status int, message string, headers http.Header) {
	message = strings.ToUpper(message[:1]) + message[1:]

	err := response.JSONWithHeaders(w, status, response.JSONObject{"error": message}, headers)
	if err != nil {
		app.reportServerError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.reportServerError(r, err)

	message := "The server encountered a problem and could not process your request"
	app.errorMessage(w, r, http.StatusInternalServerError, message, nil)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	message := "The requested resource could not be found"
	app.errorMessage(w, r, http.StatusNotFound, message, nil)
}

func (app *application) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("The %s method is not supported for this resource", r.Method)
	app.errorMessage(w, r, http.StatusMethodNotAllowed, message, nil)
}

func (app *application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	app.errorMessage(w, r, http.StatusBadRequest, err.Error(), nil)
}

func (app *application) failedValidation(w http.ResponseWriter, r *http.Request, v validator.Validator) {
	err := response.JSON(w, http.StatusUnprocessableEntity, v)
	if err != nil {
		app.serverError(w, r, err)
	}
}

// trackerError maps a tracker failure onto its HTTP status.
func (app *application) trackerError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validator.Error

	switch {
	case errors.As(err, &verr):
		app.failedValidation(w, r, verr.Validator)
	case errors.Is(err, model.ErrRecompute):
		app.reportServerError(r, err)
		app.errorMessage(w, r, http.StatusInternalServerError,
			"total time could not be recomputed, the change was rolled back", nil)
	case errors.Is(err, model.ErrStore):
		app.serverError(w, r, err)
	case errors.Is(err, model.ErrValidation):
		app.errorMessage(w, r, http.StatusUnprocessableEntity, err.Error(), nil)
	case errors.Is(err, model.ErrNotFound):
		app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, model.ErrConflict), errors.Is(err, model.ErrExists):
		app.errorMessage(w, r, http.StatusConflict, err.Error(), nil)
	default:
		app.serverError(w, r, err)
	}
}
