package main

import (
	"net/http"

	"github.com/protomem/timeclock/internal/model"
	"github.com/protomem/timeclock/internal/response"
)

// Handle Get Total Time
// @Summary Person total time
// @Tags total-time
// @Produce json
// @Param personId path int true "Person ID"
// @Success 200 {object} main.responseTotalTime
// @Failure 404 {object} any "Person not found"
// @Router /persons/{personId}/total-time [get]
func (app *application) handleGetTotalTime(w http.ResponseWriter, r *http.Request) {
	personID, err := personIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	total, err := app.tracker.GetSummary(r.Context(), personID)
	if err != nil {
		app.trackerError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseTotalTime{TotalTime: total}); err != nil {
		app.serverError(w, r, err)
	}
}

type responseTotalTime struct {
	TotalTime model.TotalTime `json:"totalTime"`
}

// Handle Recompute Total Time
// @Summary Recompute total time
// @Description Rebuild the person's total time from their closed sessions
// @Tags total-time
// @Produce json
// @Param personId path int true "Person ID"
// @Success 200 {object} main.responseTotalTime
// @Failure 404 {object} any "Person not found"
// @Failure 500 {object} any "Internal server error"
// @Router /persons/{personId}/total-time/recompute [post]
func (app *application) handleRecomputeTotalTime(w http.ResponseWriter, r *http.Request) {
	personID, err := personIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	total, err := app.tracker.Recompute(r.Context(), personID)
	if err != nil {
		app.trackerError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseTotalTime{TotalTime: total}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle List Total Time
// @Summary All totals
// @Description List every person's total time; persons without one report zeros
// @Tags total-time
// @Produce json
// @Success 200 {object} main.responseTotalTimes
// @Router /total-time [get]
func (app *application) handleListTotalTime(w http.ResponseWriter, r *http.Request) {
	totals, err := app.tracker.ListSummaries(r.Context())
	if err != nil {
		app.trackerError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseTotalTimes{TotalTimes: totals}); err != nil {
		app.serverError(w, r, err)
	}
}

type responseTotalTimes struct {
	TotalTimes []model.PersonTotalTime `json:"totalTimes"`
}
