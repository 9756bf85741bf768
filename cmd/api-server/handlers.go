package main

import (
	"net/http"
	"strings"

	"github.com/protomem/timeclock/internal/model"
	"github.com/protomem/timeclock/internal/request"
	"github.com/protomem/timeclock/internal/response"
	"github.com/protomem/timeclock/internal/tracker"
	"github.com/protomem/timeclock/internal/validator"
)

// Handle Status
// @Summary Server Status
// @Description Check if the server is up and running
// @Tags api
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /status [get]
func (app *application) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, response.JSONObject{"status": "OK"}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Permissions
// @Summary Role catalogue
// @Description List the permission levels a person can hold
// @Tags persons
// @Produce json
// @Success 200 {object} main.responsePermissions
// @Router /permissions [get]
func (app *application) handlePermissions(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, responsePermissions{Permissions: model.Permissions()}); err != nil {
		app.serverError(w, r, err)
	}
}

type responsePermissions struct {
	Permissions []model.Permission `json:"permissions"`
}

// Handle Create Person
// @Summary Create Person
// @Description Register a person with an empty total time
// @Tags persons
// @Accept json
// @Produce json
// @Param input body main.requestCreatePerson true "Person data"
// @Success 201 {object} main.responsePerson
// @Failure 400 {object} any "Bad request input"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 409 {object} any "Person already exists"
// @Failure 500 {object} any "Internal server error"
// @Router /persons [post]
func (app *application) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var input requestCreatePerson
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateRequestCreatePerson(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	in := tracker.PersonInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		TagNum:    input.TagNum,
		Email:     input.Email,
	}
	if input.Role != nil {
		in.Role = *input.Role
	}

	person, err := app.tracker.CreatePerson(r.Context(), in)
	if err != nil {
		app.trackerError(w, r, err)
		return
	}

	app.requestLogger(r).Debug("person created", "personId", person.ID)

	if err := response.JSON(w, http.StatusCreated, responsePerson{Person: person}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestCreatePerson struct {
	FirstName string      `json:"firstName" validate:"required,max=50"`
	LastName  string      `json:"lastName" validate:"required,max=50"`
	TagNum    string      `json:"tagNum" validate:"required,max=20"`
	Email     string      `json:"email" validate:"required,email"`
	Role      *model.Role `json:"role" swaggertype:"string" example:"user"`
}

type responsePerson struct {
	Person model.Person `json:"person"`
}

// Handle Find Persons
// @Summary Find Persons
// @Description List persons, optionally matching first or last name
// @Tags persons
// @Produce json
// @Param name query string false "First or last name"
// @Success 200 {object} main.responsePersons
// @Failure 422 {object} validator.Validator "Invalid filter"
// @Failure 500 {object} any "Internal server error"
// @Router /persons [get]
func (app *application) handleFindPersons(w http.ResponseWriter, r *http.Request) {
	filter := tracker.PersonFilter{Name: optionalStringQueryParams(r, "name")}

	var v validator.Validator
	validateFindPersonsFilter(&v, filter)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	persons, err := app.tracker.FindPersons(r.Context(), filter)
	if err != nil {
		app.trackerError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responsePersons{Persons: persons}); err != nil {
		app.serverError(w, r, err)
	}
}

type responsePersons struct {
	Persons []model.Person `json:"persons"`
}

// Handle Get Person
// @Summary Get Person
// @Tags persons
// @Produce json
// @Param personId path int true "Person ID"
// @Success 200 {object} main.responsePerson
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Person not found"
// @Failure 500 {object} any "Internal server error"
// @Router /persons/{personId} [get]
func (app *application) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	personID, err := personIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	person, err := app.tracker.GetPerson(r.Context(), personID)
	if err != nil {
		app.trackerError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responsePerson{Person: person}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Update Person
// @Summary Update Person
// @Description Partially update a person's names, email or role
// @Tags persons
// @Accept json
// @Produce json
// @Param personId path int true "Person ID"
// @Param input body main.requestUpdatePerson true "Fields to update"
// @Success 200 {object} main.responsePerson
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Person not found"
// @Failure 409 {object} any "Email already taken"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 500 {object} any "Internal server error"
// @Router /persons/{personId} [patch]
func (app *application) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	personID, err := personIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var input requestUpdatePerson
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateRequestUpdatePerson(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	person, err := app.tracker.UpdatePerson(r.Context(), personID, tracker.PersonPatch{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     trimmed(input.Email),
		Role:      input.Role,
	})
	if err != nil {
		app.trackerError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responsePerson{Person: person}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdatePerson struct {
	FirstName *string     `json:"firstName"`
	LastName  *string     `json:"lastName"`
	Email     *string     `json:"email"`
	Role      *model.Role `json:"role" swaggertype:"string" example:"supervisor"`
}

// Handle Delete Person
// @Summary Delete Person
// @Description Delete a person together with their sessions and total time
// @Tags persons
// @Param personId path int true "Person ID"
// @Success 204
// @Failure 400 {object} any "Bad request input"
// @Failure 404 {object} any "Person not found"
// @Failure 500 {object} any "Internal server error"
// @Router /persons/{personId} [delete]
func (app *application) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	personID, err := personIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	if err := app.tracker.DeletePerson(r.Context(), personID); err != nil {
		app.trackerError(w, r, err)
		return
	}

	app.requestLogger(r).Debug("person deleted", "personId", personID)

	w.WriteHeader(http.StatusNoContent)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
