package main

import (
	"github.com/protomem/timeclock/internal/tracker"
	"github.com/protomem/timeclock/internal/validator"
)

// Validation rules

func validateRequestCreatePerson(v *validator.Validator, request requestCreatePerson) {
	v.CheckStruct(request)
	if request.Role != nil {
		v.CheckField(request.Role.Valid(), "role", "is unknown")
	}
}

func validateRequestUpdatePerson(v *validator.Validator, request requestUpdatePerson) {
	v.Check(
		request.FirstName != nil || request.LastName != nil || request.Email != nil || request.Role != nil,
		"No fields to update",
	)
	if request.FirstName != nil {
		validatePersonName(v, "firstName", *request.FirstName)
	}
	if request.LastName != nil {
		validatePersonName(v, "lastName", *request.LastName)
	}
	if request.Email != nil {
		v.CheckField(validator.IsEmail(*request.Email), "email", "must be a valid email address")
	}
	if request.Role != nil {
		v.CheckField(request.Role.Valid(), "role", "is unknown")
	}
}

func validateRequestEditSession(v *validator.Validator, request tracker.SessionPatch) {
	v.Check(!request.Empty(), "No fields to update")
	if request.Start != nil {
		validateTimestamp(v, "dateTimeStart", *request.Start)
	}
	if request.Stop != nil {
		validateTimestamp(v, "dateTimeStop", *request.Stop)
	}
}

func validateFindPersonsFilter(v *validator.Validator, filter tracker.PersonFilter) {
	if filter.Name != nil {
		v.CheckField(validator.NotBlank(*filter.Name), "name", "cannot be blank")
	}
}

func validatePersonName(v *validator.Validator, key, name string) {
	v.CheckField(validator.NotBlank(name), key, "cannot be blank")
	v.CheckField(validator.MaxRunes(name, 50), key, "must be at most 50 characters")
}

func validateTimestamp(v *validator.Validator, key, value string) {
	_, err := tracker.ParseTimestamp(value)
	v.CheckField(err == nil, key, "must be formatted as YYYY-MM-DD HH:MM:SS")
}
