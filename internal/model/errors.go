package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrExists     = errors.New("already exists")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
	ErrStore      = errors.New("store failure")

	// ErrRecompute marks a store failure raised while rebuilding a summary.
	// It is always joined with ErrStore.
	ErrRecompute = errors.New("recompute failed")
)

func NewError(model string, err error) error {
	return fmt.Errorf("%s: %w", strings.ToLower(model), err)
}

// NewDetailedError wraps err like NewError and appends a human readable reason.
func NewDetailedError(model string, err error, detail string) error {
	return fmt.Errorf("%s: %w: %s", strings.ToLower(model), err, detail)
}

func IsDomain(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrExists) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrValidation)
}
