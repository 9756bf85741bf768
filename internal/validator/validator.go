package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
	"github.com/protomem/timeclock/internal/model"
)

var (
	_engineOnce sync.Once
	_engine     *playground.Validate
)

func engine() *playground.Validate {
	_engineOnce.Do(func() {
		_engine = playground.New(playground.WithRequiredStructEnabled())
		_engine.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return _engine
}

type Validator struct {
	Errors      []string          `json:"errors,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

func (v Validator) HasErrors() bool {
	return len(v.Errors) != 0 || len(v.FieldErrors) != 0
}

func (v *Validator) AddError(message string) {
	v.Errors = append(v.Errors, message)
}

func (v *Validator) AddFieldError(key, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}

	if _, exists := v.FieldErrors[key]; !exists {
		v.FieldErrors[key] = message
	}
}

func (v *Validator) Check(ok bool, message string) {
	if !ok {
		v.AddError(message)
	}
}

func (v *Validator) CheckField(ok bool, key, message string) {
	if !ok {
		v.AddFieldError(key, message)
	}
}

// CheckStruct runs the `validate` struct tags of s and records one field
// error per failing field, keyed by its json name.
func (v *Validator) CheckStruct(s any) {
	err := engine().Struct(s)
	if err == nil {
		return
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		v.AddError(err.Error())
		return
	}

	for _, fe := range fieldErrs {
		v.AddFieldError(fe.Field(), describe(fe))
	}
}

func describe(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// Err returns nil when nothing failed, otherwise an *Error for the named
// entity.
func (v Validator) Err(entity string) error {
	if !v.HasErrors() {
		return nil
	}
	return &Error{Entity: entity, Validator: v}
}

// Error is a failed validation. It matches model.ErrValidation.
type Error struct {
	Entity    string
	Validator Validator
}

func (e *Error) Error() string {
	msgs := append([]string(nil), e.Validator.Errors...)

	keys := make([]string, 0, len(e.Validator.FieldErrors))
	for key := range e.Validator.FieldErrors {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		msgs = append(msgs, key+" "+e.Validator.FieldErrors[key])
	}

	return fmt.Sprintf("%s: %s: %s", strings.ToLower(e.Entity), model.ErrValidation, strings.Join(msgs, "; "))
}

func (e *Error) Unwrap() error {
	return model.ErrValidation
}

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

func IsEmail(value string) bool {
	return engine().Var(value, "required,email") == nil
}
