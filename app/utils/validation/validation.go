// Package validation turns validator failures into a single typed error that
// callers can detect with errors.As and render field by field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Error reports malformed or out-of-domain input. Fields maps the JSON field
// name to a human readable message.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a message for field, keeping the first message per field.
func (e *Error) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *Error) Empty() bool { return len(e.Fields) == 0 }

// ErrOrNil returns e as an error only when it carries at least one field.
func (e *Error) ErrOrNil() error {
	if e == nil || e.Empty() {
		return nil
	}
	return e
}

func FieldError(field, message string) *Error {
	e := &Error{}
	e.Add(field, message)
	return e
}

func IsValidationError(err error) bool {
	var verr *Error
	return errors.As(err, &verr)
}

// New builds a validator that reports JSON field names and understands
// decimal.Decimal fields for numeric tags such as gt and gte.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Struct validates s and converts validator failures into *Error.
func Struct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return &Error{Fields: FormatValidationErrors(verrs)}
	}
	return fmt.Errorf("validate %T: %w", s, err)
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errorMessages[field] = "is required"
		case "gt":
			errorMessages[field] = fmt.Sprintf("must be greater than %s", err.Param())
		case "gte":
			errorMessages[field] = fmt.Sprintf("must be at least %s", err.Param())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("must be one of [%s]", err.Param())
		case "min":
			errorMessages[field] = fmt.Sprintf("must have at least %s characters/value", err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("must have at most %s characters/value", err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("failed %s validation", err.Tag())
		}
	}
	return errorMessages
}
