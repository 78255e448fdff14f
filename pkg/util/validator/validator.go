// Package validator wraps go-playground/validator for request payloads.
package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/a1technologies/cooling-crm/pkg/util/errorutil"
)

// Validator validates structs based on `validate` tags.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator instance.
func New() *Validator {
	return &Validator{v: validator.New()}
}

// Struct validates s and converts failures into a VALIDATION_FAILED error whose details map
// each offending field to the rule it broke.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return apperrors.NewValidationError("invalid payload", details)
}
