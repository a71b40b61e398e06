// Package validation checks request input structs against their `validate` tags and
// reports failures as a list of field errors keyed by JSON field name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"toolverse/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "pricing", func(fl validator.FieldLevel) bool {
		return models.PricingTier(fl.Field().String()).Valid()
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// mustRegister panics at init rather than leaving tag unknown until first use.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Result is the outcome of checking one input value.
type Result struct {
	Errors []models.FieldError
}

// OK reports whether no field was rejected.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Err returns a validation AppError carrying every field error, or nil when r is OK.
func (r Result) Err(message string) error {
	if r.OK() {
		return nil
	}
	return models.NewValidationError(message, r.Errors...)
}

// Add appends a field error that tags cannot express.
func (r *Result) Add(field, message string) {
	r.Errors = append(r.Errors, models.FieldError{Field: field, Message: message})
}

// Struct validates v, which must be a struct or a pointer to one.
func Struct(v any) Result {
	err := validate.Struct(v)
	if err == nil {
		return Result{}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Result{Errors: []models.FieldError{{Field: "", Message: err.Error()}}}
	}

	out := Result{Errors: make([]models.FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Errors = append(out.Errors, models.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	case "pricing":
		tiers := make([]string, 0, len(models.PricingTiers))
		for _, p := range models.PricingTiers {
			tiers = append(tiers, string(p))
		}
		return "must be one of: " + strings.Join(tiers, ", ")
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "alphanum":
		return "must contain only letters and digits"
	}
	return "is invalid"
}
