package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// saveCodePattern matches the version and dimension prefix every save code starts with
var saveCodePattern = regexp.MustCompile(`^v\d+\.\d+_DIM-[01]`)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("savecode", validateSaveCode)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := fieldPath(e)
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "savecode":
			errs[field] = "Not a save code"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "max":
			errs[field] = boundMessage("at most", e)
		case "min":
			errs[field] = boundMessage("at least", e)
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// boundMessage describes a min/max failure in the field's own unit
func boundMessage(bound string, e validator.FieldError) string {
	switch e.Kind() {
	case reflect.String:
		return fmt.Sprintf("Must be %s %s characters", bound, e.Param())
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("Must have %s %s entries", bound, e.Param())
	default:
		return fmt.Sprintf("Must be %s %s", bound, e.Param())
	}
}

// fieldPath drops the root struct name from the error namespace
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return strings.ToLower(e.Field())
}

// validateSaveCode checks the save code prefix. Full decoding happens in the service.
func validateSaveCode(fl validator.FieldLevel) bool {
	code := strings.TrimSpace(fl.Field().String())
	if code == "" {
		return true
	}
	return saveCodePattern.MatchString(code)
}
