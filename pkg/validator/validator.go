// Package validator binds typed request inputs: JSON bodies are decoded and
// checked against go-playground/validator struct tags, and path parameters
// are coerced to their declared types. Binding failures are returned as typed
// errors for pkg/errhttp to translate into HTTP responses.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// ErrMalformedJSON indicates the request body was not valid JSON.
var ErrMalformedJSON = errors.New("malformed JSON body")

// ParamError describes a path parameter that failed type coercion.
type ParamError struct {
	Name  string // parameter name as declared in the route pattern
	Value string // raw value received
	Kind  string // expected type, e.g. "integer"
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("parameter %q must be a valid %s (got %q)", e.Name, e.Kind, e.Value)
}

// Message returns the human-readable field message used in validation responses.
func (e *ParamError) Message() string {
	return fmt.Sprintf("Must be a valid %s", e.Kind)
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// DecodeJSON decodes the request body into T and validates it against struct
// tags. Returns ErrMalformedJSON (wrapped) for undecodable bodies and
// validator.ValidationErrors for tag failures.
func DecodeJSON[T any](r *http.Request) (*T, error) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	if err := Validate(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// IntParam coerces the named chi URL parameter to an integer.
// Returns a *ParamError when the raw value is not a valid integer.
func IntParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParamError{Name: name, Value: raw, Kind: "integer"}
	}
	return n, nil
}

// OptionalQuery returns a pointer to the named query parameter's value, or
// nil when the parameter is absent. A present-but-empty parameter yields a
// pointer to the empty string, so handlers can echo it back as "" not null.
func OptionalQuery(r *http.Request, name string) *string {
	if !r.URL.Query().Has(name) {
		return nil
	}
	v := r.URL.Query().Get(name)
	return &v
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name → human-readable message.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[e.Field()] = formatFieldError(e)
	}
	return errs
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "numeric":
		return "Must be a numeric value"
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}
