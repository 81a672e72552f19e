// Package errhttp maps request binding and validation errors to HTTP
// responses. This is the framework-default error surface: handlers never
// build their own error bodies, they hand the error to WriteError.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/httpx"
	pkgvalidator "github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/validator"
)

// WriteError translates err into a JSON error response:
//
//   - malformed request body          → 400 {"error": "Invalid JSON"}
//   - path parameter coercion failure → 422 {"error": "Validation failed", "fields": {...}}
//   - struct tag validation failure   → 422 {"error": "Validation failed", "fields": {...}}
//   - anything else                   → 500 with a generic message
//
// Uses errors.Is/As so wrapped errors are matched correctly.
func WriteError(w http.ResponseWriter, err error) {
	var (
		pe *pkgvalidator.ParamError
		ve validator.ValidationErrors
	)
	switch {
	case errors.Is(err, pkgvalidator.ErrMalformedJSON):
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
	case errors.As(err, &pe):
		httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "Validation failed",
			"fields": map[string]string{pe.Name: pe.Message()},
		})
	case errors.As(err, &ve):
		httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "Validation failed",
			"fields": pkgvalidator.FormatValidationErrors(ve),
		})
	default:
		httpx.JSONError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
