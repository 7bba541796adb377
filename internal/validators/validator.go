// Package validators wires go-playground/validator into Echo so request
// structs are validated once at the boundary.
package validators

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator implements echo.Validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator that reports fields by their JSON names
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate checks a request struct and converts failures into a 400 error
// whose message names the offending fields.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	var missing []string
	var invalid []string
	for _, fe := range fieldErrors {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}

	switch {
	case len(missing) > 0:
		return echo.NewHTTPError(http.StatusBadRequest, "Missing fields: "+strings.Join(missing, ", "))
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid fields: "+strings.Join(invalid, ", "))
	}
}
