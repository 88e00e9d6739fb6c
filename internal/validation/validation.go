// Package validation wraps the request body validator shared by all
// handlers.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a request body against its validate tags and returns a
// single readable message listing every failed field.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		messages := make([]string, len(errs))
		for i, fe := range errs {
			messages[i] = fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
		}
		return errors.New(strings.Join(messages, "; "))
	}
	return err
}
