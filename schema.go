// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Setting names follow the SCREAMING_SNAKE_CASE convention.
var namePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// ValidateNames reports, as a joined error, every key of m that is not
// an uppercase identifier. The check is advisory: Configure never
// enforces it, since a host system may recognize names outside the
// convention. Callers wanting strictness run it themselves.
func ValidateNames(m Map) error {
	var errs []error
	for name := range m {
		if !namePattern.MatchString(name) {
			errs = append(errs, InvalidNameError{Name: name})
		}
	}
	return errors.Join(errs...)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct validation over v using go-playground/validator
// tags. The usual flow decodes a snapshot first:
//
//	type WebConfig struct {
//	    SecretKey string   `setting:"SECRET_KEY" validate:"required"`
//	    Hosts     []string `setting:"ALLOWED_HOSTS" validate:"min=1"`
//	}
//
//	var cfg WebConfig
//	if err := snap.Unmarshal(&cfg); err != nil { ... }
//	if err := settings.Validate(&cfg); err != nil { ... }
func Validate(v any) error {
	return validate.Struct(v)
}
