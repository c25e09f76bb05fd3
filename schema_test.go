// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNames(t *testing.T) {
	t.Run("will return nil", func(t *testing.T) {
		t.Run("if every name is an uppercase identifier", func(t *testing.T) {
			err := ValidateNames(Map{
				"DEBUG":         true,
				"ALLOWED_HOSTS": []string{},
				"X2":            0,
			})
			if !assert.Nil(t, err) {
				return
			}
		})

		t.Run("if the built-in table is checked", func(t *testing.T) {
			err := ValidateNames(Builtin())
			if !assert.Nil(t, err) {
				return
			}
		})
	})

	t.Run("will report every offending name", func(t *testing.T) {
		t.Run("as an InvalidNameError", func(t *testing.T) {
			err := ValidateNames(Map{
				"DEBUG":  true,
				"debug":  true,
				"2DEBUG": true,
				"DE BUG": true,
			})

			var ierr InvalidNameError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
		})
	})
}

func TestValidate(t *testing.T) {
	type webConfig struct {
		SecretKey string   `setting:"SECRET_KEY" validate:"required"`
		Hosts     []string `setting:"ALLOWED_HOSTS" validate:"min=1"`
	}

	t.Run("will return validation errors", func(t *testing.T) {
		t.Run("if a required setting decoded to its zero value", func(t *testing.T) {
			snap := configuredSnapshot(t, Map{
				"SECRET_KEY":    "",
				"ALLOWED_HOSTS": []string{"api.internal"},
			})

			var cfg webConfig
			err := snap.Unmarshal(&cfg)
			require.NoError(t, err)

			err = Validate(&cfg)

			var verrs validator.ValidationErrors
			if !assert.ErrorAs(t, err, &verrs) {
				return
			}
		})
	})

	t.Run("will return nil", func(t *testing.T) {
		t.Run("if every constraint holds", func(t *testing.T) {
			snap := configuredSnapshot(t, Map{
				"SECRET_KEY":    "s3cr3t",
				"ALLOWED_HOSTS": []string{"api.internal"},
			})

			var cfg webConfig
			err := snap.Unmarshal(&cfg)
			require.NoError(t, err)

			err = Validate(&cfg)
			if !assert.Nil(t, err) {
				return
			}
		})
	})
}
