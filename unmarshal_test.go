// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Unmarshal(t *testing.T) {
	t.Run("will return a TypeCoercionError", func(t *testing.T) {
		t.Run("if a setting value can not decode into the field type", func(t *testing.T) {
			snap := configuredSnapshot(t, Map{"SESSION_COOKIE_AGE": "not a duration"})

			var cfg struct {
				SessionAge time.Duration `setting:"SESSION_COOKIE_AGE"`
			}
			err := snap.Unmarshal(&cfg)

			var terr TypeCoercionError
			if !assert.ErrorAs(t, err, &terr) {
				return
			}
			if !assert.NotEmpty(t, terr.Error()) {
				return
			}
			if !assert.NotNil(t, terr.Unwrap()) {
				return
			}
		})
	})

	t.Run("will decode the snapshot", func(t *testing.T) {
		t.Run("matching field names case insensitively", func(t *testing.T) {
			snap := configuredSnapshot(t, Map{"DEBUG": true, "TIME_ZONE": "UTC"})

			var cfg struct {
				Debug    bool
				TimeZone string `setting:"TIME_ZONE"`
			}
			err := snap.Unmarshal(&cfg)
			require.NoError(t, err)

			if !assert.True(t, cfg.Debug) {
				return
			}
			if !assert.Equal(t, "UTC", cfg.TimeZone) {
				return
			}
		})

		t.Run("treating bare integers as seconds for duration fields", func(t *testing.T) {
			snap := configuredSnapshot(t, Map{"SESSION_COOKIE_AGE": 1209600})

			var cfg struct {
				SessionAge time.Duration `setting:"SESSION_COOKIE_AGE"`
			}
			err := snap.Unmarshal(&cfg)
			require.NoError(t, err)

			if !assert.Equal(t, 14*24*time.Hour, cfg.SessionAge) {
				return
			}
		})

		t.Run("parsing duration strings for duration fields", func(t *testing.T) {
			snap := configuredSnapshot(t, Map{"GRACEFUL_SHUTDOWN_TIMEOUT": "30s"})

			var cfg struct {
				Timeout time.Duration `setting:"GRACEFUL_SHUTDOWN_TIMEOUT"`
			}
			err := snap.Unmarshal(&cfg)
			require.NoError(t, err)

			if !assert.Equal(t, 30*time.Second, cfg.Timeout) {
				return
			}
		})

		t.Run("through encoding.TextUnmarshaler fields", func(t *testing.T) {
			snap := configuredSnapshot(t, Map{"LOG_LEVEL": "warn"})

			var cfg struct {
				Level slog.Level `setting:"LOG_LEVEL"`
			}
			err := snap.Unmarshal(&cfg)
			require.NoError(t, err)

			if !assert.Equal(t, slog.LevelWarn, cfg.Level) {
				return
			}
		})

		t.Run("into nested structs from map values", func(t *testing.T) {
			snap := configuredSnapshot(t, Map{
				"DATABASES": map[string]any{
					"default": map[string]any{"HOST": "db.internal", "PORT": 5432},
				},
			})

			var cfg struct {
				Databases map[string]struct {
					Host string
					Port int
				} `setting:"DATABASES"`
			}
			err := snap.Unmarshal(&cfg)
			require.NoError(t, err)

			if !assert.Equal(t, "db.internal", cfg.Databases["default"].Host) {
				return
			}
			if !assert.Equal(t, 5432, cfg.Databases["default"].Port) {
				return
			}
		})
	})
}
