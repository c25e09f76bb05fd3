// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configuredSnapshot(t *testing.T, base Map) *Snapshot {
	t.Helper()

	r := New()
	var src Source
	if base != nil {
		src = base
	}
	err := r.Configure(src, nil)
	require.NoError(t, err)

	snap, err := r.Snapshot()
	require.NoError(t, err)
	return snap
}

func TestSnapshot_Get(t *testing.T) {
	t.Run("will return an UndefinedSettingError", func(t *testing.T) {
		t.Run("if the name is not defined", func(t *testing.T) {
			snap := configuredSnapshot(t, Map{"DEBUG": true})

			_, err := snap.Get("NOT_THERE")

			var uerr UndefinedSettingError
			if !assert.ErrorAs(t, err, &uerr) {
				return
			}
			if !assert.NotEmpty(t, uerr.Error()) {
				return
			}
		})
	})
}

func TestSnapshot_Immutability(t *testing.T) {
	t.Run("will not observe mutations", func(t *testing.T) {
		t.Run("of the table it was configured from", func(t *testing.T) {
			base := Map{"DEBUG": false}

			r := New()
			err := r.Configure(base, nil)
			require.NoError(t, err)

			base["DEBUG"] = true

			debug, err := r.Get("DEBUG")
			require.NoError(t, err)
			if !assert.Equal(t, false, debug) {
				return
			}
		})

		t.Run("of the copy returned by All", func(t *testing.T) {
			snap := configuredSnapshot(t, Map{"DEBUG": false})

			all := snap.All()
			all["DEBUG"] = true

			debug, err := snap.Get("DEBUG")
			require.NoError(t, err)
			if !assert.Equal(t, false, debug) {
				return
			}
		})
	})
}

func TestSnapshot_Keys(t *testing.T) {
	t.Run("will return every defined name", func(t *testing.T) {
		t.Run("in lexical order", func(t *testing.T) {
			snap := configuredSnapshot(t, Map{"PORT": 80, "DEBUG": true, "APPEND_SLASH": true})

			if !assert.Equal(t, []string{"APPEND_SLASH", "DEBUG", "PORT"}, snap.Keys()) {
				return
			}
		})
	})
}

func TestSnapshot_TypedAccessors(t *testing.T) {
	t.Run("will return a CoerceSettingError", func(t *testing.T) {
		t.Run("if the value does not coerce to the requested type", func(t *testing.T) {
			snap := configuredSnapshot(t, Map{"DEBUG": []string{"nope"}})

			_, err := snap.Bool("DEBUG")

			var cerr CoerceSettingError
			if !assert.ErrorAs(t, err, &cerr) {
				return
			}
			if !assert.Equal(t, "DEBUG", cerr.Name) {
				return
			}
			if !assert.NotNil(t, cerr.Unwrap()) {
				return
			}
		})
	})

	t.Run("will coerce", func(t *testing.T) {
		snap := configuredSnapshot(t, Map{
			"DEBUG":         "true",
			"TIME_ZONE":     "UTC",
			"PORT":          "8080",
			"ALLOWED_HOSTS": []any{"api.internal", "www.example.com"},
			"DATABASES":     map[string]any{"default": map[string]any{}},
		})

		t.Run("strings to bools", func(t *testing.T) {
			debug, err := snap.Bool("DEBUG")
			require.NoError(t, err)
			if !assert.True(t, debug) {
				return
			}
		})

		t.Run("values to strings", func(t *testing.T) {
			tz, err := snap.String("TIME_ZONE")
			require.NoError(t, err)
			if !assert.Equal(t, "UTC", tz) {
				return
			}
		})

		t.Run("strings to ints", func(t *testing.T) {
			port, err := snap.Int("PORT")
			require.NoError(t, err)
			if !assert.Equal(t, 8080, port) {
				return
			}
		})

		t.Run("slices of any to string slices", func(t *testing.T) {
			hosts, err := snap.Strings("ALLOWED_HOSTS")
			require.NoError(t, err)
			if !assert.Equal(t, []string{"api.internal", "www.example.com"}, hosts) {
				return
			}
		})

		t.Run("maps to string keyed maps", func(t *testing.T) {
			dbs, err := snap.StringMap("DATABASES")
			require.NoError(t, err)
			if !assert.Contains(t, dbs, "default") {
				return
			}
		})
	})
}

func TestSnapshot_Duration(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected time.Duration
	}{
		{
			name:     "bare integers are seconds",
			value:    300,
			expected: 5 * time.Minute,
		},
		{
			name:     "strings go through time.ParseDuration",
			value:    "90s",
			expected: 90 * time.Second,
		},
		{
			name:     "durations pass through",
			value:    2 * time.Hour,
			expected: 2 * time.Hour,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			snap := configuredSnapshot(t, Map{"CACHE_TTL": tc.value})

			d, err := snap.Duration("CACHE_TTL")
			require.NoError(t, err)
			if !assert.Equal(t, tc.expected, d) {
				return
			}
		})
	}

	t.Run("will return a CoerceSettingError", func(t *testing.T) {
		t.Run("if the string is not a duration", func(t *testing.T) {
			snap := configuredSnapshot(t, Map{"CACHE_TTL": "soon"})

			_, err := snap.Duration("CACHE_TTL")

			var cerr CoerceSettingError
			if !assert.ErrorAs(t, err, &cerr) {
				return
			}
		})
	})
}

func TestSnapshot_Pairs(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected []Pair
	}{
		{
			name:     "native pairs",
			value:    []Pair{{Key: "ops", Value: "ops@example.com"}},
			expected: []Pair{{Key: "ops", Value: "ops@example.com"}},
		},
		{
			name:     "two element string arrays",
			value:    [][2]string{{"ops", "ops@example.com"}},
			expected: []Pair{{Key: "ops", Value: "ops@example.com"}},
		},
		{
			name: "parsed tuples",
			// What a yaml or json source produces for a list of lists.
			value:    []any{[]any{"ops", "ops@example.com"}},
			expected: []Pair{{Key: "ops", Value: "ops@example.com"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			snap := configuredSnapshot(t, Map{"ADMINS": tc.value})

			pairs, err := snap.Pairs("ADMINS")
			require.NoError(t, err)
			if !assert.Equal(t, tc.expected, pairs) {
				return
			}
		})
	}

	t.Run("will return a CoerceSettingError", func(t *testing.T) {
		t.Run("if an element is not a two element tuple", func(t *testing.T) {
			snap := configuredSnapshot(t, Map{"ADMINS": []any{[]any{"ops"}}})

			_, err := snap.Pairs("ADMINS")

			var cerr CoerceSettingError
			if !assert.ErrorAs(t, err, &cerr) {
				return
			}
		})
	})
}
