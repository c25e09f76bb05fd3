// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

// Builtin returns the built-in defaults table: a total mapping over
// every recognized setting name. It is the base for Configure when no
// explicit base source is given, and the layer a named source is
// merged over during lazy resolution.
//
// Each call returns a fresh copy, so a caller holding the result can
// not reach into a frozen snapshot. Durations are bare integers in
// seconds; Snapshot.Duration and Unmarshal know the convention.
func Builtin() Map {
	return Map{
		// Core.
		"DEBUG":         false,
		"SECRET_KEY":    "",
		"ALLOWED_HOSTS": []string{},
		"TIME_ZONE":     "UTC",
		"USE_TZ":        true,
		"LANGUAGE_CODE": "en-us",
		"CHARSET":       "utf-8",
		"INTERNAL_IPS":  []string{},
		"ADMINS":        []Pair{},
		"MANAGERS":      []Pair{},

		// HTTP.
		"APPEND_SLASH":              true,
		"PREPEND_WWW":               false,
		"DATA_UPLOAD_MAX_BYTES":     2621440,
		"FILE_UPLOAD_MAX_BYTES":     2621440,
		"FILE_UPLOAD_PERMISSIONS":   0o644,
		"FILE_UPLOAD_TEMP_DIR":      "",
		"DEFAULT_CONTENT_TYPE":      "text/html",
		"DISALLOWED_USER_AGENTS":    []string{},
		"FORCE_SCRIPT_NAME":         "",
		"SECURE_REDIRECT_EXEMPT":    []string{},
		"SECURE_SSL_REDIRECT":       false,
		"SECURE_HSTS_SECONDS":       0,
		"SECURE_PROXY_SSL_HEADER":   []string{},
		"USE_X_FORWARDED_HOST":      false,
		"USE_X_FORWARDED_PORT":      false,
		"WEB_SERVER_PORT":           8000,
		"GRACEFUL_SHUTDOWN_TIMEOUT": 30,

		// Databases and caches.
		"DATABASES": map[string]any{
			"default": map[string]any{
				"ENGINE":       "postgres",
				"HOST":         "localhost",
				"PORT":         5432,
				"NAME":         "",
				"USER":         "",
				"PASSWORD":     "",
				"CONN_MAX_AGE": 0,
			},
		},
		"DATABASE_ROUTERS": []string{},
		"CACHES": map[string]any{
			"default": map[string]any{
				"BACKEND":  "memory",
				"LOCATION": "",
				"TIMEOUT":  300,
			},
		},
		"CACHE_MIDDLEWARE_SECONDS":    600,
		"CACHE_MIDDLEWARE_KEY_PREFIX": "",

		// Email.
		"EMAIL_BACKEND":        "smtp",
		"EMAIL_HOST":           "localhost",
		"EMAIL_PORT":           25,
		"EMAIL_HOST_USER":      "",
		"EMAIL_HOST_PASSWORD":  "",
		"EMAIL_USE_TLS":        false,
		"EMAIL_TIMEOUT":        60,
		"EMAIL_SUBJECT_PREFIX": "[app] ",
		"DEFAULT_FROM_EMAIL":   "webmaster@localhost",
		"SERVER_EMAIL":         "root@localhost",

		// Sessions.
		"SESSION_COOKIE_NAME":             "sessionid",
		"SESSION_COOKIE_AGE":              1209600,
		"SESSION_COOKIE_DOMAIN":           "",
		"SESSION_COOKIE_SECURE":           false,
		"SESSION_COOKIE_HTTPONLY":         true,
		"SESSION_COOKIE_SAMESITE":         "Lax",
		"SESSION_SAVE_EVERY_REQUEST":      false,
		"SESSION_EXPIRE_AT_BROWSER_CLOSE": false,

		// CSRF.
		"CSRF_COOKIE_NAME":     "csrftoken",
		"CSRF_COOKIE_AGE":      31449600,
		"CSRF_COOKIE_SECURE":   false,
		"CSRF_COOKIE_HTTPONLY": false,
		"CSRF_TRUSTED_ORIGINS": []string{},
		"CSRF_HEADER_NAME":     "X-CSRF-Token",
		"CSRF_FAILURE_VIEW":    "",

		// Static and media files.
		"STATIC_URL":  "/static/",
		"STATIC_ROOT": "",
		"MEDIA_URL":   "/media/",
		"MEDIA_ROOT":  "",

		// Middleware and apps.
		"MIDDLEWARE":     []string{},
		"INSTALLED_APPS": []string{},

		// Logging.
		"LOG_LEVEL":  "info",
		"LOG_FORMAT": "json",
		"LOGGING":    map[string]any{},
	}
}
