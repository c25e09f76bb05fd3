// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command webapp shows the typical settings flow for a service: layer
// a settings file and environment variables over the built-in table,
// freeze once at startup, then decode into a validated struct.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/z5labs/settings"
)

type webConfig struct {
	Debug           bool          `setting:"DEBUG"`
	SecretKey       string        `setting:"SECRET_KEY" validate:"required"`
	AllowedHosts    []string      `setting:"ALLOWED_HOSTS"`
	Port            int           `setting:"WEB_SERVER_PORT" validate:"gt=0,lte=65535"`
	SessionAge      time.Duration `setting:"SESSION_COOKIE_AGE"`
	ShutdownTimeout time.Duration `setting:"GRACEFUL_SHUTDOWN_TIMEOUT"`
}

const settingsFile = `
SECRET_KEY: ${WEBAPP_SECRET}
ALLOWED_HOSTS:
  - api.internal
  - www.example.com
WEB_SERVER_PORT: 9000
`

func main() {
	os.Setenv("WEBAPP_SECRET", "s3cr3t")

	table, err := settings.Load(
		settings.Builtin(),
		settings.FromYaml(settings.Expand(strings.NewReader(settingsFile))),
		settings.FromEnv("WEBAPP"),
	)
	if err != nil {
		log.Fatal(err)
	}

	err = settings.Configure(table, settings.Map{"DEBUG": true})
	if err != nil {
		log.Fatal(err)
	}

	snap, err := settings.Default().Snapshot()
	if err != nil {
		log.Fatal(err)
	}

	var cfg webConfig
	err = snap.Unmarshal(&cfg)
	if err != nil {
		log.Fatal(err)
	}
	err = settings.Validate(&cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("debug=%v port=%d hosts=%v session=%s\n",
		cfg.Debug, cfg.Port, cfg.AllowedHosts, cfg.SessionAge)
}
