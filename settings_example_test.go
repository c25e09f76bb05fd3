// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings_test

import (
	"fmt"
	"strings"

	"github.com/z5labs/settings"
)

func ExampleResolver_Configure() {
	r := settings.New()

	err := r.Configure(
		settings.Map{"DEBUG": false, "PORT": 80},
		settings.Map{"DEBUG": true},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	debug, _ := r.Get("DEBUG")
	port, _ := r.Get("PORT")
	fmt.Println(debug)
	fmt.Println(port)
	// Output:
	// true
	// 80
}

func ExampleResolver_Get_lazy() {
	settings.RegisterSource("example.settings.prod", settings.Map{
		"DEBUG":     true,
		"TIME_ZONE": "America/Chicago",
	})

	r := settings.New()
	if err := r.SetSource("example.settings.prod"); err != nil {
		fmt.Println(err)
		return
	}

	// The first read resolves the named source over the built-in table.
	tz, _ := r.Get("TIME_ZONE")
	fmt.Println(tz)
	fmt.Println(r.IsConfigured())
	// Output:
	// America/Chicago
	// true
}

func ExampleLoad() {
	table, err := settings.Load(
		settings.Builtin(),
		settings.FromYaml(strings.NewReader("DEBUG: true")),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(table["DEBUG"])
	fmt.Println(table["TIME_ZONE"])
	// Output:
	// true
	// UTC
}
