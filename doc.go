// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package settings resolves an application's effective configuration
// exactly once per process.
//
// A [Resolver] starts out unconfigured and transitions to configured at
// most once, through one of two mutually exclusive paths:
//
//   - an explicit [Resolver.Configure] call, supplying an optional base
//     [Source] (defaulting to the built-in table, see [Builtin]) and a
//     mapping of per-setting overrides, or
//
//   - a lazy resolution of a designated named source, triggered by the
//     first [Resolver.Get]. The source name comes from an explicit
//     [Resolver.SetSource] call or the SETTINGS_SOURCE environment
//     variable, and is resolved against the source registry (see
//     [RegisterSource]) or, failing that, loaded as a yaml/json/toml
//     file by extension.
//
// Whichever path runs first freezes an immutable [Snapshot]. Configured
// is terminal: a second Configure, or a Configure after any successful
// read, fails with [AlreadyConfiguredError]. Reads before any source was
// ever designated fail with [NotConfiguredError].
//
// Concurrent first access is safe. Exactly one caller performs the
// resolution; the rest either share its result or, if it fails, leave
// the resolver unconfigured so a later read can retry. Once configured,
// reads do not take locks.
//
// Setting names are conventionally uppercase identifiers, e.g.
//
//	err := r.Configure(nil, settings.Map{
//	    "DEBUG": true,
//	    "ALLOWED_HOSTS": []string{"api.internal"},
//	})
//
// Values are dynamically typed; [Snapshot] offers coercing accessors and
// mapstructure-based decoding into tagged structs for callers that want
// static types.
package settings
