// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// SourceEnvVar names the environment variable consulted for a source
// designation when none was set explicitly. It is read once, at the
// first lazy resolution attempt, not at process start.
const SourceEnvVar = "SETTINGS_SOURCE"

// Resolver produces exactly one effective configuration snapshot over
// its lifetime. The zero value is an unconfigured Resolver ready for
// use.
//
// A Resolver is in one of two states, unconfigured or configured. The
// transition happens at most once, via Configure or via the first Get
// against a designated named source, and is irreversible.
type Resolver struct {
	// mu guards the unconfigured -> configured transition and the
	// source designation. Reads after the transition never take it.
	mu         sync.Mutex
	designated string
	envRead    bool

	group singleflight.Group
	snap  atomic.Pointer[Snapshot]
}

// New returns an unconfigured Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Configure freezes the effective configuration as the base table
// with the overrides applied on top.
//
// A nil base means the built-in defaults table. A non-nil base
// substitutes the built-in table wholesale rather than extending it,
// so it must define every setting that will later be read. Each
// override replaces the base value for its name entirely, even when
// both are maps.
//
// Configure fails with AlreadyConfiguredError if a snapshot already
// exists, whether produced by a prior Configure or by a prior lazy
// read. On any other failure the Resolver remains unconfigured.
func (r *Resolver) Configure(base Source, overrides Map) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.snap.Load() != nil {
		return AlreadyConfiguredError{}
	}

	if base == nil {
		base = Builtin()
	}
	table := make(Map)
	err := base.Apply(table)
	if err != nil {
		return err
	}
	for k, v := range overrides {
		table[k] = v
	}

	r.snap.Store(newSnapshot(table))
	return nil
}

// SetSource designates the named source to resolve lazily on first
// read, taking precedence over the SETTINGS_SOURCE environment
// variable. It fails with AlreadyConfiguredError once a snapshot
// exists, since re-designation could never take effect.
func (r *Resolver) SetSource(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.snap.Load() != nil {
		return AlreadyConfiguredError{}
	}
	r.designated = name
	r.envRead = true
	return nil
}

// IsConfigured reports whether a snapshot has been produced. It never
// triggers lazy resolution.
func (r *Resolver) IsConfigured() bool {
	return r.snap.Load() != nil
}

// Get returns the value for name from the effective configuration,
// resolving the designated named source first if no snapshot exists
// yet.
//
// It fails with NotConfiguredError if neither Configure nor a source
// designation ever happened, with LoadSourceError if the designated
// source can not be loaded, and with UndefinedSettingError if the
// snapshot does not define name.
func (r *Resolver) Get(name string) (any, error) {
	snap, err := r.Snapshot()
	if err != nil {
		if errors.Is(err, errNoDesignation) {
			return nil, NotConfiguredError{Name: name}
		}
		return nil, err
	}
	return snap.Get(name)
}

// Snapshot returns the effective configuration, resolving the
// designated named source first if no snapshot exists yet. Most
// callers want Get or the typed accessors; Snapshot is for decoding
// into structs or enumerating keys.
func (r *Resolver) Snapshot() (*Snapshot, error) {
	if snap := r.snap.Load(); snap != nil {
		return snap, nil
	}
	return r.resolve()
}

var errNoDesignation = errors.New("no settings source was designated")

// resolve performs the lazy named source resolution. Concurrent first
// reads share a single resolution via singleflight; a failed
// resolution memoizes nothing, so the next read retries from scratch
// with the same designation.
func (r *Resolver) resolve() (*Snapshot, error) {
	v, err, _ := r.group.Do("resolve", func() (any, error) {
		// Configure may have won the race while we queued.
		if snap := r.snap.Load(); snap != nil {
			return snap, nil
		}

		name := r.sourceName()
		if name == "" {
			return nil, errNoDesignation
		}

		src, err := lookupSource(name)
		if err != nil {
			return nil, LoadSourceError{Source: name, Cause: err}
		}

		// Built-in first, then the named source on top of it.
		table, err := Load(Builtin(), src)
		if err != nil {
			return nil, LoadSourceError{Source: name, Cause: err}
		}
		snap := newSnapshot(table)

		r.mu.Lock()
		defer r.mu.Unlock()
		if cur := r.snap.Load(); cur != nil {
			return cur, nil
		}
		r.snap.Store(snap)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// sourceName returns the sticky source designation, falling back to
// SETTINGS_SOURCE on the first lazy attempt. The environment is only
// consulted once; later retries reuse whatever was designated then.
func (r *Resolver) sourceName() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.envRead {
		r.designated = os.Getenv(SourceEnvVar)
		r.envRead = true
	}
	return r.designated
}

var defaultResolver = New()

// Default returns the process-wide Resolver shared by the package
// level functions.
func Default() *Resolver {
	return defaultResolver
}

// Configure calls Configure on the process-wide Resolver.
func Configure(base Source, overrides Map) error {
	return defaultResolver.Configure(base, overrides)
}

// SetSource calls SetSource on the process-wide Resolver.
func SetSource(name string) error {
	return defaultResolver.SetSource(name)
}

// Get calls Get on the process-wide Resolver.
func Get(name string) (any, error) {
	return defaultResolver.Get(name)
}

// IsConfigured calls IsConfigured on the process-wide Resolver.
func IsConfigured() bool {
	return defaultResolver.IsConfigured()
}
