// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import "fmt"

// NotConfiguredError occurs when a setting is read before a snapshot
// exists and no source was ever designated, either via Configure or
// via a named source designation.
type NotConfiguredError struct {
	Name string
}

// Error implements the error interface.
func (e NotConfiguredError) Error() string {
	return fmt.Sprintf("requested setting %s, but settings are not configured: call Configure or designate a source first", e.Name)
}

// AlreadyConfiguredError occurs when Configure is called after a
// snapshot already exists, whether produced by a prior Configure or by
// a prior lazy read of a named source.
type AlreadyConfiguredError struct{}

// Error implements the error interface.
func (e AlreadyConfiguredError) Error() string {
	return "settings have already been configured"
}

// LoadSourceError occurs when a designated named source can not be
// located or loaded. It surfaces at first read time, not at process
// start, and leaves the resolver unconfigured so a later read retries.
type LoadSourceError struct {
	Source string
	Cause  error
}

// Error implements the error interface.
func (e LoadSourceError) Error() string {
	return fmt.Sprintf("failed to load settings source %q: %s", e.Source, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e LoadSourceError) Unwrap() error {
	return e.Cause
}

// UndefinedSettingError occurs when reading a name the frozen snapshot
// does not define. A custom base source substitutes the built-in table
// wholesale, so it must define every name that will later be read.
type UndefinedSettingError struct {
	Name string
}

// Error implements the error interface.
func (e UndefinedSettingError) Error() string {
	return fmt.Sprintf("setting %s is not defined", e.Name)
}

// InvalidNameError occurs when a setting name does not follow the
// uppercase identifier convention. Name validation is advisory; see
// ValidateNames.
type InvalidNameError struct {
	Name string
}

// Error implements the error interface.
func (e InvalidNameError) Error() string {
	return fmt.Sprintf("setting name %q is not an uppercase identifier", e.Name)
}
