// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cast"
)

// Snapshot is the frozen, merged result of a defaults source and its
// overrides. It is created exactly once per Resolver and never mutated
// afterwards, so it is safe for concurrent lock-free reads.
type Snapshot struct {
	values map[string]any
}

func newSnapshot(table Map) *Snapshot {
	values := make(map[string]any, len(table))
	for k, v := range table {
		values[k] = v
	}
	return &Snapshot{values: values}
}

// Get returns the value for name. It fails with UndefinedSettingError
// if the snapshot does not define name.
func (s *Snapshot) Get(name string) (any, error) {
	v, ok := s.values[name]
	if !ok {
		return nil, UndefinedSettingError{Name: name}
	}
	return v, nil
}

// Has reports whether the snapshot defines name.
func (s *Snapshot) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Keys returns all defined setting names in lexical order.
func (s *Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// All returns a copy of the underlying table. Mutating the copy does
// not affect the snapshot.
func (s *Snapshot) All() Map {
	m := make(Map, len(s.values))
	for k, v := range s.values {
		m[k] = v
	}
	return m
}

// CoerceSettingError occurs when a setting value can not be coerced to
// the type a typed accessor was asked for.
type CoerceSettingError struct {
	Name  string
	Type  string
	Cause error
}

// Error implements the error interface.
func (e CoerceSettingError) Error() string {
	return fmt.Sprintf("failed to coerce setting %s to %s: %s", e.Name, e.Type, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CoerceSettingError) Unwrap() error {
	return e.Cause
}

// Bool returns the value for name coerced to a bool.
func (s *Snapshot) Bool(name string) (bool, error) {
	v, err := s.Get(name)
	if err != nil {
		return false, err
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, CoerceSettingError{Name: name, Type: "bool", Cause: err}
	}
	return b, nil
}

// String returns the value for name coerced to a string.
func (s *Snapshot) String(name string) (string, error) {
	v, err := s.Get(name)
	if err != nil {
		return "", err
	}
	str, err := cast.ToStringE(v)
	if err != nil {
		return "", CoerceSettingError{Name: name, Type: "string", Cause: err}
	}
	return str, nil
}

// Int returns the value for name coerced to an int.
func (s *Snapshot) Int(name string) (int, error) {
	v, err := s.Get(name)
	if err != nil {
		return 0, err
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, CoerceSettingError{Name: name, Type: "int", Cause: err}
	}
	return n, nil
}

// Duration returns the value for name coerced to a time.Duration.
// Bare integers are interpreted as seconds, matching the convention
// used by the built-in table; strings go through time.ParseDuration.
func (s *Snapshot) Duration(name string) (time.Duration, error) {
	v, err := s.Get(name)
	if err != nil {
		return 0, err
	}
	if d, ok := v.(time.Duration); ok {
		return d, nil
	}
	if str, ok := v.(string); ok {
		d, err := time.ParseDuration(str)
		if err != nil {
			return 0, CoerceSettingError{Name: name, Type: "duration", Cause: err}
		}
		return d, nil
	}
	secs, err := cast.ToInt64E(v)
	if err != nil {
		return 0, CoerceSettingError{Name: name, Type: "duration", Cause: err}
	}
	return time.Duration(secs) * time.Second, nil
}

// Strings returns the value for name coerced to a string slice.
func (s *Snapshot) Strings(name string) ([]string, error) {
	v, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	ss, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, CoerceSettingError{Name: name, Type: "[]string", Cause: err}
	}
	return ss, nil
}

// StringMap returns the value for name coerced to a map.
func (s *Snapshot) StringMap(name string) (map[string]any, error) {
	v, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, CoerceSettingError{Name: name, Type: "map[string]any", Cause: err}
	}
	return m, nil
}

// Pair is a two element tuple. Settings like ADMINS hold lists of them.
type Pair struct {
	Key   string
	Value string
}

// Pairs returns the value for name coerced to a list of pairs. The
// underlying value may be a []Pair, a [][2]string or any slice whose
// elements are two element slices of string coercible values.
func (s *Snapshot) Pairs(name string) ([]Pair, error) {
	v, err := s.Get(name)
	if err != nil {
		return nil, err
	}

	switch x := v.(type) {
	case []Pair:
		return slices.Clone(x), nil
	case [][2]string:
		pairs := make([]Pair, len(x))
		for i, p := range x {
			pairs[i] = Pair{Key: p[0], Value: p[1]}
		}
		return pairs, nil
	}

	elems, err := cast.ToSliceE(v)
	if err != nil {
		return nil, CoerceSettingError{Name: name, Type: "[]Pair", Cause: err}
	}
	pairs := make([]Pair, len(elems))
	for i, elem := range elems {
		tuple, err := cast.ToStringSliceE(elem)
		if err != nil || len(tuple) != 2 {
			return nil, CoerceSettingError{
				Name:  name,
				Type:  "[]Pair",
				Cause: fmt.Errorf("element %d is not a two element tuple", i),
			}
		}
		pairs[i] = Pair{Key: tuple[0], Value: tuple[1]}
	}
	return pairs, nil
}
