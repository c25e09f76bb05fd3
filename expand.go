// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/z5labs/settings/internal/try"
)

// Expander is an io.Reader that expands ${VAR} and $VAR references in
// the text it reads, before a parsing Source sees it. Lookups default
// to the process environment.
type Expander struct {
	r       io.Reader
	mapping func(string) string

	renderOnce sync.Once
	renderErr  error
	rendered   *strings.Reader
}

// ExpandOption represents options for configuring an Expander.
type ExpandOption func(*Expander)

// ExpandWith overrides the variable lookup used during expansion.
// Unknown variables expand to the empty string, same as os.Expand.
func ExpandWith(mapping func(string) string) ExpandOption {
	return func(e *Expander) {
		e.mapping = mapping
	}
}

// Expand wraps r so variable references are expanded as it is read.
//
//	src := settings.FromYaml(settings.Expand(f))
func Expand(r io.Reader, opts ...ExpandOption) *Expander {
	e := &Expander{
		r:       r,
		mapping: os.Getenv,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Read implements the io.Reader interface.
func (e *Expander) Read(b []byte) (int, error) {
	e.renderOnce.Do(func() {
		e.renderErr = e.render()
	})
	if e.renderErr != nil {
		return 0, e.renderErr
	}
	return e.rendered.Read(b)
}

func (e *Expander) render() (err error) {
	defer try.Close(&err, e.r)

	raw, err := io.ReadAll(e.r)
	if err != nil {
		return err
	}
	e.rendered = strings.NewReader(os.Expand(string(raw), e.mapping))
	return nil
}
