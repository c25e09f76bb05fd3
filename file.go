// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sync"
)

// File represents a Source backed by a settings file whose format is
// chosen by extension: .yaml/.yml, .json or .toml.
type File struct {
	fsys fs.FS
	path string
}

// FromFile returns a Source which reads its settings from the given
// file. The file is not opened until Apply runs, so a missing or
// malformed file surfaces at resolution time.
func FromFile(fsys fs.FS, path string) File {
	return File{fsys: fsys, path: path}
}

// UnknownFormatError occurs when a settings file has an extension no
// parser is known for.
type UnknownFormatError struct {
	Path string
}

// Error implements the error interface.
func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("no settings parser for file %q", e.Path)
}

// Apply implements the Source interface.
func (src File) Apply(store Store) error {
	r := NewFileReader(src.fsys, src.path)
	switch filepath.Ext(src.path) {
	case ".yaml", ".yml":
		return FromYaml(r).Apply(store)
	case ".json":
		return FromJson(r).Apply(store)
	case ".toml":
		return FromToml(r).Apply(store)
	default:
		return UnknownFormatError{Path: src.path}
	}
}

// FileReader is an io.Reader that handles opening a file for reading
// automatically. Parsing sources close it when they finish.
type FileReader struct {
	path string

	openOnce sync.Once
	openErr  error
	fsys     fs.FS
	file     io.ReadCloser
}

// NewFileReader configures a FileReader.
func NewFileReader(fsys fs.FS, path string) *FileReader {
	return &FileReader{
		path: path,
		fsys: fsys,
	}
}

// Read implements the io.Reader interface.
func (r *FileReader) Read(b []byte) (int, error) {
	r.openOnce.Do(func() {
		f, err := r.fsys.Open(r.path)
		if err != nil {
			r.openErr = err
			return
		}
		r.file = f
	})
	if r.openErr != nil {
		return 0, r.openErr
	}
	if r.file == nil {
		return 0, fs.ErrClosed
	}
	return r.file.Read(b)
}

// Close implements the io.Closer interface.
func (r *FileReader) Close() error {
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil
	return err
}
