// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/z5labs/layconf/internal/try"
)

// OS is an fs.FS backed by the host file system. Unlike os.DirFS it
// accepts any path os.Open accepts, including absolute and relative ones.
var OS fs.FS = osFS{}

type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// FileReader is an io.Reader that handles opening a file for reading automatically.
type FileReader struct {
	path string

	openOnce sync.Once
	openErr  error
	fs       fs.FS
	file     io.ReadCloser
}

// NewFileReader configures a FileReader.
func NewFileReader(fs fs.FS, path string) *FileReader {
	return &FileReader{
		path: path,
		fs:   fs,
	}
}

// Read implements the Read interface.
func (r *FileReader) Read(b []byte) (int, error) {
	r.openOnce.Do(func() {
		r.file, r.openErr = r.fs.Open(r.path)
	})
	if r.openErr != nil {
		return 0, r.openErr
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

// Format identifies the syntax of a config file.
type Format int

const (
	Ini Format = iota
	Yaml
	Json
	Toml
)

// String implements the fmt.Stringer interface.
func (f Format) String() string {
	switch f {
	case Ini:
		return "ini"
	case Yaml:
		return "yaml"
	case Json:
		return "json"
	case Toml:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf guesses the Format from the file extension. Anything
// unrecognized is treated as INI.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return Yaml
	case ".json":
		return Json
	case ".toml":
		return Toml
	default:
		return Ini
	}
}

type loadOptions struct {
	format     Format
	formatSet  bool
	render     bool
	renderOpts []RenderTextTemplateOption
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithFormat overrides the Format guessed from the file extension.
func WithFormat(f Format) LoadOption {
	return func(lo *loadOptions) {
		lo.format = f
		lo.formatSet = true
	}
}

// WithTextTemplate renders the file as a text/template before parsing it.
func WithTextTemplate(opts ...RenderTextTemplateOption) LoadOption {
	return func(lo *loadOptions) {
		lo.render = true
		lo.renderOpts = append(lo.renderOpts, opts...)
	}
}

// UnknownFormatError occurs when Load is asked for a Format it can not parse.
type UnknownFormatError struct {
	Format Format
}

// Error implements the error interface.
func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown config file format: %s", e.Format)
}

// Load reads and parses the config file at path. The file is read
// exactly once and the returned Map is never mutated afterwards.
func Load(fsys fs.FS, path string, opts ...LoadOption) (Map, error) {
	lo := &loadOptions{}
	for _, opt := range opts {
		opt(lo)
	}
	if !lo.formatSet {
		lo.format = FormatOf(path)
	}

	var r io.Reader = NewFileReader(fsys, path)
	if lo.render {
		r = RenderTextTemplate(r, lo.renderOpts...)
	}

	b, err := try.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch lo.format {
	case Ini:
		return parseIni(b)
	case Yaml:
		return parseYaml(b)
	case Json:
		return parseJson(b)
	case Toml:
		return parseToml(b)
	default:
		return nil, UnknownFormatError{Format: lo.format}
	}
}
