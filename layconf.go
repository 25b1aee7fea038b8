// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package layconf

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"time"

	"github.com/z5labs/layconf/internal/logattr"
	"github.com/z5labs/layconf/source"

	"golang.org/x/sync/errgroup"
)

// Origin identifies the layer a value was resolved from.
type Origin int

const (
	OriginNone Origin = iota
	OriginEnv
	OriginCustom
	OriginDefault
)

// String implements the [fmt.Stringer] interface.
func (o Origin) String() string {
	switch o {
	case OriginNone:
		return "none"
	case OriginEnv:
		return "env"
	case OriginCustom:
		return "custom"
	case OriginDefault:
		return "default"
	default:
		return fmt.Sprintf("Origin(%d)", int(o))
	}
}

type layer struct {
	origin Origin
	src    source.Source
}

// Resolver resolves options from the environment, an optional custom
// file and a default file, in that order. A Resolver is never modified
// after [New] returns so it is safe for concurrent use.
type Resolver struct {
	prefix string
	env    source.Env
	files  []source.Map
	chain  []layer
	log    *slog.Logger
}

type options struct {
	customPath string
	envPrefix  string
	logger     *slog.Logger
	fs         fs.FS
	lookup     source.LookupFunc
	render     bool
	renderOpts []source.RenderTextTemplateOption
}

// Option configures a [Resolver].
type Option interface {
	applyOption(*options)
}

type optionFunc func(*options)

func (f optionFunc) applyOption(o *options) {
	f(o)
}

// WithCustomFile layers the file at path between the environment and
// the default file. An empty path, or a path naming a file which does
// not exist, disables the custom layer.
func WithCustomFile(path string) Option {
	return optionFunc(func(o *options) {
		o.customPath = path
	})
}

// WithEnvPrefix sets the prefix of the environment variable names.
func WithEnvPrefix(prefix string) Option {
	return optionFunc(func(o *options) {
		o.envPrefix = prefix
	})
}

// WithLogger sets the logger. By default, slog.Default is used.
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = logger
	})
}

// WithFS reads the config files from fsys instead of the host file system.
func WithFS(fsys fs.FS) Option {
	return optionFunc(func(o *options) {
		o.fs = fsys
	})
}

// WithEnvLookup replaces os.LookupEnv as the environment layer.
func WithEnvLookup(f func(string) (string, bool)) Option {
	return optionFunc(func(o *options) {
		o.lookup = f
	})
}

// WithTemplate renders both config files as text/templates before they
// are parsed. The "env" template func reads from the same environment
// as the environment layer.
func WithTemplate(opts ...source.RenderTextTemplateOption) Option {
	return optionFunc(func(o *options) {
		o.render = true
		o.renderOpts = append(o.renderOpts, opts...)
	})
}

// New loads the default file, and the custom file if one is configured,
// and returns a Resolver over them. It panics if defaultPath is blank.
// A custom file which does not exist is skipped with a warning. Any
// other failure to read or parse a file is returned as a [LoadError].
// Calling New again with the same arguments yields a Resolver which
// resolves the same values.
func New(defaultPath string, opts ...Option) (*Resolver, error) {
	mustNotBlank("default path", defaultPath)

	o := &options{}
	for _, opt := range opts {
		opt.applyOption(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.fs == nil {
		o.fs = source.OS
	}
	if o.lookup == nil {
		o.lookup = os.LookupEnv
	}

	var loadOpts []source.LoadOption
	if o.render {
		renderOpts := append([]source.RenderTextTemplateOption{source.TemplateEnv(o.lookup)}, o.renderOpts...)
		loadOpts = append(loadOpts, source.WithTextTemplate(renderOpts...))
	}

	var def, custom source.Map
	var g errgroup.Group
	g.Go(func() (err error) {
		def, err = load(o.fs, OriginDefault, defaultPath, loadOpts)
		return err
	})
	if !isBlank(o.customPath) {
		g.Go(func() (err error) {
			custom, err = load(o.fs, OriginCustom, o.customPath, loadOpts)
			if errors.Is(err, fs.ErrNotExist) {
				o.logger.Warn(
					"custom config file does not exist",
					logattr.Layer(OriginCustom.String()),
					logattr.Path(o.customPath),
				)
				return nil
			}
			return err
		})
	}
	err := g.Wait()
	if err != nil {
		o.logger.Error("failed to load config", logattr.Error(err))
		return nil, err
	}

	r := &Resolver{
		prefix: o.envPrefix,
		env:    source.FromEnvLookup(o.envPrefix, o.lookup),
		log:    o.logger,
	}
	r.chain = append(r.chain, layer{origin: OriginEnv, src: r.env})
	if custom != nil {
		r.files = append(r.files, custom)
		r.chain = append(r.chain, layer{origin: OriginCustom, src: custom})
	}
	r.files = append(r.files, def)
	r.chain = append(r.chain, layer{origin: OriginDefault, src: def})

	o.logger.Info(
		"loaded layered config",
		logattr.EnvPrefix(r.prefix),
		logattr.DefaultPath(defaultPath),
		logattr.CustomPath(o.customPath),
		logattr.Sections(r.Sections()),
	)
	return r, nil
}

func load(fsys fs.FS, layer Origin, path string, opts []source.LoadOption) (source.Map, error) {
	m, err := source.Load(fsys, path, opts...)
	if err != nil {
		return nil, LoadError{Layer: layer, Path: path, Cause: err}
	}
	return m, nil
}

// EnvKey returns the environment variable name an option is read from.
func (r *Resolver) EnvKey(section, option string) string {
	return r.env.Key(section, option)
}

// Lookup walks the layers in precedence order and returns the first value
// found together with the layer it came from. An environment variable set
// to the empty string still counts as found. It panics if section or
// option is blank.
func (r *Resolver) Lookup(section, option string) (string, Origin, bool) {
	mustNotBlank("section", section)
	mustNotBlank("option", option)

	for _, l := range r.chain {
		v, ok := l.src.Lookup(section, option)
		if !ok {
			continue
		}
		r.log.Debug(
			"resolved config value",
			logattr.Section(section),
			logattr.Option(option),
			logattr.Layer(l.origin.String()),
		)
		return v, l.origin, true
	}
	return "", OriginNone, false
}

// Get returns the resolved string value. If no layer holds the option,
// the first supplied fallback is returned as-is, otherwise a
// [NotFoundError].
func (r *Resolver) Get(section, option string, fallback ...Fallback[string]) (string, error) {
	return GetAs(r, section, option, parseString, fallback...)
}

// GetInt returns the resolved value as a base-10 integer.
func (r *Resolver) GetInt(section, option string, fallback ...Fallback[int]) (int, error) {
	return GetAs(r, section, option, parseInt, fallback...)
}

// GetFloat returns the resolved value as a float64.
func (r *Resolver) GetFloat(section, option string, fallback ...Fallback[float64]) (float64, error) {
	return GetAs(r, section, option, parseFloat, fallback...)
}

// GetBool returns the resolved value as a bool. Only 1, yes, true, on
// and 0, no, false, off are accepted, in any case.
func (r *Resolver) GetBool(section, option string, fallback ...Fallback[bool]) (bool, error) {
	return GetAs(r, section, option, parseBool, fallback...)
}

// GetDuration returns the resolved value parsed by time.ParseDuration.
func (r *Resolver) GetDuration(section, option string, fallback ...Fallback[time.Duration]) (time.Duration, error) {
	return GetAs(r, section, option, parseDuration, fallback...)
}

// GetAs resolves an option and converts it with parse. A fallback is
// returned without being passed to parse. A parse failure is reported
// as a [MalformedValueError] even when a fallback was supplied.
func GetAs[T any](r *Resolver, section, option string, parse func(string) (T, error), fallback ...Fallback[T]) (T, error) {
	var zero T
	s, _, found := r.Lookup(section, option)
	if !found {
		if fb, ok := firstFallback(fallback); ok {
			return fb, nil
		}
		return zero, NotFoundError{Section: section, Option: option}
	}

	v, err := parse(s)
	if err != nil {
		return zero, MalformedValueError{
			Section: section,
			Option:  option,
			Value:   s,
			Type:    reflect.TypeOf((*T)(nil)).Elem().String(),
			Cause:   err,
		}
	}
	return v, nil
}

// Section returns a view of the Resolver bound to the named section.
// It panics if name is blank.
func (r *Resolver) Section(name string) Section {
	mustNotBlank("section", name)
	return Section{r: r, name: name}
}

// Sections returns the sorted names of all sections declared in the
// config files. Sections only reachable through the environment are
// not included.
func (r *Resolver) Sections() []string {
	var names []string
	for _, m := range r.files {
		names = append(names, m.Sections()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

func isBlank(s string) bool {
	return s == ""
}

func mustNotBlank(name, value string) {
	if isBlank(value) {
		panic(BlankArgumentError{Name: name})
	}
}
