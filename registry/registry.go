// Package registry keeps a table of named ratios, such as "ntsc" for
// 30000/1001, that can be loaded from YAML and looked up concurrently.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/uptrace/ratio"
)

// ErrInvalidName is returned for names that could be confused with a ratio
// literal.
var ErrInvalidName = errors.New("registry: invalid name")

var nameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// Option is a function that configures a Registry.
type Option func(*Registry)

// WithLogger sets the *zerolog.Logger instance. Without it, Load logs to
// the logger attached to its context.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// Config is the YAML document accepted by Load.
//
//	ratios:
//	  hidpi: 2/1
//	  ntsc: {num: 30000, div: 1001}
type Config struct {
	Ratios map[string]ratio.Ratio `yaml:"ratios"`
}

// Registry is safe for concurrent use.
type Registry struct {
	ratios *xsync.MapOf[string, ratio.Ratio]
	logger *zerolog.Logger
}

func New(opts ...Option) *Registry {
	r := &Registry{
		ratios: xsync.NewMapOf[string, ratio.Ratio](),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Set stores v under name, replacing any previous value.
func (r *Registry) Set(name string, v ratio.Ratio) error {
	if !nameRE.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	r.ratios.Store(name, v)
	return nil
}

func (r *Registry) Get(name string) (ratio.Ratio, bool) {
	return r.ratios.Load(name)
}

func (r *Registry) Delete(name string) {
	r.ratios.Delete(name)
}

func (r *Registry) Len() int {
	return r.ratios.Size()
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.ratios.Size())
	r.ratios.Range(func(name string, _ ratio.Ratio) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// Resolve returns the ratio registered under s or, if there is none, parses
// s as a ratio literal.
func (r *Registry) Resolve(s string) (ratio.Ratio, error) {
	if v, ok := r.ratios.Load(s); ok {
		return v, nil
	}
	return ratio.Parse(s)
}

// Load decodes a Config from rd and registers its ratios. Nothing is
// registered if the document or any name is invalid.
func (r *Registry) Load(ctx context.Context, rd io.Reader) (int, error) {
	var cfg Config
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("registry: decode config: %w", err)
	}

	for name := range cfg.Ratios {
		if !nameRE.MatchString(name) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}

	l := r.logger
	if l == nil {
		l = log.Ctx(ctx)
	}
	for name, v := range cfg.Ratios {
		r.ratios.Store(name, v)
		l.Debug().Str("name", name).Stringer("ratio", v).Msg("registered ratio")
	}
	return len(cfg.Ratios), nil
}

// LoadFile is like Load but reads the file at path.
func (r *Registry) LoadFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := r.Load(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
