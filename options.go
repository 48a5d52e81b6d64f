package autoconf

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/componentry/go-autoconf/metadata"
)

// Option configures a resolution session.
type Option func(*config) error

// config holds all session configuration.
type config struct {
	candidates   CandidateSource
	source       metadata.Source
	introspector Introspector
	filters      []Filter
	listeners    []ImportListener
	props        PropertySource

	// logger is the structured logger for debug output. If nil,
	// logging is disabled (silent mode). log/slog keeps the library
	// backend-agnostic: any logging stack plugs in via a handler.
	logger *slog.Logger
}

// WithCandidates sets a fixed candidate pool.
func WithCandidates(names ...string) Option {
	return func(c *config) error {
		c.candidates = StaticCandidates(names)
		return nil
	}
}

// WithCandidateSource sets the candidate discovery mechanism.
func WithCandidateSource(source CandidateSource) Option {
	return func(c *config) error {
		c.candidates = source
		return nil
	}
}

// WithMetadataSource sets the precomputed metadata sources, tried in
// order with first-match semantics.
func WithMetadataSource(sources ...metadata.Source) Option {
	return func(c *config) error {
		switch len(sources) {
		case 0:
		case 1:
			c.source = sources[0]
		default:
			c.source = metadata.NewChain(sources...)
		}
		return nil
	}
}

// WithIntrospector sets the fallback used when a candidate has no
// precomputed metadata.
func WithIntrospector(introspector Introspector) Option {
	return func(c *config) error {
		c.introspector = introspector
		return nil
	}
}

// WithFilters appends admission filters, run in the given order.
func WithFilters(filters ...Filter) Option {
	return func(c *config) error {
		c.filters = append(c.filters, filters...)
		return nil
	}
}

// WithListeners appends import event listeners, notified in the given
// order.
func WithListeners(listeners ...ImportListener) Option {
	return func(c *config) error {
		c.listeners = append(c.listeners, listeners...)
		return nil
	}
}

// WithPropertySource sets the externally configured property source for
// exclusions and the enabled switch.
func WithPropertySource(props PropertySource) Option {
	return func(c *config) error {
		c.props = props
		return nil
	}
}

// WithViper binds the standard resolution properties from a viper
// instance. Shorthand for WithPropertySource(NewViperPropertySource(v)).
func WithViper(v *viper.Viper) Option {
	return func(c *config) error {
		c.props = NewViperPropertySource(v)
		return nil
	}
}

// WithExcludes adds a fixed exclusion list on top of any property
// source, useful for sessions without external configuration.
func WithExcludes(names ...string) Option {
	return func(c *config) error {
		c.props = &staticProperties{excludes: names, wrapped: c.props}
		return nil
	}
}

// WithLogger sets a structured logger for resolution diagnostics.
// If not set, logging is disabled (silent mode).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// staticProperties layers a fixed exclusion list over another property
// source.
type staticProperties struct {
	excludes []string
	wrapped  PropertySource
}

func (p *staticProperties) ExcludedNames() []string {
	if p.wrapped == nil {
		return p.excludes
	}
	return append(append([]string{}, p.excludes...), p.wrapped.ExcludedNames()...)
}

func (p *staticProperties) Enabled() bool {
	if p.wrapped == nil {
		return true
	}
	return p.wrapped.Enabled()
}

// validate checks the configuration for logical consistency.
func (c *config) validate() error {
	if c.candidates == nil {
		return errors.New("a candidate source is required: use WithCandidates, WithCandidateSource, or a manifest facade")
	}
	return nil
}

// log returns the configured logger, or a no-op logger if none was
// set. Libraries are silent by default; callers opt in via WithLogger.
func (c *config) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(discardHandler{})
}

// discardHandler is a slog.Handler that discards all log records, used
// when no logger is configured to avoid nil checks throughout the code.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// newConfig applies the given options and validates the result.
func newConfig(opts ...Option) (*config, error) {
	c := &config{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}
