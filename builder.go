package xaction

import (
	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlog"
)

// RegistryBuilder constructs Registry instances (Builder pattern).
type RegistryBuilder struct {
	cfg       map[string]any
	observers []Observer
	logger    *xlog.Logger
	clock     xclock.Clock
}

// NewRegistryBuilder returns a new builder with Defaults.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{cfg: Defaults().toMap()}
}

// WithConfig replaces every setting with cfg.
func (rb *RegistryBuilder) WithConfig(cfg Config) *RegistryBuilder {
	rb.cfg = cfg.toMap()
	return rb
}

// WithConfigMap overlays the keys present in m (see ConfigFromMap).
func (rb *RegistryBuilder) WithConfigMap(m map[string]any) *RegistryBuilder {
	for k, v := range m {
		rb.cfg[k] = v
	}
	return rb
}

func (rb *RegistryBuilder) WithStrict(strict bool) *RegistryBuilder {
	rb.cfg["strict"] = strict
	return rb
}

func (rb *RegistryBuilder) WithMaxTags(n int) *RegistryBuilder {
	rb.cfg["max_tags"] = n
	return rb
}

func (rb *RegistryBuilder) WithObserver(obs ...Observer) *RegistryBuilder {
	for _, o := range obs {
		if o != nil {
			rb.observers = append(rb.observers, o)
		}
	}
	return rb
}

func (rb *RegistryBuilder) WithLogger(l *xlog.Logger) *RegistryBuilder {
	rb.logger = l
	return rb
}

func (rb *RegistryBuilder) WithClock(c xclock.Clock) *RegistryBuilder {
	rb.clock = c
	return rb
}

// Build validates the configuration and returns a ready Registry.
func (rb *RegistryBuilder) Build() (*Registry, error) {
	cfg := ConfigFromMap(rb.cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clk := rb.clock
	if clk == nil {
		clk = xclock.Default()
	}
	lg := rb.logger
	if lg == nil {
		lg = xlog.Default()
	}

	r := &Registry{
		cfg:     cfg,
		clock:   clk,
		logger:  lg,
		entries: make(map[string]Entry),
	}

	// Attach logging observer first unless one was supplied.
	hasLoggingObserver := false
	for _, o := range rb.observers {
		if _, ok := o.(LoggingObserver); ok {
			hasLoggingObserver = true
			break
		}
	}
	if !hasLoggingObserver {
		r.AddObserver(LoggingObserver{Logger: lg})
	}
	for _, o := range rb.observers {
		r.AddObserver(o)
	}

	return r, nil
}

// NewRegistry builds a Registry via the builder.
func NewRegistry(init func(b *RegistryBuilder)) (*Registry, error) {
	b := NewRegistryBuilder()
	if init != nil {
		init(b)
	}
	return b.Build()
}
