package hull

import (
	"context"

	"github.com/tholvien/hemesh/core"
)

// Option configures Build.
type Option func(*Options)

// Options holds the configurable parameters of hull construction.
type Options struct {
	// Ctx is checked between points; cancellation aborts the build with the
	// partial mesh discarded. Default context.Background().
	Ctx context.Context

	// Epsilon is the visibility threshold: a face sees a point when the
	// point lies more than Epsilon in front of its plane. Points within
	// Epsilon of the hull surface are treated as interior. Default
	// core.VisibilityEpsilon.
	Epsilon float64
}

// DefaultOptions returns background context and the core visibility epsilon.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Epsilon: core.VisibilityEpsilon,
	}
}

// WithContext returns an Option that sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithEpsilon returns an Option that sets the visibility threshold.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}
