package builder

// Option configures the parametric constructors. Use with
// UVSphere(radius, opts...).
type Option func(*Options)

// Options holds the configurable parameters of the parametric constructors.
type Options struct {
	// Segments is the number of longitudinal steps around each latitude
	// ring. Minimum 3. Default 16.
	Segments int

	// Rings is the number of latitude bands from pole to pole. Minimum 2
	// (a bipyramid). Default 12.
	Rings int
}

// DefaultOptions returns the default parametric shell resolution:
// 16 segments, 12 rings.
func DefaultOptions() Options {
	return Options{
		Segments: 16,
		Rings:    12,
	}
}

// WithSegments returns an Option that sets the longitudinal step count.
func WithSegments(n int) Option {
	return func(o *Options) {
		o.Segments = n
	}
}

// WithRings returns an Option that sets the latitude band count.
func WithRings(n int) Option {
	return func(o *Options) {
		o.Rings = n
	}
}
