package gameloop

// Option configures a Driver during creation.
//
// Example:
//
//	// Production: system clock, final render runs after Stop.
//	driver, err := gameloop.New(fixedDelta, maxFrameTime)
//
//	// Tests: scripted time source for deterministic frames.
//	driver, err := gameloop.New(fixedDelta, maxFrameTime, gameloop.WithSource(fake))
type Option func(*driverOptions)

// driverOptions holds optional configuration for Driver creation.
type driverOptions struct {
	source          Source
	skipFinalRender bool
}

func defaultOptions() driverOptions {
	return driverOptions{source: systemSource{}}
}

// WithSource sets a custom time source for the Driver. Use this to inject a
// scripted source in tests or a platform-specific clock.
func WithSource(src Source) Option {
	return func(o *driverOptions) {
		if src != nil {
			o.source = src
		}
	}
}

// WithSkipFinalRender makes the Driver skip the render call of the iteration
// in which a stop request is observed, going straight to teardown.
//
// The default is to finish that render, which keeps the last displayed frame
// consistent with the last simulated state. Hosts that tear the output
// surface down on stop can use this option to avoid drawing into it.
func WithSkipFinalRender() Option {
	return func(o *driverOptions) {
		o.skipFinalRender = true
	}
}
