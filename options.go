package libemit

type (
	options struct {
		logger Logger
		name   string
	}

	// Option configures an emitter or a bus.
	Option func(*options)
)

// WithLogger sets the logger used for registration, removal and failure logs.
// Emitters log nothing by default.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName tags every log line of the emitter with name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts ...Option) options {
	o := options{logger: NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name != "" {
		o.logger = o.logger.WithField("emitter", o.name)
	}
	return o
}
