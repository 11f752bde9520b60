package nodefactory

import "github.com/sirupsen/logrus"

type options struct {
	log logrus.FieldLogger
}

// Option configures how a facade is built.
type Option func(*options)

// WithLogger sets the logger used while probing and building, and by the
// resulting facade. The standard logrus logger is used by default.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

func newOptions(opts []Option) options {
	o := options{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
