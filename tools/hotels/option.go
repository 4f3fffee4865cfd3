package hotels

import (
	"github.com/tripforge/tripforge/dataset"
	"github.com/tripforge/tripforge/tools"
)

type Option func(*Config)

func WithLoader(l *dataset.Loader) Option {
	return func(c *Config) {
		c.loader = l
	}
}

// WithToolOptions applies shared tool options (title, description, hooks).
func WithToolOptions(opts ...tools.Option) Option {
	return func(c *Config) {
		for _, opt := range opts {
			opt(&c.Config)
		}
	}
}
