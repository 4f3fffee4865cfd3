package weather

import (
	"net/http"

	"github.com/tripforge/tripforge/tools"
)

type Option func(*Config)

// WithToolOptions applies shared tool options (title, description, hooks).
func WithToolOptions(opts ...tools.Option) Option {
	return func(c *Config) {
		for _, opt := range opts {
			opt(&c.Config)
		}
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.baseURL = baseURL
	}
}

func WithHttpClient(clt *http.Client) Option {
	return func(c *Config) {
		c.httpClient = clt
	}
}
