package app

import (
	"github.com/jbeshir/content-ratings/internal/command"
)

// DefaultTopRatedConfig returns the default bounds for top-rated listings.
func DefaultTopRatedConfig() command.TopRatedConfig {
	return command.TopRatedConfig{
		DefaultLimit: command.DefaultTopRatedLimit,
		MaxLimit:     100,
	}
}
