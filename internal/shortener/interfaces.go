package shortener

import (
	"context"

	"github.com/arshubham/srtnr/internal/provider"
)

// Shortener defines the shortening capability.
type Shortener interface {
	// Shorten returns the short form of longURL created by p.
	Shorten(ctx context.Context, longURL string, p provider.Provider) (string, error)
}

// Func adapts a plain function to Shortener
type Func func(ctx context.Context, longURL string, p provider.Provider) (string, error)

// Shorten calls f
func (f Func) Shorten(ctx context.Context, longURL string, p provider.Provider) (string, error) {
	return f(ctx, longURL, p)
}
