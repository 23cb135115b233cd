package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/arshubham/srtnr/internal/provider"
)

// ShortenRequest is one click of the shorten button
type ShortenRequest struct {
	ID        string
	URL       string // normalized URL sent to the provider
	Provider  provider.Provider
	CreatedAt time.Time
}

// NewShortenRequest creates a request with a fresh ID
func NewShortenRequest(url string, p provider.Provider) ShortenRequest {
	return ShortenRequest{
		ID:        uuid.NewString(),
		URL:       url,
		Provider:  p,
		CreatedAt: time.Now(),
	}
}
