package shortener

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrMissingCredential   = errors.New("missing credential")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrUnexpectedStatus    = errors.New("unexpected status")
	ErrEmptyResponse       = errors.New("empty response")
	ErrMalformedResponse   = errors.New("malformed response")
)

// GatewayError is a failure reported for one provider call
type GatewayError struct {
	Provider string
	Err      error
}

func (e *GatewayError) Error() string {
	if e.Provider == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
