package shortener

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vfaronov/httpheader"
	"go.uber.org/zap"

	"github.com/arshubham/srtnr/internal/model"
	"github.com/arshubham/srtnr/internal/provider"
)

// Response handling limits
const (
	MaxResponseBytes  = 64 * 1024
	MaxErrorBodyChars = 120
)

// Service calls the provider HTTP APIs
type Service struct {
	client    *http.Client
	endpoints map[provider.ID]endpoint
	logger    *zap.Logger
}

// NewService creates a gateway. A nil client means a client without timeout.
func NewService(client *http.Client, logger *zap.Logger) *Service {
	if client == nil {
		client = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:    client,
		endpoints: defaultEndpoints(),
		logger:    logger,
	}
}

// NewHTTPClient returns a client with the given timeout; zero means none
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Shorten calls the API of p for longURL
func (s *Service) Shorten(ctx context.Context, longURL string, p provider.Provider) (string, error) {
	ep, ok := s.endpoints[p.ID]
	if !ok {
		return "", &GatewayError{Provider: p.Name, Err: fmt.Errorf("%w: %q", ErrUnsupportedProvider, p.ID)}
	}
	if p.Auth.Missing() {
		return "", &GatewayError{Provider: p.Name, Err: fmt.Errorf("%w: %s", ErrMissingCredential, p.Auth.Kind)}
	}

	req, err := ep.build(ctx, ep.URL, longURL, p.Auth)
	if err != nil {
		return "", &GatewayError{Provider: p.Name, Err: fmt.Errorf("build request: %w", err)}
	}

	s.logger.Debug("calling provider",
		zap.String("provider", string(p.ID)),
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host))

	resp, err := s.clientFor(ep).Do(req)
	if err != nil {
		return "", &GatewayError{Provider: p.Name, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return "", &GatewayError{Provider: p.Name, Err: fmt.Errorf("read response: %w", err)}
	}

	if !(ep.keepRedirect && isRedirect(resp.StatusCode)) {
		if err := checkStatus(resp, body); err != nil {
			return "", &GatewayError{Provider: p.Name, Err: err}
		}
	}

	short, err := ep.parse(resp, body)
	if err != nil {
		return "", &GatewayError{Provider: p.Name, Err: err}
	}
	return strings.TrimSpace(short), nil
}

// clientFor returns the shared client, or a copy of it that does not follow
// redirects when the endpoint reads the redirect itself
func (s *Service) clientFor(ep endpoint) *http.Client {
	if !ep.keepRedirect {
		return s.client
	}
	c := *s.client
	c.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &c
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

// checkStatus maps non-2xx responses to errors
func checkStatus(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		if retryAt := httpheader.RetryAfter(resp.Header); !retryAt.IsZero() {
			wait := time.Until(retryAt).Round(time.Second)
			if wait > 0 {
				return fmt.Errorf("%w (retry in %s)", ErrRateLimited, wait)
			}
		}
		return ErrRateLimited
	}

	detail := strings.TrimSpace(string(body))
	if len(detail) > MaxErrorBodyChars {
		detail = detail[:MaxErrorBodyChars] + "..."
	}
	if detail == "" {
		return fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, detail)
}

// Execute runs req through sh and folds the outcome into a ShortenResult
func Execute(ctx context.Context, sh Shortener, req model.ShortenRequest, logger *zap.Logger) model.ShortenResult {
	if logger == nil {
		logger = zap.NewNop()
	}
	fields := []zap.Field{
		zap.String("request_id", req.ID),
		zap.String("provider", string(req.Provider.ID)),
		zap.String("url", req.URL),
	}

	short, err := sh.Shorten(ctx, req.URL, req.Provider)
	elapsed := zap.Duration("elapsed", time.Since(req.CreatedAt))
	if err != nil {
		logger.Warn("shorten failed", append(fields, elapsed, zap.Error(err))...)
		return model.Failure(err.Error())
	}

	logger.Info("shorten succeeded", append(fields, elapsed, zap.String("short_url", short))...)
	return model.Success(short)
}
