package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arshubham/srtnr/internal/config"
	"github.com/arshubham/srtnr/internal/provider"
	"github.com/arshubham/srtnr/internal/shortener"
)

type call struct {
	url string
	p   provider.Provider
}

// stubGateway swaps the gateway and the clipboard for the duration of a test
func stubGateway(t *testing.T, short string, err error) *[]call {
	t.Helper()
	calls := &[]call{}

	origShortener, origRead, origWrite := newShortener, readClipboard, writeClipboard
	t.Cleanup(func() {
		newShortener, readClipboard, writeClipboard = origShortener, origRead, origWrite
	})

	newShortener = func(*config.Env, *zap.Logger) shortener.Shortener {
		return shortener.Func(func(_ context.Context, longURL string, p provider.Provider) (string, error) {
			*calls = append(*calls, call{url: longURL, p: p})
			return short, err
		})
	}
	readClipboard = func() (string, error) { return "", errors.New("no clipboard in tests") }
	writeClipboard = func(string) error { return errors.New("no clipboard in tests") }
	return calls
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("SRTNR_LOG_LEVEL", "error")

	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestShorten_DefaultProvider(t *testing.T) {
	calls := stubGateway(t, "https://is.gd/abc", nil)

	out, _, err := runCLI(t, "shorten", "example.com")
	require.NoError(t, err)

	assert.Equal(t, "https://is.gd/abc\n", out)
	require.Len(t, *calls, 1)
	assert.Equal(t, "http://example.com", (*calls)[0].url)
	assert.Equal(t, provider.IsGd, (*calls)[0].p.ID)
}

func TestShorten_ProviderByIndexAndHTTPS(t *testing.T) {
	calls := stubGateway(t, "https://tny.im/x", nil)

	_, _, err := runCLI(t, "shorten", "--provider", "4", "--https", "example.com/page")
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	assert.Equal(t, "https://example.com/page", (*calls)[0].url)
	assert.Equal(t, provider.TnyIm, (*calls)[0].p.ID)
}

func TestShorten_CredentialFromEnvironment(t *testing.T) {
	calls := stubGateway(t, "http://bit.ly/x", nil)
	t.Setenv("SRTNR_BITLY_TOKEN", "secret")

	_, _, err := runCLI(t, "shorten", "-p", "bitly", "https://example.com")
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	assert.Equal(t, provider.Token("secret"), (*calls)[0].p.Auth)
}

func TestShorten_UnknownProvider(t *testing.T) {
	calls := stubGateway(t, "x", nil)

	_, _, err := runCLI(t, "shorten", "-p", "nope", "example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, provider.ErrNoProviderSelected)
	assert.Empty(t, *calls)
}

func TestShorten_GatewayFailure(t *testing.T) {
	stubGateway(t, "", errors.New("rate limit exceeded"))

	out, _, err := runCLI(t, "shorten", "example.com")
	require.Error(t, err)
	assert.Equal(t, "rate limit exceeded", err.Error())
	assert.Empty(t, out)
}

func TestShorten_Copy(t *testing.T) {
	stubGateway(t, "https://is.gd/abc", nil)
	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	_, stderr, err := runCLI(t, "shorten", "--copy", "example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://is.gd/abc", copied)
	assert.Contains(t, stderr, "copied")
}

func TestShorten_URLFromClipboard(t *testing.T) {
	calls := stubGateway(t, "https://is.gd/abc", nil)
	readClipboard = func() (string, error) { return "  https://example.com/clip \n", nil }

	_, _, err := runCLI(t, "shorten")
	require.NoError(t, err)
	require.Len(t, *calls, 1)
	assert.Equal(t, "https://example.com/clip", (*calls)[0].url)
}

func TestShorten_NoURLAnywhere(t *testing.T) {
	calls := stubGateway(t, "x", nil)
	readClipboard = func() (string, error) { return "not a url", nil }

	_, _, err := runCLI(t, "shorten")
	assert.ErrorIs(t, err, errNoURL)
	assert.Empty(t, *calls)
}

func TestProviders(t *testing.T) {
	t.Setenv("SRTNR_GOOGL_API_KEY", "key")
	t.Setenv("SRTNR_BITLY_TOKEN", "")

	out, _, err := runCLI(t, "providers")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "INDEX")
	assert.Regexp(t, `^0\s+googl\s+goo\.gl\s+api-key\s+yes$`, lines[1])
	assert.Regexp(t, `^1\s+bitly\s+bit\.ly\s+token\s+no$`, lines[2])
	assert.Regexp(t, `^5\s+hmmrs\s+hmm\.rs\s+none\s+yes$`, lines[6])
}
