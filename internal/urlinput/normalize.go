// Package urlinput turns raw user input into the URL handed to a shortening
// provider.
package urlinput

import (
	"errors"
	"net/url"
	"strings"
)

// Scheme prefixes used when the input has none
const (
	SchemeHTTP  = "http://"
	SchemeHTTPS = "https://"

	DefaultScheme = SchemeHTTP
)

// ErrEmptyInput is returned for input with no characters to shorten
var ErrEmptyInput = errors.New("empty URL")

// Normalizer prepends Scheme to input that is not an absolute URL
type Normalizer struct {
	Scheme string
}

// NewNormalizer returns a normalizer using https:// when useHTTPS is set
func NewNormalizer(useHTTPS bool) Normalizer {
	if useHTTPS {
		return Normalizer{Scheme: SchemeHTTPS}
	}
	return Normalizer{Scheme: SchemeHTTP}
}

// Normalize returns raw unchanged when it is already an absolute URL and
// Scheme+raw otherwise. The prefixed string is not validated again, so text
// that is not a URL at all still reaches the provider with a prefix.
// Empty input is the one exception: it yields ErrEmptyInput instead of a bare
// scheme, so the caller can ask for a URL rather than call a provider.
func (n Normalizer) Normalize(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyInput
	}
	if IsAbsoluteURL(raw) {
		return raw, nil
	}

	scheme := n.Scheme
	if scheme == "" {
		scheme = DefaultScheme
	}
	return scheme + raw, nil
}

// Normalize uses the default http:// prefix. Like Normalizer.Normalize it
// rejects empty input with ErrEmptyInput.
func Normalize(raw string) (string, error) {
	return Normalizer{Scheme: DefaultScheme}.Normalize(raw)
}

// IsAbsoluteURL reports whether s parses as a URL with a scheme
func IsAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != ""
}

// ClipboardSeed returns the clipboard text when it is worth pre-filling the
// URL entry with, or "" otherwise. Besides a scheme the text needs a host or
// opaque part and no inner whitespace, so copied prose is not picked up.
func ClipboardSeed(clipboardText string) string {
	text := strings.TrimSpace(clipboardText)
	if text == "" || strings.ContainsAny(text, " \t\r\n") {
		return ""
	}

	u, err := url.Parse(text)
	if err != nil || u.Scheme == "" {
		return ""
	}
	if u.Host == "" && u.Opaque == "" {
		return ""
	}
	return text
}
