package model

// ShortenResult is either a short URL or a human-readable failure
type ShortenResult struct {
	shortURL string
	failure  string
	ok       bool
}

// Success builds a successful result
func Success(shortURL string) ShortenResult {
	return ShortenResult{shortURL: shortURL, ok: true}
}

// Failure builds a failed result
func Failure(description string) ShortenResult {
	return ShortenResult{failure: description}
}

// OK reports whether the result holds a short URL
func (r ShortenResult) OK() bool {
	return r.ok
}

// ShortURL returns the short URL, or "" for a failure
func (r ShortenResult) ShortURL() string {
	return r.shortURL
}

// Failure returns the failure description, or "" for a success
func (r ShortenResult) Failure() string {
	return r.failure
}

// Text returns what the result label shows
func (r ShortenResult) Text() string {
	if r.ok {
		return r.shortURL
	}
	return r.failure
}
