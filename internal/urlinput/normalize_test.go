package urlinput

import (
	"errors"
	"testing"
)

func TestNormalize_AbsoluteURLUnchanged(t *testing.T) {
	inputs := []string{
		"https://example.com/path",
		"http://example.com",
		"https://example.com/a?b=c#d",
		"ftp://files.example.org/pub",
		"http://localhost:8080/x",
		"mailto:someone@example.com",
		"https://example.com/search?q=a b",
		"file:///tmp/x",
		"http://",
	}

	for _, input := range inputs {
		got, err := Normalize(input)
		if err != nil {
			t.Errorf("Normalize(%q) returned error: %v", input, err)
			continue
		}
		if got != input {
			t.Errorf("Normalize(%q) = %q, expected input unchanged", input, got)
		}
	}
}

func TestNormalize_PrependsHTTP(t *testing.T) {
	inputs := []string{
		"example.com",
		"example.com/path?q=1",
		"www.rust-lang.org",
		"not a url",
		"//example.com",
	}

	for _, input := range inputs {
		got, err := Normalize(input)
		if err != nil {
			t.Errorf("Normalize(%q) returned error: %v", input, err)
			continue
		}
		if got != "http://"+input {
			t.Errorf("Normalize(%q) = %q, expected %q", input, got, "http://"+input)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	_, err := Normalize("")
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestNormalizer_HTTPS(t *testing.T) {
	n := NewNormalizer(true)

	got, err := n.Normalize("example.com")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "https://example.com" {
		t.Errorf("Expected https prefix, got %q", got)
	}

	got, _ = n.Normalize("http://example.com")
	if got != "http://example.com" {
		t.Errorf("Absolute URL must not be rewritten, got %q", got)
	}

	if zero := (Normalizer{}); zero.Scheme != "" {
		t.Fatal("zero Normalizer should have empty scheme")
	} else if got, _ := zero.Normalize("a.b"); got != "http://a.b" {
		t.Errorf("Zero Normalizer should fall back to http://, got %q", got)
	}
}

func TestIsAbsoluteURL(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"https://example.com", true},
		{"http://a.b/c", true},
		{"example.com", false},
		{"/relative/path", false},
		{"", false},
		{"http://", true},
		{"file:///tmp/x", true},
		{"https://example.com/search?q=a b", true},
		{"https://exa mple.com", false},
		{"http://%zz", false},
	}

	for _, test := range tests {
		if got := IsAbsoluteURL(test.input); got != test.expected {
			t.Errorf("IsAbsoluteURL(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestClipboardSeed(t *testing.T) {
	tests := []struct {
		clipboard string
		expected  string
	}{
		{"https://example.com/page", "https://example.com/page"},
		{"  https://example.com \n", "https://example.com"},
		{"just some copied words", ""},
		{"example.com", ""},
		{"", ""},
		{"https://example.com/search?q=a b", ""},
		{"file:///tmp/x", ""},
		{"http://", ""},
		{"mailto:someone@example.com", "mailto:someone@example.com"},
	}

	for _, test := range tests {
		if got := ClipboardSeed(test.clipboard); got != test.expected {
			t.Errorf("ClipboardSeed(%q) = %q, expected %q", test.clipboard, got, test.expected)
		}
	}
}
