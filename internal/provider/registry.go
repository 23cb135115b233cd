package provider

import (
	"errors"
	"strconv"
	"strings"
)

// ID is the stable identifier of a provider
type ID string

const (
	GooGl ID = "googl"
	BitLy ID = "bitly"
	IsGd  ID = "isgd"
	BamBz ID = "bambz"
	TnyIm ID = "tnyim"
	HmmRs ID = "hmmrs"
)

// ErrNoProviderSelected is returned when a selector index does not name a provider
var ErrNoProviderSelected = errors.New("no provider selected")

// Provider is one shortening service
type Provider struct {
	ID   ID
	Name string
	Auth Auth
}

// Credentials carries the secrets of the providers that need one
type Credentials struct {
	GooGlAPIKey string
	BitLyToken  string
}

// Registry is the immutable ordered list of providers
type Registry struct {
	providers []Provider
}

// NewRegistry builds the provider list. The order must match the UI selector.
func NewRegistry(creds Credentials) *Registry {
	return &Registry{
		providers: []Provider{
			{ID: GooGl, Name: "goo.gl", Auth: APIKey(creds.GooGlAPIKey)},
			{ID: BitLy, Name: "bit.ly", Auth: Token(creds.BitLyToken)},
			{ID: IsGd, Name: "is.gd", Auth: NoAuth()},
			{ID: BamBz, Name: "bam.bz", Auth: NoAuth()},
			{ID: TnyIm, Name: "tny.im", Auth: NoAuth()},
			{ID: HmmRs, Name: "hmm.rs", Auth: NoAuth()},
		},
	}
}

// List returns a copy of the providers in selector order
func (r *Registry) List() []Provider {
	out := make([]Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// Len returns the number of providers
func (r *Registry) Len() int {
	return len(r.providers)
}

// Names returns the display names in selector order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		names = append(names, p.Name)
	}
	return names
}

// AuthFor returns the credential registered for p. Providers not in the
// registry get NoAuth.
func (r *Registry) AuthFor(p Provider) Auth {
	if known, ok := r.ByID(p.ID); ok {
		return known.Auth
	}
	return NoAuth()
}

// ByIndex returns the provider at selector index i
func (r *Registry) ByIndex(i int) (Provider, bool) {
	if i < 0 || i >= len(r.providers) {
		return Provider{}, false
	}
	return r.providers[i], true
}

// IndexOf returns the selector index of id, or -1
func (r *Registry) IndexOf(id ID) int {
	for i, p := range r.providers {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// ByID looks a provider up by its identifier
func (r *Registry) ByID(id ID) (Provider, bool) {
	if i := r.IndexOf(id); i >= 0 {
		return r.providers[i], true
	}
	return Provider{}, false
}

// Resolve accepts an ID, a display name or a selector index
func (r *Registry) Resolve(ref string) (Provider, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if i, err := strconv.Atoi(ref); err == nil {
		if p, ok := r.ByIndex(i); ok {
			return p, nil
		}
		return Provider{}, ErrNoProviderSelected
	}
	for _, p := range r.providers {
		if string(p.ID) == ref || p.Name == ref {
			return p, nil
		}
	}
	return Provider{}, ErrNoProviderSelected
}
