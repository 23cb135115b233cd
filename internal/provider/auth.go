package provider

// AuthKind is the credential shape a provider requires
type AuthKind int

const (
	AuthNone AuthKind = iota
	AuthAPIKey
	AuthToken
)

// String returns a short name for the auth kind
func (k AuthKind) String() string {
	switch k {
	case AuthNone:
		return "none"
	case AuthAPIKey:
		return "api-key"
	case AuthToken:
		return "token"
	default:
		return "unknown"
	}
}

// Auth is the credential passed to a provider. Value is empty for AuthNone.
type Auth struct {
	Kind  AuthKind
	Value string
}

// NoAuth returns the credential of token-free providers
func NoAuth() Auth {
	return Auth{Kind: AuthNone}
}

// APIKey returns an API key credential
func APIKey(key string) Auth {
	return Auth{Kind: AuthAPIKey, Value: key}
}

// Token returns an access token credential
func Token(token string) Auth {
	return Auth{Kind: AuthToken, Value: token}
}

// Required reports whether a credential value must be sent
func (a Auth) Required() bool {
	return a.Kind != AuthNone
}

// Missing reports whether a required credential has no value
func (a Auth) Missing() bool {
	return a.Required() && a.Value == ""
}
