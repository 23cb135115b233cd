// Package provider holds the fixed, ordered set of URL-shortening services the
// application can target, together with the credential shape each one needs.
// The order of the registry is the order of the provider selector in the UI.
package provider
