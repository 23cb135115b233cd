// Package shortener is the gateway between the application and the public
// URL-shortening services. Shortener is the capability the UI depends on;
// Service implements it over HTTP with one endpoint description per provider.
// No retry is attempted and failures are reported as GatewayError values whose
// text is shown to the user as is.
package shortener
