// Package identity defines the principal model consumed by the
// authorization engine: who is acting, which organization they belong to,
// which roles they hold, and which permission patterns they have been
// granted.
//
// Principals are value types resolved by the authentication layer and
// carried through the request context with WithPrincipal/FromContext.
// The engine never mutates them.
package identity
