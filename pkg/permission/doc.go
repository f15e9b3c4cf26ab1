// Package permission implements wildcard permission pattern matching for
// the authorization engine.
//
// A permission grant is a "resource:action" pair where either token may be
// the wildcard "*". A required permission is always a literal pair. The
// matcher is a pure function with no error conditions: malformed grant
// strings parse to a zero pattern that never matches anything.
//
// Matching rules, evaluated per granted pattern until one succeeds:
//
//  1. "*:*" matches everything.
//  2. A "*" resource token matches regardless of the action token, so
//     "*:create" grants "orders:read". Callers granting "*:<action>"
//     should be aware the action token is not consulted.
//  3. A literal resource token must equal the required resource; the
//     action token must then be "*" or equal the required action.
//
// Usage:
//
//	granted := permission.ParseAll([]string{"orders:*", "farms:read"})
//	ok := permission.Matches(permission.Required{Resource: "orders", Action: "delete"}, granted)
package permission
