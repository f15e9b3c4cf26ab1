package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// OrganizationID records the tenant identifier under the key "organization_id".
func OrganizationID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("organization_id", id)
}

// PrincipalID records the acting user identifier under the key "principal_id".
func PrincipalID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("principal_id", id)
}

// Resource records the resource type under the key "resource".
func Resource(name string) slog.Attr {
	return slog.String("resource", name)
}

// Decision records an allow/deny outcome under the key "allowed".
func Decision(allowed bool) slog.Attr {
	return slog.Bool("allowed", allowed)
}

// Tier records a plan tier name under the key "tier".
func Tier(name string) slog.Attr {
	return slog.String("tier", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
