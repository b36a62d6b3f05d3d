package pricing

import (
	"encoding/json"

	"skinclinic/internal/domain"
)

// DefaultPackages is offered when a service has no session options of its own.
var DefaultPackages = []string{"1 session", "3 sessions", "6 sessions", "10 sessions"}

// sessionOptionsEnvelope covers the object shapes the services table has
// accumulated: {"options":[...]} and the legacy {"session_options":[...]}.
type sessionOptionsEnvelope struct {
	Options        []string `json:"options"`
	SessionOptions []string `json:"session_options"`
}

// ResolveAllowedPackages returns the package labels a service can be booked
// with. The stored column drifted over time, so the value may be a JSON
// array, a JSON string wrapping either shape, or an object with an options
// or session_options array. Anything unparseable falls back to the default
// four-tier set.
func ResolveAllowedPackages(svc *domain.Service) []string {
	if svc == nil || len(svc.SessionOptions) == 0 {
		return DefaultPackages
	}
	if opts := decodePackages(svc.SessionOptions); len(opts) > 0 {
		return opts
	}
	return DefaultPackages
}

func decodePackages(raw json.RawMessage) []string {
	var arr []string
	if err := json.Unmarshal(raw, &arr); err == nil {
		return arr
	}

	// a JSON string holding the encoded value, e.g. `"[\"1 session\"]"`
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return decodePackages(json.RawMessage(str))
	}

	var env sessionOptionsEnvelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if len(env.Options) > 0 {
			return env.Options
		}
		if len(env.SessionOptions) > 0 {
			return env.SessionOptions
		}
	}

	return nil
}
