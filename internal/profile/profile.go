// Package profile holds the per-agency processing configurations: reference
// schemas, column aliases, type mappings and categorical value universes.
// Profiles are pure data; all behavior lives in the engine.
package profile

import "github.com/excelsior/engine/internal/engine"

// Profile describes one agency extract format.
type Profile struct {
	// Key is the URL-safe identifier, e.g. "dian-notificaciones".
	Key string

	// Agency is the short agency code (DIAN, COLJUEGOS, UGPP).
	Agency string

	Label       string
	Description string

	// Spec is the engine configuration for this extract format.
	Spec engine.Spec

	// OutputDelimiter overrides the default "|" canonical output delimiter.
	OutputDelimiter string
}
