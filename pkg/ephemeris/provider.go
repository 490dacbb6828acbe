package ephemeris

import (
	"errors"

	astromath "github.com/oxygene76/porkchop-client/pkg/astronomy/math"
)

// ErrUnknownBody is returned when a provider has no ephemeris data for
// the requested body identifier.
var ErrUnknownBody = errors.New("body not available from ephemeris provider")

// Provider resolves a body identifier and an epoch to a position vector.
//
// All positions from one provider share a single reference frame and
// origin, so differences between two lookups against the same provider
// are physically meaningful. Positions are in kilometres.
//
// Providers must be fully initialized before the first Position call and
// are treated as read-only afterwards, so concurrent lookups are safe.
type Provider interface {
	Position(body string, et Epoch) (astromath.Vector3, error)

	// Frame names the reference frame positions are expressed in.
	Frame() string

	// Origin names the body positions are measured from.
	Origin() string
}
