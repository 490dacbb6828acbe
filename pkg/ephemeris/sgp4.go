package ephemeris

import (
	"fmt"
	"math"
	"strings"

	satellite "github.com/joshuaferrara/go-satellite"

	astromath "github.com/oxygene76/porkchop-client/pkg/astronomy/math"
)

// TLE holds the two element lines of a published two-line element set.
type TLE struct {
	Line1 string
	Line2 string
}

// SGP4Provider serves Earth-centered inertial positions for satellites
// propagated from TLEs. It lets the separation sampler measure
// conjunction distances between two Earth-orbiting bodies with the same
// contract the heliocentric provider offers for planets.
type SGP4Provider struct {
	sats map[string]satellite.Satellite
}

// NewSGP4Provider parses the given TLE sets and returns a provider.
// Identifiers are matched case-insensitively.
func NewSGP4Provider(tles map[string]TLE) *SGP4Provider {
	sats := make(map[string]satellite.Satellite, len(tles))
	for name, tle := range tles {
		sats[strings.ToUpper(name)] = satellite.TLEToSat(tle.Line1, tle.Line2, satellite.GravityWGS72)
	}
	return &SGP4Provider{sats: sats}
}

// Position returns the satellite's ECI position in kilometres at the
// given epoch.
func (p *SGP4Provider) Position(body string, et Epoch) (astromath.Vector3, error) {
	sat, ok := p.sats[strings.ToUpper(body)]
	if !ok {
		return astromath.Vector3{}, fmt.Errorf("%w: %s", ErrUnknownBody, body)
	}

	t := et.Time()
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	pos, _ := satellite.Propagate(sat, year, int(month), day, hour, min, sec)

	out := astromath.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z}
	if math.IsNaN(out.X) || math.IsNaN(out.Y) || math.IsNaN(out.Z) {
		return astromath.Vector3{}, fmt.Errorf("SGP4 propagation of %s diverged at %s", body, et.Format())
	}
	return out, nil
}

// Frame returns the inertial frame name used by SGP4 output.
func (p *SGP4Provider) Frame() string { return "TEME" }

// Origin returns the common origin for all positions.
func (p *SGP4Provider) Origin() string { return "EARTH" }
