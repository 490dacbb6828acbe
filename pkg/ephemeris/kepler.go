package ephemeris

import (
	"fmt"
	"strings"

	astromath "github.com/oxygene76/porkchop-client/pkg/astronomy/math"
	"github.com/oxygene76/porkchop-client/pkg/astronomy/orbital"
)

// KmPerAU is the astronomical unit in kilometres.
const KmPerAU = 1.495978707e8

// KeplerProvider serves heliocentric positions from two-body propagation
// of catalog orbital elements. It replaces a full kernel-based ephemeris
// for the plotting use case, where per-body errors of a fraction of a
// percent are invisible at the rendered scale.
type KeplerProvider struct {
	elements map[string]orbital.OrbitalElements
}

// NewKeplerProvider creates a provider from a map of body identifier to
// heliocentric orbital elements (angles in radians, distances in AU).
// Identifiers are matched case-insensitively.
func NewKeplerProvider(elements map[string]orbital.OrbitalElements) *KeplerProvider {
	normalized := make(map[string]orbital.OrbitalElements, len(elements))
	for name, el := range elements {
		normalized[strings.ToUpper(name)] = el
	}
	return &KeplerProvider{elements: normalized}
}

// Position returns the body's heliocentric position in kilometres at the
// given epoch.
func (p *KeplerProvider) Position(body string, et Epoch) (astromath.Vector3, error) {
	el, ok := p.elements[strings.ToUpper(body)]
	if !ok {
		return astromath.Vector3{}, fmt.Errorf("%w: %s", ErrUnknownBody, body)
	}

	propagated := el.PropagatedTo(et.JulianDate(), orbital.GMSunAU3Day2)
	posAU, _ := propagated.ToCartesian(orbital.GMSunAU3Day2)
	return posAU.Scale(KmPerAU), nil
}

// Frame returns the ecliptic J2000 frame name.
func (p *KeplerProvider) Frame() string { return "ECLIPJ2000" }

// Origin returns the common origin for all positions.
func (p *KeplerProvider) Origin() string { return "SUN" }

// Bodies returns the identifiers this provider can resolve.
func (p *KeplerProvider) Bodies() []string {
	names := make([]string, 0, len(p.elements))
	for name := range p.elements {
		names = append(names, name)
	}
	return names
}
