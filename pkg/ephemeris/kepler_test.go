package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxygene76/porkchop-client/pkg/astronomy/orbital"
)

// epochAtJD builds an Epoch from a Julian date.
func epochAtJD(jd float64) Epoch {
	return Epoch((jd - 2451545.0) * SecondsPerDay)
}

func circularOrbit(epochJD float64) orbital.OrbitalElements {
	return orbital.OrbitalElements{
		SemiMajorAxis: 1.0,
		Eccentricity:  0.0,
		Epoch:         epochJD,
	}
}

func TestKeplerProviderCircularOrbitAtEpoch(t *testing.T) {
	const epochJD = 2451545.0
	p := NewKeplerProvider(map[string]orbital.OrbitalElements{
		"EARTH": circularOrbit(epochJD),
	})

	pos, err := p.Position("EARTH", epochAtJD(epochJD))
	require.NoError(t, err)

	assert.InDelta(t, KmPerAU, pos.Magnitude(), 1.0)
	assert.InDelta(t, KmPerAU, pos.X, 1.0)
	assert.InDelta(t, 0.0, pos.Y, 1.0)
	assert.InDelta(t, 0.0, pos.Z, 1.0)
}

func TestKeplerProviderQuarterPeriod(t *testing.T) {
	const epochJD = 2451545.0
	el := circularOrbit(epochJD)
	p := NewKeplerProvider(map[string]orbital.OrbitalElements{"EARTH": el})

	quarter := el.GetOrbitalPeriod(orbital.GMSunAU3Day2) / 4.0
	pos, err := p.Position("EARTH", epochAtJD(epochJD+quarter))
	require.NoError(t, err)

	// 90 degrees around a circular orbit: x -> 0, y -> +a.
	assert.InDelta(t, 0.0, pos.X, 10.0)
	assert.InDelta(t, KmPerAU, pos.Y, 10.0)
	assert.InDelta(t, KmPerAU, pos.Magnitude(), 1.0)
}

func TestKeplerProviderCaseInsensitiveLookup(t *testing.T) {
	p := NewKeplerProvider(map[string]orbital.OrbitalElements{
		"Mars Barycenter": circularOrbit(2451545.0),
	})

	_, err := p.Position("mars barycenter", 0)
	assert.NoError(t, err)
	_, err = p.Position("MARS BARYCENTER", 0)
	assert.NoError(t, err)
}

func TestKeplerProviderUnknownBody(t *testing.T) {
	p := NewKeplerProvider(map[string]orbital.OrbitalElements{
		"EARTH": circularOrbit(2451545.0),
	})

	_, err := p.Position("PLUTO", 0)
	assert.ErrorIs(t, err, ErrUnknownBody)
}

func TestKeplerProviderFrameAndOrigin(t *testing.T) {
	p := NewKeplerProvider(nil)
	assert.Equal(t, "ECLIPJ2000", p.Frame())
	assert.Equal(t, "SUN", p.Origin())
}
