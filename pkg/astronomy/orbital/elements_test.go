package orbital

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCartesianCircularOrbit(t *testing.T) {
	el := OrbitalElements{SemiMajorAxis: 1.0}

	pos, vel := el.ToCartesian(GMSunAU3Day2)
	assert.InDelta(t, 1.0, pos.X, 1e-9)
	assert.InDelta(t, 0.0, pos.Y, 1e-9)
	assert.InDelta(t, 0.0, pos.Z, 1e-9)

	// Circular speed is sqrt(mu/a), directed along +Y at perihelion.
	assert.InDelta(t, math.Sqrt(GMSunAU3Day2), vel.Y, 1e-9)
	assert.InDelta(t, 0.0, vel.X, 1e-9)
}

func TestToCartesianEccentricPerihelion(t *testing.T) {
	el := OrbitalElements{SemiMajorAxis: 1.5, Eccentricity: 0.3}

	// M = 0 puts the body at perihelion: r = a(1-e).
	pos, _ := el.ToCartesian(GMSunAU3Day2)
	assert.InDelta(t, el.GetPerihelion(), pos.Magnitude(), 1e-9)
}

func TestPropagatedToAdvancesMeanAnomaly(t *testing.T) {
	el := OrbitalElements{SemiMajorAxis: 1.0, Epoch: 2451545.0}
	period := el.GetOrbitalPeriod(GMSunAU3Day2)

	half := el.PropagatedTo(2451545.0+period/2, GMSunAU3Day2)
	assert.InDelta(t, math.Pi, half.MeanAnomaly, 1e-6)

	// A full period wraps back to the starting anomaly.
	full := el.PropagatedTo(2451545.0+period, GMSunAU3Day2)
	wrapped := math.Min(full.MeanAnomaly, 2*math.Pi-full.MeanAnomaly)
	assert.InDelta(t, 0.0, wrapped, 1e-6)
}

func TestPropagatedToBackwards(t *testing.T) {
	el := OrbitalElements{SemiMajorAxis: 1.0, Epoch: 2451545.0}
	period := el.GetOrbitalPeriod(GMSunAU3Day2)

	back := el.PropagatedTo(2451545.0-period/4, GMSunAU3Day2)
	require.GreaterOrEqual(t, back.MeanAnomaly, 0.0)
	assert.InDelta(t, 3*math.Pi/2, back.MeanAnomaly, 1e-6)
}

func TestOrbitalPeriodEarthIsOneYear(t *testing.T) {
	el := OrbitalElements{SemiMajorAxis: 1.0}
	assert.InDelta(t, 365.25, el.GetOrbitalPeriod(GMSunAU3Day2), 0.05)
}

func TestKeplerSolverHighEccentricity(t *testing.T) {
	el := OrbitalElements{SemiMajorAxis: 10.0, Eccentricity: 0.95, MeanAnomaly: 2.0}

	E := el.solveKeplersEquation()
	// The solution must satisfy Kepler's equation.
	assert.InDelta(t, el.MeanAnomaly, E-el.Eccentricity*math.Sin(E), 1e-9)
}

func TestApsides(t *testing.T) {
	el := OrbitalElements{SemiMajorAxis: 2.0, Eccentricity: 0.5}
	assert.Equal(t, 1.0, el.GetPerihelion())
	assert.Equal(t, 3.0, el.GetAphelion())
}
