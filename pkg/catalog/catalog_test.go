package catalog

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
- name: Earth
  spice_name: EARTH
  mu_km3_s2: 398600.4418
  radius_km: 6378.137
  elements:
    semi_major_axis_au: 1.00000261
    eccentricity: 0.01671123
    inclination_deg: 0.00005
    ascending_node_deg: 348.73936
    arg_perihelion_deg: 114.20783
    mean_anomaly_deg: 357.51716
    epoch_jd: 2451545.0

- name: Mars
  spice_name: MARS BARYCENTER
  mu_km3_s2: 42828.37
  radius_km: 3389.5
  elements:
    semi_major_axis_au: 1.52371034
    eccentricity: 0.09339410
    inclination_deg: 1.84969142
    ascending_node_deg: 49.55953891
    arg_perihelion_deg: 286.49683
    mean_anomaly_deg: 19.39020
    epoch_jd: 2451545.0

- name: ISS
  spice_name: ISS
  tle:
    line1: "1 25544U 98067A   21275.52501157  .00002182  00000-0  47883-4 0  9993"
    line2: "2 25544  51.6439 127.2600 0003316  57.8930  62.2972 15.48815328305628"
`

func TestParseAndResolve(t *testing.T) {
	cat, err := Parse(strings.NewReader(testCatalog))
	require.NoError(t, err)

	body, err := cat.Resolve("Earth")
	require.NoError(t, err)
	assert.Equal(t, "EARTH", body.SpiceName)
	require.NotNil(t, body.Elements)
	assert.Equal(t, 1.00000261, body.Elements.SemiMajorAxisAU)
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	cat, err := Parse(strings.NewReader(testCatalog))
	require.NoError(t, err)

	for _, id := range []string{"earth", "EARTH", "Earth", "  earth  "} {
		body, err := cat.Resolve(id)
		require.NoError(t, err, "identifier %q", id)
		assert.Equal(t, "Earth", body.Name)
	}
}

func TestResolveByEitherKey(t *testing.T) {
	cat, err := Parse(strings.NewReader(testCatalog))
	require.NoError(t, err)

	byName, err := cat.Resolve("Mars")
	require.NoError(t, err)
	bySpice, err := cat.Resolve("mars barycenter")
	require.NoError(t, err)
	assert.Same(t, byName, bySpice)
}

func TestResolveUnknownListsAvailable(t *testing.T) {
	cat, err := Parse(strings.NewReader(testCatalog))
	require.NoError(t, err)

	_, err = cat.Resolve("Pluto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Earth")
	assert.Contains(t, err.Error(), "Mars")
}

func TestNamesSorted(t *testing.T) {
	cat, err := Parse(strings.NewReader(testCatalog))
	require.NoError(t, err)

	assert.Equal(t, []string{"Earth", "ISS", "Mars"}, cat.Names())
}

func TestKeplerElementsSkipsTLEOnlyBodies(t *testing.T) {
	cat, err := Parse(strings.NewReader(testCatalog))
	require.NoError(t, err)

	elements := cat.KeplerElements()
	assert.Len(t, elements, 2)
	assert.Contains(t, elements, "EARTH")
	assert.Contains(t, elements, "MARS BARYCENTER")
	assert.NotContains(t, elements, "ISS")
}

func TestElementsSpecConvertsDegreesToRadians(t *testing.T) {
	spec := ElementsSpec{
		SemiMajorAxisAU: 1.5,
		Eccentricity:    0.09,
		InclinationDeg:  180.0,
		MeanAnomalyDeg:  90.0,
		EpochJD:         2451545.0,
	}

	el := spec.Orbital()
	assert.Equal(t, 1.5, el.SemiMajorAxis)
	assert.InDelta(t, math.Pi, el.Inclination, 1e-12)
	assert.InDelta(t, math.Pi/2, el.MeanAnomaly, 1e-12)
	assert.Equal(t, 2451545.0, el.Epoch)
}

func TestParseSkipsEntriesWithoutNames(t *testing.T) {
	cat, err := Parse(strings.NewReader(`
- name: Earth
  spice_name: EARTH
- name: ""
  spice_name: NAMELESS
- spice_name: ORPHAN
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Earth"}, cat.Names())
}

func TestParseEmptyCatalog(t *testing.T) {
	_, err := Parse(strings.NewReader("[]"))
	assert.Error(t, err)
}
