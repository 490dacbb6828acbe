package ephemeris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issTLE = TLE{
	Line1: "1 25544U 98067A   21275.52501157  .00002182  00000-0  47883-4 0  9993",
	Line2: "2 25544  51.6439 127.2600 0003316  57.8930  62.2972 15.48815328305628",
}

func TestSGP4ProviderPosition(t *testing.T) {
	provider := NewSGP4Provider(map[string]TLE{"ISS": issTLE})

	// Near the TLE epoch (2021-10-02) the station sits in low orbit, so
	// the geocentric distance must land between the Earth's surface and
	// roughly 500 km altitude.
	et := FromTime(time.Date(2021, time.October, 2, 12, 0, 0, 0, time.UTC))
	pos, err := provider.Position("iss", et)
	require.NoError(t, err)

	r := pos.Magnitude()
	assert.Greater(t, r, 6500.0)
	assert.Less(t, r, 7000.0)
}

func TestSGP4ProviderUnknownBody(t *testing.T) {
	provider := NewSGP4Provider(map[string]TLE{"ISS": issTLE})

	_, err := provider.Position("MIR", 0)
	assert.ErrorIs(t, err, ErrUnknownBody)
}

func TestSGP4ProviderFrameAndOrigin(t *testing.T) {
	provider := NewSGP4Provider(nil)
	assert.Equal(t, "TEME", provider.Frame())
	assert.Equal(t, "EARTH", provider.Origin())
}
