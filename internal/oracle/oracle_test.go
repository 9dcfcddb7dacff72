package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceIsSymmetric(t *testing.T) {
	ab, err := NationDistance("israel", "iran")
	require.NoError(t, err)
	ba, err := NationDistance("iran", "israel")
	require.NoError(t, err)

	assert.InDelta(t, ab, ba, 1e-9)
	assert.Greater(t, ab, 1700.0)
	assert.Less(t, ab, 1900.0)

	self, err := NationDistance("egypt", "egypt")
	require.NoError(t, err)
	assert.Zero(t, self)
}

func TestFlightTime(t *testing.T) {
	minutes, err := FlightTime("israel", "iran", "jericho3")
	require.NoError(t, err)
	assert.Greater(t, minutes, 14.0)
	assert.Less(t, minutes, 16.5)

	_, err = FlightTime("israel", "iran", "delilah")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = FlightTime("israel", "atlantis", "jericho3")
	assert.ErrorIs(t, err, ErrUnknown)

	_, err = FlightTime("israel", "iran", "trebuchet")
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestAircraftFlightTime(t *testing.T) {
	trip, err := AircraftFlightTime("israel", "iran", "f15")
	require.NoError(t, err)
	assert.Equal(t, trip.Outbound, trip.Return)
	assert.InDelta(t, trip.Outbound*2, trip.Total, 1e-9)

	_, err = AircraftFlightTime("israel", "iran", "apache")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = AircraftFlightTime("israel", "iran", "scud")
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestInterceptionWindow(t *testing.T) {
	w, err := InterceptionWindow(12, "arrow3")
	require.NoError(t, err)
	assert.Equal(t, Window{InterceptTime: 9, Start: 4, End: 9}, w)

	_, err = InterceptionWindow(12, "patriot")
	assert.ErrorIs(t, err, ErrUnknown)
}
