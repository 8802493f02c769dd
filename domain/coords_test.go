package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordsValid(t *testing.T) {
	t.Run("Valid Pair", func(t *testing.T) {
		assert.True(t, Coords{30.2672, -97.7431}.Valid())
	})

	t.Run("Boundary Values", func(t *testing.T) {
		assert.True(t, Coords{90, 180}.Valid())
		assert.True(t, Coords{-90, -180}.Valid())
	})

	t.Run("Latitude Out Of Range", func(t *testing.T) {
		assert.False(t, Coords{90.0001, 0}.Valid())
	})

	t.Run("Longitude Out Of Range", func(t *testing.T) {
		assert.False(t, Coords{0, -180.5}.Valid())
	})

	t.Run("Wrong Arity", func(t *testing.T) {
		assert.False(t, Coords{30.2672}.Valid())
		assert.False(t, Coords{30.2672, -97.7431, 12}.Valid())
		assert.False(t, Coords{}.Valid())
	})
}

func TestCheckCoords(t *testing.T) {
	assert.NoError(t, CheckCoords(nil))
	assert.NoError(t, CheckCoords(Coords{30.2672, -97.7431}))
	assert.ErrorIs(t, CheckCoords(Coords{90.0001, 0}), ErrBadCoords)
	assert.ErrorIs(t, CheckCoords(Coords{1}), ErrBadCoords)
}

func TestCoordsValueScan(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		original := Coords{30.2672, -97.7431}
		value, err := original.Value()
		require.NoError(t, err)

		var decoded Coords
		require.NoError(t, decoded.Scan(value))
		assert.Equal(t, original, decoded)
	})

	t.Run("Nil Round Trip", func(t *testing.T) {
		var original Coords
		value, err := original.Value()
		require.NoError(t, err)
		assert.Nil(t, value)

		var decoded Coords
		require.NoError(t, decoded.Scan(nil))
		assert.Nil(t, decoded)
	})

	t.Run("Scan String", func(t *testing.T) {
		var decoded Coords
		require.NoError(t, decoded.Scan("[30.2672,-97.7431]"))
		assert.Equal(t, Coords{30.2672, -97.7431}, decoded)
	})

	t.Run("Scan Unsupported Type", func(t *testing.T) {
		var decoded Coords
		assert.Error(t, decoded.Scan(42))
	})
}

func TestCoordsJSON(t *testing.T) {
	// A vehicle without a destination serializes dest as null.
	v := Vehicle{VehicleID: "CT-001", Coords: Coords{30.2672, -97.7431}}
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, []interface{}{30.2672, -97.7431}, decoded["coords"])
	assert.Nil(t, decoded["dest"])
}
