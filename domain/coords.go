package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Coords is a [latitude, longitude] pair persisted as a JSON text column.
type Coords []float64

func (c Coords) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

func (c *Coords) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Coords", value)
	}
	return json.Unmarshal(raw, c)
}

func (Coords) GormDataType() string {
	return "json"
}

// Valid reports whether c is a two-element pair inside latitude/longitude
// range. Out-of-range values are rejected, never clamped.
func (c Coords) Valid() bool {
	if len(c) != 2 {
		return false
	}
	lat, lng := c[0], c[1]
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

var ErrBadCoords = errors.New("coords must be a [lat, lng] pair within range")

// CheckCoords validates an optional coordinate pair. A nil pair is allowed;
// anything present must pass Valid.
func CheckCoords(c Coords) error {
	if c == nil {
		return nil
	}
	if !c.Valid() {
		return ErrBadCoords
	}
	return nil
}
