package domain

// Canonical vehicle statuses. Backend validation and the map styling both
// work from this set.
const (
	StatusActive      = "active"
	StatusFare        = "fare"
	StatusParked      = "parked"
	StatusMaintenance = "maintenance"
	StatusCleaning    = "cleaning"
	StatusNew         = "new"
)

var VehicleStatuses = map[string]bool{
	StatusActive:      true,
	StatusFare:        true,
	StatusParked:      true,
	StatusMaintenance: true,
	StatusCleaning:    true,
	StatusNew:         true,
}

// Marker style buckets used by the map feed.
const (
	StyleAvailable = "available"
	StyleBusy      = "busy"
	StyleInactive  = "inactive"
)

// StatusStyles is the single status→style table shared by the backend and
// the map client.
var StatusStyles = map[string]string{
	StatusActive:      StyleAvailable,
	StatusNew:         StyleAvailable,
	StatusFare:        StyleBusy,
	StatusParked:      StyleInactive,
	StatusMaintenance: StyleInactive,
	StatusCleaning:    StyleInactive,
}

// StyleFor returns the marker style for a status, falling back to inactive
// for anything unknown.
func StyleFor(status string) string {
	if style, ok := StatusStyles[status]; ok {
		return style
	}
	return StyleInactive
}

// GarageTypes are the two buildable parking structures.
var GarageTypes = map[string]bool{
	"garage": true,
	"lot":    true,
}
