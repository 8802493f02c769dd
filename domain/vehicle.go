package domain

import (
	"context"
	"time"
)

// VehicleModels maps the four purchasable models to their price.
var VehicleModels = map[string]float64{
	"sedan":     25000,
	"crossover": 32000,
	"van":       41000,
	"limo":      68000,
}

type Vehicle struct {
	VehicleID         string     `gorm:"type:varchar(16);primaryKey;column:vehicle_id" json:"vehicle_id"`
	OwnerID           uint       `gorm:"not null;index;column:owner_id" json:"-"`
	Owner             Player     `gorm:"foreignKey:OwnerID;references:ID" json:"-"`
	Type              string     `gorm:"type:varchar(20);not null;column:type" json:"type"`
	Status            string     `gorm:"type:varchar(20);not null;default:new;column:status" json:"status"`
	Wear              float64    `gorm:"type:decimal(6,2);default:0;column:wear" json:"wear"`
	Battery           float64    `gorm:"type:decimal(6,2);default:100;column:battery" json:"battery"`
	Mileage           float64    `gorm:"type:decimal(12,2);default:0;column:mileage" json:"mileage"`
	TireMileage       float64    `gorm:"type:decimal(12,2);default:0;column:tire_mileage" json:"tire_mileage"`
	Cost              float64    `gorm:"type:decimal(12,2);not null;column:cost" json:"cost"`
	Coords            Coords     `gorm:"column:coords" json:"coords"`
	Dest              Coords     `gorm:"column:dest" json:"dest"`
	PurchaseDate      time.Time  `gorm:"column:purchase_date" json:"purchase_date"`
	DeliveryTimestamp *time.Time `gorm:"column:delivery_timestamp" json:"delivery_timestamp"`
	UpdatedAt         time.Time  `json:"-"`
}

type PurchaseVehicleRequest struct {
	Type   string `json:"type"`
	Coords Coords `json:"coords,omitempty"`
}

type VehicleStatusRequest struct {
	Status string `json:"status"`
}

// VehicleMarker is the map-feed view of another player's vehicle.
type VehicleMarker struct {
	VehicleID string `json:"vehicle_id"`
	PlayerID  int    `json:"player_id"`
	Username  string `json:"username"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Coords    Coords `json:"coords"`
}

type VehicleRepository interface {
	ListByOwner(ctx context.Context, surrogateKey uint) ([]Vehicle, error)
	ListOthers(ctx context.Context, surrogateKey uint) ([]VehicleMarker, error)
	Purchase(ctx context.Context, surrogateKey uint, vehicleType string, cost float64, coords Coords, deliveryAt time.Time) (*Vehicle, error)
	GetByID(ctx context.Context, vehicleID string) (*Vehicle, error)
	SetStatus(ctx context.Context, vehicleID, status string) error
	MarkDelivered(ctx context.Context, vehicleID string) error
	CountByOwner(ctx context.Context, surrogateKey uint) (int, error)
}
