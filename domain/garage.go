package domain

import (
	"context"
	"time"
)

type Garage struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OwnerID     uint      `gorm:"not null;index;column:owner_id" json:"-"`
	Owner       Player    `gorm:"foreignKey:OwnerID;references:ID" json:"-"`
	Name        string    `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Coords      Coords    `gorm:"column:coords" json:"coords"`
	Capacity    int       `gorm:"not null;column:capacity" json:"capacity"`
	Type        string    `gorm:"type:varchar(10);not null;column:type" json:"type"`
	CostMonthly float64   `gorm:"type:decimal(12,2);not null;column:cost_monthly" json:"cost_monthly"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

type PurchaseGarageRequest struct {
	Name        string  `json:"name"`
	Coords      Coords  `json:"coords"`
	Capacity    int     `json:"capacity"`
	Type        string  `json:"type"`
	CostMonthly float64 `json:"cost_monthly"`
}

type GarageRepository interface {
	ListByOwner(ctx context.Context, surrogateKey uint) ([]Garage, error)
	Purchase(ctx context.Context, surrogateKey uint, req PurchaseGarageRequest) (*Garage, error)
	TotalCapacity(ctx context.Context, surrogateKey uint) (int, error)
}
