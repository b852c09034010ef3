package models

import (
	"github.com/shopspring/decimal"
)

// Fare is the estimated cost of riding a route, kept as a fixed-point
// numeric(10,2) so money never picks up float dust in the store.
type Fare struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	RouteID       uint            `json:"route_id" gorm:"not null;index"`
	EstimatedFare decimal.Decimal `json:"estimated_fare" gorm:"type:numeric(10,2);not null"`
}
