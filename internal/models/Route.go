package models

// Route represents a directed transit path between two named locations,
// served by one vehicle type. A route owns its fares and landmarks; deleting
// the route removes them with it, they have no life of their own.
// No soft deletes: a wiped table really is empty.
type Route struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	StartLocation string `json:"start_location" gorm:"size:100;not null" binding:"required"`
	EndLocation   string `json:"end_location" gorm:"size:100;not null" binding:"required"`
	VehicleType   string `json:"vehicle_type" gorm:"size:50;not null" binding:"required"`

	// Associations
	Fares     []Fare     `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"fares,omitempty"`
	Landmarks []Landmark `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"landmarks,omitempty"`
}
