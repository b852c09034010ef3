package models

// Landmark is a descriptive boarding or drop-off reference point along a route
// ImageURL is optional; a nil pointer comes out as JSON null
type Landmark struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	RouteID     uint    `json:"route_id" gorm:"not null;index"`
	Description string  `json:"description" gorm:"type:text;not null" binding:"required"`
	ImageURL    *string `json:"image_url" gorm:"size:255"`
}
