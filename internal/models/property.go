package models

import "time"

type Property struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	Bedrooms  int       `json:"bedrooms" db:"bedrooms"`
	Rent      float64   `json:"rent" db:"rent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreatePropertyRequest carries the full field set; pointer fields let the
// validator distinguish an absent value from a legitimate zero.
type CreatePropertyRequest struct {
	Name     string   `json:"name" binding:"required"`
	Address  string   `json:"address" binding:"required"`
	Bedrooms *int     `json:"bedrooms" binding:"required,gte=0"`
	Rent     *float64 `json:"rent" binding:"required,gte=0"`
}

// UpdatePropertyRequest applies only the fields present in the payload.
type UpdatePropertyRequest struct {
	Name     *string  `json:"name"`
	Address  *string  `json:"address"`
	Bedrooms *int     `json:"bedrooms" binding:"omitempty,gte=0"`
	Rent     *float64 `json:"rent" binding:"omitempty,gte=0"`
}
