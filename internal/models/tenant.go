package models

import "time"

type Tenant struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Phone      string    `json:"phone" db:"phone"`
	Email      string    `json:"email" db:"email"`
	UnitID     int       `json:"unit_id" db:"unit_id"`
	PropertyID int64     `json:"property_id" db:"property_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type CreateTenantRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	UnitID     *int   `json:"unit_id" binding:"required"`
	PropertyID *int64 `json:"property_id" binding:"required"`
}

type UpdateTenantRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email" binding:"omitempty,email"`
	UnitID     *int    `json:"unit_id"`
	PropertyID *int64  `json:"property_id"`
}
