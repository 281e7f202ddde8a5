package models

import "time"

// Payment statuses form a closed set. Creation defaults to StatusPending.
const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusFailed   = "failed"
	StatusRefunded = "refunded"
)

type Payment struct {
	ID          int64     `json:"id" db:"id"`
	PaymentType string    `json:"payment_type" db:"payment_type"`
	Status      string    `json:"status" db:"status"`
	Amount      float64   `json:"amount" db:"amount"`
	PaymentDate Date      `json:"payment_date" db:"payment_date"`
	ReceivedAt  time.Time `json:"received_at" db:"received_at"`
	TenantID    int64     `json:"tenant_id" db:"tenant_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreatePaymentRequest struct {
	PaymentType string   `json:"payment_type" binding:"required"`
	Status      string   `json:"status" binding:"omitempty,oneof=pending paid failed refunded"`
	Amount      *float64 `json:"amount" binding:"required,gte=0"`
	PaymentDate *Date    `json:"payment_date" binding:"required"`
	TenantID    *int64   `json:"tenant_id" binding:"required"`
}

type UpdatePaymentRequest struct {
	PaymentType *string  `json:"payment_type"`
	Status      *string  `json:"status" binding:"omitempty,oneof=pending paid failed refunded"`
	Amount      *float64 `json:"amount" binding:"omitempty,gte=0"`
	PaymentDate *Date    `json:"payment_date"`
	TenantID    *int64   `json:"tenant_id"`
}
