package main

import (
	"context"
	"fmt"
	"time"

	"github.com/masindes/Rent-Management-app/internal/models"
	"github.com/masindes/Rent-Management-app/internal/repository"
)

func ptr[T any](v T) *T {
	return &v
}

// runSeed inserts a small sample data set for local development.
func runSeed(
	ctx context.Context,
	properties *repository.PropertyRepository,
	tenants *repository.TenantRepository,
	payments *repository.PaymentRepository,
) error {
	sunset, err := properties.Create(ctx, &models.CreatePropertyRequest{
		Name:     "Sunset Villa",
		Address:  "123 Sunset Blvd, LA",
		Bedrooms: ptr(3),
		Rent:     ptr(2500.0),
	})
	if err != nil {
		return fmt.Errorf("failed to seed properties: %w", err)
	}

	oceanview, err := properties.Create(ctx, &models.CreatePropertyRequest{
		Name:     "Oceanview Apartments",
		Address:  "456 Ocean Dr, LA",
		Bedrooms: ptr(2),
		Rent:     ptr(1800.0),
	})
	if err != nil {
		return fmt.Errorf("failed to seed properties: %w", err)
	}

	john, err := tenants.Create(ctx, &models.CreateTenantRequest{
		Name:       "John Doe",
		Phone:      "1234567890",
		Email:      "john@example.com",
		UnitID:     ptr(101),
		PropertyID: ptr(sunset.ID),
	})
	if err != nil {
		return fmt.Errorf("failed to seed tenants: %w", err)
	}

	jane, err := tenants.Create(ctx, &models.CreateTenantRequest{
		Name:       "Jane Smith",
		Phone:      "9876543210",
		Email:      "jane@example.com",
		UnitID:     ptr(102),
		PropertyID: ptr(oceanview.ID),
	})
	if err != nil {
		return fmt.Errorf("failed to seed tenants: %w", err)
	}

	seedPayments := []models.CreatePaymentRequest{
		{
			PaymentType: "Rent",
			Status:      models.StatusPaid,
			Amount:      ptr(2500.0),
			PaymentDate: ptr(models.NewDate(2025, time.January, 1)),
			TenantID:    ptr(john.ID),
		},
		{
			PaymentType: "Rent",
			Status:      models.StatusPending,
			Amount:      ptr(1800.0),
			PaymentDate: ptr(models.NewDate(2025, time.January, 1)),
			TenantID:    ptr(jane.ID),
		},
	}

	for i := range seedPayments {
		if _, err := payments.Create(ctx, &seedPayments[i]); err != nil {
			return fmt.Errorf("failed to seed payments: %w", err)
		}
	}

	return nil
}
