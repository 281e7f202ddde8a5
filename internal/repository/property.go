package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/masindes/Rent-Management-app/internal/metrics"
	"github.com/masindes/Rent-Management-app/internal/models"
)

type PropertyRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPropertyRepository(db *pgxpool.Pool, logger *zap.Logger) *PropertyRepository {
	return &PropertyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PropertyRepository) Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.Property, error) {
	query := `
		INSERT INTO properties (name, address, bedrooms, rent)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	property := &models.Property{
		Name:     req.Name,
		Address:  req.Address,
		Bedrooms: *req.Bedrooms,
		Rent:     *req.Rent,
	}

	row := r.db.QueryRow(ctx, query, property.Name, property.Address, property.Bedrooms, property.Rent)
	if err := row.Scan(&property.ID, &property.CreatedAt, &property.UpdatedAt); err != nil {
		r.logger.Error("Failed to create property", zap.Error(err), zap.String("name", property.Name))
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	metrics.IncrementEntityWrites("property", "create")
	r.logger.Info("Property created successfully", zap.Int64("id", property.ID), zap.String("name", property.Name))
	return property, nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	query := `SELECT id, name, address, bedrooms, rent, created_at, updated_at FROM properties WHERE id = $1`

	var property models.Property
	row := r.db.QueryRow(ctx, query, id)

	err := row.Scan(&property.ID, &property.Name, &property.Address, &property.Bedrooms,
		&property.Rent, &property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return &property, nil
}

func (r *PropertyRepository) List(ctx context.Context, params models.PageParams) ([]models.Property, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM properties`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	query := `
		SELECT id, name, address, bedrooms, rent, created_at, updated_at
		FROM properties
		ORDER BY id ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		var property models.Property
		if err := rows.Scan(&property.ID, &property.Name, &property.Address, &property.Bedrooms,
			&property.Rent, &property.CreatedAt, &property.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, property)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return properties, total, nil
}

func (r *PropertyRepository) Update(ctx context.Context, id int64, req *models.UpdatePropertyRequest) (*models.Property, error) {
	set := []string{}
	args := []interface{}{}
	arg := 1

	if req.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", arg))
		args = append(args, *req.Name)
		arg++
	}
	if req.Address != nil {
		set = append(set, fmt.Sprintf("address = $%d", arg))
		args = append(args, *req.Address)
		arg++
	}
	if req.Bedrooms != nil {
		set = append(set, fmt.Sprintf("bedrooms = $%d", arg))
		args = append(args, *req.Bedrooms)
		arg++
	}
	if req.Rent != nil {
		set = append(set, fmt.Sprintf("rent = $%d", arg))
		args = append(args, *req.Rent)
		arg++
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE properties SET %s
		WHERE id = $%d
		RETURNING id, name, address, bedrooms, rent, created_at, updated_at`,
		strings.Join(set, ", "), arg)

	var property models.Property
	row := r.db.QueryRow(ctx, query, args...)
	err := row.Scan(&property.ID, &property.Name, &property.Address, &property.Bedrooms,
		&property.Rent, &property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	metrics.IncrementEntityWrites("property", "update")
	r.logger.Info("Property updated successfully", zap.Int64("id", id))
	return &property, nil
}

// Delete removes a property together with its tenants and their payments in
// one transaction, so no orphaned dependents are ever visible.
func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	payments, err := tx.Exec(ctx,
		`DELETE FROM payments WHERE tenant_id IN (SELECT id FROM tenants WHERE property_id = $1)`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dependent payments: %w", err)
	}

	tenants, err := tx.Exec(ctx, `DELETE FROM tenants WHERE property_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dependent tenants: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrPropertyNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit property delete: %w", err)
	}

	metrics.IncrementEntityWrites("property", "delete")
	metrics.AddCascadeDeletes("tenant", float64(tenants.RowsAffected()))
	metrics.AddCascadeDeletes("payment", float64(payments.RowsAffected()))
	r.logger.Info("Property deleted successfully", zap.Int64("id", id),
		zap.Int64("tenants_removed", tenants.RowsAffected()),
		zap.Int64("payments_removed", payments.RowsAffected()))
	return nil
}
