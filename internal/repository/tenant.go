package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/masindes/Rent-Management-app/internal/metrics"
	"github.com/masindes/Rent-Management-app/internal/models"
)

const pgUniqueViolation = "23505"

type TenantRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTenantRepository(db *pgxpool.Pool, logger *zap.Logger) *TenantRepository {
	return &TenantRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a tenant after verifying its property exists; the check and
// the insert share one transaction so the parent cannot vanish in between.
func (r *TenantRepository) Create(ctx context.Context, req *models.CreateTenantRequest) (*models.Tenant, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := propertyExists(ctx, tx, *req.PropertyID); err != nil {
		return nil, err
	}

	tenant := &models.Tenant{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		UnitID:     *req.UnitID,
		PropertyID: *req.PropertyID,
	}

	query := `
		INSERT INTO tenants (name, phone, email, unit_id, property_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	row := tx.QueryRow(ctx, query, tenant.Name, tenant.Phone, tenant.Email, tenant.UnitID, tenant.PropertyID)
	if err := row.Scan(&tenant.ID, &tenant.CreatedAt, &tenant.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateEmail
		}
		r.logger.Error("Failed to create tenant", zap.Error(err), zap.String("name", tenant.Name))
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit tenant create: %w", err)
	}

	metrics.IncrementEntityWrites("tenant", "create")
	r.logger.Info("Tenant created successfully", zap.Int64("id", tenant.ID), zap.String("name", tenant.Name))
	return tenant, nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id int64) (*models.Tenant, error) {
	query := `SELECT id, name, phone, email, unit_id, property_id, created_at, updated_at FROM tenants WHERE id = $1`

	var tenant models.Tenant
	row := r.db.QueryRow(ctx, query, id)

	err := row.Scan(&tenant.ID, &tenant.Name, &tenant.Phone, &tenant.Email,
		&tenant.UnitID, &tenant.PropertyID, &tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &tenant, nil
}

func (r *TenantRepository) List(ctx context.Context, params models.PageParams) ([]models.Tenant, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tenants`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count tenants: %w", err)
	}

	query := `
		SELECT id, name, phone, email, unit_id, property_id, created_at, updated_at
		FROM tenants
		ORDER BY id ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query tenants: %w", err)
	}
	defer rows.Close()

	tenants := []models.Tenant{}
	for rows.Next() {
		var tenant models.Tenant
		if err := rows.Scan(&tenant.ID, &tenant.Name, &tenant.Phone, &tenant.Email,
			&tenant.UnitID, &tenant.PropertyID, &tenant.CreatedAt, &tenant.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, tenant)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, total, nil
}

func (r *TenantRepository) Update(ctx context.Context, id int64, req *models.UpdateTenantRequest) (*models.Tenant, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if req.PropertyID != nil {
		if err := propertyExists(ctx, tx, *req.PropertyID); err != nil {
			return nil, err
		}
	}

	set := []string{}
	args := []interface{}{}
	arg := 1

	if req.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", arg))
		args = append(args, *req.Name)
		arg++
	}
	if req.Phone != nil {
		set = append(set, fmt.Sprintf("phone = $%d", arg))
		args = append(args, *req.Phone)
		arg++
	}
	if req.Email != nil {
		set = append(set, fmt.Sprintf("email = $%d", arg))
		args = append(args, *req.Email)
		arg++
	}
	if req.UnitID != nil {
		set = append(set, fmt.Sprintf("unit_id = $%d", arg))
		args = append(args, *req.UnitID)
		arg++
	}
	if req.PropertyID != nil {
		set = append(set, fmt.Sprintf("property_id = $%d", arg))
		args = append(args, *req.PropertyID)
		arg++
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE tenants SET %s
		WHERE id = $%d
		RETURNING id, name, phone, email, unit_id, property_id, created_at, updated_at`,
		strings.Join(set, ", "), arg)

	var tenant models.Tenant
	row := tx.QueryRow(ctx, query, args...)
	err = row.Scan(&tenant.ID, &tenant.Name, &tenant.Phone, &tenant.Email,
		&tenant.UnitID, &tenant.PropertyID, &tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrTenantNotFound
		}
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit tenant update: %w", err)
	}

	metrics.IncrementEntityWrites("tenant", "update")
	r.logger.Info("Tenant updated successfully", zap.Int64("id", id))
	return &tenant, nil
}

// Delete removes a tenant and its payments in one transaction.
func (r *TenantRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	payments, err := tx.Exec(ctx, `DELETE FROM payments WHERE tenant_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dependent payments: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrTenantNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit tenant delete: %w", err)
	}

	metrics.IncrementEntityWrites("tenant", "delete")
	metrics.AddCascadeDeletes("payment", float64(payments.RowsAffected()))
	r.logger.Info("Tenant deleted successfully", zap.Int64("id", id),
		zap.Int64("payments_removed", payments.RowsAffected()))
	return nil
}

func propertyExists(ctx context.Context, tx pgx.Tx, propertyID int64) error {
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM properties WHERE id = $1)`, propertyID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check property existence: %w", err)
	}
	if !exists {
		return models.ErrPropertyNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
