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

type PaymentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPaymentRepository(db *pgxpool.Pool, logger *zap.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a payment after verifying its tenant exists in the same
// transaction. received_at is assigned by the database at insert time and is
// distinct from the caller-supplied payment_date.
func (r *PaymentRepository) Create(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := tenantExists(ctx, tx, *req.TenantID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}

	payment := &models.Payment{
		PaymentType: req.PaymentType,
		Status:      status,
		Amount:      *req.Amount,
		PaymentDate: *req.PaymentDate,
		TenantID:    *req.TenantID,
	}

	query := `
		INSERT INTO payments (payment_type, status, amount, payment_date, tenant_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, received_at, created_at, updated_at`

	row := tx.QueryRow(ctx, query, payment.PaymentType, payment.Status, payment.Amount,
		payment.PaymentDate, payment.TenantID)
	if err := row.Scan(&payment.ID, &payment.ReceivedAt, &payment.CreatedAt, &payment.UpdatedAt); err != nil {
		r.logger.Error("Failed to create payment", zap.Error(err), zap.Int64("tenant_id", payment.TenantID))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit payment create: %w", err)
	}

	metrics.IncrementEntityWrites("payment", "create")
	r.logger.Info("Payment created successfully", zap.Int64("id", payment.ID), zap.Int64("tenant_id", payment.TenantID))
	return payment, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	query := `
		SELECT id, payment_type, status, amount, payment_date, received_at, tenant_id, created_at, updated_at
		FROM payments WHERE id = $1`

	var payment models.Payment
	row := r.db.QueryRow(ctx, query, id)

	err := row.Scan(&payment.ID, &payment.PaymentType, &payment.Status, &payment.Amount,
		&payment.PaymentDate, &payment.ReceivedAt, &payment.TenantID, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &payment, nil
}

func (r *PaymentRepository) List(ctx context.Context, params models.PageParams) ([]models.Payment, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM payments`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	query := `
		SELECT id, payment_type, status, amount, payment_date, received_at, tenant_id, created_at, updated_at
		FROM payments
		ORDER BY id ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(&payment.ID, &payment.PaymentType, &payment.Status, &payment.Amount,
			&payment.PaymentDate, &payment.ReceivedAt, &payment.TenantID,
			&payment.CreatedAt, &payment.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return payments, total, nil
}

func (r *PaymentRepository) Update(ctx context.Context, id int64, req *models.UpdatePaymentRequest) (*models.Payment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if req.TenantID != nil {
		if err := tenantExists(ctx, tx, *req.TenantID); err != nil {
			return nil, err
		}
	}

	set := []string{}
	args := []interface{}{}
	arg := 1

	if req.PaymentType != nil {
		set = append(set, fmt.Sprintf("payment_type = $%d", arg))
		args = append(args, *req.PaymentType)
		arg++
	}
	if req.Status != nil {
		set = append(set, fmt.Sprintf("status = $%d", arg))
		args = append(args, *req.Status)
		arg++
	}
	if req.Amount != nil {
		set = append(set, fmt.Sprintf("amount = $%d", arg))
		args = append(args, *req.Amount)
		arg++
	}
	if req.PaymentDate != nil {
		set = append(set, fmt.Sprintf("payment_date = $%d", arg))
		args = append(args, *req.PaymentDate)
		arg++
	}
	if req.TenantID != nil {
		set = append(set, fmt.Sprintf("tenant_id = $%d", arg))
		args = append(args, *req.TenantID)
		arg++
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE payments SET %s
		WHERE id = $%d
		RETURNING id, payment_type, status, amount, payment_date, received_at, tenant_id, created_at, updated_at`,
		strings.Join(set, ", "), arg)

	var payment models.Payment
	row := tx.QueryRow(ctx, query, args...)
	err = row.Scan(&payment.ID, &payment.PaymentType, &payment.Status, &payment.Amount,
		&payment.PaymentDate, &payment.ReceivedAt, &payment.TenantID, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit payment update: %w", err)
	}

	metrics.IncrementEntityWrites("payment", "update")
	r.logger.Info("Payment updated successfully", zap.Int64("id", id))
	return &payment, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrPaymentNotFound
	}

	metrics.IncrementEntityWrites("payment", "delete")
	r.logger.Info("Payment deleted successfully", zap.Int64("id", id))
	return nil
}

func tenantExists(ctx context.Context, tx pgx.Tx, tenantID int64) error {
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tenants WHERE id = $1)`, tenantID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check tenant existence: %w", err)
	}
	if !exists {
		return models.ErrTenantNotFound
	}
	return nil
}
