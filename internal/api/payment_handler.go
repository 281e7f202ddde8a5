package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/masindes/Rent-Management-app/internal/models"
)

// PaymentStore defines the persistence operations the handler depends on.
type PaymentStore interface {
	Create(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error)
	GetByID(ctx context.Context, id int64) (*models.Payment, error)
	List(ctx context.Context, params models.PageParams) ([]models.Payment, int64, error)
	Update(ctx context.Context, id int64, req *models.UpdatePaymentRequest) (*models.Payment, error)
	Delete(ctx context.Context, id int64) error
}

type PaymentHandler struct {
	store  PaymentStore
	logger *zap.Logger
}

func NewPaymentHandler(store PaymentStore, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		store:  store,
		logger: logger,
	}
}

// CreatePayment godoc
// @Summary Record a new payment
// @Tags payments
// @Accept json
// @Produce json
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req models.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.store.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrTenantNotFound) {
			respondValidationError(c, "Tenant does not exist")
			return
		}
		h.logger.Error("Failed to create payment", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondData(c, http.StatusCreated, payment)
}

// GetPayment godoc
// @Summary Get a payment by ID
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	payment, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			respondNotFound(c, "Payment not found")
			return
		}
		h.logger.Error("Failed to get payment", zap.Error(err), zap.Int64("id", id))
		respondInternalError(c)
		return
	}

	respondData(c, http.StatusOK, payment)
}

// ListPayments godoc
// @Summary List payments
// @Tags payments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(10)
// @Success 200 {object} models.ListResponse
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	params, ok := bindPageParams(c)
	if !ok {
		return
	}

	payments, total, err := h.store.List(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("Failed to list payments", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondList(c, payments, total, params)
}

// UpdatePayment handles both PUT (all fields required) and PATCH (only the
// provided fields are applied). A tenant_id change is re-validated against
// the tenants table.
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := h.store.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			respondNotFound(c, "Payment not found")
			return
		}
		h.logger.Error("Failed to get payment", zap.Error(err), zap.Int64("id", id))
		respondInternalError(c)
		return
	}

	var req models.UpdatePaymentRequest
	if c.Request.Method == http.MethodPut {
		var full models.CreatePaymentRequest
		if !bindJSON(c, &full) {
			return
		}
		status := full.Status
		if status == "" {
			status = models.StatusPending
		}
		req = models.UpdatePaymentRequest{
			PaymentType: &full.PaymentType,
			Status:      &status,
			Amount:      full.Amount,
			PaymentDate: full.PaymentDate,
			TenantID:    full.TenantID,
		}
	} else {
		if !bindJSON(c, &req) {
			return
		}
	}

	payment, err := h.store.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, models.ErrTenantNotFound) {
			respondValidationError(c, "Tenant does not exist")
			return
		}
		if errors.Is(err, models.ErrPaymentNotFound) {
			respondNotFound(c, "Payment not found")
			return
		}
		h.logger.Error("Failed to update payment", zap.Error(err), zap.Int64("id", id))
		respondInternalError(c)
		return
	}

	respondData(c, http.StatusOK, payment)
}

// DeletePayment godoc
// @Summary Delete a payment
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			respondNotFound(c, "Payment not found")
			return
		}
		h.logger.Error("Failed to delete payment", zap.Error(err), zap.Int64("id", id))
		respondInternalError(c)
		return
	}

	respondMessage(c, http.StatusOK, "Payment deleted successfully")
}
