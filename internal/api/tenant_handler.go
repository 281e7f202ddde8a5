package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/masindes/Rent-Management-app/internal/models"
)

// TenantStore defines the persistence operations the handler depends on.
type TenantStore interface {
	Create(ctx context.Context, req *models.CreateTenantRequest) (*models.Tenant, error)
	GetByID(ctx context.Context, id int64) (*models.Tenant, error)
	List(ctx context.Context, params models.PageParams) ([]models.Tenant, int64, error)
	Update(ctx context.Context, id int64, req *models.UpdateTenantRequest) (*models.Tenant, error)
	Delete(ctx context.Context, id int64) error
}

type TenantHandler struct {
	store  TenantStore
	logger *zap.Logger
}

func NewTenantHandler(store TenantStore, logger *zap.Logger) *TenantHandler {
	return &TenantHandler{
		store:  store,
		logger: logger,
	}
}

// CreateTenant godoc
// @Summary Create a new tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req models.CreateTenantRequest
	if !bindJSON(c, &req) {
		return
	}

	tenant, err := h.store.Create(c.Request.Context(), &req)
	if err != nil {
		// A missing parent on a dependent write is a client error.
		if errors.Is(err, models.ErrPropertyNotFound) {
			respondValidationError(c, "Property does not exist")
			return
		}
		if errors.Is(err, models.ErrDuplicateEmail) {
			respondValidationError(c, "Tenant with this email already exists")
			return
		}
		h.logger.Error("Failed to create tenant", zap.Error(err), zap.String("name", req.Name))
		respondInternalError(c)
		return
	}

	respondData(c, http.StatusCreated, tenant)
}

// GetTenant godoc
// @Summary Get a tenant by ID
// @Tags tenants
// @Produce json
// @Param id path int true "Tenant ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	tenant, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrTenantNotFound) {
			respondNotFound(c, "Tenant not found")
			return
		}
		h.logger.Error("Failed to get tenant", zap.Error(err), zap.Int64("id", id))
		respondInternalError(c)
		return
	}

	respondData(c, http.StatusOK, tenant)
}

// ListTenants godoc
// @Summary List tenants
// @Tags tenants
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(10)
// @Success 200 {object} models.ListResponse
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	params, ok := bindPageParams(c)
	if !ok {
		return
	}

	tenants, total, err := h.store.List(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("Failed to list tenants", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondList(c, tenants, total, params)
}

// UpdateTenant handles both PUT (all fields required) and PATCH (only the
// provided fields are applied). A property_id change is re-validated against
// the properties table.
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := h.store.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrTenantNotFound) {
			respondNotFound(c, "Tenant not found")
			return
		}
		h.logger.Error("Failed to get tenant", zap.Error(err), zap.Int64("id", id))
		respondInternalError(c)
		return
	}

	var req models.UpdateTenantRequest
	if c.Request.Method == http.MethodPut {
		var full models.CreateTenantRequest
		if !bindJSON(c, &full) {
			return
		}
		req = models.UpdateTenantRequest{
			Name:       &full.Name,
			Phone:      &full.Phone,
			Email:      &full.Email,
			UnitID:     full.UnitID,
			PropertyID: full.PropertyID,
		}
	} else {
		if !bindJSON(c, &req) {
			return
		}
	}

	tenant, err := h.store.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			respondValidationError(c, "Property does not exist")
			return
		}
		if errors.Is(err, models.ErrDuplicateEmail) {
			respondValidationError(c, "Tenant with this email already exists")
			return
		}
		if errors.Is(err, models.ErrTenantNotFound) {
			respondNotFound(c, "Tenant not found")
			return
		}
		h.logger.Error("Failed to update tenant", zap.Error(err), zap.Int64("id", id))
		respondInternalError(c)
		return
	}

	respondData(c, http.StatusOK, tenant)
}

// DeleteTenant removes the tenant and cascades to its payments.
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrTenantNotFound) {
			respondNotFound(c, "Tenant not found")
			return
		}
		h.logger.Error("Failed to delete tenant", zap.Error(err), zap.Int64("id", id))
		respondInternalError(c)
		return
	}

	respondMessage(c, http.StatusOK, "Tenant deleted successfully")
}
