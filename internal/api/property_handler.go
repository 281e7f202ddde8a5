package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/masindes/Rent-Management-app/internal/models"
)

// PropertyStore defines the persistence operations the handler depends on.
type PropertyStore interface {
	Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.Property, error)
	GetByID(ctx context.Context, id int64) (*models.Property, error)
	List(ctx context.Context, params models.PageParams) ([]models.Property, int64, error)
	Update(ctx context.Context, id int64, req *models.UpdatePropertyRequest) (*models.Property, error)
	Delete(ctx context.Context, id int64) error
}

type PropertyHandler struct {
	store  PropertyStore
	logger *zap.Logger
}

func NewPropertyHandler(store PropertyStore, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		store:  store,
		logger: logger,
	}
}

// CreateProperty godoc
// @Summary Create a new property
// @Tags properties
// @Accept json
// @Produce json
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req models.CreatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}

	property, err := h.store.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to create property", zap.Error(err), zap.String("name", req.Name))
		respondInternalError(c)
		return
	}

	respondData(c, http.StatusCreated, property)
}

// GetProperty godoc
// @Summary Get a property by ID
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	property, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			respondNotFound(c, "Property not found")
			return
		}
		h.logger.Error("Failed to get property", zap.Error(err), zap.Int64("id", id))
		respondInternalError(c)
		return
	}

	respondData(c, http.StatusOK, property)
}

// ListProperties godoc
// @Summary List properties
// @Tags properties
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(10)
// @Success 200 {object} models.ListResponse
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	params, ok := bindPageParams(c)
	if !ok {
		return
	}

	properties, total, err := h.store.List(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("Failed to list properties", zap.Error(err))
		respondInternalError(c)
		return
	}

	respondList(c, properties, total, params)
}

// UpdateProperty handles both PUT (all fields required) and PATCH (only the
// provided fields are applied).
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := h.store.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			respondNotFound(c, "Property not found")
			return
		}
		h.logger.Error("Failed to get property", zap.Error(err), zap.Int64("id", id))
		respondInternalError(c)
		return
	}

	var req models.UpdatePropertyRequest
	if c.Request.Method == http.MethodPut {
		var full models.CreatePropertyRequest
		if !bindJSON(c, &full) {
			return
		}
		req = models.UpdatePropertyRequest{
			Name:     &full.Name,
			Address:  &full.Address,
			Bedrooms: full.Bedrooms,
			Rent:     full.Rent,
		}
	} else {
		if !bindJSON(c, &req) {
			return
		}
	}

	property, err := h.store.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			respondNotFound(c, "Property not found")
			return
		}
		h.logger.Error("Failed to update property", zap.Error(err), zap.Int64("id", id))
		respondInternalError(c)
		return
	}

	respondData(c, http.StatusOK, property)
}

// DeleteProperty removes the property and cascades to its tenants and their
// payments.
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			respondNotFound(c, "Property not found")
			return
		}
		h.logger.Error("Failed to delete property", zap.Error(err), zap.Int64("id", id))
		respondInternalError(c)
		return
	}

	respondMessage(c, http.StatusOK, "Property deleted successfully")
}
