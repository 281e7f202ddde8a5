package api

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/masindes/Rent-Management-app/internal/models"
)

// Error categories carried in the envelope's "error" field.
const (
	categoryValidation = "validation_error"
	categoryNotFound   = "not_found"
	categoryInternal   = "internal_error"
)

const internalErrorMessage = "an unexpected error occurred"

func init() {
	// Report validation failures by JSON field name rather than Go field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, models.Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, models.Response{Success: true, Data: gin.H{"message": message}})
}

func respondList(c *gin.Context, data interface{}, total int64, params models.PageParams) {
	c.JSON(http.StatusOK, models.ListResponse{
		Success:     true,
		Data:        data,
		Total:       total,
		Pages:       params.TotalPages(total),
		CurrentPage: params.Page,
	})
}

func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: categoryValidation, Message: message})
}

func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Error: categoryNotFound, Message: message})
}

func respondInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: categoryInternal, Message: internalErrorMessage})
}

// bindJSON binds the request body into obj, answering a 400 with an
// aggregated message on failure. All missing required fields are reported in
// one message, not just the first.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondValidationError(c, bindingErrorMessage(err))
		return false
	}
	return true
}

func bindingErrorMessage(err error) string {
	if errors.Is(err, models.ErrInvalidDate) {
		return models.ErrInvalidDate.Error()
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		var missing, invalid []string
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				missing = append(missing, fe.Field())
			} else {
				invalid = append(invalid, fe.Field())
			}
		}
		parts := []string{}
		if len(missing) > 0 {
			parts = append(parts, "missing required fields: "+strings.Join(missing, ", "))
		}
		if len(invalid) > 0 {
			parts = append(parts, "invalid fields: "+strings.Join(invalid, ", "))
		}
		return strings.Join(parts, "; ")
	}

	return "invalid JSON payload"
}

// parseIDParam reads the :id path segment; non-numeric ids are a 400.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondValidationError(c, "invalid id format")
		return 0, false
	}
	return id, true
}

func bindPageParams(c *gin.Context) (models.PageParams, bool) {
	var params models.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, "invalid pagination parameters")
		return params, false
	}
	params.Normalize()
	return params, true
}
