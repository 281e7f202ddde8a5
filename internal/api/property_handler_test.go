package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/masindes/Rent-Management-app/internal/models"
)

// MockPropertyStore is an in-memory PropertyStore with call counting
type MockPropertyStore struct {
	properties map[int64]*models.Property
	nextID     int64
	calls      map[string]int
	errors     map[string]error
	mutex      sync.RWMutex
}

func NewMockPropertyStore() *MockPropertyStore {
	return &MockPropertyStore{
		properties: make(map[int64]*models.Property),
		calls:      make(map[string]int),
		errors:     make(map[string]error),
	}
}

func (m *MockPropertyStore) SetError(method string, err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.errors[method] = err
}

func (m *MockPropertyStore) GetCallCount(method string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.calls[method]
}

func (m *MockPropertyStore) AddProperty(property *models.Property) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if property.ID == 0 {
		m.nextID++
		property.ID = m.nextID
	} else if property.ID > m.nextID {
		m.nextID = property.ID
	}
	m.properties[property.ID] = property
}

func (m *MockPropertyStore) Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.Property, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.calls["Create"]++

	if err := m.errors["Create"]; err != nil {
		return nil, err
	}

	m.nextID++
	property := &models.Property{
		ID:        m.nextID,
		Name:      req.Name,
		Address:   req.Address,
		Bedrooms:  *req.Bedrooms,
		Rent:      *req.Rent,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.properties[property.ID] = property

	return property, nil
}

func (m *MockPropertyStore) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	m.calls["GetByID"]++

	if err := m.errors["GetByID"]; err != nil {
		return nil, err
	}

	property, exists := m.properties[id]
	if !exists {
		return nil, models.ErrPropertyNotFound
	}

	return property, nil
}

func (m *MockPropertyStore) List(ctx context.Context, params models.PageParams) ([]models.Property, int64, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	m.calls["List"]++

	if err := m.errors["List"]; err != nil {
		return nil, 0, err
	}

	all := []models.Property{}
	for _, property := range m.properties {
		all = append(all, *property)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	start := params.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + params.PerPage
	if end > len(all) {
		end = len(all)
	}

	return all[start:end], total, nil
}

func (m *MockPropertyStore) Update(ctx context.Context, id int64, req *models.UpdatePropertyRequest) (*models.Property, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.calls["Update"]++

	if err := m.errors["Update"]; err != nil {
		return nil, err
	}

	property, exists := m.properties[id]
	if !exists {
		return nil, models.ErrPropertyNotFound
	}

	if req.Name != nil {
		property.Name = *req.Name
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.Bedrooms != nil {
		property.Bedrooms = *req.Bedrooms
	}
	if req.Rent != nil {
		property.Rent = *req.Rent
	}
	property.UpdatedAt = time.Now()

	return property, nil
}

func (m *MockPropertyStore) Delete(ctx context.Context, id int64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.calls["Delete"]++

	if err := m.errors["Delete"]; err != nil {
		return err
	}

	if _, exists := m.properties[id]; !exists {
		return models.ErrPropertyNotFound
	}

	delete(m.properties, id)
	return nil
}

type propertyEnvelope struct {
	Success bool            `json:"success"`
	Data    models.Property `json:"data"`
}

type propertyListEnvelope struct {
	Success     bool              `json:"success"`
	Data        []models.Property `json:"data"`
	Total       int64             `json:"total"`
	Pages       int               `json:"pages"`
	CurrentPage int               `json:"current_page"`
}

type PropertyHandlerTestSuite struct {
	suite.Suite
	handler *PropertyHandler
	store   *MockPropertyStore
	logger  *zap.Logger
	router  *gin.Engine
}

func (s *PropertyHandlerTestSuite) SetupTest() {
	var err error
	s.logger, err = zap.NewDevelopment()
	s.Require().NoError(err)

	s.store = NewMockPropertyStore()
	s.handler = NewPropertyHandler(s.store, s.logger)

	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	properties := s.router.Group("/properties")
	{
		properties.GET("", s.handler.ListProperties)
		properties.POST("", s.handler.CreateProperty)
		properties.GET("/:id", s.handler.GetProperty)
		properties.PUT("/:id", s.handler.UpdateProperty)
		properties.PATCH("/:id", s.handler.UpdateProperty)
		properties.DELETE("/:id", s.handler.DeleteProperty)
	}
}

func (s *PropertyHandlerTestSuite) request(method, path string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PropertyHandlerTestSuite) TestCreateProperty_Success() {
	w := s.request("POST", "/properties",
		`{"name":"Sunset Villa","address":"123 Sunset Blvd","bedrooms":3,"rent":2500}`)

	s.Equal(http.StatusCreated, w.Code)

	var response propertyEnvelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.True(response.Success)
	s.Equal(int64(1), response.Data.ID)
	s.Equal("Sunset Villa", response.Data.Name)
	s.Equal("123 Sunset Blvd", response.Data.Address)
	s.Equal(3, response.Data.Bedrooms)
	s.Equal(2500.0, response.Data.Rent)
	s.Equal(1, s.store.GetCallCount("Create"))
}

func (s *PropertyHandlerTestSuite) TestCreateProperty_ZeroBedrooms() {
	// bedrooms 0 is a valid value, not a missing field
	w := s.request("POST", "/properties",
		`{"name":"Studio","address":"9 Short St","bedrooms":0,"rent":900}`)

	s.Equal(http.StatusCreated, w.Code)
}

func (s *PropertyHandlerTestSuite) TestCreateProperty_MissingFieldsListedTogether() {
	w := s.request("POST", "/properties", `{"name":"Sunset Villa"}`)

	s.Equal(http.StatusBadRequest, w.Code)

	var response models.ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.False(response.Success)
	s.Equal("validation_error", response.Error)
	s.Contains(response.Message, "address")
	s.Contains(response.Message, "bedrooms")
	s.Contains(response.Message, "rent")
	s.Equal(0, s.store.GetCallCount("Create"))
}

func (s *PropertyHandlerTestSuite) TestCreateProperty_NegativeRent() {
	w := s.request("POST", "/properties",
		`{"name":"Sunset Villa","address":"123 Sunset Blvd","bedrooms":3,"rent":-10}`)

	s.Equal(http.StatusBadRequest, w.Code)

	var response models.ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Contains(response.Message, "rent")
	s.Equal(0, s.store.GetCallCount("Create"))
}

func (s *PropertyHandlerTestSuite) TestCreateProperty_InvalidJSON() {
	w := s.request("POST", "/properties", `not json`)

	s.Equal(http.StatusBadRequest, w.Code)

	var response models.ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("validation_error", response.Error)
}

func (s *PropertyHandlerTestSuite) TestCreateProperty_StoreError() {
	s.store.SetError("Create", fmt.Errorf("connection refused"))

	w := s.request("POST", "/properties",
		`{"name":"Sunset Villa","address":"123 Sunset Blvd","bedrooms":3,"rent":2500}`)

	s.Equal(http.StatusInternalServerError, w.Code)

	var response models.ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("internal_error", response.Error)
	// internal detail must not leak
	s.NotContains(response.Message, "connection refused")
}

func (s *PropertyHandlerTestSuite) TestGetProperty_Success() {
	s.store.AddProperty(&models.Property{Name: "Oceanview", Address: "456 Ocean Dr", Bedrooms: 2, Rent: 1800})

	w := s.request("GET", "/properties/1", "")

	s.Equal(http.StatusOK, w.Code)

	var response propertyEnvelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("Oceanview", response.Data.Name)
}

func (s *PropertyHandlerTestSuite) TestGetProperty_NotFound() {
	w := s.request("GET", "/properties/99", "")

	s.Equal(http.StatusNotFound, w.Code)

	var response models.ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("not_found", response.Error)
}

func (s *PropertyHandlerTestSuite) TestGetProperty_InvalidID() {
	w := s.request("GET", "/properties/abc", "")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(0, s.store.GetCallCount("GetByID"))
}

func (s *PropertyHandlerTestSuite) TestListProperties_Pagination() {
	for i := 1; i <= 12; i++ {
		s.store.AddProperty(&models.Property{
			Name:     fmt.Sprintf("Property %d", i),
			Address:  fmt.Sprintf("%d Main St", i),
			Bedrooms: 2,
			Rent:     1000,
		})
	}

	w := s.request("GET", "/properties?page=2&per_page=5", "")

	s.Equal(http.StatusOK, w.Code)

	var response propertyListEnvelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.True(response.Success)
	s.Len(response.Data, 5)
	s.Equal(int64(12), response.Total)
	s.Equal(3, response.Pages)
	s.Equal(2, response.CurrentPage)
	s.Equal("Property 6", response.Data[0].Name)
}

func (s *PropertyHandlerTestSuite) TestListProperties_Defaults() {
	for i := 1; i <= 12; i++ {
		s.store.AddProperty(&models.Property{Name: fmt.Sprintf("Property %d", i)})
	}

	w := s.request("GET", "/properties", "")

	s.Equal(http.StatusOK, w.Code)

	var response propertyListEnvelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response.Data, 10)
	s.Equal(1, response.CurrentPage)
	s.Equal(2, response.Pages)
}

func (s *PropertyHandlerTestSuite) TestListProperties_Empty() {
	w := s.request("GET", "/properties", "")

	s.Equal(http.StatusOK, w.Code)
	// empty list must serialize as [], not null
	s.Contains(w.Body.String(), `"data":[]`)
}

func (s *PropertyHandlerTestSuite) TestPatchProperty_PartialMerge() {
	s.store.AddProperty(&models.Property{Name: "Sunset Villa", Address: "123 Sunset Blvd", Bedrooms: 3, Rent: 2500})

	w := s.request("PATCH", "/properties/1", `{"rent":2600}`)

	s.Equal(http.StatusOK, w.Code)

	var response propertyEnvelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(2600.0, response.Data.Rent)
	s.Equal("Sunset Villa", response.Data.Name)
	s.Equal("123 Sunset Blvd", response.Data.Address)
	s.Equal(3, response.Data.Bedrooms)
}

func (s *PropertyHandlerTestSuite) TestPatchProperty_UnknownKeysIgnored() {
	s.store.AddProperty(&models.Property{Name: "Sunset Villa", Address: "123 Sunset Blvd", Bedrooms: 3, Rent: 2500})

	w := s.request("PATCH", "/properties/1", `{"rent":2600,"owner":"nobody"}`)

	s.Equal(http.StatusOK, w.Code)

	var response propertyEnvelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(2600.0, response.Data.Rent)
}

func (s *PropertyHandlerTestSuite) TestPutProperty_RequiresAllFields() {
	s.store.AddProperty(&models.Property{Name: "Sunset Villa", Address: "123 Sunset Blvd", Bedrooms: 3, Rent: 2500})

	w := s.request("PUT", "/properties/1", `{"rent":2600}`)

	s.Equal(http.StatusBadRequest, w.Code)

	var response models.ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Contains(response.Message, "name")
	s.Contains(response.Message, "address")
	s.Contains(response.Message, "bedrooms")
	s.Equal(0, s.store.GetCallCount("Update"))
}

func (s *PropertyHandlerTestSuite) TestPutProperty_Success() {
	s.store.AddProperty(&models.Property{Name: "Sunset Villa", Address: "123 Sunset Blvd", Bedrooms: 3, Rent: 2500})

	w := s.request("PUT", "/properties/1",
		`{"name":"Sunset Villa II","address":"125 Sunset Blvd","bedrooms":4,"rent":2900}`)

	s.Equal(http.StatusOK, w.Code)

	var response propertyEnvelope
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("Sunset Villa II", response.Data.Name)
	s.Equal(4, response.Data.Bedrooms)
}

func (s *PropertyHandlerTestSuite) TestUpdateProperty_NotFound() {
	w := s.request("PATCH", "/properties/99", `{"rent":2600}`)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(0, s.store.GetCallCount("Update"))
}

func (s *PropertyHandlerTestSuite) TestDeleteProperty_Success() {
	s.store.AddProperty(&models.Property{Name: "Sunset Villa"})

	w := s.request("DELETE", "/properties/1", "")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Property deleted successfully")
	s.Equal(1, s.store.GetCallCount("Delete"))

	w = s.request("GET", "/properties/1", "")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *PropertyHandlerTestSuite) TestDeleteProperty_NotFound() {
	w := s.request("DELETE", "/properties/99", "")

	s.Equal(http.StatusNotFound, w.Code)
}

func TestPropertyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyHandlerTestSuite))
}
