package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TenantModelTestSuite struct {
	suite.Suite
}

func (s *TenantModelTestSuite) TestTenantWireFieldNames() {
	tenant := Tenant{
		ID:         7,
		Name:       "John Doe",
		Phone:      "1234567890",
		Email:      "john@example.com",
		UnitID:     101,
		PropertyID: 1,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	jsonBytes, err := json.Marshal(tenant)
	s.NoError(err)

	var raw map[string]interface{}
	s.NoError(json.Unmarshal(jsonBytes, &raw))

	for _, key := range []string{"id", "name", "phone", "email", "unit_id", "property_id", "created_at", "updated_at"} {
		s.Contains(raw, key)
	}
	s.Equal(float64(101), raw["unit_id"])
	s.Equal(float64(1), raw["property_id"])
}

func (s *TenantModelTestSuite) TestUpdateRequestLeavesAbsentFieldsNil() {
	body := `{"phone":"5550000000"}`

	var req UpdateTenantRequest
	s.NoError(json.Unmarshal([]byte(body), &req))

	s.NotNil(req.Phone)
	s.Equal("5550000000", *req.Phone)
	s.Nil(req.Name)
	s.Nil(req.Email)
	s.Nil(req.UnitID)
	s.Nil(req.PropertyID)
}

func TestTenantModelTestSuite(t *testing.T) {
	suite.Run(t, new(TenantModelTestSuite))
}
