package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type PaymentModelTestSuite struct {
	suite.Suite
}

func (s *PaymentModelTestSuite) TestPaymentDateSerializesAsCalendarDay() {
	payment := Payment{
		ID:          1,
		PaymentType: "Rent",
		Status:      StatusPaid,
		Amount:      2500,
		PaymentDate: NewDate(2025, time.January, 1),
		ReceivedAt:  time.Now(),
		TenantID:    1,
	}

	jsonBytes, err := json.Marshal(payment)
	s.NoError(err)

	var raw map[string]interface{}
	s.NoError(json.Unmarshal(jsonBytes, &raw))

	// payment_date is a bare day; received_at keeps the full timestamp
	s.Equal("2025-01-01", raw["payment_date"])
	s.NotEqual("2025-01-01", raw["received_at"])
}

func (s *PaymentModelTestSuite) TestCreateRequestParsesDate() {
	body := `{"payment_type":"Rent","amount":1800,"payment_date":"2025-02-28","tenant_id":2}`

	var req CreatePaymentRequest
	s.NoError(json.Unmarshal([]byte(body), &req))
	s.Equal("2025-02-28", req.PaymentDate.String())
	s.Equal(int64(2), *req.TenantID)
	s.Empty(req.Status)
}

func (s *PaymentModelTestSuite) TestCreateRequestRejectsBadDate() {
	body := `{"payment_type":"Rent","amount":1800,"payment_date":"28/02/2025","tenant_id":2}`

	var req CreatePaymentRequest
	s.ErrorIs(json.Unmarshal([]byte(body), &req), ErrInvalidDate)
}

func (s *PaymentModelTestSuite) TestStatusValues() {
	s.Equal("pending", StatusPending)
	s.Equal("paid", StatusPaid)
	s.Equal("failed", StatusFailed)
	s.Equal("refunded", StatusRefunded)
}

func TestPaymentModelTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentModelTestSuite))
}
