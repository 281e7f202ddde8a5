package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PageParamsTestSuite struct {
	suite.Suite
}

func (s *PageParamsTestSuite) TestNormalizeDefaults() {
	params := PageParams{}
	params.Normalize()

	s.Equal(1, params.Page)
	s.Equal(10, params.PerPage)
	s.Equal(0, params.Offset())
}

func (s *PageParamsTestSuite) TestNormalizeClampsPerPage() {
	params := PageParams{Page: 2, PerPage: 500}
	params.Normalize()

	s.Equal(2, params.Page)
	s.Equal(100, params.PerPage)
	s.Equal(100, params.Offset())
}

func (s *PageParamsTestSuite) TestNormalizeNegativeValues() {
	params := PageParams{Page: -3, PerPage: -1}
	params.Normalize()

	s.Equal(1, params.Page)
	s.Equal(10, params.PerPage)
}

func (s *PageParamsTestSuite) TestOffset() {
	params := PageParams{Page: 2, PerPage: 5}
	params.Normalize()

	s.Equal(5, params.Offset())
}

func (s *PageParamsTestSuite) TestTotalPages() {
	params := PageParams{Page: 2, PerPage: 5}
	params.Normalize()

	s.Equal(3, params.TotalPages(12))
	s.Equal(1, params.TotalPages(5))
	s.Equal(2, params.TotalPages(6))
	s.Equal(0, params.TotalPages(0))
}

func TestPageParamsTestSuite(t *testing.T) {
	suite.Run(t, new(PageParamsTestSuite))
}
