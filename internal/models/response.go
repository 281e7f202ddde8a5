package models

// Response is the envelope for single-entity success payloads.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ListResponse is the envelope for paginated collections.
type ListResponse struct {
	Success     bool        `json:"success"`
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Pages       int         `json:"pages"`
	CurrentPage int         `json:"current_page"`
}

// ErrorResponse is the envelope for every failure, with Error holding the
// category (validation_error, not_found, internal_error) and Message the
// human-readable detail.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

type PageParams struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

// Normalize applies the default page window and clamps the page size.
func (p *PageParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 10
	} else if p.PerPage > 100 {
		p.PerPage = 100
	}
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// TotalPages computes the page count for a total row count.
func (p PageParams) TotalPages(total int64) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
}
