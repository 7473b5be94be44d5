package models

import "math"

// PaginationParams holds page, search and sorting query parameters.
type PaginationParams struct {
	Page   int    `json:"page" query:"page" example:"1"`
	Limit  int    `json:"limit" query:"limit" example:"10"`
	Search string `json:"search" query:"search" example:""`
	SortBy string `json:"sortBy" query:"sortBy" example:"createdAt"`
	Order  string `json:"order" query:"order" example:"desc"` // asc / desc
}

// PaginatedResponse is the standard paginated list envelope.
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// DefaultPagination returns the default listing parameters.
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:   1,
		Limit:  10,
		Search: "",
		SortBy: "createdAt",
		Order:  "desc",
	}
}

// NewPaginatedResponse builds the envelope around one page of data.
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// GetSkip returns the number of documents to skip for the current page.
func (p *PaginationParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// GetSortOrder maps the sort parameters to a Mongo sort document.
func (p *PaginationParams) GetSortOrder() map[string]int {
	order := 1 // 1 = asc, -1 = desc
	if p.Order == "desc" {
		order = -1
	}
	return map[string]int{p.SortBy: order}
}
