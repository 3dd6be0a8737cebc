package dto

import "time"

// APIResponse is the envelope of every JSON response
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// PaginationInfo describes one page of a list
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"1"`
	PageSize    int   `json:"pageSize" example:"50"`
	TotalItems  int64 `json:"totalItems" example:"2"`
}

// ListResponse carries one page of the short descriptions of a catalog
type ListResponse struct {
	Items      []string       `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// NewListResponse builds a ListResponse, never returning a nil slice
func NewListResponse(items []string, pagination PaginationInfo) ListResponse {
	if items == nil {
		items = []string{}
	}
	return ListResponse{Items: items, Pagination: pagination}
}

// DescriptionResponse carries the full text of an entity
type DescriptionResponse struct {
	Text string `json:"text"`
}
