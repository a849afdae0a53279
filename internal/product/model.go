package product

import (
	"time"
)

const MessageFetchSuccess = "Data fetched successfully"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Product struct {
	ProductId   int64     `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListQuery carries the pagination knobs from the query string. Missing or
// zero values fall back to the defaults before validation runs.
type ListQuery struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

func (query *ListQuery) SetDefaults() {
	if query.Page == 0 {
		query.Page = DefaultPage
	}
	if query.Limit == 0 {
		query.Limit = DefaultLimit
	}
}

func (query *ListQuery) Messages() map[string]string {
	return map[string]string{
		"Page.min":  "Page must be a positive number",
		"Limit.min": "Limit must be a positive number",
		"Limit.max": "Limit cannot exceed 100",
	}
}

func (query *ListQuery) Offset() int {
	return (query.Page - 1) * query.Limit
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

type ProductList struct {
	ProductData []Product  `json:"productData"`
	Pagination  Pagination `json:"pagination"`
}
