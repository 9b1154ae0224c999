package http

import (
	"time"

	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/category"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest is the body of POST /api/v1/categories.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UpdateCategoryRequest is the body of PATCH /api/v1/categories/:categoryId.
// Absent fields leave the stored value untouched.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku"`
	CategoryIDs []string        `json:"categoryIds,omitempty"`
}

// UpdateProductRequest is the body of PATCH /api/v1/products/:productId.
// Absent fields leave the stored value untouched. CategoryIDs follows the
// same rule at the association level: absent preserves the current set,
// present (including empty) replaces it.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	SKU         *string          `json:"sku,omitempty"`
	CategoryIDs []string         `json:"categoryIds,omitempty"`
}

// CategoryResponse is the wire representation of a category.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductResponse is the wire representation of a product with its categories.
type ProductResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description *string            `json:"description,omitempty"`
	Price       decimal.Decimal    `json:"price"`
	SKU         string             `json:"sku"`
	Categories  []CategoryResponse `json:"categories"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ErrorResponse is the uniform error body for all failure statuses.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toCategoryResponse(cat *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID().String(),
		Name:        cat.Name(),
		Description: cat.Description(),
		CreatedAt:   cat.CreatedAt(),
		UpdatedAt:   cat.UpdatedAt(),
	}
}

func toCategoryResponses(cats []*category.Category) []CategoryResponse {
	response := make([]CategoryResponse, len(cats))
	for i, cat := range cats {
		response[i] = toCategoryResponse(cat)
	}
	return response
}

func toProductResponse(prod *product.Product) ProductResponse {
	return ProductResponse{
		ID:          prod.ID().String(),
		Name:        prod.Name(),
		Description: prod.Description(),
		Price:       prod.Price(),
		SKU:         prod.SKU(),
		Categories:  toCategoryResponses(prod.Categories()),
		CreatedAt:   prod.CreatedAt(),
		UpdatedAt:   prod.UpdatedAt(),
	}
}

func toProductResponses(prods []*product.Product) []ProductResponse {
	response := make([]ProductResponse, len(prods))
	for i, prod := range prods {
		response[i] = toProductResponse(prod)
	}
	return response
}
