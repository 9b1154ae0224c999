package ports

import (
	"context"

	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/category"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductSearchFilter carries the optional, conjunctive filters for a product
// search. Zero/nil fields skip the corresponding filter. Skip and Limit are
// validated by the caller before the filter reaches a repository.
type ProductSearchFilter struct {
	// Keyword is matched with a natural-language full-text predicate over
	// name and description. Empty skips the keyword filter.
	Keyword string

	// CategoryID restricts results to products associated with the category.
	CategoryID *kernel.UUID

	// MinPrice and MaxPrice are inclusive bounds on price.
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal

	Skip  int
	Limit int
}

// ProductRepository defines the persistence contract for product aggregates.
// All operations run against the transaction of the unit of work that produced
// the repository; repositories never begin, commit, or roll back a transaction.
type ProductRepository interface {
	// GetByID retrieves a product with its associated categories.
	// Returns errs.ObjectNotFoundError when no product has that id.
	GetByID(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll lists products ordered by name ascending, with offset/limit
	// pagination. Bounds on skip and limit are enforced by the caller.
	GetAll(ctx context.Context, skip, limit int) ([]*product.Product, error)

	// Add stages a new product, including its category association rows,
	// for insertion in the current transaction.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update loads the product by id, overwrites the fields the patch carries,
	// and persists the result. Absent patch fields and the category
	// association set are left untouched. Returns errs.ObjectNotFoundError
	// when the id does not exist; never creates a new product.
	Update(ctx context.Context, id kernel.UUID, patch product.Patch) (*product.Product, error)

	// ReplaceCategories replaces the product's full association set with the
	// given categories. An empty slice clears all associations.
	ReplaceCategories(ctx context.Context, id kernel.UUID, categories []*category.Category) error

	// Delete removes the product with the given id, cascading removal of its
	// association rows only. Returns false when the id does not exist.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)

	// Search returns products matching every supplied filter, deduplicated,
	// ordered by name ascending, and paginated by the filter's skip/limit.
	// An empty filter is equivalent to GetAll with the same pagination.
	Search(ctx context.Context, filter ProductSearchFilter) ([]*product.Product, error)
}
