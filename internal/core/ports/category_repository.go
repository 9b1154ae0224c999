// Package ports defines repository and unit-of-work interfaces for the catalog domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and substitution with fakes in tests.
package ports

import (
	"context"

	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/category"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"
)

// CategoryRepository defines the persistence contract for category aggregates.
// All operations run against the transaction of the unit of work that produced
// the repository; repositories never begin, commit, or roll back a transaction.
type CategoryRepository interface {
	// GetByID retrieves a category by its unique identifier.
	// Returns errs.ObjectNotFoundError when no category has that id.
	GetByID(ctx context.Context, id kernel.UUID) (*category.Category, error)

	// GetAll lists categories ordered by name ascending, with offset/limit
	// pagination. Bounds on skip and limit are enforced by the caller.
	GetAll(ctx context.Context, skip, limit int) ([]*category.Category, error)

	// Add stages a new category for insertion in the current transaction.
	// Identity is assigned at construction time, not by the repository.
	Add(ctx context.Context, aggregate *category.Category) error

	// Update loads the category by id, overwrites the fields the patch carries,
	// and persists the result. Absent patch fields are left untouched.
	// Returns errs.ObjectNotFoundError when the id does not exist; never
	// creates a new category.
	Update(ctx context.Context, id kernel.UUID, patch category.Patch) (*category.Category, error)

	// Delete removes the category with the given id, cascading removal of its
	// association rows only. Returns false when the id does not exist.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)
}
