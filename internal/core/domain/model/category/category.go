package category

import (
	"errors"
	"strings"
	"time"

	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"
	"github.com/VishnuPunati/product-catalog-service/internal/pkg/errs"
)

var (
	// ErrCategoryIsNotConstructed is returned when a Category instance was not created
	// through NewCategory or RestoreCategory.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory")
)

// Category is an aggregate root representing a product grouping in the catalog.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must be non-empty (and unique across the store, enforced by a DB constraint)
//   - Can only be created through NewCategory or RestoreCategory
//
// Timestamps are owned by the store: they are zero on a freshly constructed
// category and populated when the entity is persisted or restored.
type Category struct {
	id          kernel.UUID
	name        string
	description *string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCategory creates a new Category with a validated name and optional description.
func NewCategory(id kernel.UUID, name string, description *string) (*Category, error) {
	c := &Category{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.description = description
	return c, nil
}

// RestoreCategory reconstructs a Category from persistence, including its
// store-assigned timestamps. The same validation rules as NewCategory apply.
func RestoreCategory(
	id kernel.UUID,
	name string,
	description *string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Category, error) {
	c, err := NewCategory(id, name, description)
	if err != nil {
		return nil, err
	}

	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the Category was properly constructed.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}

	return nil
}

// IsEqual compares two categories by their unique identifiers.
func (c *Category) IsEqual(other *Category) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Description returns the optional category description.
// Returns nil when no description is set.
func (c *Category) Description() *string {
	return c.description
}

// CreatedAt returns the store-assigned creation timestamp.
func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the store-assigned last-update timestamp.
func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

// MarkPersisted records the store-assigned timestamps after an insert or
// update flushed the entity. Called by repositories only.
func (c *Category) MarkPersisted(createdAt, updatedAt time.Time) {
	c.createdAt = createdAt
	c.updatedAt = updatedAt
}

// Rename changes the category name, enforcing the non-empty invariant.
func (c *Category) Rename(name string) error {
	return c.setName(name)
}

// ChangeDescription replaces the category description.
func (c *Category) ChangeDescription(description *string) {
	c.description = description
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
