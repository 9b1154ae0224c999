package product

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/category"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"
	"github.com/VishnuPunati/product-catalog-service/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// skuPattern constrains stock keeping units to uppercase alphanumerics and hyphens.
var skuPattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

// Product is the aggregate root for a catalog item.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must be non-empty
//   - Price must be non-negative (stored as decimal(10,2))
//   - SKU must match ^[A-Z0-9-]+$ (and be unique across the store, enforced by a DB constraint)
//   - Can only be created through NewProduct or RestoreProduct
//
// A product owns its side of the many-to-many association with categories.
// Timestamps are owned by the store: zero on a freshly constructed product,
// populated when persisted or restored.
type Product struct {
	id          kernel.UUID
	name        string
	description *string
	price       decimal.Decimal
	sku         string

	categories []*category.Category

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewProduct creates a new Product, validating name, price, and sku.
// The product starts with no category associations; use AssignCategories
// to attach resolved categories before persisting.
func NewProduct(
	id kernel.UUID,
	name string,
	description *string,
	price decimal.Decimal,
	sku string,
) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setSKU(sku),
	); err != nil {
		return nil, err
	}

	p.description = description
	return p, nil
}

// RestoreProduct reconstructs a Product from persistence, including its
// category associations and store-assigned timestamps.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description *string,
	price decimal.Decimal,
	sku string,
	categories []*category.Category,
	createdAt time.Time,
	updatedAt time.Time,
) (*Product, error) {
	p, err := NewProduct(id, name, description, price, sku)
	if err != nil {
		return nil, err
	}

	if err = p.AssignCategories(categories); err != nil {
		return nil, err
	}

	p.createdAt = createdAt
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the optional product description.
// Returns nil when no description is set.
func (p *Product) Description() *string {
	return p.description
}

// Price returns the product price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// SKU returns the product's stock keeping unit.
func (p *Product) SKU() string {
	return p.sku
}

// Categories returns the categories currently associated with the product.
func (p *Product) Categories() []*category.Category {
	return p.categories
}

// CreatedAt returns the store-assigned creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the store-assigned last-update timestamp.
func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// MarkPersisted records the store-assigned timestamps after an insert or
// update flushed the entity. Called by repositories only.
func (p *Product) MarkPersisted(createdAt, updatedAt time.Time) {
	p.createdAt = createdAt
	p.updatedAt = updatedAt
}

// Rename changes the product name, enforcing the non-empty invariant.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// ChangeDescription replaces the product description.
func (p *Product) ChangeDescription(description *string) {
	p.description = description
}

// ChangePrice changes the product price, enforcing non-negativity.
func (p *Product) ChangePrice(price decimal.Decimal) error {
	return p.setPrice(price)
}

// ChangeSKU changes the product sku, enforcing the allowed pattern.
func (p *Product) ChangeSKU(sku string) error {
	return p.setSKU(sku)
}

// AssignCategories replaces the product's full category association set.
// Every category must be a properly constructed aggregate. Passing an empty
// slice clears all associations.
func (p *Product) AssignCategories(categories []*category.Category) error {
	for _, c := range categories {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	p.categories = categories
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}

	p.price = price
	return nil
}

func (p *Product) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	if !skuPattern.MatchString(sku) {
		return errs.NewValueIsInvalidError("sku")
	}

	p.sku = sku
	return nil
}
