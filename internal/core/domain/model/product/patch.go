package product

import (
	"strings"

	"github.com/VishnuPunati/product-catalog-service/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Patch is an explicit partial-update request for a product.
// A nil field means "leave the stored value untouched"; a non-nil field
// overwrites it. Category reassignment is not part of the patch: it is a
// separate full-set replacement handled by the service layer.
type Patch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	SKU         *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.SKU == nil
}

// Validate checks the patch's present fields against the aggregate's
// invariants without touching any entity. Lets callers reject a bad patch
// before opening a transaction.
func (p Patch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if p.Price != nil && p.Price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}
	if p.SKU != nil && !skuPattern.MatchString(*p.SKU) {
		return errs.NewValueIsInvalidError("sku")
	}

	return nil
}

// ApplyTo overwrites the fields of prod that the patch carries,
// running the aggregate's validation for each one.
func (p Patch) ApplyTo(prod *Product) error {
	if err := prod.Validate(); err != nil {
		return err
	}

	if p.Name != nil {
		if err := prod.Rename(*p.Name); err != nil {
			return err
		}
	}

	if p.Description != nil {
		prod.ChangeDescription(p.Description)
	}

	if p.Price != nil {
		if err := prod.ChangePrice(*p.Price); err != nil {
			return err
		}
	}

	if p.SKU != nil {
		if err := prod.ChangeSKU(*p.SKU); err != nil {
			return err
		}
	}

	return nil
}
