package category

import (
	"strings"

	"github.com/VishnuPunati/product-catalog-service/internal/pkg/errs"
)

// Patch is an explicit partial-update request for a category.
// A nil field means "leave the stored value untouched"; a non-nil field
// overwrites it. This removes the ambiguity between "clear" and "omit"
// that a bare optional-field update would have.
type Patch struct {
	Name        *string
	Description *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil
}

// Validate checks the patch's present fields against the aggregate's
// invariants without touching any entity. Lets callers reject a bad patch
// before opening a transaction.
func (p Patch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	return nil
}

// ApplyTo overwrites the fields of c that the patch carries,
// running the aggregate's validation for each one.
func (p Patch) ApplyTo(c *Category) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if p.Name != nil {
		if err := c.Rename(*p.Name); err != nil {
			return err
		}
	}

	if p.Description != nil {
		c.ChangeDescription(p.Description)
	}

	return nil
}
