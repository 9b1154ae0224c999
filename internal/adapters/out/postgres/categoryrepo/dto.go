// Package categoryrepo provides the GORM-backed category repository and the
// mapping between the Category aggregate and its database representation.
package categoryrepo

import (
	"time"

	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/category"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for persisting category aggregates.
// Name carries a unique index; timestamps are maintained by GORM on insert/update.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:text;not null;uniqueIndex"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "categories".
func (CategoryDTO) TableName() string {
	return "categories"
}

// FromDomain converts a category aggregate to its database representation.
// Zero timestamps on a fresh aggregate are filled in by GORM at insert time.
func FromDomain(c *category.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		Description: c.Description(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

// ToDomain converts a database DTO back into a category aggregate.
// Exported because the product repository reconstructs associated categories
// from the same rows.
func ToDomain(dto CategoryDTO) (*category.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return category.RestoreCategory(id, dto.Name, dto.Description, dto.CreatedAt, dto.UpdatedAt)
}
