// Package productrepo provides the GORM-backed product repository and the
// mapping between the Product aggregate and its database representation,
// including the product_categories join table.
package productrepo

import (
	"time"

	"github.com/VishnuPunati/product-catalog-service/internal/adapters/out/postgres/categoryrepo"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/category"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product aggregates.
// SKU carries a unique index; price is stored as decimal(10,2). The Categories
// association maps to the product_categories join table with a composite key
// and cascading foreign keys on both columns, so deleting either side removes
// only the affected association rows.
type ProductDTO struct {
	ID          uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	Name        string                     `gorm:"type:text;not null;index"`
	Description *string                    `gorm:"type:text"`
	Price       decimal.Decimal            `gorm:"type:decimal(10,2);not null"`
	SKU         string                     `gorm:"type:text;not null;uniqueIndex"`
	Categories  []categoryrepo.CategoryDTO `gorm:"many2many:product_categories;joinForeignKey:ProductID;joinReferences:CategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time                  `gorm:"not null"`
	UpdatedAt   time.Time                  `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation,
// including the rows for its category associations.
func fromDomain(p *product.Product) ProductDTO {
	cats := make([]categoryrepo.CategoryDTO, 0, len(p.Categories()))
	for _, c := range p.Categories() {
		cats = append(cats, categoryrepo.FromDomain(c))
	}

	return ProductDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		SKU:         p.SKU(),
		Categories:  cats,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

// toDomain converts a database DTO, with its preloaded categories, back into
// a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cats := make([]*category.Category, 0, len(dto.Categories))
	for _, catDTO := range dto.Categories {
		cat, catErr := categoryrepo.ToDomain(catDTO)
		if catErr != nil {
			return nil, catErr
		}
		cats = append(cats, cat)
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Description,
		dto.Price,
		dto.SKU,
		cats,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
