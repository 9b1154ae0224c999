package productrepo

import (
	"context"
	"errors"

	"github.com/VishnuPunati/product-catalog-service/internal/adapters/out/postgres/categoryrepo"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/category"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/product"
	"github.com/VishnuPunati/product-catalog-service/internal/core/ports"
	"github.com/VishnuPunati/product-catalog-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// fullTextPredicate matches the keyword against a natural-language token index
// over name and description. plainto_tsquery tokenizes the raw keyword, so this
// is a word match, not a substring match.
const fullTextPredicate = "to_tsvector('english', products.name || ' ' || COALESCE(products.description, '')) " +
	"@@ plainto_tsquery('english', ?)"

// GormProductRepository implements ports.ProductRepository using GORM.
// It operates on the transaction handed to it by the unit of work and never
// commits or rolls back itself.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository bound to db,
// which is expected to be an open transaction.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add stages a new product, with its category association rows, for insertion
// in the current transaction. Referenced categories must already exist; GORM
// inserts the join rows and leaves the category rows themselves untouched.
// A duplicate sku surfaces as errs.UniqueViolationError.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateError("sku", err)
	}

	aggregate.MarkPersisted(dto.CreatedAt, dto.UpdatedAt)
	return nil
}

// GetByID retrieves a product with its associated categories.
func (r *GormProductRepository) GetByID(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).Preload("Categories").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll lists products ordered by name ascending with offset pagination.
func (r *GormProductRepository) GetAll(ctx context.Context, skip, limit int) ([]*product.Product, error) {
	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Order("name ASC").
		Offset(skip).
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return mapAll(dtos)
}

// Update loads the product, applies the patch through the aggregate's
// validation, and persists the result. The category association set is left
// untouched; ReplaceCategories handles reassignment.
func (r *GormProductRepository) Update(
	ctx context.Context,
	id kernel.UUID,
	patch product.Patch,
) (*product.Product, error) {
	prod, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = patch.ApplyTo(prod); err != nil {
		return nil, err
	}

	dto := fromDomain(prod)
	if err = r.db.WithContext(ctx).Omit(clause.Associations).Save(&dto).Error; err != nil {
		return nil, translateError("sku", err)
	}

	prod.MarkPersisted(dto.CreatedAt, dto.UpdatedAt)
	return prod, nil
}

// ReplaceCategories replaces the product's full association set.
// An empty slice clears every association row for the product.
func (r *GormProductRepository) ReplaceCategories(
	ctx context.Context,
	id kernel.UUID,
	categories []*category.Category,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	dto := ProductDTO{ID: id.Bytes()}
	assoc := r.db.WithContext(ctx).Model(&dto).Association("Categories")

	if len(categories) == 0 {
		return assoc.Clear()
	}

	cats := make([]categoryrepo.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		cats = append(cats, categoryrepo.FromDomain(c))
	}

	return assoc.Replace(&cats)
}

// Delete removes the product by id. Association rows are removed by the
// ON DELETE CASCADE constraint on the join table; categories stay untouched.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Search applies the filter's conjunctive predicates, deduplicates products
// reached through multiple join rows, and returns results ordered by name
// ascending with offset pagination. An empty filter degenerates to GetAll.
func (r *GormProductRepository) Search(
	ctx context.Context,
	filter ports.ProductSearchFilter,
) ([]*product.Product, error) {
	query := r.db.WithContext(ctx).Model(&ProductDTO{}).Preload("Categories")

	if filter.Keyword != "" {
		query = query.Where(fullTextPredicate, filter.Keyword)
	}

	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}

	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}

	if filter.CategoryID != nil {
		query = query.
			Joins("JOIN product_categories ON product_categories.product_id = products.id").
			Where("product_categories.category_id = ?", filter.CategoryID.Bytes()).
			Distinct("products.*")
	}

	var dtos []ProductDTO
	err := query.
		Order("products.name ASC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return mapAll(dtos)
}

func mapAll(dtos []ProductDTO) ([]*product.Product, error) {
	prods := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		prod, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		prods = append(prods, prod)
	}

	return prods, nil
}

// translateError converts a PostgreSQL unique violation into the typed
// errs.UniqueViolationError; everything else propagates unchanged.
func translateError(paramName string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return errs.NewUniqueViolationError(paramName, err)
	}
	return err
}
