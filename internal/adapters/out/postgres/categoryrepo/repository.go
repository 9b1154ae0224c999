package categoryrepo

import (
	"context"
	"errors"

	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/category"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"
	"github.com/VishnuPunati/product-catalog-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// GormCategoryRepository implements ports.CategoryRepository using GORM.
// It operates on the transaction handed to it by the unit of work and never
// commits or rolls back itself.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository bound to db,
// which is expected to be an open transaction.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Add stages a new category for insertion in the current transaction.
// A duplicate name surfaces as errs.UniqueViolationError.
func (r *GormCategoryRepository) Add(ctx context.Context, aggregate *category.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateError("name", err)
	}

	aggregate.MarkPersisted(dto.CreatedAt, dto.UpdatedAt)
	return nil
}

// GetByID retrieves a category by ID.
func (r *GormCategoryRepository) GetByID(ctx context.Context, id kernel.UUID) (*category.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetAll lists categories ordered by name ascending with offset pagination.
func (r *GormCategoryRepository) GetAll(ctx context.Context, skip, limit int) ([]*category.Category, error) {
	var dtos []CategoryDTO
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(skip).
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	cats := make([]*category.Category, 0, len(dtos))
	for _, dto := range dtos {
		cat, mapErr := ToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		cats = append(cats, cat)
	}

	return cats, nil
}

// Update loads the category, applies the patch through the aggregate's
// validation, and persists the result. Fields absent from the patch keep
// their stored value.
func (r *GormCategoryRepository) Update(
	ctx context.Context,
	id kernel.UUID,
	patch category.Patch,
) (*category.Category, error) {
	cat, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = patch.ApplyTo(cat); err != nil {
		return nil, err
	}

	dto := FromDomain(cat)
	if err = r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return nil, translateError("name", err)
	}

	cat.MarkPersisted(dto.CreatedAt, dto.UpdatedAt)
	return cat, nil
}

// Delete removes the category by id. Association rows are removed by the
// ON DELETE CASCADE constraint on the join table; products stay untouched.
func (r *GormCategoryRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&CategoryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
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
