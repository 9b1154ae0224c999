package services

import (
	"context"

	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/category"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"
	"github.com/VishnuPunati/product-catalog-service/internal/core/ports"
)

// CategoryService orchestrates category operations inside unit-of-work scopes.
type CategoryService struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewCategoryService creates a CategoryService backed by the given
// unit-of-work factory. The factory is an explicit dependency; its lifecycle
// is owned by the composition root.
func NewCategoryService(uowFactory ports.UnitOfWorkFactory) *CategoryService {
	return &CategoryService{uowFactory: uowFactory}
}

// CreateCategory validates and persists a new category.
// Name validation happens in the aggregate constructor, before any
// transaction is opened.
func (s *CategoryService) CreateCategory(
	ctx context.Context,
	name string,
	description *string,
) (*category.Category, error) {
	cat, err := category.NewCategory(kernel.NewUUID(), name, description)
	if err != nil {
		return nil, err
	}

	err = ports.RunInTransaction(ctx, s.uowFactory, func(uow ports.UnitOfWork) error {
		repo, repoErr := uow.CategoryRepository()
		if repoErr != nil {
			return repoErr
		}

		return repo.Add(ctx, cat)
	})
	if err != nil {
		return nil, err
	}

	return cat, nil
}

// GetCategory retrieves a category by id.
// Returns errs.ObjectNotFoundError when no category has that id.
func (s *CategoryService) GetCategory(ctx context.Context, id kernel.UUID) (*category.Category, error) {
	var cat *category.Category

	err := ports.RunInTransaction(ctx, s.uowFactory, func(uow ports.UnitOfWork) error {
		repo, repoErr := uow.CategoryRepository()
		if repoErr != nil {
			return repoErr
		}

		var getErr error
		cat, getErr = repo.GetByID(ctx, id)
		return getErr
	})
	if err != nil {
		return nil, err
	}

	return cat, nil
}

// ListCategories lists categories ordered by name ascending.
// Pagination bounds are validated before the transaction opens.
func (s *CategoryService) ListCategories(ctx context.Context, skip, limit int) ([]*category.Category, error) {
	if err := validatePage(skip, limit); err != nil {
		return nil, err
	}

	var cats []*category.Category

	err := ports.RunInTransaction(ctx, s.uowFactory, func(uow ports.UnitOfWork) error {
		repo, repoErr := uow.CategoryRepository()
		if repoErr != nil {
			return repoErr
		}

		var listErr error
		cats, listErr = repo.GetAll(ctx, skip, limit)
		return listErr
	})
	if err != nil {
		return nil, err
	}

	return cats, nil
}

// UpdateCategory applies a partial update to an existing category.
// Fields absent from the patch are left untouched. Returns
// errs.ObjectNotFoundError when the id does not exist.
func (s *CategoryService) UpdateCategory(
	ctx context.Context,
	id kernel.UUID,
	patch category.Patch,
) (*category.Category, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var cat *category.Category

	err := ports.RunInTransaction(ctx, s.uowFactory, func(uow ports.UnitOfWork) error {
		repo, repoErr := uow.CategoryRepository()
		if repoErr != nil {
			return repoErr
		}

		var updErr error
		cat, updErr = repo.Update(ctx, id, patch)
		return updErr
	})
	if err != nil {
		return nil, err
	}

	return cat, nil
}

// DeleteCategory removes a category, cascading deletion of its association
// rows only. Returns false when the id does not exist; that is not an error.
func (s *CategoryService) DeleteCategory(ctx context.Context, id kernel.UUID) (bool, error) {
	var deleted bool

	err := ports.RunInTransaction(ctx, s.uowFactory, func(uow ports.UnitOfWork) error {
		repo, repoErr := uow.CategoryRepository()
		if repoErr != nil {
			return repoErr
		}

		var delErr error
		deleted, delErr = repo.Delete(ctx, id)
		return delErr
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}
