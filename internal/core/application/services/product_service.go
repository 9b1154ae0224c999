package services

import (
	"context"
	"errors"

	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/category"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/product"
	"github.com/VishnuPunati/product-catalog-service/internal/core/ports"
	"github.com/VishnuPunati/product-catalog-service/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrCategoriesNotFound is returned when one or more category ids referenced
// by a create or update cannot be resolved. It unwraps to
// errs.ErrValueIsInvalid so the boundary maps it to a client error, and the
// surrounding transaction rolls back so no partial association survives.
var ErrCategoriesNotFound = errs.NewValueIsInvalidErrorWithCause(
	"categoryIds", errors.New("one or more categories not found"))

// CreateProductRequest carries the typed arguments for product creation.
type CreateProductRequest struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	SKU         string
	CategoryIDs []kernel.UUID
}

// ProductService orchestrates product operations inside unit-of-work scopes.
type ProductService struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewProductService creates a ProductService backed by the given
// unit-of-work factory.
func NewProductService(uowFactory ports.UnitOfWorkFactory) *ProductService {
	return &ProductService{uowFactory: uowFactory}
}

// CreateProduct validates and persists a new product. When category ids are
// supplied, each is resolved within the same transaction; if any fails to
// resolve the whole operation fails and nothing is persisted.
func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*product.Product, error) {
	prod, err := product.NewProduct(kernel.NewUUID(), req.Name, req.Description, req.Price, req.SKU)
	if err != nil {
		return nil, err
	}

	err = ports.RunInTransaction(ctx, s.uowFactory, func(uow ports.UnitOfWork) error {
		productRepo, repoErr := uow.ProductRepository()
		if repoErr != nil {
			return repoErr
		}

		if len(req.CategoryIDs) > 0 {
			categoryRepo, catRepoErr := uow.CategoryRepository()
			if catRepoErr != nil {
				return catRepoErr
			}

			cats, resolveErr := resolveCategories(ctx, categoryRepo, req.CategoryIDs)
			if resolveErr != nil {
				return resolveErr
			}

			if assignErr := prod.AssignCategories(cats); assignErr != nil {
				return assignErr
			}
		}

		return productRepo.Add(ctx, prod)
	})
	if err != nil {
		return nil, err
	}

	return prod, nil
}

// GetProduct retrieves a product with its associated categories.
// Returns errs.ObjectNotFoundError when no product has that id.
func (s *ProductService) GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	var prod *product.Product

	err := ports.RunInTransaction(ctx, s.uowFactory, func(uow ports.UnitOfWork) error {
		repo, repoErr := uow.ProductRepository()
		if repoErr != nil {
			return repoErr
		}

		var getErr error
		prod, getErr = repo.GetByID(ctx, id)
		return getErr
	})
	if err != nil {
		return nil, err
	}

	return prod, nil
}

// ListProducts lists products ordered by name ascending.
// Pagination bounds are validated before the transaction opens.
func (s *ProductService) ListProducts(ctx context.Context, skip, limit int) ([]*product.Product, error) {
	if err := validatePage(skip, limit); err != nil {
		return nil, err
	}

	var prods []*product.Product

	err := ports.RunInTransaction(ctx, s.uowFactory, func(uow ports.UnitOfWork) error {
		repo, repoErr := uow.ProductRepository()
		if repoErr != nil {
			return repoErr
		}

		var listErr error
		prods, listErr = repo.GetAll(ctx, skip, limit)
		return listErr
	})
	if err != nil {
		return nil, err
	}

	return prods, nil
}

// UpdateProduct applies a partial update to an existing product.
//
// Category reassignment: a nil categoryIDs slice leaves the existing
// association set untouched; a non-nil slice (including an empty one)
// replaces the full set, resolving every id within the same transaction.
// Returns errs.ObjectNotFoundError when the product id does not exist.
func (s *ProductService) UpdateProduct(
	ctx context.Context,
	id kernel.UUID,
	patch product.Patch,
	categoryIDs []kernel.UUID,
) (*product.Product, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var prod *product.Product

	err := ports.RunInTransaction(ctx, s.uowFactory, func(uow ports.UnitOfWork) error {
		productRepo, repoErr := uow.ProductRepository()
		if repoErr != nil {
			return repoErr
		}

		var updErr error
		prod, updErr = productRepo.Update(ctx, id, patch)
		if updErr != nil {
			return updErr
		}

		if categoryIDs == nil {
			return nil
		}

		categoryRepo, catRepoErr := uow.CategoryRepository()
		if catRepoErr != nil {
			return catRepoErr
		}

		cats, resolveErr := resolveCategories(ctx, categoryRepo, categoryIDs)
		if resolveErr != nil {
			return resolveErr
		}

		if replaceErr := productRepo.ReplaceCategories(ctx, id, cats); replaceErr != nil {
			return replaceErr
		}

		return prod.AssignCategories(cats)
	})
	if err != nil {
		return nil, err
	}

	return prod, nil
}

// DeleteProduct removes a product, cascading deletion of its association rows
// only. Returns false when the id does not exist; that is not an error.
func (s *ProductService) DeleteProduct(ctx context.Context, id kernel.UUID) (bool, error) {
	var deleted bool

	err := ports.RunInTransaction(ctx, s.uowFactory, func(uow ports.UnitOfWork) error {
		repo, repoErr := uow.ProductRepository()
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

// SearchProducts returns products matching the validated query's filters,
// ordered by name ascending. Query construction already rejected negative
// price bounds, so no transaction is opened for an invalid request.
func (s *ProductService) SearchProducts(ctx context.Context, query SearchProductsQuery) ([]*product.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var prods []*product.Product

	err := ports.RunInTransaction(ctx, s.uowFactory, func(uow ports.UnitOfWork) error {
		repo, repoErr := uow.ProductRepository()
		if repoErr != nil {
			return repoErr
		}

		var searchErr error
		prods, searchErr = repo.Search(ctx, query.Filter())
		return searchErr
	})
	if err != nil {
		return nil, err
	}

	return prods, nil
}

// resolveCategories loads every referenced category inside the current
// transaction. Any missing id collapses into ErrCategoriesNotFound so the
// caller's transaction rolls back as a whole.
func resolveCategories(
	ctx context.Context,
	repo ports.CategoryRepository,
	ids []kernel.UUID,
) ([]*category.Category, error) {
	cats := make([]*category.Category, 0, len(ids))
	for _, id := range ids {
		cat, err := repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, ErrCategoriesNotFound
			}
			return nil, err
		}
		cats = append(cats, cat)
	}

	return cats, nil
}
