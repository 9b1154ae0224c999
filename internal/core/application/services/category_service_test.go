package services_test

import (
	"testing"

	"github.com/VishnuPunati/product-catalog-service/internal/core/application/services"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/category"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"
	"github.com/VishnuPunati/product-catalog-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	ctx := t.Context()

	uow, factory := committedUoW(ctx)
	repo := new(MockCategoryRepository)
	uow.On("CategoryRepository").Return(repo, nil).Once()
	repo.On("Add", ctx, mock.AnythingOfType("*category.Category")).Return(nil).Once()

	svc := services.NewCategoryService(factory)
	cat, err := svc.CreateCategory(ctx, "Electronics", strPtr("Electronic items"))

	require.NoError(t, err)
	assert.Equal(t, "Electronics", cat.Name())
	require.NoError(t, cat.ID().Validate(), "identity is assigned at construction time")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCategoryService_CreateCategory_EmptyName_NoTransaction(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUnitOfWorkFactory)

	svc := services.NewCategoryService(factory)
	_, err := svc.CreateCategory(ctx, "   ", nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	uow, factory := rolledBackUoW(ctx)
	repo := new(MockCategoryRepository)
	uow.On("CategoryRepository").Return(repo, nil).Once()
	repo.On("GetByID", ctx, id).Return(nil, errs.NewObjectNotFoundError("category", id.String())).Once()

	svc := services.NewCategoryService(factory)
	_, err := svc.GetCategory(ctx, id)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCategoryService_ListCategories(t *testing.T) {
	t.Run("delegates pagination to the repository", func(t *testing.T) {
		ctx := t.Context()

		electronics, err := category.NewCategory(kernel.NewUUID(), "Electronics", nil)
		require.NoError(t, err)

		uow, factory := committedUoW(ctx)
		repo := new(MockCategoryRepository)
		uow.On("CategoryRepository").Return(repo, nil).Once()
		repo.On("GetAll", ctx, 0, 10).Return([]*category.Category{electronics}, nil).Once()

		svc := services.NewCategoryService(factory)
		cats, err := svc.ListCategories(ctx, 0, 10)

		require.NoError(t, err)
		require.Len(t, cats, 1)
		assert.Equal(t, "Electronics", cats[0].Name())
	})

	t.Run("rejects bad pagination before opening a transaction", func(t *testing.T) {
		ctx := t.Context()
		factory := new(MockUnitOfWorkFactory)
		svc := services.NewCategoryService(factory)

		_, err := svc.ListCategories(ctx, -1, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = svc.ListCategories(ctx, 0, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = svc.ListCategories(ctx, 0, 101)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		factory.AssertNotCalled(t, "Create")
	})
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	t.Run("passes patch through", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()

		updated, err := category.NewCategory(id, "Gadgets", nil)
		require.NoError(t, err)

		patch := category.Patch{Name: strPtr("Gadgets")}

		uow, factory := committedUoW(ctx)
		repo := new(MockCategoryRepository)
		uow.On("CategoryRepository").Return(repo, nil).Once()
		repo.On("Update", ctx, id, patch).Return(updated, nil).Once()

		svc := services.NewCategoryService(factory)
		cat, err := svc.UpdateCategory(ctx, id, patch)

		require.NoError(t, err)
		assert.Equal(t, "Gadgets", cat.Name())
		repo.AssertExpectations(t)
	})

	t.Run("invalid patch rejected before transaction", func(t *testing.T) {
		ctx := t.Context()
		factory := new(MockUnitOfWorkFactory)

		svc := services.NewCategoryService(factory)
		_, err := svc.UpdateCategory(ctx, kernel.NewUUID(), category.Patch{Name: strPtr("  ")})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()

		uow, factory := committedUoW(ctx)
		repo := new(MockCategoryRepository)
		uow.On("CategoryRepository").Return(repo, nil).Once()
		repo.On("Delete", ctx, id).Return(true, nil).Once()

		svc := services.NewCategoryService(factory)
		deleted, err := svc.DeleteCategory(ctx, id)

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("missing id is not an error", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()

		uow, factory := committedUoW(ctx)
		repo := new(MockCategoryRepository)
		uow.On("CategoryRepository").Return(repo, nil).Once()
		repo.On("Delete", ctx, id).Return(false, nil).Once()

		svc := services.NewCategoryService(factory)
		deleted, err := svc.DeleteCategory(ctx, id)

		require.NoError(t, err)
		assert.False(t, deleted)
		uow.AssertExpectations(t)
	})
}
