package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "github.com/VishnuPunati/product-catalog-service/internal/adapters/out/postgres"
	"github.com/VishnuPunati/product-catalog-service/internal/adapters/out/postgres/categoryrepo"
	"github.com/VishnuPunati/product-catalog-service/internal/adapters/out/postgres/productrepo"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/category"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/product"
	"github.com/VishnuPunati/product-catalog-service/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work against
// a real PostgreSQL database: lifecycle rules, atomicity across repositories,
// and isolation between concurrent instances.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&categoryrepo.CategoryDTO{}, &productrepo.ProductDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE product_categories, products, categories").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIndependentInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLifecycle_BeginCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// A started instance rejects a second begin
	err = uow.Begin(ctx)
	suite.Require().ErrorIs(err, ports.ErrUnitOfWorkAlreadyStarted)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// A finished instance cannot be restarted
	err = uow.Begin(ctx)
	suite.Require().ErrorIs(err, ports.ErrUnitOfWorkFinished)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLifecycle_BeginRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().ErrorIs(err, ports.ErrUnitOfWorkFinished)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLifecycle_OperationsBeforeBeginFail() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().ErrorIs(err, ports.ErrUnitOfWorkNotStarted)

	err = uow.Rollback(ctx)
	suite.Require().ErrorIs(err, ports.ErrUnitOfWorkNotStarted)

	_, err = uow.ProductRepository()
	suite.Require().ErrorIs(err, ports.ErrUnitOfWorkNotStarted)

	_, err = uow.CategoryRepository()
	suite.Require().ErrorIs(err, ports.ErrUnitOfWorkNotStarted)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLifecycle_RepositoriesUnavailableAfterFinish() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	repo, err := uow.ProductRepository()
	suite.Require().NoError(err)
	suite.NotNil(repo)

	suite.Require().NoError(uow.Commit(ctx))

	_, err = uow.ProductRepository()
	suite.Require().ErrorIs(err, ports.ErrUnitOfWorkNotStarted)

	_, err = uow.CategoryRepository()
	suite.Require().ErrorIs(err, ports.ErrUnitOfWorkNotStarted)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	categories, err := uow.CategoryRepository()
	suite.Require().NoError(err)
	products, err := uow.ProductRepository()
	suite.Require().NoError(err)

	// Category and product created in the same transaction
	cat := createTestCategory(suite.T(), "Electronics")
	suite.Require().NoError(categories.Add(ctx, cat))

	prod := createTestProduct(suite.T(), "Smartphone", "PHONE-001",
		[]*category.Category{cat})
	suite.Require().NoError(products.Add(ctx, prod))

	// Visible within the transaction before commit
	retrieved, err := products.GetByID(ctx, prod.ID())
	suite.Require().NoError(err)
	suite.True(prod.IsEqual(retrieved))

	suite.Require().NoError(uow.Commit(ctx))

	// Visible after commit through a fresh unit of work
	newUow := suite.factory.Create()
	suite.Require().NoError(newUow.Begin(ctx))
	newProducts, err := newUow.ProductRepository()
	suite.Require().NoError(err)

	retrieved, err = newProducts.GetByID(ctx, prod.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Categories(), 1)
	suite.Equal("Electronics", retrieved.Categories()[0].Name())
	suite.Require().NoError(newUow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	categories, err := uow.CategoryRepository()
	suite.Require().NoError(err)
	products, err := uow.ProductRepository()
	suite.Require().NoError(err)

	cat := createTestCategory(suite.T(), "Electronics")
	suite.Require().NoError(categories.Add(ctx, cat))

	prod := createTestProduct(suite.T(), "Smartphone", "PHONE-001",
		[]*category.Category{cat})
	suite.Require().NoError(products.Add(ctx, prod))

	suite.Require().NoError(uow.Rollback(ctx))

	// Neither write survived
	var productCount, categoryCount int64
	suite.Require().NoError(suite.db.Model(&productrepo.ProductDTO{}).Count(&productCount).Error)
	suite.Require().NoError(suite.db.Model(&categoryrepo.CategoryDTO{}).Count(&categoryCount).Error)
	suite.Zero(productCount)
	suite.Zero(categoryCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterPartialFailure() {
	ctx := context.Background()

	// Seed a committed category so the duplicate insert can collide
	seedUow := suite.factory.Create()
	suite.Require().NoError(seedUow.Begin(ctx))
	seedCategories, err := seedUow.CategoryRepository()
	suite.Require().NoError(err)
	existing := createTestCategory(suite.T(), "Electronics")
	suite.Require().NoError(seedCategories.Add(ctx, existing))
	suite.Require().NoError(seedUow.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	categories, err := uow.CategoryRepository()
	suite.Require().NoError(err)

	// First insert succeeds within the transaction
	fresh := createTestCategory(suite.T(), "Books")
	suite.Require().NoError(categories.Add(ctx, fresh))

	// Second insert violates the unique name constraint
	duplicate := createTestCategory(suite.T(), "Electronics")
	err = categories.Add(ctx, duplicate)
	suite.Require().Error(err)

	suite.Require().NoError(uow.Rollback(ctx))

	// The successful insert was discarded with the failed one
	var count int64
	suite.Require().NoError(suite.db.Model(&categoryrepo.CategoryDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count, "only the seeded category should remain")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestIsolation_UncommittedChangesInvisibleOutside() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	categories1, err := uow1.CategoryRepository()
	suite.Require().NoError(err)
	categories2, err := uow2.CategoryRepository()
	suite.Require().NoError(err)

	cat := createTestCategory(suite.T(), "Electronics")
	suite.Require().NoError(categories1.Add(ctx, cat))

	// The second transaction cannot see the uncommitted row
	_, err = categories2.GetByID(ctx, cat.ID())
	suite.Require().Error(err)

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	// After commit a fresh transaction sees it
	uow3 := suite.factory.Create()
	suite.Require().NoError(uow3.Begin(ctx))
	categories3, err := uow3.CategoryRepository()
	suite.Require().NoError(err)

	retrieved, err := categories3.GetByID(ctx, cat.ID())
	suite.Require().NoError(err)
	suite.True(cat.IsEqual(retrieved))
	suite.Require().NoError(uow3.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRunInTransaction_CommitsOnSuccess() {
	ctx := context.Background()

	cat := createTestCategory(suite.T(), "Electronics")

	err := ports.RunInTransaction(ctx, suite.factory, func(uow ports.UnitOfWork) error {
		categories, repoErr := uow.CategoryRepository()
		if repoErr != nil {
			return repoErr
		}
		return categories.Add(ctx, cat)
	})
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&categoryrepo.CategoryDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRunInTransaction_RollsBackOnError() {
	ctx := context.Background()

	cat := createTestCategory(suite.T(), "Electronics")

	err := ports.RunInTransaction(ctx, suite.factory, func(uow ports.UnitOfWork) error {
		categories, repoErr := uow.CategoryRepository()
		if repoErr != nil {
			return repoErr
		}
		if addErr := categories.Add(ctx, cat); addErr != nil {
			return addErr
		}
		return context.Canceled
	})
	suite.Require().ErrorIs(err, context.Canceled)

	var count int64
	suite.Require().NoError(suite.db.Model(&categoryrepo.CategoryDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func createTestCategory(t *testing.T, name string) *category.Category {
	t.Helper()
	cat, err := category.NewCategory(kernel.NewUUID(), name, nil)
	if err != nil {
		t.Fatalf("create test category: %v", err)
	}
	return cat
}

func createTestProduct(t *testing.T, name, sku string, categories []*category.Category) *product.Product {
	t.Helper()
	prod, err := product.NewProduct(kernel.NewUUID(), name, nil, decimal.NewFromFloat(49.99), sku)
	if err != nil {
		t.Fatalf("create test product: %v", err)
	}
	if err = prod.AssignCategories(categories); err != nil {
		t.Fatalf("assign categories: %v", err)
	}
	return prod
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
