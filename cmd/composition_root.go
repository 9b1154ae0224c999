package cmd

import (
	httpadapter "github.com/VishnuPunati/product-catalog-service/internal/adapters/in/http"
	"github.com/VishnuPunati/product-catalog-service/internal/adapters/out/postgres"
	"github.com/VishnuPunati/product-catalog-service/internal/adapters/out/postgres/categoryrepo"
	"github.com/VishnuPunati/product-catalog-service/internal/adapters/out/postgres/productrepo"
	"github.com/VishnuPunati/product-catalog-service/internal/core/application/services"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to application services. It is the only
// place that knows concrete implementations.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// MigrateDB creates or updates the catalog schema, including the
// product_categories join table with its cascading foreign keys.
func (c *CompositionRoot) MigrateDB() error {
	return c.gormDB.AutoMigrate(
		&categoryrepo.CategoryDTO{},
		&productrepo.ProductDTO{},
	)
}

func (c *CompositionRoot) CreateCategoryService() *services.CategoryService {
	return services.NewCategoryService(c.uowFactory)
}

func (c *CompositionRoot) CreateProductService() *services.ProductService {
	return services.NewProductService(c.uowFactory)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(c.CreateCategoryService(), c.CreateProductService())
}
