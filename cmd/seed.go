package cmd

import (
	"context"
	"errors"

	"github.com/VishnuPunati/product-catalog-service/internal/core/application/services"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"
	"github.com/VishnuPunati/product-catalog-service/internal/pkg/errs"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

type demoProduct struct {
	name        string
	description string
	price       string
	sku         string
	categories  []string
}

var demoCategories = map[string]string{
	"Electronics": "Gadgets, devices, and accessories",
	"Books":       "Printed and electronic books",
	"Clothing":    "Apparel for all seasons",
}

var demoProducts = []demoProduct{
	{
		name:        "Smartphone",
		description: "Wireless phone with a large screen",
		price:       "699.99",
		sku:         "PHONE-001",
		categories:  []string{"Electronics"},
	},
	{
		name:        "Laptop",
		description: "Lightweight notebook for everyday work",
		price:       "1299.99",
		sku:         "LAPTOP-001",
		categories:  []string{"Electronics"},
	},
	{
		name:        "Go Programming Handbook",
		description: "A practical guide to writing Go services",
		price:       "39.90",
		sku:         "BOOK-001",
		categories:  []string{"Books"},
	},
	{
		name:        "Wool Sweater",
		description: "Warm knit sweater",
		price:       "59.50",
		sku:         "CLOTH-001",
		categories:  []string{"Clothing"},
	},
}

// SeedDemoData populates the catalog with a small demo dataset. Rows that
// already exist, detected by their unique name or sku, are skipped, so the
// seeding can run on every start.
func SeedDemoData(
	ctx context.Context,
	categoryService *services.CategoryService,
	productService *services.ProductService,
) error {
	categoryIDs := make(map[string]kernel.UUID, len(demoCategories))

	for name, description := range demoCategories {
		desc := description
		cat, err := categoryService.CreateCategory(ctx, name, &desc)
		if err != nil {
			if errors.Is(err, errs.ErrUniqueViolation) {
				log.Infof("seed: category %q already exists, skipping", name)
				continue
			}
			return err
		}
		categoryIDs[name] = cat.ID()
	}

	for _, demo := range demoProducts {
		price, err := decimal.NewFromString(demo.price)
		if err != nil {
			return err
		}

		ids := make([]kernel.UUID, 0, len(demo.categories))
		for _, categoryName := range demo.categories {
			if id, ok := categoryIDs[categoryName]; ok {
				ids = append(ids, id)
			}
		}

		description := demo.description
		_, err = productService.CreateProduct(ctx, services.CreateProductRequest{
			Name:        demo.name,
			Description: &description,
			Price:       price,
			SKU:         demo.sku,
			CategoryIDs: ids,
		})
		if err != nil {
			if errors.Is(err, errs.ErrUniqueViolation) {
				log.Infof("seed: product %q already exists, skipping", demo.sku)
				continue
			}
			return err
		}
	}

	return nil
}
