// Package http provides the inbound HTTP adapter: an echo server exposing the
// catalog's category and product operations as a JSON API under /api/v1.
package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/VishnuPunati/product-catalog-service/internal/core/application/services"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/category"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"
	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
)

// Server coordinates between HTTP handlers and the application services.
type Server struct {
	categoryService *services.CategoryService
	productService  *services.ProductService
}

// NewServer creates a new HTTP server over the application services.
func NewServer(categoryService *services.CategoryService, productService *services.ProductService) *Server {
	return &Server{
		categoryService: categoryService,
		productService:  productService,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/categories", s.CreateCategory)
	api.GET("/categories", s.ListCategories)
	api.GET("/categories/:categoryId", s.GetCategory)
	api.PATCH("/categories/:categoryId", s.UpdateCategory)
	api.DELETE("/categories/:categoryId", s.DeleteCategory)

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.ListProducts)
	api.GET("/products/search", s.SearchProducts)
	api.GET("/products/:productId", s.GetProduct)
	api.PATCH("/products/:productId", s.UpdateProduct)
	api.DELETE("/products/:productId", s.DeleteProduct)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var req CreateCategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	cat, err := s.categoryService.CreateCategory(ctx.Request().Context(), req.Name, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCategoryResponse(cat))
}

// ListCategories handles GET /api/v1/categories with skip/limit pagination.
func (s *Server) ListCategories(ctx echo.Context) error {
	skip, limit, err := parsePagination(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	cats, err := s.categoryService.ListCategories(ctx.Request().Context(), skip, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCategoryResponses(cats))
}

// GetCategory handles GET /api/v1/categories/:categoryId.
func (s *Server) GetCategory(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("categoryId"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid category id")
	}

	cat, err := s.categoryService.GetCategory(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCategoryResponse(cat))
}

// UpdateCategory handles PATCH /api/v1/categories/:categoryId.
func (s *Server) UpdateCategory(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("categoryId"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid category id")
	}

	var req UpdateCategoryRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	patch := category.Patch{
		Name:        req.Name,
		Description: req.Description,
	}

	cat, err := s.categoryService.UpdateCategory(ctx.Request().Context(), id, patch)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCategoryResponse(cat))
}

// DeleteCategory handles DELETE /api/v1/categories/:categoryId.
func (s *Server) DeleteCategory(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("categoryId"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid category id")
	}

	deleted, err := s.categoryService.DeleteCategory(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}
	if !deleted {
		return writeError(ctx, http.StatusNotFound, "category not found")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	categoryIDs, err := parseCategoryIDs(req.CategoryIDs)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid category id")
	}

	prod, err := s.productService.CreateProduct(ctx.Request().Context(), services.CreateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		SKU:         req.SKU,
		CategoryIDs: categoryIDs,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toProductResponse(prod))
}

// ListProducts handles GET /api/v1/products with skip/limit pagination.
func (s *Server) ListProducts(ctx echo.Context) error {
	skip, limit, err := parsePagination(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	prods, err := s.productService.ListProducts(ctx.Request().Context(), skip, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponses(prods))
}

// GetProduct handles GET /api/v1/products/:productId.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid product id")
	}

	prod, err := s.productService.GetProduct(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(prod))
}

// UpdateProduct handles PATCH /api/v1/products/:productId.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid product id")
	}

	var req UpdateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	patch := product.Patch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		SKU:         req.SKU,
	}

	// A nil slice means the body omitted categoryIds entirely; the current
	// association set is preserved. An empty slice clears it.
	var categoryIDs []kernel.UUID
	if req.CategoryIDs != nil {
		categoryIDs, err = parseCategoryIDs(req.CategoryIDs)
		if err != nil {
			return writeError(ctx, http.StatusBadRequest, "invalid category id")
		}
	}

	prod, err := s.productService.UpdateProduct(ctx.Request().Context(), id, patch, categoryIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponse(prod))
}

// DeleteProduct handles DELETE /api/v1/products/:productId.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid product id")
	}

	deleted, err := s.productService.DeleteProduct(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}
	if !deleted {
		return writeError(ctx, http.StatusNotFound, "product not found")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SearchProducts handles GET /api/v1/products/search with optional keyword,
// category, and price filters combined conjunctively.
func (s *Server) SearchProducts(ctx echo.Context) error {
	skip, limit, err := parsePagination(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	var categoryID *kernel.UUID
	if raw := ctx.QueryParam("categoryId"); raw != "" {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return writeError(ctx, http.StatusBadRequest, "invalid category id")
		}
		categoryID = &id
	}

	minPrice, err := parsePriceParam(ctx, "minPrice")
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid minPrice")
	}

	maxPrice, err := parsePriceParam(ctx, "maxPrice")
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid maxPrice")
	}

	query, err := services.NewSearchProductsQuery(
		ctx.QueryParam("keyword"), categoryID, minPrice, maxPrice, skip, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	prods, err := s.productService.SearchProducts(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponses(prods))
}

func parsePagination(ctx echo.Context) (skip, limit int, err error) {
	skip, err = parseIntParam(ctx, "skip", defaultSkip)
	if err != nil {
		return 0, 0, err
	}

	limit, err = parseIntParam(ctx, "limit", defaultLimit)
	if err != nil {
		return 0, 0, err
	}

	return skip, limit, nil
}

func parseIntParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}

	return value, nil
}

func parsePriceParam(ctx echo.Context, name string) (*decimal.Decimal, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func parseCategoryIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
