package services

import (
	"errors"

	"github.com/VishnuPunati/product-catalog-service/internal/core/domain/model/kernel"
	"github.com/VishnuPunati/product-catalog-service/internal/core/ports"
	"github.com/VishnuPunati/product-catalog-service/internal/pkg/errs"
	"github.com/VishnuPunati/product-catalog-service/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrSearchProductsQueryIsNotConstructed is returned when a SearchProductsQuery
// was not created via NewSearchProductsQuery.
var ErrSearchProductsQueryIsNotConstructed = errors.New(
	"SearchProductsQuery must be created via NewSearchProductsQuery constructor",
)

// SearchProductsQuery is a validated product search request. All filters are
// optional and conjunctive; construction rejects negative price bounds and
// out-of-range pagination before any transaction is opened.
type SearchProductsQuery struct {
	keyword    string
	categoryID *kernel.UUID
	minPrice   *decimal.Decimal
	maxPrice   *decimal.Decimal
	skip       int
	limit      int

	guard guard.ConstructorGuard
}

// NewSearchProductsQuery builds a search query, validating every supplied filter.
func NewSearchProductsQuery(
	keyword string,
	categoryID *kernel.UUID,
	minPrice *decimal.Decimal,
	maxPrice *decimal.Decimal,
	skip int,
	limit int,
) (SearchProductsQuery, error) {
	if minPrice != nil && minPrice.IsNegative() {
		return SearchProductsQuery{}, errs.NewValueIsInvalidError("minPrice")
	}
	if maxPrice != nil && maxPrice.IsNegative() {
		return SearchProductsQuery{}, errs.NewValueIsInvalidError("maxPrice")
	}
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return SearchProductsQuery{}, err
		}
	}
	if err := validatePage(skip, limit); err != nil {
		return SearchProductsQuery{}, err
	}

	return SearchProductsQuery{
		keyword:    keyword,
		categoryID: categoryID,
		minPrice:   minPrice,
		maxPrice:   maxPrice,
		skip:       skip,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchProductsQuery) Validate() error {
	return q.guard.Validate(ErrSearchProductsQueryIsNotConstructed)
}

// Filter converts the query into the repository-level filter.
func (q SearchProductsQuery) Filter() ports.ProductSearchFilter {
	return ports.ProductSearchFilter{
		Keyword:    q.keyword,
		CategoryID: q.categoryID,
		MinPrice:   q.minPrice,
		MaxPrice:   q.maxPrice,
		Skip:       q.skip,
		Limit:      q.limit,
	}
}
