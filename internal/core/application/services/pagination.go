package services

import "github.com/VishnuPunati/product-catalog-service/internal/pkg/errs"

// Pagination bounds shared by all listing operations.
const (
	MinLimit = 1
	MaxLimit = 100
)

// validatePage enforces skip >= 0 and MinLimit <= limit <= MaxLimit before any
// transaction is opened.
func validatePage(skip, limit int) error {
	if skip < 0 {
		return errs.NewValueIsInvalidError("skip")
	}
	if limit < MinLimit || limit > MaxLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, MinLimit, MaxLimit)
	}

	return nil
}
