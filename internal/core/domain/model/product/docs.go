// Package product contains the Product aggregate and its partial-update patch.
// A product carries a fixed-precision decimal price, a pattern-constrained sku,
// and owns its side of the many-to-many association with categories.
package product
