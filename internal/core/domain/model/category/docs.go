// Package category contains the Category aggregate and its partial-update patch.
// Categories group products through a many-to-many association owned jointly
// with the product aggregate.
package category
