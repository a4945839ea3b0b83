package models

import "github.com/shopspring/decimal"

// Order is one entry of a user's purchase history. Entries are append-only:
// once written they are never mutated or deleted.
type Order struct {
	Username string
	Number   string // time-derived, caller-generated, treated as opaque
	PlacedAt string
	Amount   decimal.Decimal
	Items    []string // free-text item descriptions, in purchase order
}
