package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart belongs to exactly one user and is created together with it. Quantity
// is represented by repeated entries in Items, one per unit, in insertion
// order. Total always equals the sum of the prices of the entries.
type Cart struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}
