package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a catalog entry. Items are immutable once created: there are no
// update or delete endpoints.
type Item struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
}
