package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserOrder is a finalized submission of a user's cart. Items and Total are
// copied at submission time and never change afterwards, even if the source
// cart is mutated later. A user may have many orders.
type UserOrder struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}
