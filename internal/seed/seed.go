package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type itemSeed struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// Apply inserts basic catalog data for manual testing. It is idempotent: an
// item with the same name is not inserted twice.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	items := []itemSeed{
		{
			Name:        "Round Widget",
			Description: "A widget that is round",
			Price:       decimal.RequireFromString("2.99"),
		},
		{
			Name:        "Square Widget",
			Description: "A widget that is square",
			Price:       decimal.RequireFromString("1.99"),
		},
	}

	for _, it := range items {
		if err := insertItem(ctx, pool, it); err != nil {
			return fmt.Errorf("insert item %s: %w", it.Name, err)
		}
	}
	return nil
}

func insertItem(ctx context.Context, pool *pgxpool.Pool, it itemSeed) error {
	_, err := pool.Exec(ctx, `
INSERT INTO items (name, description, price)
SELECT $1, $2, $3
WHERE NOT EXISTS (SELECT 1 FROM items WHERE name = $1)
`, it.Name, it.Description, it.Price)
	return err
}
