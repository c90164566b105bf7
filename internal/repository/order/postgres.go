package order

import (
	"context"
	"io"
	"log"

	"webstore/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, userID int64, items []domain.Item, total decimal.Decimal) (*domain.UserOrder, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var o domain.UserOrder
	err = tx.QueryRow(ctx, `
INSERT INTO orders (user_id, total)
VALUES ($1, $2)
RETURNING id, user_id, total, created_at
`, userID, total).Scan(&o.ID, &o.UserID, &o.Total, &o.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: create user_id=%d error=%v", userID, err)
		return nil, err
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_entries (order_id, item_id, name, description, price)
VALUES ($1, $2, $3, $4, $5)
`, o.ID, it.ID, it.Name, it.Description, it.Price); err != nil {
			r.logger.Printf("order repo: create entry order_id=%d item_id=%d error=%v", o.ID, it.ID, err)
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	o.Items = append([]domain.Item{}, items...)
	return &o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.UserOrder, error) {
	const q = `
SELECT id, user_id, total, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at ASC, id ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("order repo: list user_id=%d error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var orders []domain.UserOrder
	for rows.Next() {
		var o domain.UserOrder
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.fetchEntries(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *postgresRepo) fetchEntries(ctx context.Context, orderID int64) ([]domain.Item, error) {
	const q = `
SELECT item_id, name, COALESCE(description, ''), price
FROM order_entries
WHERE order_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
