package cart

import (
	"context"
	"errors"

	"webstore/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByUser(ctx context.Context, userID int64) (*domain.Cart, error) {
	const cartQuery = `
SELECT id, user_id, total, created_at
FROM carts
WHERE user_id = $1
`
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, cartQuery, userID).Scan(&cart.ID, &cart.UserID, &cart.Total, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const entriesQuery = `
SELECT i.id, i.name, COALESCE(i.description, ''), i.price, i.created_at
FROM cart_entries ce
JOIN items i ON i.id = ce.item_id
WHERE ce.cart_id = $1
ORDER BY ce.id ASC
`
	rows, err := r.pool.Query(ctx, entriesQuery, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart.Items = []domain.Item{}
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.CreatedAt); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *postgresRepo) AddEntries(ctx context.Context, cartID, itemID int64, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO cart_entries (cart_id, item_id)
SELECT $1, $2 FROM generate_series(1, $3)
`, cartID, itemID, quantity); err != nil {
		return err
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) RemoveEntries(ctx context.Context, cartID, itemID int64, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Removes the oldest matching entries first; fewer than quantity present
	// just removes what is there.
	if _, err := tx.Exec(ctx, `
DELETE FROM cart_entries
WHERE id IN (
	SELECT id FROM cart_entries
	WHERE cart_id = $1 AND item_id = $2
	ORDER BY id ASC
	LIMIT $3
)
`, cartID, itemID, quantity); err != nil {
		return err
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func updateCartTotal(ctx context.Context, tx pgx.Tx, cartID int64) error {
	_, err := tx.Exec(ctx, `
UPDATE carts
SET total = COALESCE((
	SELECT SUM(i.price)
	FROM cart_entries ce
	JOIN items i ON i.id = ce.item_id
	WHERE ce.cart_id = $1
), 0)
WHERE id = $1
`, cartID)
	return err
}
