package item

import (
	"context"
	"errors"
	"io"
	"log"

	"webstore/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
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

const itemColumns = `id, name, COALESCE(description, ''), price, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Item, error) {
	const q = `
SELECT ` + itemColumns + `
FROM items
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("item repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	const q = `
SELECT ` + itemColumns + `
FROM items
WHERE id = $1
`
	var it domain.Item
	err := r.pool.QueryRow(ctx, q, id).Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (r *postgresRepo) GetByName(ctx context.Context, name string) ([]domain.Item, error) {
	const q = `
SELECT ` + itemColumns + `
FROM items
WHERE name = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, name)
	if err != nil {
		r.logger.Printf("item repo: get by name=%s error=%v", name, err)
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *postgresRepo) Create(ctx context.Context, in domain.Item) (*domain.Item, error) {
	const q = `
INSERT INTO items (name, description, price)
VALUES ($1, $2, $3)
RETURNING ` + itemColumns + `
`
	var it domain.Item
	err := r.pool.QueryRow(ctx, q, in.Name, in.Description, in.Price).Scan(
		&it.ID, &it.Name, &it.Description, &it.Price, &it.CreatedAt,
	)
	if err != nil {
		r.logger.Printf("item repo: create name=%s error=%v", in.Name, err)
		return nil, err
	}
	return &it, nil
}

func scanItems(rows pgx.Rows) ([]domain.Item, error) {
	var result []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
