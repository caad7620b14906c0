package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	query := `INSERT INTO items (owner_id, name, description, available, request_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, it.OwnerID, it.Name, it.Description, it.Available, it.RequestID).Scan(&it.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	it := &domain.Item{Owner: &domain.User{}}
	query := `SELECT i.id, i.owner_id, i.name, i.description, i.available, i.request_id,
	                 u.id, u.name, u.email
	          FROM items i JOIN users u ON u.id = i.owner_id
	          WHERE i.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.Available, &it.RequestID,
		&it.Owner.ID, &it.Owner.Name, &it.Owner.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("Item", id)
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	query := `UPDATE items SET name = $1, description = $2, available = $3, request_id = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, it.Name, it.Description, it.Available, it.RequestID, it.ID)
	return err
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Item, error) {
	query := `SELECT id, owner_id, name, description, available, request_id
	          FROM items WHERE owner_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *itemRepository) Search(ctx context.Context, text string, offset, limit int) ([]domain.Item, error) {
	query := `SELECT id, owner_id, name, description, available, request_id
	          FROM items
	          WHERE available = true
	            AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
	          ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, text, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *itemRepository) ListByRequest(ctx context.Context, requestID int64) ([]domain.Item, error) {
	query := `SELECT id, owner_id, name, description, available, request_id
	          FROM items WHERE request_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.Available, &it.RequestID); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
