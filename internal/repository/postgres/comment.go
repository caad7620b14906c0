package postgres

import (
	"context"
	"database/sql"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository"
)

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (text, item_id, author_id, created)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Text, c.ItemID, c.AuthorID, c.Created).Scan(&c.ID)
}

func (r *commentRepository) ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	query := `SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
	          FROM comments c JOIN users u ON u.id = c.author_id
	          WHERE c.item_id = $1 ORDER BY c.created`
	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
