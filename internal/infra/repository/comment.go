package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CommentRepository struct {
	db DBTX
}

func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

const insertCommentQuery = `
INSERT INTO comments (id, item_id, author_id, text, created_at)
VALUES ($1, $2, $3, $4, $5)
`

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	_, err := r.db.Exec(ctx, insertCommentQuery, c.ID(), c.ItemID(), c.AuthorID(), c.Text(), c.CreatedAt())
	if err != nil {
		return classify("failed to insert comment", err)
	}
	return nil
}

const findCommentsByItemQuery = `
SELECT c.id, c.item_id, u.name, c.text, c.created_at
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.item_id = $1
ORDER BY c.created_at
`

func (r *CommentRepository) FindByItem(ctx context.Context, itemID uuid.UUID) ([]*readmodel.CommentRM, error) {
	rows, err := r.db.Query(ctx, findCommentsByItemQuery, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments by item", err)
	}
	defer rows.Close()

	rms := []*readmodel.CommentRM{}
	for rows.Next() {
		rm := &readmodel.CommentRM{}
		if err := rows.Scan(&rm.ID, &rm.ItemID, &rm.AuthorName, &rm.Text, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		rms = append(rms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment rows", err)
	}
	return rms, nil
}
