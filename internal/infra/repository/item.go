package repository

import (
	"context"
	"errors"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/usecase"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ItemRepository struct {
	db DBTX
}

func NewItemRepository(db DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

const insertItemQuery = `
INSERT INTO items (id, owner_id, name, description, available, request_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) error {
	_, err := r.db.Exec(ctx, insertItemQuery,
		i.ID(), i.OwnerID(), i.Name(), i.Description(), i.Available(), i.RequestID(), i.CreatedAt())
	if err != nil {
		return classify("failed to insert item", err)
	}
	return nil
}

const findItemByIDQuery = `
SELECT id, owner_id, name, description, available, request_id, created_at
FROM items
WHERE id = $1
`

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ItemRM, error) {
	rm := &readmodel.ItemRM{}
	err := r.db.QueryRow(ctx, findItemByIDQuery, id).
		Scan(&rm.ID, &rm.OwnerID, &rm.Name, &rm.Description, &rm.Available, &rm.RequestID, &rm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return rm, nil
}

const findItemsByOwnerQuery = `
SELECT id, owner_id, name, description, available, request_id, created_at
FROM items
WHERE owner_id = $1
ORDER BY created_at
LIMIT $2 OFFSET $3
`

func (r *ItemRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, page usecase.Page) ([]*readmodel.ItemRM, error) {
	rows, err := r.db.Query(ctx, findItemsByOwnerQuery, ownerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	return scanItemRows(rows)
}

const searchItemsQuery = `
SELECT id, owner_id, name, description, available, request_id, created_at
FROM items
WHERE available
  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
ORDER BY created_at
LIMIT $2 OFFSET $3
`

func (r *ItemRepository) Search(ctx context.Context, text string, page usecase.Page) ([]*readmodel.ItemRM, error) {
	rows, err := r.db.Query(ctx, searchItemsQuery, text, page.Limit(), page.Offset())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return scanItemRows(rows)
}

const findItemsByRequestQuery = `
SELECT id, owner_id, name, description, available, request_id
FROM items
WHERE request_id = $1
ORDER BY created_at
`

func (r *ItemRepository) FindByRequest(ctx context.Context, requestID uuid.UUID) ([]*readmodel.ItemAnswerRM, error) {
	rows, err := r.db.Query(ctx, findItemsByRequestQuery, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by request", err)
	}
	defer rows.Close()

	rms := []*readmodel.ItemAnswerRM{}
	for rows.Next() {
		rm := &readmodel.ItemAnswerRM{}
		if err := rows.Scan(&rm.ID, &rm.OwnerID, &rm.Name, &rm.Description, &rm.Available, &rm.RequestID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		rms = append(rms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return rms, nil
}

const updateItemQuery = `
UPDATE items
SET name = $2, description = $3, available = $4
WHERE id = $1
`

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) error {
	tag, err := r.db.Exec(ctx, updateItemQuery, i.ID(), i.Name(), i.Description(), i.Available())
	if err != nil {
		return classify("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteItemQuery = `
DELETE FROM items
WHERE id = $1
`

func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteItemQuery, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanItemRows(rows pgx.Rows) ([]*readmodel.ItemRM, error) {
	defer rows.Close()

	rms := []*readmodel.ItemRM{}
	for rows.Next() {
		rm := &readmodel.ItemRM{}
		if err := rows.Scan(&rm.ID, &rm.OwnerID, &rm.Name, &rm.Description, &rm.Available, &rm.RequestID, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		rms = append(rms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return rms, nil
}
