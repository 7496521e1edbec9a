package repository

import (
	"context"
	"errors"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/usecase"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestRepository struct {
	db DBTX
}

func NewRequestRepository(db DBTX) *RequestRepository {
	return &RequestRepository{db: db}
}

const insertRequestQuery = `
INSERT INTO requests (id, requester_id, description, created_at)
VALUES ($1, $2, $3, $4)
`

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	_, err := r.db.Exec(ctx, insertRequestQuery, req.ID(), req.RequesterID(), req.Description(), req.CreatedAt())
	if err != nil {
		return classify("failed to insert request", err)
	}
	return nil
}

const findRequestByIDQuery = `
SELECT id, requester_id, description, created_at
FROM requests
WHERE id = $1
`

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RequestRM, error) {
	rm := &readmodel.RequestRM{}
	err := r.db.QueryRow(ctx, findRequestByIDQuery, id).
		Scan(&rm.ID, &rm.RequesterID, &rm.Description, &rm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by ID", err)
	}
	return rm, nil
}

const findRequestsByRequesterQuery = `
SELECT id, requester_id, description, created_at
FROM requests
WHERE requester_id = $1
ORDER BY created_at DESC
`

func (r *RequestRepository) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*readmodel.RequestRM, error) {
	rows, err := r.db.Query(ctx, findRequestsByRequesterQuery, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by requester", err)
	}
	return scanRequestRows(rows)
}

const findOtherRequestsQuery = `
SELECT id, requester_id, description, created_at
FROM requests
WHERE requester_id <> $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

func (r *RequestRepository) FindOthers(ctx context.Context, excludeUserID uuid.UUID, page usecase.Page) ([]*readmodel.RequestRM, error) {
	rows, err := r.db.Query(ctx, findOtherRequestsQuery, excludeUserID, page.Limit(), page.Offset())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list other users' requests", err)
	}
	return scanRequestRows(rows)
}

func scanRequestRows(rows pgx.Rows) ([]*readmodel.RequestRM, error) {
	defer rows.Close()

	rms := []*readmodel.RequestRM{}
	for rows.Next() {
		rm := &readmodel.RequestRM{}
		if err := rows.Scan(&rm.ID, &rm.RequesterID, &rm.Description, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		rms = append(rms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request rows", err)
	}
	return rms, nil
}
