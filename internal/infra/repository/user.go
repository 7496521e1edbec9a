package repository

import (
	"context"
	"errors"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const insertUserQuery = `
INSERT INTO users (id, name, email, created_at)
VALUES ($1, $2, $3, $4)
`

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, insertUserQuery, u.ID(), u.Name(), u.Email().Value(), u.CreatedAt())
	if err != nil {
		return classify("failed to insert user", err)
	}
	return nil
}

const findUserByIDQuery = `
SELECT id, name, email, created_at
FROM users
WHERE id = $1
`

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error) {
	rm := &readmodel.UserRM{}
	err := r.db.QueryRow(ctx, findUserByIDQuery, id).
		Scan(&rm.ID, &rm.Name, &rm.Email, &rm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return rm, nil
}

const findAllUsersQuery = `
SELECT id, name, email, created_at
FROM users
ORDER BY created_at
`

func (r *UserRepository) FindAll(ctx context.Context) ([]*readmodel.UserRM, error) {
	rows, err := r.db.Query(ctx, findAllUsersQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	rms := []*readmodel.UserRM{}
	for rows.Next() {
		rm := &readmodel.UserRM{}
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Email, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		rms = append(rms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return rms, nil
}

const updateUserQuery = `
UPDATE users
SET name = $2, email = $3
WHERE id = $1
`

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx, updateUserQuery, u.ID(), u.Name(), u.Email().Value())
	if err != nil {
		return classify("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteUserQuery = `
DELETE FROM users
WHERE id = $1
`

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteUserQuery, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
