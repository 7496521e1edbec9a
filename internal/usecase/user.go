package usecase

//go:generate mockgen -source=user.go -destination=../../tests/mock/usecase/user.go -package=usecasemock

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrEmailTaken   = errs.New("email is already registered")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error)
	FindAll(ctx context.Context) ([]*readmodel.UserRM, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateUserParams struct {
	Name  string
	Email string
}

type UpdateUserParams struct {
	Name  *string
	Email *string
}

type UserUseCase interface {
	Register(ctx context.Context, params CreateUserParams) (*readmodel.UserRM, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateUserParams) (*readmodel.UserRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error)
	List(ctx context.Context) ([]*readmodel.UserRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userUseCaseImpl struct {
	userRepo UserRepository
	clock    clock.Clock
}

func NewUserUseCase(userRepo UserRepository, clock clock.Clock) UserUseCase {
	return &userUseCaseImpl{userRepo: userRepo, clock: clock}
}

func (u *userUseCaseImpl) Register(ctx context.Context, params CreateUserParams) (*readmodel.UserRM, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, err
	}
	entity, err := user.NewUser(params.Name, email, u.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := u.userRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u.Get(ctx, entity.ID())
}

func (u *userUseCaseImpl) Update(ctx context.Context, id uuid.UUID, params UpdateUserParams) (*readmodel.UserRM, error) {
	rm, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(rm.Email)
	if err != nil {
		return nil, err
	}
	entity := user.ReconstructUser(rm.ID, rm.Name, email, rm.CreatedAt)

	if params.Name != nil {
		if err := entity.Rename(*params.Name); err != nil {
			return nil, err
		}
	}
	if params.Email != nil {
		newEmail, err := user.NewEmail(*params.Email)
		if err != nil {
			return nil, err
		}
		entity.ChangeEmail(newEmail)
	}

	if err := u.userRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u.Get(ctx, id)
}

func (u *userUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error) {
	rm, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *userUseCaseImpl) List(ctx context.Context) ([]*readmodel.UserRM, error) {
	rms, err := u.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *userUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	if err := u.userRepo.Delete(ctx, id); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
