package usecase

//go:generate mockgen -source=request.go -destination=../../tests/mock/usecase/request.go -package=usecasemock

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("item request not found")

type RequestRepository interface {
	Create(ctx context.Context, r *request.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RequestRM, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*readmodel.RequestRM, error)
	FindOthers(ctx context.Context, excludeUserID uuid.UUID, page Page) ([]*readmodel.RequestRM, error)
}

type RequestUseCase interface {
	Create(ctx context.Context, requesterID uuid.UUID, description string) (*readmodel.RequestRM, error)
	ListOwn(ctx context.Context, requesterID uuid.UUID) ([]*readmodel.RequestRM, error)
	ListOthers(ctx context.Context, userID uuid.UUID, from, size int) ([]*readmodel.RequestRM, error)
	Get(ctx context.Context, userID, requestID uuid.UUID) (*readmodel.RequestRM, error)
}

type requestUseCaseImpl struct {
	requestRepo RequestRepository
	userRepo    UserRepository
	itemRepo    ItemRepository
	clock       clock.Clock
}

func NewRequestUseCase(
	requestRepo RequestRepository,
	userRepo UserRepository,
	itemRepo ItemRepository,
	clock clock.Clock,
) RequestUseCase {
	return &requestUseCaseImpl{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		clock:       clock,
	}
}

func (u *requestUseCaseImpl) Create(ctx context.Context, requesterID uuid.UUID, description string) (*readmodel.RequestRM, error) {
	if err := u.ensureUser(ctx, requesterID); err != nil {
		return nil, err
	}
	entity, err := request.NewRequest(requesterID, description, u.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := u.requestRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u.load(ctx, entity.ID())
}

func (u *requestUseCaseImpl) ListOwn(ctx context.Context, requesterID uuid.UUID) ([]*readmodel.RequestRM, error) {
	if err := u.ensureUser(ctx, requesterID); err != nil {
		return nil, err
	}
	rms, err := u.requestRepo.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u.attachAnswers(ctx, rms)
}

func (u *requestUseCaseImpl) ListOthers(ctx context.Context, userID uuid.UUID, from, size int) ([]*readmodel.RequestRM, error) {
	page, err := NewPage(from, size)
	if err != nil {
		return nil, err
	}
	if err := u.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	rms, err := u.requestRepo.FindOthers(ctx, userID, page)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u.attachAnswers(ctx, rms)
}

func (u *requestUseCaseImpl) Get(ctx context.Context, userID, requestID uuid.UUID) (*readmodel.RequestRM, error) {
	if err := u.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	rm, err := u.load(ctx, requestID)
	if err != nil {
		return nil, err
	}
	attached, err := u.attachAnswers(ctx, []*readmodel.RequestRM{rm})
	if err != nil {
		return nil, err
	}
	return attached[0], nil
}

func (u *requestUseCaseImpl) load(ctx context.Context, id uuid.UUID) (*readmodel.RequestRM, error) {
	rm, err := u.requestRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *requestUseCaseImpl) ensureUser(ctx context.Context, id uuid.UUID) error {
	if _, err := u.userRepo.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *requestUseCaseImpl) attachAnswers(ctx context.Context, rms []*readmodel.RequestRM) ([]*readmodel.RequestRM, error) {
	for _, rm := range rms {
		items, err := u.itemRepo.FindByRequest(ctx, rm.ID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		rm.Items = items
	}
	return rms, nil
}
