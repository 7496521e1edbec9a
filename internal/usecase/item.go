package usecase

//go:generate mockgen -source=item.go -destination=../../tests/mock/usecase/item.go -package=usecasemock

import (
	"context"
	"errors"
	"strings"

	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound = errs.New("item not found")
	ErrNotItemOwner = errs.New("caller does not own this item")
)

type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ItemRM, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*readmodel.ItemRM, error)
	Search(ctx context.Context, text string, page Page) ([]*readmodel.ItemRM, error)
	FindByRequest(ctx context.Context, requestID uuid.UUID) ([]*readmodel.ItemAnswerRM, error)
	Update(ctx context.Context, i *item.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) error
	FindByItem(ctx context.Context, itemID uuid.UUID) ([]*readmodel.CommentRM, error)
}

type CreateItemParams struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type UpdateItemParams struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemUseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, params CreateItemParams) (*readmodel.ItemRM, error)
	Update(ctx context.Context, actorID, itemID uuid.UUID, params UpdateItemParams) (*readmodel.ItemRM, error)
	Get(ctx context.Context, actorID, itemID uuid.UUID) (*readmodel.ItemDetailRM, error)
	ListOwn(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*readmodel.ItemDetailRM, error)
	Search(ctx context.Context, text string, from, size int) ([]*readmodel.ItemRM, error)
	Delete(ctx context.Context, actorID, itemID uuid.UUID) error
}

type itemUseCaseImpl struct {
	itemRepo    ItemRepository
	userRepo    UserRepository
	bookingRepo BookingRepository
	commentRepo CommentRepository
	requestRepo RequestRepository
	clock       clock.Clock
}

func NewItemUseCase(
	itemRepo ItemRepository,
	userRepo UserRepository,
	bookingRepo BookingRepository,
	commentRepo CommentRepository,
	requestRepo RequestRepository,
	clock clock.Clock,
) ItemUseCase {
	return &itemUseCaseImpl{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		requestRepo: requestRepo,
		clock:       clock,
	}
}

func (u *itemUseCaseImpl) Create(ctx context.Context, ownerID uuid.UUID, params CreateItemParams) (*readmodel.ItemRM, error) {
	if _, err := u.loadUser(ctx, ownerID); err != nil {
		return nil, err
	}
	if params.RequestID != nil {
		if _, err := u.requestRepo.FindByID(ctx, *params.RequestID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrRequestNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	entity, err := item.NewItem(ownerID, params.Name, params.Description, params.Available, params.RequestID, u.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := u.itemRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u.loadItemRM(ctx, entity.ID())
}

func (u *itemUseCaseImpl) Update(ctx context.Context, actorID, itemID uuid.UUID, params UpdateItemParams) (*readmodel.ItemRM, error) {
	rm, err := u.loadItemRM(ctx, itemID)
	if err != nil {
		return nil, err
	}

	entity := item.ReconstructItem(rm.ID, rm.OwnerID, rm.Name, rm.Description, rm.Available, rm.RequestID, rm.CreatedAt)
	if err := entity.Patch(actorID, params.Name, params.Description, params.Available); err != nil {
		if errors.Is(err, item.ErrNotOwner) {
			return nil, ErrNotItemOwner
		}
		return nil, err
	}

	if err := u.itemRepo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u.loadItemRM(ctx, itemID)
}

// Get returns the item with its comments. The owner additionally sees the
// last and next booking of the item.
func (u *itemUseCaseImpl) Get(ctx context.Context, actorID, itemID uuid.UUID) (*readmodel.ItemDetailRM, error) {
	rm, err := u.loadItemRM(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return u.enrich(ctx, rm, actorID == rm.OwnerID)
}

func (u *itemUseCaseImpl) ListOwn(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*readmodel.ItemDetailRM, error) {
	page, err := NewPage(from, size)
	if err != nil {
		return nil, err
	}
	if _, err := u.loadUser(ctx, ownerID); err != nil {
		return nil, err
	}
	rms, err := u.itemRepo.FindByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	details := make([]*readmodel.ItemDetailRM, len(rms))
	for i, rm := range rms {
		detail, err := u.enrich(ctx, rm, true)
		if err != nil {
			return nil, err
		}
		details[i] = detail
	}
	return details, nil
}

func (u *itemUseCaseImpl) Search(ctx context.Context, text string, from, size int) ([]*readmodel.ItemRM, error) {
	page, err := NewPage(from, size)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []*readmodel.ItemRM{}, nil
	}
	rms, err := u.itemRepo.Search(ctx, text, page)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *itemUseCaseImpl) Delete(ctx context.Context, actorID, itemID uuid.UUID) error {
	rm, err := u.loadItemRM(ctx, itemID)
	if err != nil {
		return err
	}
	if rm.OwnerID != actorID {
		return ErrNotItemOwner
	}
	if err := u.itemRepo.Delete(ctx, itemID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *itemUseCaseImpl) enrich(ctx context.Context, rm *readmodel.ItemRM, forOwner bool) (*readmodel.ItemDetailRM, error) {
	comments, err := u.commentRepo.FindByItem(ctx, rm.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	detail := &readmodel.ItemDetailRM{ItemRM: *rm, Comments: comments}

	if forOwner {
		now := u.clock.Now()
		last, err := u.bookingRepo.FindLastForItem(ctx, rm.ID, now)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		next, err := u.bookingRepo.FindNextForItem(ctx, rm.ID, now)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		detail.LastBooking = last
		detail.NextBooking = next
	}
	return detail, nil
}

func (u *itemUseCaseImpl) loadItemRM(ctx context.Context, id uuid.UUID) (*readmodel.ItemRM, error) {
	rm, err := u.itemRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *itemUseCaseImpl) loadUser(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error) {
	rm, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}
