package usecase

//go:generate mockgen -source=comment.go -destination=../../tests/mock/usecase/comment.go -package=usecasemock

import (
	"context"
	"errors"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CommentUseCase interface {
	AddComment(ctx context.Context, authorID, itemID uuid.UUID, text string) (*readmodel.CommentRM, error)
	IsEligible(ctx context.Context, authorID, itemID uuid.UUID) (bool, error)
}

type commentUseCaseImpl struct {
	commentRepo CommentRepository
	bookingRepo BookingRepository
	itemRepo    ItemRepository
	userRepo    UserRepository
	clock       clock.Clock
}

var _ comment.EligibilityChecker = (*commentUseCaseImpl)(nil)

func NewCommentUseCase(
	commentRepo CommentRepository,
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	clock clock.Clock,
) CommentUseCase {
	return &commentUseCaseImpl{
		commentRepo: commentRepo,
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		clock:       clock,
	}
}

func (u *commentUseCaseImpl) AddComment(ctx context.Context, authorID, itemID uuid.UUID, text string) (*readmodel.CommentRM, error) {
	author, err := u.loadAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	itemRM, err := u.loadItemForComment(ctx, itemID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	if err := u.CanComment(ctx, comment.EligibilityInput{ItemID: itemRM.ID, AuthorID: authorID, Now: now}); err != nil {
		return nil, err
	}

	entity, err := comment.NewComment(itemRM.ID, authorID, text, now)
	if err != nil {
		return nil, err
	}
	if err := u.commentRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &readmodel.CommentRM{
		ID:         entity.ID(),
		ItemID:     entity.ItemID(),
		AuthorName: author.Name,
		Text:       entity.Text(),
		CreatedAt:  entity.CreatedAt(),
	}, nil
}

func (u *commentUseCaseImpl) IsEligible(ctx context.Context, authorID, itemID uuid.UUID) (bool, error) {
	err := u.CanComment(ctx, comment.EligibilityInput{ItemID: itemID, AuthorID: authorID, Now: u.clock.Now()})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, comment.ErrNotEligible):
		return false, nil
	default:
		return false, err
	}
}

// CanComment implements comment.EligibilityChecker.
func (u *commentUseCaseImpl) CanComment(ctx context.Context, input comment.EligibilityInput) error {
	finished, err := u.bookingRepo.HasFinishedBooking(ctx, input.ItemID, input.AuthorID, input.Now)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !finished {
		return comment.ErrNotEligible
	}
	return nil
}

func (u *commentUseCaseImpl) loadAuthor(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error) {
	rm, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *commentUseCaseImpl) loadItemForComment(ctx context.Context, id uuid.UUID) (*readmodel.ItemRM, error) {
	rm, err := u.itemRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}
