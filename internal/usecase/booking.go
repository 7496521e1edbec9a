package usecase

//go:generate mockgen -source=booking.go -destination=../../tests/mock/usecase/booking.go -package=usecasemock

import (
	"context"
	"sync"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingOverlap          = errs.New("item is already booked for an overlapping period")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	FindByBooker(ctx context.Context, bookerID uuid.UUID, bucket booking.Bucket, now time.Time, page Page) ([]*readmodel.BookingRM, error)
	FindByItemOwner(ctx context.Context, ownerID uuid.UUID, bucket booking.Bucket, now time.Time, page Page) ([]*readmodel.BookingRM, error)
	HasOverlapping(ctx context.Context, itemID uuid.UUID, start, end time.Time) (bool, error)
	HasFinishedBooking(ctx context.Context, itemID, userID uuid.UUID, now time.Time) (bool, error)
	FindLastForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*readmodel.BookingShortRM, error)
	FindNextForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*readmodel.BookingShortRM, error)
}

type CreateBookingParams struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingUseCase interface {
	Create(ctx context.Context, bookerID uuid.UUID, params CreateBookingParams) (*readmodel.BookingRM, error)
	Get(ctx context.Context, actorID, bookingID uuid.UUID) (*readmodel.BookingRM, error)
	SetApproval(ctx context.Context, actorID, bookingID uuid.UUID, approved bool) (*readmodel.BookingRM, error)
	ListForBooker(ctx context.Context, bookerID uuid.UUID, state string, from, size int) ([]*readmodel.BookingRM, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, state string, from, size int) ([]*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	itemRepo    ItemRepository
	userRepo    UserRepository
	clock       clock.Clock

	// itemLocks serializes creation per item so the overlap check and the
	// insert act as one step within this process.
	itemLocks sync.Map // uuid.UUID -> *sync.Mutex
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		clock:       clock,
	}
}

func (u *bookingUseCaseImpl) Create(
	ctx context.Context,
	bookerID uuid.UUID,
	params CreateBookingParams,
) (*readmodel.BookingRM, error) {
	if _, err := u.loadUser(ctx, bookerID); err != nil {
		return nil, err
	}
	itemRM, err := u.loadItem(ctx, params.ItemID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	spec := booking.ItemSpec{ID: itemRM.ID, OwnerID: itemRM.OwnerID, Available: itemRM.Available}
	if err := booking.ValidateCreation(bookerID, spec, params.Start, params.End, now); err != nil {
		return nil, err
	}
	period, err := booking.NewPeriod(params.Start, params.End)
	if err != nil {
		return nil, err
	}

	lock := u.lockForItem(itemRM.ID)
	lock.Lock()
	defer lock.Unlock()

	taken, err := u.bookingRepo.HasOverlapping(ctx, itemRM.ID, params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if taken {
		return nil, ErrBookingOverlap
	}

	b := booking.NewBooking(itemRM.ID, bookerID, period, now)
	if err := u.bookingRepo.Create(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingOverlap
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.loadBooking(ctx, b.ID())
}

func (u *bookingUseCaseImpl) Get(ctx context.Context, actorID, bookingID uuid.UUID) (*readmodel.BookingRM, error) {
	rm, err := u.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := booking.ValidateView(reconstruct(rm), rm.Item.OwnerID, actorID); err != nil {
		return nil, err
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) SetApproval(
	ctx context.Context,
	actorID, bookingID uuid.UUID,
	approved bool,
) (*readmodel.BookingRM, error) {
	rm, err := u.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	b := reconstruct(rm)
	if err := booking.ValidateTransition(b, rm.Item.OwnerID, actorID); err != nil {
		return nil, err
	}
	if approved {
		err = b.Approve()
	} else {
		err = b.Reject()
	}
	if err != nil {
		return nil, err
	}

	if err := u.bookingRepo.UpdateStatus(ctx, b.ID(), b.Status()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u.loadBooking(ctx, bookingID)
}

func (u *bookingUseCaseImpl) ListForBooker(
	ctx context.Context,
	bookerID uuid.UUID,
	state string,
	from, size int,
) ([]*readmodel.BookingRM, error) {
	bucket, page, err := u.validateListArgs(ctx, bookerID, state, from, size)
	if err != nil {
		return nil, err
	}
	rms, err := u.bookingRepo.FindByBooker(ctx, bookerID, bucket, u.clock.Now(), page)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *bookingUseCaseImpl) ListForOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	state string,
	from, size int,
) ([]*readmodel.BookingRM, error) {
	bucket, page, err := u.validateListArgs(ctx, ownerID, state, from, size)
	if err != nil {
		return nil, err
	}
	rms, err := u.bookingRepo.FindByItemOwner(ctx, ownerID, bucket, u.clock.Now(), page)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

// validateListArgs checks pagination and the bucket name before any store
// call, then confirms the subject user exists.
func (u *bookingUseCaseImpl) validateListArgs(
	ctx context.Context,
	userID uuid.UUID,
	state string,
	from, size int,
) (booking.Bucket, Page, error) {
	page, err := NewPage(from, size)
	if err != nil {
		return "", Page{}, err
	}
	bucket, err := booking.ParseBucket(state)
	if err != nil {
		return "", Page{}, err
	}
	if _, err := u.loadUser(ctx, userID); err != nil {
		return "", Page{}, err
	}
	return bucket, page, nil
}

func (u *bookingUseCaseImpl) loadBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	rm, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) loadUser(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error) {
	rm, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) loadItem(ctx context.Context, id uuid.UUID) (*readmodel.ItemRM, error) {
	rm, err := u.itemRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) lockForItem(itemID uuid.UUID) *sync.Mutex {
	v, _ := u.itemLocks.LoadOrStore(itemID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func reconstruct(rm *readmodel.BookingRM) *booking.Booking {
	return booking.ReconstructBooking(
		rm.ID,
		rm.Item.ID,
		rm.Booker.ID,
		booking.ReconstructPeriod(rm.Start, rm.End),
		booking.Status(rm.Status),
		rm.CreatedAt,
	)
}
