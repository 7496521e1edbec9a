//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase"
	"shareit/internal/usecase/readmodel"
	"shareit/tests/common/builder"
	usecasemock "shareit/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	bookingRepo *usecasemock.MockBookingRepository
	itemRepo    *usecasemock.MockItemRepository
	userRepo    *usecasemock.MockUserRepository
	clock       *clock.MockClock
	uc          usecase.BookingUseCase
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.bookingRepo = usecasemock.NewMockBookingRepository(s.mockCtrl)
	s.itemRepo = usecasemock.NewMockItemRepository(s.mockCtrl)
	s.userRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(builder.BaseTime)
	s.uc = usecase.NewBookingUseCase(s.bookingRepo, s.itemRepo, s.userRepo, s.clock)
}

func (s *BookingUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errs.New("no rows"), infra.KindNotFound)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingUseCaseTestSuite) TestCreate() {
	booker := builder.NewUserBuilder().WithName("Bob").BuildRM()
	itemRM := builder.NewItemBuilder().BuildRM()
	params := usecase.CreateBookingParams{
		ItemID: itemRM.ID,
		Start:  builder.BaseTime.Add(24 * time.Hour),
		End:    builder.BaseTime.Add(48 * time.Hour),
	}

	s.Run("success: booking stored and refetched", func() {
		returned := builder.NewBookingBuilder().
			WithItemID(itemRM.ID).
			WithBookerID(booker.ID).
			WithPeriod(params.Start, params.End).
			BuildRM()

		s.userRepo.EXPECT().FindByID(gomock.Any(), booker.ID).Return(booker, nil)
		s.itemRepo.EXPECT().FindByID(gomock.Any(), itemRM.ID).Return(itemRM, nil)
		s.bookingRepo.EXPECT().HasOverlapping(gomock.Any(), itemRM.ID, params.Start, params.End).
			Return(false, nil)

		var storedID uuid.UUID
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				storedID = b.ID()
				s.Equal(itemRM.ID, b.ItemID())
				s.Equal(booker.ID, b.BookerID())
				s.Equal(booking.StatusWaiting, b.Status())
				s.Equal(builder.BaseTime, b.CreatedAt())
				return nil
			})
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
				s.Equal(storedID, id)
				return returned, nil
			})

		rm, err := s.uc.Create(context.Background(), booker.ID, params)
		s.NoError(err)
		s.Empty(cmp.Diff(returned, rm))
	})

	s.Run("error: overlapping booking exists", func() {
		s.userRepo.EXPECT().FindByID(gomock.Any(), booker.ID).Return(booker, nil)
		s.itemRepo.EXPECT().FindByID(gomock.Any(), itemRM.ID).Return(itemRM, nil)
		s.bookingRepo.EXPECT().HasOverlapping(gomock.Any(), itemRM.ID, params.Start, params.End).
			Return(true, nil)

		_, err := s.uc.Create(context.Background(), booker.ID, params)
		s.ErrorIs(err, usecase.ErrBookingOverlap)
	})

	s.Run("error: conflict on insert maps to overlap", func() {
		s.userRepo.EXPECT().FindByID(gomock.Any(), booker.ID).Return(booker, nil)
		s.itemRepo.EXPECT().FindByID(gomock.Any(), itemRM.ID).Return(itemRM, nil)
		s.bookingRepo.EXPECT().HasOverlapping(gomock.Any(), itemRM.ID, params.Start, params.End).
			Return(false, nil)
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert booking", errs.New("exclusion violation"), infra.KindConflict))

		_, err := s.uc.Create(context.Background(), booker.ID, params)
		s.ErrorIs(err, usecase.ErrBookingOverlap)
	})

	s.Run("error: booker books own item", func() {
		ownItem := builder.NewItemBuilder().WithOwnerID(booker.ID).BuildRM()
		ownParams := params
		ownParams.ItemID = ownItem.ID

		s.userRepo.EXPECT().FindByID(gomock.Any(), booker.ID).Return(booker, nil)
		s.itemRepo.EXPECT().FindByID(gomock.Any(), ownItem.ID).Return(ownItem, nil)

		_, err := s.uc.Create(context.Background(), booker.ID, ownParams)
		s.ErrorIs(err, booking.ErrOwnItem)
	})

	s.Run("error: item unavailable", func() {
		offItem := builder.NewItemBuilder().WithAvailable(false).BuildRM()
		offParams := params
		offParams.ItemID = offItem.ID

		s.userRepo.EXPECT().FindByID(gomock.Any(), booker.ID).Return(booker, nil)
		s.itemRepo.EXPECT().FindByID(gomock.Any(), offItem.ID).Return(offItem, nil)

		_, err := s.uc.Create(context.Background(), booker.ID, offParams)
		s.ErrorIs(err, booking.ErrItemUnavailable)
	})

	s.Run("error: start in the past", func() {
		pastParams := params
		pastParams.Start = builder.BaseTime.Add(-time.Hour)
		pastParams.End = builder.BaseTime.Add(time.Hour)

		s.userRepo.EXPECT().FindByID(gomock.Any(), booker.ID).Return(booker, nil)
		s.itemRepo.EXPECT().FindByID(gomock.Any(), itemRM.ID).Return(itemRM, nil)

		_, err := s.uc.Create(context.Background(), booker.ID, pastParams)
		s.ErrorIs(err, booking.ErrStartInPast)
	})

	s.Run("error: start not before end", func() {
		flatParams := params
		flatParams.End = flatParams.Start

		s.userRepo.EXPECT().FindByID(gomock.Any(), booker.ID).Return(booker, nil)
		s.itemRepo.EXPECT().FindByID(gomock.Any(), itemRM.ID).Return(itemRM, nil)

		_, err := s.uc.Create(context.Background(), booker.ID, flatParams)
		s.ErrorIs(err, booking.ErrStartNotBeforeEnd)
	})

	s.Run("error: unknown booker", func() {
		s.userRepo.EXPECT().FindByID(gomock.Any(), booker.ID).
			Return(nil, notFoundErr("find user"))

		_, err := s.uc.Create(context.Background(), booker.ID, params)
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})

	s.Run("error: unknown item", func() {
		s.userRepo.EXPECT().FindByID(gomock.Any(), booker.ID).Return(booker, nil)
		s.itemRepo.EXPECT().FindByID(gomock.Any(), itemRM.ID).
			Return(nil, notFoundErr("find item"))

		_, err := s.uc.Create(context.Background(), booker.ID, params)
		s.ErrorIs(err, usecase.ErrItemNotFound)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingUseCaseTestSuite) TestGet() {
	rm := builder.NewBookingBuilder().BuildRM()

	s.Run("success: booker sees the booking", func() {
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)

		got, err := s.uc.Get(context.Background(), rm.Booker.ID, rm.ID)
		s.NoError(err)
		s.Empty(cmp.Diff(rm, got))
	})

	s.Run("success: item owner sees the booking", func() {
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)

		_, err := s.uc.Get(context.Background(), rm.Item.OwnerID, rm.ID)
		s.NoError(err)
	})

	s.Run("error: stranger may not see the booking", func() {
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)

		_, err := s.uc.Get(context.Background(), uuid.New(), rm.ID)
		s.ErrorIs(err, booking.ErrViewNotAllowed)
	})

	s.Run("error: booking not found", func() {
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), rm.ID).
			Return(nil, notFoundErr("find booking"))

		_, err := s.uc.Get(context.Background(), rm.Booker.ID, rm.ID)
		s.ErrorIs(err, usecase.ErrBookingNotFound)
	})
}

// ================================================================================
// TestSetApproval
// ================================================================================

func (s *BookingUseCaseTestSuite) TestSetApproval() {
	s.Run("success: owner approves a waiting booking", func() {
		rm := builder.NewBookingBuilder().BuildRM()
		approved := *rm
		approved.Status = string(booking.StatusApproved)

		s.bookingRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)
		s.bookingRepo.EXPECT().UpdateStatus(gomock.Any(), rm.ID, booking.StatusApproved).Return(nil)
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(&approved, nil)

		got, err := s.uc.SetApproval(context.Background(), rm.Item.OwnerID, rm.ID, true)
		s.NoError(err)
		s.Equal(string(booking.StatusApproved), got.Status)
	})

	s.Run("success: owner rejects a waiting booking", func() {
		rm := builder.NewBookingBuilder().BuildRM()
		rejected := *rm
		rejected.Status = string(booking.StatusRejected)

		s.bookingRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)
		s.bookingRepo.EXPECT().UpdateStatus(gomock.Any(), rm.ID, booking.StatusRejected).Return(nil)
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(&rejected, nil)

		got, err := s.uc.SetApproval(context.Background(), rm.Item.OwnerID, rm.ID, false)
		s.NoError(err)
		s.Equal(string(booking.StatusRejected), got.Status)
	})

	s.Run("error: non-owner may not decide", func() {
		rm := builder.NewBookingBuilder().BuildRM()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)

		_, err := s.uc.SetApproval(context.Background(), rm.Booker.ID, rm.ID, true)
		s.ErrorIs(err, booking.ErrNotItemOwner)
	})

	s.Run("error: booking already decided", func() {
		rm := builder.NewBookingBuilder().WithStatus(booking.StatusApproved).BuildRM()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)

		_, err := s.uc.SetApproval(context.Background(), rm.Item.OwnerID, rm.ID, false)
		s.ErrorIs(err, booking.ErrAlreadyDecided)
	})

	s.Run("error: booking not found", func() {
		id := uuid.New()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, notFoundErr("find booking"))

		_, err := s.uc.SetApproval(context.Background(), uuid.New(), id, true)
		s.ErrorIs(err, usecase.ErrBookingNotFound)
	})
}

// ================================================================================
// TestListForBooker / TestListForOwner
// ================================================================================

func (s *BookingUseCaseTestSuite) TestListForBooker() {
	subject := builder.NewUserBuilder().BuildRM()
	rms := []*readmodel.BookingRM{
		builder.NewBookingBuilder().WithBookerID(subject.ID).BuildRM(),
		builder.NewBookingBuilder().WithBookerID(subject.ID).BuildRM(),
	}

	s.Run("success: bucket and pagination pass through", func() {
		s.userRepo.EXPECT().FindByID(gomock.Any(), subject.ID).Return(subject, nil)
		s.bookingRepo.EXPECT().
			FindByBooker(gomock.Any(), subject.ID, booking.BucketFuture, builder.BaseTime, usecase.Page{From: 0, Size: 10}).
			Return(rms, nil)

		got, err := s.uc.ListForBooker(context.Background(), subject.ID, "FUTURE", 0, 10)
		s.NoError(err)
		s.Len(got, 2)
	})

	s.Run("success: empty state means no filter", func() {
		s.userRepo.EXPECT().FindByID(gomock.Any(), subject.ID).Return(subject, nil)
		s.bookingRepo.EXPECT().
			FindByBooker(gomock.Any(), subject.ID, booking.BucketAll, builder.BaseTime, usecase.Page{From: 0, Size: 10}).
			Return(rms, nil)

		_, err := s.uc.ListForBooker(context.Background(), subject.ID, "", 0, 10)
		s.NoError(err)
	})

	s.Run("error: negative offset rejected before any lookup", func() {
		_, err := s.uc.ListForBooker(context.Background(), subject.ID, "ALL", -1, 10)
		s.ErrorIs(err, usecase.ErrInvalidPage)
	})

	s.Run("error: zero size rejected before any lookup", func() {
		_, err := s.uc.ListForBooker(context.Background(), subject.ID, "ALL", 0, 0)
		s.ErrorIs(err, usecase.ErrInvalidPage)
	})

	s.Run("error: unknown state rejected before user lookup", func() {
		_, err := s.uc.ListForBooker(context.Background(), subject.ID, "SOMETIME", 0, 10)
		s.ErrorIs(err, booking.ErrUnknownBucket)
	})

	s.Run("error: unknown subject user", func() {
		s.userRepo.EXPECT().FindByID(gomock.Any(), subject.ID).
			Return(nil, notFoundErr("find user"))

		_, err := s.uc.ListForBooker(context.Background(), subject.ID, "ALL", 0, 10)
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})
}

func (s *BookingUseCaseTestSuite) TestListForOwner() {
	owner := builder.NewUserBuilder().BuildRM()
	rms := []*readmodel.BookingRM{
		builder.NewBookingBuilder().WithItemOwner(owner.ID).BuildRM(),
	}

	s.Run("success: owner-side listing", func() {
		s.userRepo.EXPECT().FindByID(gomock.Any(), owner.ID).Return(owner, nil)
		s.bookingRepo.EXPECT().
			FindByItemOwner(gomock.Any(), owner.ID, booking.BucketWaiting, builder.BaseTime, usecase.Page{From: 20, Size: 20}).
			Return(rms, nil)

		got, err := s.uc.ListForOwner(context.Background(), owner.ID, "WAITING", 20, 20)
		s.NoError(err)
		s.Len(got, 1)
	})

	s.Run("error: unknown owner", func() {
		s.userRepo.EXPECT().FindByID(gomock.Any(), owner.ID).
			Return(nil, notFoundErr("find user"))

		_, err := s.uc.ListForOwner(context.Background(), owner.ID, "ALL", 0, 10)
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})
}
