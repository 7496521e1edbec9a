//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase"
	"shareit/internal/usecase/readmodel"
	"shareit/tests/common/builder"
	usecasemock "shareit/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	requestRepo *usecasemock.MockRequestRepository
	userRepo    *usecasemock.MockUserRepository
	itemRepo    *usecasemock.MockItemRepository
	clock       *clock.MockClock
	uc          usecase.RequestUseCase
}

func (s *RequestUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.requestRepo = usecasemock.NewMockRequestRepository(s.mockCtrl)
	s.userRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.itemRepo = usecasemock.NewMockItemRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(builder.BaseTime)
	s.uc = usecase.NewRequestUseCase(s.requestRepo, s.userRepo, s.itemRepo, s.clock)
}

func (s *RequestUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestUseCaseSuite(t *testing.T) {
	suite.Run(t, new(RequestUseCaseTestSuite))
}

func requestRM(requesterID uuid.UUID) *readmodel.RequestRM {
	return &readmodel.RequestRM{
		ID:          uuid.New(),
		RequesterID: requesterID,
		Description: "looking for a ladder",
		CreatedAt:   builder.BaseTime,
	}
}

func (s *RequestUseCaseTestSuite) TestCreate() {
	requester := builder.NewUserBuilder().BuildRM()

	s.Run("success: request stored and refetched", func() {
		returned := requestRM(requester.ID)

		s.userRepo.EXPECT().FindByID(gomock.Any(), requester.ID).Return(requester, nil)
		var storedID uuid.UUID
		s.requestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *request.Request) error {
				storedID = r.ID()
				s.Equal(requester.ID, r.RequesterID())
				s.Equal(builder.BaseTime, r.CreatedAt())
				return nil
			})
		s.requestRepo.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*readmodel.RequestRM, error) {
				s.Equal(storedID, id)
				return returned, nil
			})

		rm, err := s.uc.Create(context.Background(), requester.ID, "looking for a ladder")
		s.NoError(err)
		s.Equal(returned.ID, rm.ID)
	})

	s.Run("error: blank description rejected", func() {
		s.userRepo.EXPECT().FindByID(gomock.Any(), requester.ID).Return(requester, nil)

		_, err := s.uc.Create(context.Background(), requester.ID, "  ")
		s.ErrorIs(err, request.ErrEmptyDescription)
	})

	s.Run("error: unknown requester", func() {
		s.userRepo.EXPECT().FindByID(gomock.Any(), requester.ID).
			Return(nil, infra.WrapRepoErr("find user", errs.New("no rows"), infra.KindNotFound))

		_, err := s.uc.Create(context.Background(), requester.ID, "looking for a ladder")
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})
}

func (s *RequestUseCaseTestSuite) TestListOwn() {
	requester := builder.NewUserBuilder().BuildRM()

	s.Run("success: answers attached to each request", func() {
		own := []*readmodel.RequestRM{requestRM(requester.ID), requestRM(requester.ID)}
		answer := &readmodel.ItemAnswerRM{ID: uuid.New(), Name: "ladder", OwnerID: uuid.New(), RequestID: own[0].ID}

		s.userRepo.EXPECT().FindByID(gomock.Any(), requester.ID).Return(requester, nil)
		s.requestRepo.EXPECT().FindByRequester(gomock.Any(), requester.ID).Return(own, nil)
		s.itemRepo.EXPECT().FindByRequest(gomock.Any(), own[0].ID).
			Return([]*readmodel.ItemAnswerRM{answer}, nil)
		s.itemRepo.EXPECT().FindByRequest(gomock.Any(), own[1].ID).
			Return([]*readmodel.ItemAnswerRM{}, nil)

		rms, err := s.uc.ListOwn(context.Background(), requester.ID)
		s.NoError(err)
		s.Len(rms, 2)
		s.Len(rms[0].Items, 1)
		s.Empty(rms[1].Items)
	})

	s.Run("error: unknown requester", func() {
		s.userRepo.EXPECT().FindByID(gomock.Any(), requester.ID).
			Return(nil, infra.WrapRepoErr("find user", errs.New("no rows"), infra.KindNotFound))

		_, err := s.uc.ListOwn(context.Background(), requester.ID)
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})
}

func (s *RequestUseCaseTestSuite) TestListOthers() {
	viewer := builder.NewUserBuilder().BuildRM()

	s.Run("success: excludes own requests via the repository", func() {
		others := []*readmodel.RequestRM{requestRM(uuid.New())}

		s.userRepo.EXPECT().FindByID(gomock.Any(), viewer.ID).Return(viewer, nil)
		s.requestRepo.EXPECT().FindOthers(gomock.Any(), viewer.ID, usecase.Page{From: 0, Size: 10}).
			Return(others, nil)
		s.itemRepo.EXPECT().FindByRequest(gomock.Any(), others[0].ID).
			Return([]*readmodel.ItemAnswerRM{}, nil)

		rms, err := s.uc.ListOthers(context.Background(), viewer.ID, 0, 10)
		s.NoError(err)
		s.Len(rms, 1)
	})

	s.Run("error: invalid paging rejected before user lookup", func() {
		_, err := s.uc.ListOthers(context.Background(), viewer.ID, -1, 10)
		s.ErrorIs(err, usecase.ErrInvalidPage)
	})
}

func (s *RequestUseCaseTestSuite) TestGet() {
	viewer := builder.NewUserBuilder().BuildRM()
	rm := requestRM(uuid.New())

	s.Run("success: any user may view any request", func() {
		s.userRepo.EXPECT().FindByID(gomock.Any(), viewer.ID).Return(viewer, nil)
		s.requestRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)
		s.itemRepo.EXPECT().FindByRequest(gomock.Any(), rm.ID).
			Return([]*readmodel.ItemAnswerRM{}, nil)

		got, err := s.uc.Get(context.Background(), viewer.ID, rm.ID)
		s.NoError(err)
		s.Equal(rm.ID, got.ID)
		s.NotNil(got.Items)
	})

	s.Run("error: unknown request", func() {
		s.userRepo.EXPECT().FindByID(gomock.Any(), viewer.ID).Return(viewer, nil)
		s.requestRepo.EXPECT().FindByID(gomock.Any(), rm.ID).
			Return(nil, infra.WrapRepoErr("find request", errs.New("no rows"), infra.KindNotFound))

		_, err := s.uc.Get(context.Background(), viewer.ID, rm.ID)
		s.ErrorIs(err, usecase.ErrRequestNotFound)
	})
}
