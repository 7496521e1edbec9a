package components

import (
	repo "shareit/internal/infra/repository"
	"shareit/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo.NewItemRepository,
			fx.As(new(usecase.ItemRepository)),
		),
		fx.Annotate(
			repo.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo.NewCommentRepository,
			fx.As(new(usecase.CommentRepository)),
		),
		fx.Annotate(
			repo.NewRequestRepository,
			fx.As(new(usecase.RequestRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo.DBTX {
	return pool
}
