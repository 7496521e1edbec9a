package comment

import (
	"context"
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrNotEligible means the author has no finished, non-rejected booking of
// the item.
var ErrNotEligible = errs.New("user has not completed a rental of this item")

type EligibilityInput struct {
	ItemID   uuid.UUID
	AuthorID uuid.UUID
	Now      time.Time
}

// EligibilityChecker gates comment creation: the author must hold at least
// one booking of the item with status other than rejected whose end instant
// is at or before now.
type EligibilityChecker interface {
	CanComment(ctx context.Context, input EligibilityInput) error
}
