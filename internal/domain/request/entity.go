package request

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyDescription = errs.New("request description must not be blank")

// Request is a user's stated need for an item type; items may answer it.
type Request struct {
	id          uuid.UUID
	requesterID uuid.UUID
	description string
	createdAt   time.Time
}

func NewRequest(requesterID uuid.UUID, description string, now time.Time) (*Request, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	return &Request{
		id:          uuid.New(),
		requesterID: requesterID,
		description: description,
		createdAt:   now,
	}, nil
}

func ReconstructRequest(id, requesterID uuid.UUID, description string, createdAt time.Time) *Request {
	return &Request{
		id:          id,
		requesterID: requesterID,
		description: description,
		createdAt:   createdAt,
	}
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) RequesterID() uuid.UUID { return r.requesterID }
func (r *Request) Description() string    { return r.description }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }
