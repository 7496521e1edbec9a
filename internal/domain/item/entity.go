package item

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errs.New("item name must not be blank")
	ErrEmptyDescription = errs.New("item description must not be blank")
	ErrNotOwner         = errs.New("only the item owner may modify the item")
)

// Item belongs to exactly one owner; ownership never changes after creation.
type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	available   bool
	requestID   *uuid.UUID
	createdAt   time.Time
}

func NewItem(ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID, now time.Time) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   now,
	}, nil
}

func ReconstructItem(id, ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID, createdAt time.Time) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   createdAt,
	}
}

// Patch applies a partial update. Nil fields stay untouched; only the owner
// may call it.
func (i *Item) Patch(actorID uuid.UUID, name, description *string, available *bool) error {
	if !i.IsOwnedBy(actorID) {
		return ErrNotOwner
	}
	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return ErrEmptyName
		}
		i.name = *name
	}
	if description != nil {
		if strings.TrimSpace(*description) == "" {
			return ErrEmptyDescription
		}
		i.description = *description
	}
	if available != nil {
		i.available = *available
	}
	return nil
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

func (i *Item) ID() uuid.UUID         { return i.id }
func (i *Item) OwnerID() uuid.UUID    { return i.ownerID }
func (i *Item) Name() string          { return i.name }
func (i *Item) Description() string   { return i.description }
func (i *Item) Available() bool       { return i.available }
func (i *Item) RequestID() *uuid.UUID { return i.requestID }
func (i *Item) CreatedAt() time.Time  { return i.createdAt }
