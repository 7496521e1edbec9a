package builder

import (
	"time"

	"shareit/internal/domain/item"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	available   bool
	requestID   *uuid.UUID
	createdAt   time.Time
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		id:          uuid.New(),
		ownerID:     uuid.New(),
		name:        "cordless drill",
		description: "18V cordless drill with two batteries",
		available:   true,
		createdAt:   time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ItemBuilder) WithID(id uuid.UUID) *ItemBuilder {
	b.id = id
	return b
}

func (b *ItemBuilder) WithOwnerID(id uuid.UUID) *ItemBuilder {
	b.ownerID = id
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.name = name
	return b
}

func (b *ItemBuilder) WithDescription(description string) *ItemBuilder {
	b.description = description
	return b
}

func (b *ItemBuilder) WithAvailable(available bool) *ItemBuilder {
	b.available = available
	return b
}

func (b *ItemBuilder) WithRequestID(id *uuid.UUID) *ItemBuilder {
	b.requestID = id
	return b
}

func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(b.ownerID, b.name, b.description, b.available, b.requestID, b.createdAt)
}

func (b *ItemBuilder) BuildReconstructed() *item.Item {
	return item.ReconstructItem(b.id, b.ownerID, b.name, b.description, b.available, b.requestID, b.createdAt)
}

func (b *ItemBuilder) BuildRM() *readmodel.ItemRM {
	return &readmodel.ItemRM{
		ID:          b.id,
		OwnerID:     b.ownerID,
		Name:        b.name,
		Description: b.description,
		Available:   b.available,
		RequestID:   b.requestID,
		CreatedAt:   b.createdAt,
	}
}
