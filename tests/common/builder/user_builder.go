package builder

import (
	"time"

	"shareit/internal/domain/user"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserBuilder struct {
	id        uuid.UUID
	name      string
	email     string
	createdAt time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		id:        uuid.New(),
		name:      "Alice",
		email:     "alice@example.com",
		createdAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	b.id = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(b.email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(b.name, email, b.createdAt)
}

func (b *UserBuilder) BuildRM() *readmodel.UserRM {
	return &readmodel.UserRM{
		ID:        b.id,
		Name:      b.name,
		Email:     b.email,
		CreatedAt: b.createdAt,
	}
}
