package user

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyName = errs.New("user name must not be blank")

type User struct {
	id        uuid.UUID
	name      string
	email     Email
	createdAt time.Time
}

func NewUser(name string, email Email, now time.Time) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &User{
		id:        uuid.New(),
		name:      name,
		email:     email,
		createdAt: now,
	}, nil
}

func ReconstructUser(id uuid.UUID, name string, email Email, createdAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
	}
}

func (u *User) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	u.name = name
	return nil
}

func (u *User) ChangeEmail(email Email) {
	u.email = email
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
