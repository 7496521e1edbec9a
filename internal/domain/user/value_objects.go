package user

import (
	"net/mail"
	"strings"

	"shareit/internal/pkg/errs"
)

var (
	ErrEmptyEmail   = errs.New("email must not be blank")
	ErrInvalidEmail = errs.New("email is not a valid address")
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	if strings.TrimSpace(s) == "" {
		return Email{}, ErrEmptyEmail
	}
	if strings.ContainsAny(s, " \t") {
		return Email{}, ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return Email{}, errs.Mark(err, ErrInvalidEmail)
	}
	return Email{value: s}, nil
}

func (e Email) Value() string { return e.value }
