//go:build unit

package user_test

import (
	"testing"
	"time"

	"shareit/internal/domain/user"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("valid address accepted", func(t *testing.T) {
		email, err := user.NewEmail("alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", email.Value())
	})

	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{"blank", "", user.ErrEmptyEmail},
		{"whitespace only", "   ", user.ErrEmptyEmail},
		{"embedded space", "alice smith@example.com", user.ErrInvalidEmail},
		{"no at sign", "alice.example.com", user.ErrInvalidEmail},
		{"no domain", "alice@", user.ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := user.NewEmail(tc.input)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestNewUser(t *testing.T) {
	t.Run("valid user created", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "Alice", u.Name())
		assert.Equal(t, "alice@example.com", u.Email().Value())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := builder.NewUserBuilder().WithName("  ").BuildDomain()
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})
}

func TestUserMutation(t *testing.T) {
	email, err := user.NewEmail("alice@example.com")
	require.NoError(t, err)
	u := user.ReconstructUser(uuid.New(), "Alice", email, time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC))

	t.Run("rename", func(t *testing.T) {
		require.NoError(t, u.Rename("Alicia"))
		assert.Equal(t, "Alicia", u.Name())
	})

	t.Run("rename to blank rejected", func(t *testing.T) {
		assert.ErrorIs(t, u.Rename(""), user.ErrEmptyName)
		assert.Equal(t, "Alicia", u.Name())
	})

	t.Run("change email", func(t *testing.T) {
		next, err := user.NewEmail("alicia@example.com")
		require.NoError(t, err)
		u.ChangeEmail(next)
		assert.Equal(t, "alicia@example.com", u.Email().Value())
	})
}
