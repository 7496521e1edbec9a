//go:build unit

package comment_test

import (
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/comment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	itemID := uuid.New()
	authorID := uuid.New()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("valid comment created with trimmed text", func(t *testing.T) {
		c, err := comment.NewComment(itemID, authorID, "  great drill, thanks!  ", now)
		require.NoError(t, err)
		assert.Equal(t, "great drill, thanks!", c.Text())
		assert.Equal(t, itemID, c.ItemID())
		assert.Equal(t, authorID, c.AuthorID())
		assert.Equal(t, now, c.CreatedAt())
	})

	t.Run("blank text rejected", func(t *testing.T) {
		_, err := comment.NewComment(itemID, authorID, "   ", now)
		assert.ErrorIs(t, err, comment.ErrEmptyText)
	})

	t.Run("max length boundary", func(t *testing.T) {
		_, err := comment.NewComment(itemID, authorID, strings.Repeat("a", comment.MaxTextLength), now)
		assert.NoError(t, err)

		_, err = comment.NewComment(itemID, authorID, strings.Repeat("a", comment.MaxTextLength+1), now)
		assert.ErrorIs(t, err, comment.ErrTextTooLong)
	})
}
