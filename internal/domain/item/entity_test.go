//go:build unit

package item_test

import (
	"testing"

	"shareit/internal/domain/item"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid item created", func(t *testing.T) {
		i, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, i.ID())
		assert.True(t, i.Available())
		assert.Nil(t, i.RequestID())
	})

	t.Run("request reference is kept", func(t *testing.T) {
		reqID := uuid.New()
		i, err := builder.NewItemBuilder().WithRequestID(&reqID).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, i.RequestID())
		assert.Equal(t, reqID, *i.RequestID())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := builder.NewItemBuilder().WithName(" ").BuildDomain()
		assert.ErrorIs(t, err, item.ErrEmptyName)
	})

	t.Run("blank description rejected", func(t *testing.T) {
		_, err := builder.NewItemBuilder().WithDescription("").BuildDomain()
		assert.ErrorIs(t, err, item.ErrEmptyDescription)
	})
}

func TestItemPatch(t *testing.T) {
	owner := uuid.New()

	newItem := func() *item.Item {
		return builder.NewItemBuilder().WithOwnerID(owner).BuildReconstructed()
	}

	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("owner patches selected fields only", func(t *testing.T) {
		i := newItem()
		require.NoError(t, i.Patch(owner, strPtr("impact driver"), nil, boolPtr(false)))
		assert.Equal(t, "impact driver", i.Name())
		assert.Equal(t, "18V cordless drill with two batteries", i.Description())
		assert.False(t, i.Available())
	})

	t.Run("nil fields leave item untouched", func(t *testing.T) {
		i := newItem()
		require.NoError(t, i.Patch(owner, nil, nil, nil))
		assert.Equal(t, "cordless drill", i.Name())
		assert.True(t, i.Available())
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		i := newItem()
		err := i.Patch(uuid.New(), strPtr("stolen"), nil, nil)
		assert.ErrorIs(t, err, item.ErrNotOwner)
		assert.Equal(t, "cordless drill", i.Name())
	})

	t.Run("blank patched name rejected", func(t *testing.T) {
		i := newItem()
		assert.ErrorIs(t, i.Patch(owner, strPtr("  "), nil, nil), item.ErrEmptyName)
	})

	t.Run("blank patched description rejected", func(t *testing.T) {
		i := newItem()
		assert.ErrorIs(t, i.Patch(owner, nil, strPtr(""), nil), item.ErrEmptyDescription)
	})
}
