package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInMemoryKV(t *testing.T) {
	store := NewInMemoryKV()
	assert.NotNil(t, store)
	assert.NotNil(t, store.data)
	assert.Empty(t, store.data)
}

func TestInMemoryKV_SetGet(t *testing.T) {
	store := NewInMemoryKV()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "height", []byte(`"0x4b7"`)))

	value, err := store.Get(ctx, "height")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"0x4b7"`), value)

	// Mutating the returned slice must not affect the stored value.
	value[0] = 'x'
	again, err := store.Get(ctx, "height")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"0x4b7"`), again)
}

func TestInMemoryKV_GetMissing(t *testing.T) {
	store := NewInMemoryKV()

	_, err := store.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryKV_Delete(t *testing.T) {
	store := NewInMemoryKV()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "height", []byte("1")))
	require.NoError(t, store.Delete(ctx, "height"))

	_, err := store.Get(ctx, "height")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete(ctx, "height"))
}
