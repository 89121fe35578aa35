package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKeyValueStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryKeyValueStorage()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	value := []byte(`[{"id":"1"}]`)
	require.NoError(t, s.Put(ctx, "k", value))

	// the caller's buffer is copied on the way in and on the way out
	value[0] = 'X'
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	got[0] = 'Y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, byte('['), again[0])

	require.NoError(t, s.Put(ctx, "k", []byte("[]")))
	got, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}
