package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	v, err := s.Get(ctx, "absent")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.SetMany(ctx, map[string][]byte{"b": []byte("2"), "c": []byte("3")}))

	m, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 3)

	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "a"))
	v, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Clear(ctx))
	m, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	out[0] = 'Y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
