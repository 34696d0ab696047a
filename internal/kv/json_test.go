package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct {
	Store
	err error
}

func (b brokenStore) Get(context.Context, string) ([]byte, error) { return nil, b.err }
func (b brokenStore) Set(context.Context, string, []byte) error   { return b.err }

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoadJSON_AbsentKeyReturnsDefault(t *testing.T) {
	s := NewMemoryStore()

	got, err := LoadJSON(context.Background(), s, "k", []string{"water"})
	require.NoError(t, err)
	assert.Equal(t, []string{"water"}, got)
}

func TestSaveThenLoad(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, SaveJSON(ctx, s, "k", payload{Name: "water", Count: 3}))

	got, err := LoadJSON(ctx, s, "k", payload{})
	require.NoError(t, err)
	assert.Equal(t, payload{Name: "water", Count: 3}, got)
}

func TestLoadJSON_CorruptPayloadIsStorageError(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "k", []byte("{not json")))

	_, err := LoadJSON(ctx, s, "k", payload{})
	require.ErrorIs(t, err, common.ErrStorage)
	assert.Contains(t, err.Error(), "decode k")
}

func TestLoadSave_BackendFailureIsStorageError(t *testing.T) {
	cause := errors.New("io timeout")
	s := brokenStore{err: cause}
	ctx := context.Background()

	_, err := LoadJSON(ctx, s, "k", payload{})
	require.ErrorIs(t, err, common.ErrStorage)
	require.ErrorIs(t, err, cause)

	err = SaveJSON(ctx, s, "k", payload{})
	require.ErrorIs(t, err, common.ErrStorage)
	require.ErrorIs(t, err, cause)
}
