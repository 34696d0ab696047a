package kv

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
)

// LoadJSON reads key and decodes it into a T. An absent key yields def.
// Read and decode failures are returned wrapped in common.ErrStorage.
func LoadJSON[T any](ctx context.Context, s Store, key string, def T) (T, error) {
	b, err := s.Get(ctx, key)
	if err != nil {
		return def, common.StorageError("get "+key, err)
	}
	if b == nil {
		return def, nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return def, common.StorageError("decode "+key, err)
	}
	return v, nil
}

// SaveJSON encodes v and writes it under key.
func SaveJSON[T any](ctx context.Context, s Store, key string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return common.StorageError("encode "+key, err)
	}
	if err := s.Set(ctx, key, b); err != nil {
		return common.StorageError("set "+key, err)
	}
	return nil
}
