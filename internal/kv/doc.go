// Package kv is the persistence adapter of wellkeeper: an opaque key/value
// store mapping string keys to JSON blobs.
//
// # Overview
//
// Every logical collection (water history, beverage log, favourites, custom
// beverages, focus sessions, settings) lives under one key, see the Key*
// constants in internal/common. Stores never interpret values; the services
// own the schema of each payload and go through LoadJSON / SaveJSON.
//
// # Implementations
//
//   - SQLStore over SQLite (modernc.org/sqlite) or PostgreSQL (pgx stdlib),
//     schema applied by goose from internal/migrations (see Open).
//   - MemoryStore, a map guarded by a mutex, for tests and ephemeral runs.
//
// # Contract
//
// Get on an absent key returns (nil, nil). Delete of an absent key is not an
// error. There are no multi-key transactions apart from SetMany, which writes
// a batch atomically when the backend supports it.
//
// Typical Usage
//
//	store, err := kv.Open(ctx, "wellkeeper.db")
//	history, err := kv.LoadJSON(ctx, store, common.KeyWaterHistory, models.WaterHistory{})
//	err = kv.SaveJSON(ctx, store, common.KeyWaterHistory, history)
package kv
