// Package backup exports the key/value store to a JSON document and restores
// it.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/dmitrijs2005/wellkeeper/internal/filex"
	"github.com/dmitrijs2005/wellkeeper/internal/kv"
)

const (
	Version = 1
	Dir     = "backups"
)

// Document is the on-disk backup format.
type Document struct {
	Version   int                        `json:"version"`
	CreatedAt time.Time                  `json:"created_at"`
	Items     map[string]json.RawMessage `json:"items"`
}

// Export writes every key of store to w.
func Export(ctx context.Context, store kv.Store, w io.Writer, now time.Time) error {
	all, err := store.List(ctx)
	if err != nil {
		return common.StorageError("list", err)
	}

	doc := Document{Version: Version, CreatedAt: now, Items: make(map[string]json.RawMessage, len(all))}
	for k, v := range all {
		if !json.Valid(v) {
			return fmt.Errorf("key %s does not hold valid JSON", k)
		}
		doc.Items[k] = v
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// Import reads a backup from r and writes its keys to store. Keys that are
// not in the backup are left untouched. Nothing is written unless the whole
// document is valid; stores implementing kv.BatchSetter apply it in one
// transaction. It returns the restored keys in sorted order.
func Import(ctx context.Context, store kv.Store, r io.Reader) ([]string, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, common.Validationf("malformed backup: %v", err)
	}
	if doc.Version != Version {
		return nil, common.Validationf("unsupported backup version %d", doc.Version)
	}

	items := make(map[string][]byte, len(doc.Items))
	keys := make([]string, 0, len(doc.Items))
	for k, v := range doc.Items {
		if k == "" {
			return nil, common.Validationf("backup contains an empty key")
		}
		if !json.Valid(v) {
			return nil, common.Validationf("backup item %s is not valid JSON", k)
		}
		items[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if bs, ok := store.(kv.BatchSetter); ok {
		if err := bs.SetMany(ctx, items); err != nil {
			return nil, common.StorageError("restore", err)
		}
		return keys, nil
	}

	for _, k := range keys {
		if err := store.Set(ctx, k, items[k]); err != nil {
			return nil, common.StorageError("restore "+k, err)
		}
	}
	return keys, nil
}

// ExportFile writes a timestamped backup under the backups directory and
// returns its path. An explicit path overrides the generated one.
func ExportFile(ctx context.Context, store kv.Store, path string, now time.Time) (string, error) {
	if path == "" {
		dir, err := filex.EnsureSubdDir(Dir)
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, filex.TimestampedName("wellkeeper", "json", now))
	}

	var buf bytes.Buffer
	if err := Export(ctx, store, &buf, now); err != nil {
		return "", err
	}
	if err := filex.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

// ImportFile restores the backup stored at path.
func ImportFile(ctx context.Context, store kv.Store, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open backup: %w", err)
	}
	defer f.Close()
	return Import(ctx, store, f)
}
