// Package filex holds small filesystem helpers for backup files.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// EnsureSubdDir creates dirName under the working directory if needed and
// returns its absolute path.
func EnsureSubdDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// TimestampedName returns prefix-YYYYMMDD-HHMMSS.ext for t.
func TimestampedName(prefix, ext string, t time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, t.Format("20060102-150405"), ext)
}

// WriteFileAtomic writes data to a temp file next to path and renames it
// into place, so readers never see a partial file.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
