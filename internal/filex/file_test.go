package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureSubdDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureSubdDir("backups")
	require.NoError(t, err)

	want := filepath.Join(tmp, "backups")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}

	again, err := EnsureSubdDir("backups")
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestEnsureSubdDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("backups", []byte("x"), 0o660))

	_, err := EnsureSubdDir("backups")
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestTimestampedName(t *testing.T) {
	ts := time.Date(2024, 1, 3, 9, 5, 7, 0, time.UTC)
	require.Equal(t, "wellkeeper-20240103-090507.json", TimestampedName("wellkeeper", "json", ts))
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, WriteFileAtomic(path, []byte(`{"a":1}`)))
	require.NoError(t, WriteFileAtomic(path, []byte(`{"a":2}`)))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `{"a":2}`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "nope", "out.json"), []byte("x"))
	require.Error(t, err)
}
