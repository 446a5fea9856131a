package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.json")

	require.NoError(t, Save(path, doc{Name: "tam", Count: 3}))

	var got doc
	require.NoError(t, Load(path, &got))
	assert.Equal(t, doc{Name: "tam", Count: 3}, got)

	// No temp file is left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadMissingFile(t *testing.T) {
	var got doc
	err := Load(filepath.Join(t.TempDir(), "missing.json"), &got)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")

	var got doc
	require.NoError(t, LoadOrSeed(path, &got, doc{Name: "seeded"}))
	assert.Equal(t, "seeded", got.Name)

	// Second call reads the file, not the seed.
	require.NoError(t, Save(path, doc{Name: "mutated"}))
	var again doc
	require.NoError(t, LoadOrSeed(path, &again, doc{Name: "seeded"}))
	assert.Equal(t, "mutated", again.Name)
}

func TestBackupAndCleanup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.json")
	backupDir := filepath.Join(dir, "backup")

	require.NoError(t, Save(path, doc{Name: "x"}))

	dest, err := Backup(path, backupDir)
	require.NoError(t, err)
	assert.FileExists(t, dest)

	// Fabricate older backups to exercise rotation.
	for _, stamp := range []string{
		"2020-01-01T00-00-00", "2020-01-02T00-00-00", "2020-01-03T00-00-00",
	} {
		require.NoError(t, os.WriteFile(
			filepath.Join(backupDir, "users_"+stamp+".json"), []byte("{}"), 0o644))
	}

	removed, err := CleanupBackups(backupDir, "users", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCleanupBackupsMissingDir(t *testing.T) {
	removed, err := CleanupBackups(filepath.Join(t.TempDir(), "nope"), "users", 7)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
