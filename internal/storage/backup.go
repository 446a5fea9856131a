package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Backup copies the data file into backupDir under a timestamped name
// and returns the backup path.
func Backup(path, backupDir string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	dest := filepath.Join(backupDir, fmt.Sprintf("%s_%s.json", base, stamp))

	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", err
	}
	return dest, nil
}

// CleanupBackups removes all but the keep most recent backups with the
// given prefix and reports how many files were deleted.
func CleanupBackups(backupDir, prefix string, keep int) (int, error) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), prefix+"_") && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	if len(names) <= keep {
		return 0, nil
	}

	// Timestamped names sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	removed := 0
	for _, name := range names[keep:] {
		if err := os.Remove(filepath.Join(backupDir, name)); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
