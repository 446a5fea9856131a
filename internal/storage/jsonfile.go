// Package storage implements the flat-file persistence used by the bot:
// JSON documents rewritten atomically on every mutation, plus rotating
// timestamped backups.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Load decodes the JSON file at path into v. A missing file is reported
// as os.ErrNotExist so callers can seed defaults.
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// LoadOrSeed decodes path into v, writing seed to disk and copying it
// into v when the file does not exist yet.
func LoadOrSeed(path string, v any, seed any) error {
	err := Load(path, v)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := Save(path, seed); err != nil {
		return err
	}
	return Load(path, v)
}

// Save writes v as indented JSON. The write goes to a temp file in the
// same directory followed by a rename, so readers never observe a
// half-written document.
func Save(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
