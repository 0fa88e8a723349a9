// Package fsutil holds the file helpers that make dataset preparation steps
// idempotent: an existence probe and an atomic temp-file-then-rename writer.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Exists reports whether path exists. Errors other than "not exist" are returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// WriteAtomic creates dst by running writeFunc against a temp file in the same
// directory and renaming it into place on success. On failure the temp file is
// removed and dst is left untouched. Missing parent directories are created.
//
// The temp file is handed over as *os.File so that writers needing
// io.WriterAt (ranged downloads) can use it.
func WriteAtomic(dst string, writeFunc func(f *os.File) error) error {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(dst)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	_ = tmp.Chmod(0o644)

	if err := writeFunc(tmp); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return err
	}

	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	tmpName = ""

	return nil
}
