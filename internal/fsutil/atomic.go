// Package fsutil provides file system helpers on top of afero.
package fsutil

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const defaultPerm os.FileMode = 0644

// WriteFileAtomic replaces the content of path with data. The data is written
// to a temporary file in the same directory, synced, then renamed over path,
// so readers see either the old or the new content and never a truncated file.
// The permission bits of an existing file are kept.
func WriteFileAtomic(fs afero.Fs, path string, data []byte) (err error) {
	perm := defaultPerm
	info, err := fs.Stat(path)
	switch {
	case err == nil:
		perm = info.Mode().Perm()
	case !os.IsNotExist(err):
		return errors.Wrapf(err, "failed to stat %s", path)
	}

	tmp, err := afero.TempFile(fs, filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file for %s", path)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrapf(err, "failed to write %s", tmpName)
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrapf(err, "failed to sync %s", tmpName)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", tmpName)
	}
	if err = fs.Chmod(tmpName, perm); err != nil {
		return errors.Wrapf(err, "failed to chmod %s", tmpName)
	}
	if err = fs.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", path)
	}
	return nil
}
