// Package localdir deletes data files from local working directories.
package localdir

import (
	"path/filepath"
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
	"github.com/rs/zerolog"

	adminerrors "github.com/RobertLJordan/ak-energy-admin/errors"
)

// Cleaner removes regular files from a directory, leaving subdirectories and
// dot-prefixed entries (such as a .gitignore keeping an empty directory
// tracked) untouched.
type Cleaner struct {
	fs  fs.Filesystem
	log zerolog.Logger
}

// NewCleaner creates a Cleaner operating on fsys and logging to log.
func NewCleaner(fsys fs.Filesystem, log zerolog.Logger) *Cleaner {
	return &Cleaner{fs: fsys, log: log}
}

// Clear deletes every regular file directly inside dir. It does not recurse.
// One log line is emitted per deleted file.
//
// The first deletion failure aborts the remaining entries and is returned;
// files already deleted stay deleted.
func (c *Cleaner) Clear(dir string) error {
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		return adminerrors.NewError("clearDir", adminerrors.ErrNotFound).
			WithKey(dir).
			WithMessage(err.Error())
	}

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		c.log.Info().Str("file", path).Msgf("deleting %s", path)
		if err := c.fs.Remove(path); err != nil {
			return adminerrors.NewError("clearDir", err).WithKey(path)
		}
	}
	return nil
}
