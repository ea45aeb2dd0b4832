package backup

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// DirName is the name of the backup directory created next to each
// backed-up path.
const DirName = ".aicli-backup"

// timestampLayout is the ISO-basic timestamp embedded in backup names.
const timestampLayout = "20060102_150405"

// Store manages timestamped backups of files and directories that a
// reconciliation is about to overwrite. Backups accumulate until manually
// pruned; there is no automatic garbage collection.
type Store struct {
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates a backup Store with the given options.
func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backup copies path (a file, or a directory copied recursively) into
// <parent>/.aicli-backup/<name>.backup_<timestamp>, creating the backup
// directory if needed. The original is left in place; the caller is
// responsible for removing it afterward.
//
// Same-second backups of the same path get a numeric suffix rather than
// overwriting an earlier backup.
func (s *Store) Backup(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, "stat %s", path)
	}

	backupDir := filepath.Join(filepath.Dir(path), DirName)
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating backup directory")
	}

	base := filepath.Base(path) + ".backup_" + s.now().Format(timestampLayout)
	backupPath := filepath.Join(backupDir, base)
	for i := 1; ; i++ {
		if _, err := os.Lstat(backupPath); errors.Is(err, os.ErrNotExist) {
			break
		}
		backupPath = filepath.Join(backupDir, base+"_"+strconv.Itoa(i))
	}

	if info.IsDir() {
		err = copyDir(path, backupPath)
	} else {
		err = copyFile(path, backupPath)
	}
	if err != nil {
		// A half-written backup must not look restorable.
		os.RemoveAll(backupPath)
		return "", errors.Wrapf(err, "backing up %s", path)
	}

	return backupPath, nil
}

// List returns the backups recorded for originalPath, newest first.
// A missing backup directory yields an empty slice.
func (s *Store) List(originalPath string) ([]string, error) {
	backupDir := filepath.Join(filepath.Dir(originalPath), DirName)
	prefix := filepath.Base(originalPath) + ".backup_"

	entries, err := os.ReadDir(backupDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	var matches []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), prefix) {
			matches = append(matches, filepath.Join(backupDir, entry.Name()))
		}
	}

	// Timestamp layout sorts lexically; newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))

	return matches, nil
}

// Restore moves the most recent backup of originalPath back into place.
// Returns false if no backup exists. The caller must remove whatever
// currently occupies originalPath before restoring a directory backup.
func (s *Store) Restore(originalPath string) (bool, error) {
	backups, err := s.List(originalPath)
	if err != nil {
		return false, err
	}
	if len(backups) == 0 {
		return false, nil
	}

	if err := os.Rename(backups[0], originalPath); err != nil {
		return false, errors.Wrapf(err, "restoring %s", originalPath)
	}

	return true, nil
}

// Prune removes backups of originalPath beyond the newest keep entries.
// Pruning is an explicit operation; reconciliation never prunes.
func (s *Store) Prune(originalPath string, keep int) (int, error) {
	if keep < 0 {
		return 0, errors.New("keep must be non-negative")
	}

	backups, err := s.List(originalPath)
	if err != nil {
		return 0, err
	}

	removed := 0
	for i := keep; i < len(backups); i++ {
		if err := os.RemoveAll(backups[i]); err != nil {
			return removed, errors.Wrapf(err, "removing backup %s", backups[i])
		}
		removed++
	}

	return removed, nil
}

// copyFile copies a single file from src to dst, preserving the mode.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening source file %s", src)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return errors.Wrapf(err, "stat source file %s", src)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return errors.Wrapf(err, "creating destination file %s", dst)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return errors.Wrapf(err, "copying %s to %s", src, dst)
	}

	return nil
}

// copyDir recursively copies a directory from src to dst.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return errors.Wrapf(err, "stat %s", src)
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return errors.Wrapf(err, "creating directory %s", dst)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, "reading directory %s", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}
