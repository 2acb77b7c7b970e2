// Package filelock guards a repository scan against concurrent runs and
// provides the atomic write used for the manifest.
package filelock

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// ScanLock is a per-root advisory lock. The lock file lives under the system
// temp directory, keyed by the root's absolute path, so it never appears in
// the tree being scanned.
type ScanLock struct {
	flock *flock.Flock
	path  string
}

// NewScanLock creates the lock for a repository root.
func NewScanLock(root string) *ScanLock {
	path := lockPath(root)
	return &ScanLock{
		flock: flock.New(path),
		path:  path,
	}
}

// TryLock attempts to acquire the lock without blocking. Returns false when
// another process is already scanning the same root.
func (l *ScanLock) TryLock() (bool, error) {
	acquired, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
func (l *ScanLock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// lockPath derives a stable lock file name from the root's absolute path.
func lockPath(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(os.TempDir(), fmt.Sprintf("hassmap-%x.lock", sum[:6]))
}

// AtomicWrite writes data to path through a uniquely named temp file in the
// same directory followed by a rename, so readers never observe a partial
// file. Any pre-existing file is replaced unconditionally.
func AtomicWrite(path string, data []byte) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
