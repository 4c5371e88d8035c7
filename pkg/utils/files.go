package utils

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

var ErrOutputLocked = errors.New("output is being written by another run")

// EnsureParentDir creates the directory that will hold filePath.
func EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, os.ModePerm)
}

// CheckInputs stats every path and reports all that cannot be read as a
// regular file.
func CheckInputs(paths ...string) error {
	var errs []error
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("input %q: %w", p, err))
			continue
		}
		if info.IsDir() {
			errs = append(errs, fmt.Errorf("input %q is a directory", p))
		}
	}
	return errors.Join(errs...)
}

// OutputLock holds an advisory lock next to an output file for the length of
// a render.
type OutputLock struct {
	lock *flock.Flock
}

// LockOutput takes the lock file "<output>.lock" without blocking.
func LockOutput(outputPath string) (*OutputLock, error) {
	lockPath := outputPath + ".lock"
	lock := flock.New(lockPath)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOutputLocked, outputPath)
	}

	slog.Debug("acquired output lock", slog.String("file", lockPath))
	return &OutputLock{lock: lock}, nil
}

func (l *OutputLock) Path() string {
	return l.lock.Path()
}

// Release unlocks the lock file. The file itself stays in place so every run
// contends on the same inode.
func (l *OutputLock) Release() error {
	return l.lock.Unlock()
}
