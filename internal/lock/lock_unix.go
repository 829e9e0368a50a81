//go:build unix

package lock

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

func acquire(path string) (release func() error, err error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	err = syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
	if err != nil {
		_ = file.Close()
		if errors.Is(err, syscall.EWOULDBLOCK) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyLocked, path)
		}
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}

	return func() error {
		err := syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
		if err != nil {
			_ = file.Close()
			return fmt.Errorf("unlocking %s: %w", path, err)
		}
		return file.Close()
	}, nil
}
