//go:build !unix

package lock

import (
	"fmt"
	"os"
)

// Without flock, exclusive creation of the lock file stands in
// for the advisory lock. The file is removed on release since its
// existence is what locks out other instances.
func acquire(path string) (release func() error, err error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyLocked, path)
		}
		return nil, fmt.Errorf("creating lock file: %w", err)
	}

	return func() error {
		err := file.Close()
		if err != nil {
			return err
		}
		return os.Remove(path)
	}, nil
}
