// Package lock guards against overlapping scheduler invocations
// with an advisory lock on a well-known lock file.
package lock

import "errors"

var ErrAlreadyLocked = errors.New("lock is held by another instance")

// Lock is a held advisory lock on the lock file.
type Lock struct {
	release func() error
}

// Acquire takes the advisory lock on the file at path without
// blocking. It returns ErrAlreadyLocked if another process holds
// it, so overlapping invocations fail fast instead of racing on
// the last-known-IP file.
func Acquire(path string) (lock *Lock, err error) {
	release, err := acquire(path)
	if err != nil {
		return nil, err
	}
	return &Lock{release: release}, nil
}

// Release releases the lock. The lock file itself is left in
// place for the next invocation.
func (l *Lock) Release() error {
	return l.release()
}
