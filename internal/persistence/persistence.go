// Package persistence stores the last IP address successfully
// applied at the remote service, in a flat file acting as the
// idempotence guard across invocations.
package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Store struct {
	filepath string
}

func NewStore(path string) *Store {
	return &Store{filepath: path}
}

// LastIP returns the last successfully applied IP address, with
// ok false when no value was recorded by a previous invocation.
func (s *Store) LastIP() (ip string, ok bool, err error) {
	data, err := os.ReadFile(s.filepath)
	switch {
	case os.IsNotExist(err):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("reading last IP file: %w", err)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// StoreLastIP overwrites the stored value with ip. It is only to
// be called after the remote service confirmed the update, so a
// failed update is retried by the next invocation.
func (s *Store) StoreLastIP(ip string) (err error) {
	err = os.MkdirAll(filepath.Dir(s.filepath), 0o700)
	if err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	err = os.WriteFile(s.filepath, []byte(ip), 0o600)
	if err != nil {
		return fmt.Errorf("writing last IP file: %w", err)
	}
	return nil
}
