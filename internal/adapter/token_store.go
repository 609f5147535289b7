package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	tokenFileMode = 0o600
	tokenDirMode  = 0o700
)

type fileTokenStore struct {
	path string
}

// NewFileTokenStore returns a [TokenStore] that keeps the token in a single
// file readable only by the current user. Parent directories are created on
// first Save.
func NewFileTokenStore(path string) TokenStore {
	return &fileTokenStore{path: path}
}

func (s *fileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrTokenNotFound
	}

	return token, nil
}

func (s *fileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), tokenDirMode); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(strings.TrimSpace(token)), tokenFileMode); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}

	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(s.path, tokenFileMode); err != nil {
		return fmt.Errorf("chmod token file: %w", err)
	}

	return nil
}

func (s *fileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
