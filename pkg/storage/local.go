package storage

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a stored file no longer exists on disk.
var ErrNotFound = errors.New("storage: file not found")

// LocalStore persists blobs under baseDir/subDir and hands out locations
// relative to baseDir (e.g. "histories/abc.jpg"), so the whole tree can
// move between hosts without rewriting the database.
type LocalStore struct {
	baseDir string
	subDir  string
}

func NewLocalStore(baseDir, subDir string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(baseDir, subDir), 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &LocalStore{baseDir: baseDir, subDir: subDir}, nil
}

// Save writes data under the given file name and returns the relative
// location to record in the database.
func (s *LocalStore) Save(name string, data []byte) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	location := path.Join(s.subDir, name)
	if err := os.WriteFile(filepath.Join(s.baseDir, filepath.FromSlash(location)), data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", location, err)
	}
	return location, nil
}

// Read returns the content stored at a relative location.
func (s *LocalStore) Read(location string) ([]byte, error) {
	abs, err := s.Abs(location)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Delete removes the file at a relative location. Deleting a location
// that is already gone is not an error.
func (s *LocalStore) Delete(location string) error {
	abs, err := s.Abs(location)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Abs resolves a relative location to an absolute path, rejecting
// anything that would escape the base directory.
func (s *LocalStore) Abs(location string) (string, error) {
	if err := validateName(location); err != nil {
		return "", err
	}
	return filepath.Abs(filepath.Join(s.baseDir, filepath.FromSlash(location)))
}

func validateName(name string) error {
	if name == "" || strings.Contains(name, "..") || path.IsAbs(name) {
		return fmt.Errorf("invalid storage location %q", name)
	}
	return nil
}
