package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ResumeStore is a write-once blob store for uploaded resumes, keyed by job
// id with a fixed .pdf extension.
type ResumeStore struct {
	dir string
}

func NewResumeStore(dir string) (*ResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &ResumeStore{dir: dir}, nil
}

func (s *ResumeStore) Path(jobID string) string {
	return filepath.Join(s.dir, jobID+".pdf")
}

// Save writes the resume bytes for the given job id. O_EXCL enforces the
// write-once contract: a second write for the same id fails.
func (s *ResumeStore) Save(jobID string, src io.Reader) (string, error) {
	path := s.Path(jobID)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create resume blob %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write resume blob %s: %w", path, err)
	}
	return path, nil
}
