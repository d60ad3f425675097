package telemetry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// RecordStore persists the high score as a bare decimal string.
// An empty Path disables persistence.
type RecordStore struct {
	Path string
}

// NewRecordStore creates a store backed by path.
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{Path: path}
}

// Load reads the stored record. A missing file is created holding 0.
func (s *RecordStore) Load() (int, error) {
	if s == nil || s.Path == "" {
		return 0, nil
	}

	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.Save(0); err != nil {
			return 0, err
		}
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading record file: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	record, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("parsing record file %s: %w", s.Path, err)
	}
	return record, nil
}

// Save overwrites the file with score.
func (s *RecordStore) Save(score int) error {
	if s == nil || s.Path == "" {
		return nil
	}
	if err := os.WriteFile(s.Path, []byte(strconv.Itoa(score)), 0644); err != nil {
		return fmt.Errorf("writing record file: %w", err)
	}
	return nil
}
