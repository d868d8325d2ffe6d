package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists one pretty-printed JSON document per student under a
// single directory. Reads happen at session start; every mutation rewrites
// the whole file. Single process, no locking.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// DefaultDir resolves the progress directory in priority order:
// 1. LUCA_DATA environment variable
// 2. $XDG_DATA_HOME/luca
// 3. ~/.local/share/luca
func DefaultDir() (string, error) {
	if d := os.Getenv("LUCA_DATA"); d != "" {
		return d, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "luca"), nil
}

// Load reads the student's record, returning an empty one on first access.
func (s *FileStore) Load(studentID string) (*Progress, error) {
	data, err := os.ReadFile(s.path(studentID))
	if os.IsNotExist(err) {
		return New(studentID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read progress: %w", err)
	}

	p := New(studentID)
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decode progress for %q: %w", studentID, err)
	}
	// The filename, not the file body, is authoritative for identity.
	p.StudentID = studentID
	return p, nil
}

// Save rewrites the student's record in full.
func (s *FileStore) Save(p *Progress) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	if err := os.WriteFile(s.path(p.StudentID), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}

func (s *FileStore) path(studentID string) string {
	return filepath.Join(s.dir, sanitizeID(studentID)+".json")
}

// sanitizeID makes a student id safe to use as a filename.
func sanitizeID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return "student"
	}
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
