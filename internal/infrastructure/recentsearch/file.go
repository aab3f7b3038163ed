package recentsearch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	sonic "github.com/bytedance/sonic"
)

// FileStore keeps every owner's list in one JSON document. Writes replace the file atomically.
type FileStore struct {
	path string
	mu   sync.Mutex
}

type fileDocument struct {
	Version int                 `json:"version"`
	Lists   map[string][]string `json:"lists"`
}

const fileDocumentVersion = 1

func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("recent search file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create recent search directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Load(_ context.Context, owner string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Lists[owner]), nil
}

func (s *FileStore) Save(_ context.Context, owner string, list []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		delete(doc.Lists, owner)
	} else {
		doc.Lists[owner] = slices.Clone(list)
	}
	return s.write(doc)
}

// read treats a missing file as empty. A corrupt file is an error, never silently reset.
func (s *FileStore) read() (fileDocument, error) {
	doc := fileDocument{Version: fileDocumentVersion, Lists: make(map[string][]string)}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("read recent searches: %w", err)
	}
	if len(raw) == 0 {
		return doc, nil
	}
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("decode recent searches: %w", err)
	}
	if doc.Lists == nil {
		doc.Lists = make(map[string][]string)
	}
	return doc, nil
}

func (s *FileStore) write(doc fileDocument) error {
	doc.Version = fileDocumentVersion
	raw, err := sonic.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode recent searches: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".recent-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace recent searches: %w", err)
	}
	return nil
}
