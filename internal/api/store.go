package api

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ErrUploadNotFound reports an unknown file id.
var ErrUploadNotFound = errors.New("api: upload not found")

// Upload is one stored source file.
type Upload struct {
	ID       string
	Filename string
	Path     string
}

// uploadStore keeps uploaded source media on disk, one file per upload
// named <uuid><ext>.
type uploadStore struct {
	dir string
}

func newUploadStore(dir string) (*uploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("api: create upload dir: %w", err)
	}
	return &uploadStore{dir: dir}, nil
}

func (s *uploadStore) save(originalName string, r io.Reader) (Upload, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	id := uuid.NewString()
	path := filepath.Join(s.dir, id+ext)

	f, err := os.Create(path)
	if err != nil {
		return Upload{}, fmt.Errorf("api: create upload: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return Upload{}, fmt.Errorf("api: write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return Upload{}, fmt.Errorf("api: close upload: %w", err)
	}
	return Upload{ID: id, Filename: filepath.Base(originalName), Path: path}, nil
}

func (s *uploadStore) list() ([]Upload, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("api: read upload dir: %w", err)
	}
	var out []Upload
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		out = append(out, Upload{
			ID:       strings.TrimSuffix(name, filepath.Ext(name)),
			Filename: name,
			Path:     filepath.Join(s.dir, name),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *uploadStore) resolve(id string) (string, error) {
	uploads, err := s.list()
	if err != nil {
		return "", err
	}
	for _, u := range uploads {
		if u.ID == id {
			return u.Path, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUploadNotFound, id)
}
