// Package music manages the background-track library on local disk.
package music

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

// ErrUnsupportedFormat rejects uploads that are not audio files we can mix.
var ErrUnsupportedFormat = errors.New("music: unsupported format")

// ErrNotFound reports an unknown track id.
var ErrNotFound = errors.New("music: track not found")

var audioExtensions = map[string]bool{
	".mp3": true,
	".wav": true,
	".m4a": true,
}

// Track is one stored background track. ID doubles as the stored filename
// stem.
type Track struct {
	ID       string `json:"track_id"`
	Filename string `json:"filename"`
	Path     string `json:"-"`
}

// Library stores uploads under a single directory, one file per track,
// named <uuid><ext> so concurrent uploads never collide.
type Library struct {
	dir string
}

func NewLibrary(dir string) (*Library, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("music: create library dir: %w", err)
	}
	return &Library{dir: dir}, nil
}

// Save stores r as a new track. originalName supplies only the extension;
// the stored name is a fresh uuid.
func (l *Library) Save(originalName string, r io.Reader) (Track, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !audioExtensions[ext] {
		return Track{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	id := uuid.NewString()
	path := filepath.Join(l.dir, id+ext)
	f, err := os.Create(path)
	if err != nil {
		return Track{}, fmt.Errorf("music: create track file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return Track{}, fmt.Errorf("music: write track: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return Track{}, fmt.Errorf("music: close track: %w", err)
	}
	return Track{ID: id, Filename: filepath.Base(originalName), Path: path}, nil
}

// List returns the stored tracks sorted by id for stable output.
func (l *Library) List() ([]Track, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("music: read library dir: %w", err)
	}
	var out []Track
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !audioExtensions[ext] {
			continue
		}
		out = append(out, Track{
			ID:       strings.TrimSuffix(name, filepath.Ext(name)),
			Filename: name,
			Path:     filepath.Join(l.dir, name),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Resolve maps a track id to its stored path.
func (l *Library) Resolve(id string) (string, error) {
	tracks, err := l.List()
	if err != nil {
		return "", err
	}
	for _, tr := range tracks {
		if tr.ID == id {
			return tr.Path, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, id)
}
