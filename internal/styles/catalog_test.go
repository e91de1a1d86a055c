package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Aditya200247/Ai-Video-editor/internal/domain/vibe"
	"github.com/Aditya200247/Ai-Video-editor/internal/types"
)

func TestLoad_EmbeddedRegistry(t *testing.T) {
	c := Load("")

	hype := c.Get(vibe.CategoryHype)
	if hype.Pacing() <= 0 {
		t.Fatalf("expected positive hype pacing, got %v", hype.Pacing())
	}
	if hype.Description == "" {
		t.Fatalf("expected hype description")
	}

	cine := c.Get(vibe.CategoryCinematic)
	if cine.Pacing() <= hype.Pacing() {
		t.Fatalf("expected cinematic pacing (%v) slower than hype (%v)", cine.Pacing(), hype.Pacing())
	}
}

func TestLoad_MissingFileYieldsEmptyCatalog(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	p := c.Get(vibe.CategoryHype)
	if p.Pacing() != types.DefaultPacingSeconds {
		t.Fatalf("expected default pacing %v, got %v", types.DefaultPacingSeconds, p.Pacing())
	}
}

func TestLoad_CorruptRegistryYieldsEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	if err := os.WriteFile(path, []byte("styles: [not a map"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c := Load(path)
	if p := c.Get(vibe.CategoryVlog); p.Pacing() != types.DefaultPacingSeconds {
		t.Fatalf("expected default pacing on corrupt registry, got %v", p.Pacing())
	}
}

func TestGet_UnknownCategory(t *testing.T) {
	c := Load("")
	p := c.Get(vibe.Category("does-not-exist"))
	if p.Description != "" || p.PacingSeconds != 0 {
		t.Fatalf("expected zero profile for unknown category, got %+v", p)
	}
	if p.Pacing() != types.DefaultPacingSeconds {
		t.Fatalf("expected default pacing for unknown category, got %v", p.Pacing())
	}
}

func TestLoad_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	doc := "styles:\n  hype:\n    pacing: 0.8\n    description: custom\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c := Load(path)
	p := c.Get(vibe.CategoryHype)
	if p.PacingSeconds != 0.8 || p.Description != "custom" {
		t.Fatalf("override not applied: %+v", p)
	}
}
