package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	asset := writeTempFile(t, "clip.mp4")
	valid := Config{
		Intent:     "make a hype reel",
		AssetPaths: []string{asset},
		OutPath:    filepath.Join(t.TempDir(), "out.mp4"),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"empty intent", func(c *Config) { c.Intent = "" }, "intent"},
		{"no assets", func(c *Config) { c.AssetPaths = nil }, "assets"},
		{"missing asset", func(c *Config) { c.AssetPaths = []string{"/no/such/file.mp4"} }, "stat asset"},
		{"missing reference", func(c *Config) { c.ReferencePath = "/no/such/ref.mp4" }, "stat reference"},
		{"missing music", func(c *Config) { c.MusicPath = "/no/such/beat.mp3" }, "stat music"},
		{"empty output", func(c *Config) { c.OutPath = "" }, "output"},
		{"http base url", func(c *Config) { c.OpenRouterBaseURL = "http://openrouter.ai" }, "https"},
		{"foreign base url", func(c *Config) { c.OpenRouterBaseURL = "https://evil.example" }, "host"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("want error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("err = %v, want substring %q", err, tc.wantSub)
			}
		})
	}
}
