// Package pipeline wires the adapters into a working editor and runs
// one-shot render jobs for the CLI.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Aditya200247/Ai-Video-editor/internal/config"
	"github.com/Aditya200247/Ai-Video-editor/internal/ports"
	"github.com/Aditya200247/Ai-Video-editor/internal/ports/adapters/ffmpeg"
	"github.com/Aditya200247/Ai-Video-editor/internal/ports/adapters/openrouter"
	"github.com/Aditya200247/Ai-Video-editor/internal/styles"
	"github.com/Aditya200247/Ai-Video-editor/internal/types"
	"github.com/Aditya200247/Ai-Video-editor/internal/usecase"
)

// Config describes one render job.
type Config struct {
	Intent     string
	AssetPaths []string
	// ReferencePath optionally names a video whose pacing to imitate.
	ReferencePath string
	// MusicPath optionally names the background track.
	MusicPath string
	OutPath   string
	// StylesPath optionally overrides the embedded style registry.
	StylesPath string
	// WorkDir holds intermediate render artifacts. Empty means the OS
	// temp dir.
	WorkDir string

	FFmpegPath  string
	FFprobePath string

	OpenRouterAPIKey  string
	OpenRouterModel   string
	OpenRouterBaseURL string
}

func (c Config) Validate() error {
	if c.Intent == "" {
		return errors.New("intent is empty")
	}
	if len(c.AssetPaths) == 0 {
		return errors.New("no input assets")
	}
	for _, p := range c.AssetPaths {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("stat asset: %w", err)
		}
	}
	if c.ReferencePath != "" {
		if _, err := os.Stat(c.ReferencePath); err != nil {
			return fmt.Errorf("stat reference: %w", err)
		}
	}
	if c.MusicPath != "" {
		if _, err := os.Stat(c.MusicPath); err != nil {
			return fmt.Errorf("stat music: %w", err)
		}
	}
	if c.OutPath == "" {
		return errors.New("output path is empty")
	}
	return openrouter.ValidateBaseURL(c.OpenRouterBaseURL)
}

// Components bundles the wired collaborators shared by the CLI and the
// HTTP server.
type Components struct {
	Usecase usecase.Usecase
	Prober  ports.Prober
}

// Wire builds the adapters from runtime settings. The generative path is
// enabled only when an API key is present.
func Wire(cfg config.Config, stylesPath, workDir string, log *slog.Logger) Components {
	media := ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath, workDir)

	var model ports.ScriptModel
	if cfg.OpenRouterAPIKey != "" {
		model = openrouter.New(cfg.OpenRouterAPIKey, cfg.OpenRouterModel, cfg.OpenRouterBaseURL)
	} else if log != nil {
		log.Info("no OpenRouter key configured, planning edits heuristically")
	}

	return Components{
		Usecase: usecase.New(usecase.Deps{
			Prober:  media,
			Media:   media,
			Model:   model,
			Catalog: styles.Load(stylesPath),
			Log:     log,
		}),
		Prober: media,
	}
}

// Run executes one render job end to end.
func Run(ctx context.Context, cfg Config, log *slog.Logger) (types.RenderResult, error) {
	if err := cfg.Validate(); err != nil {
		return types.RenderResult{}, err
	}

	workDir := cfg.WorkDir
	if workDir == "" {
		dir, err := os.MkdirTemp("", "aive-render-*")
		if err != nil {
			return types.RenderResult{}, fmt.Errorf("create work dir: %w", err)
		}
		defer os.RemoveAll(dir)
		workDir = dir
	}

	if dir := filepath.Dir(cfg.OutPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return types.RenderResult{}, fmt.Errorf("create output dir: %w", err)
		}
	}

	comps := Wire(config.Config{
		FFmpegPath:        cfg.FFmpegPath,
		FFprobePath:       cfg.FFprobePath,
		OpenRouterAPIKey:  cfg.OpenRouterAPIKey,
		OpenRouterModel:   cfg.OpenRouterModel,
		OpenRouterBaseURL: cfg.OpenRouterBaseURL,
	}, cfg.StylesPath, workDir, log)

	res, err := comps.Usecase.Run(ctx, usecase.Input{
		Intent:        cfg.Intent,
		AssetPaths:    cfg.AssetPaths,
		ReferencePath: cfg.ReferencePath,
		AudioTrack:    cfg.MusicPath,
		OutPath:       cfg.OutPath,
	})
	if err != nil {
		return types.RenderResult{}, err
	}
	return res.Render, nil
}

// adapter interface checks
var _ ports.MediaEngine = (*ffmpeg.Adapter)(nil)
var _ ports.Prober = (*ffmpeg.Adapter)(nil)
var _ ports.ScriptModel = (*openrouter.Adapter)(nil)
