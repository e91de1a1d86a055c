package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Aditya200247/Ai-Video-editor/internal/api"
	"github.com/Aditya200247/Ai-Video-editor/internal/config"
	"github.com/Aditya200247/Ai-Video-editor/internal/logging"
	"github.com/Aditya200247/Ai-Video-editor/internal/pipeline"
	"github.com/Aditya200247/Ai-Video-editor/internal/ports/adapters/openrouter"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP editing service",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if err := openrouter.ValidateBaseURL(cfg.OpenRouterBaseURL); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logging.New(cfg.LogLevel)

	workDir := filepath.Join(cfg.DataDir, "work")
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}

	comps := pipeline.Wire(cfg, cfg.StylesPath, workDir, log)
	srv, err := api.NewServer(comps.Usecase, comps.Prober, cfg.DataDir, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx, cfg.Port)
}
