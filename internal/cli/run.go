package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aditya200247/Ai-Video-editor/internal/logging"
	"github.com/Aditya200247/Ai-Video-editor/internal/pipeline"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <asset>...",
		Short: "Plan and render one edit from local files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRender,
	}
	cmd.Flags().StringP("prompt", "p", "", "What the edit should feel like (required)")
	cmd.Flags().StringP("out", "o", "output.mp4", "Output video path")
	cmd.Flags().String("music", "", "Background audio track")
	cmd.Flags().String("reference", "", "Reference video whose pacing to imitate")
	cmd.Flags().String("styles", "", "Style registry YAML overriding the built-in one")
	_ = cmd.MarkFlagRequired("prompt")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	prompt, _ := cmd.Flags().GetString("prompt")
	outPath, _ := cmd.Flags().GetString("out")
	musicPath, _ := cmd.Flags().GetString("music")
	refPath, _ := cmd.Flags().GetString("reference")
	stylesPath, _ := cmd.Flags().GetString("styles")

	assets := make([]string, 0, len(args))
	for _, a := range args {
		abs, err := filepath.Abs(a)
		if err != nil {
			return err
		}
		assets = append(assets, abs)
	}

	log := logging.New(getenvDefault("AIVE_LOG_LEVEL", "info"))

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Hour)
	defer cancel()

	cfg := pipeline.Config{
		Intent:        prompt,
		AssetPaths:    assets,
		ReferencePath: refPath,
		MusicPath:     musicPath,
		OutPath:       outPath,
		StylesPath:    stylesPath,

		FFmpegPath:  getenvDefault("AIVE_FFMPEG", "ffmpeg"),
		FFprobePath: getenvDefault("AIVE_FFPROBE", "ffprobe"),

		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:   os.Getenv("OPENROUTER_MODEL"),
		OpenRouterBaseURL: getenvDefault("OPENROUTER_BASE_URL", "https://openrouter.ai"),
	}

	res, err := pipeline.Run(ctx, cfg, log)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", res.OutputPath, res.EDL.Explanation)
	return nil
}
