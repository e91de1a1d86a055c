//go:build integration

package itest

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/Aditya200247/Ai-Video-editor/internal/logging"
	"github.com/Aditya200247/Ai-Video-editor/internal/pipeline"
)

// TestE2E renders a heuristic edit from synthetic footage. It needs ffmpeg
// and ffprobe on PATH but no API key: without one the planner stays on the
// deterministic path, which is what makes the output checkable.
func TestE2E(t *testing.T) {
	tmp := t.TempDir()

	clipA := makeFixtureVideo(t, filepath.Join(tmp, "a.mp4"), "red", 10)
	clipB := makeFixtureVideo(t, filepath.Join(tmp, "b.mp4"), "blue", 6)
	music := makeFixtureAudio(t, filepath.Join(tmp, "beat.mp3"), 20)

	out := filepath.Join(tmp, "final.mp4")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg := pipeline.Config{
		Intent:      "make a fast hype reel",
		AssetPaths:  []string{clipA, clipB},
		MusicPath:   music,
		OutPath:     out,
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
	}

	res, err := pipeline.Run(ctx, cfg, logging.New("debug"))
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	if _, err := os.Stat(res.OutputPath); err != nil {
		t.Fatalf("missing output: %v", err)
	}
	dur, err := probeDurationSeconds(res.OutputPath)
	if err != nil {
		t.Fatalf("probe output: %v", err)
	}
	if dur <= 0 {
		t.Fatalf("output duration = %v", dur)
	}
	if len(res.EDL.Timeline) == 0 {
		t.Fatal("empty timeline in result")
	}
}

// TestE2E_AudioLoopCoversVideo renders an edit whose background track is
// much shorter than the cut footage. The track must loop: output duration
// stays that of the video, with audio underneath the whole way.
func TestE2E_AudioLoopCoversVideo(t *testing.T) {
	tmp := t.TempDir()

	clipA := makeFixtureVideo(t, filepath.Join(tmp, "a.mp4"), "red", 5)
	clipB := makeFixtureVideo(t, filepath.Join(tmp, "b.mp4"), "blue", 5)
	music := makeFixtureAudio(t, filepath.Join(tmp, "short.mp3"), 2)

	out := filepath.Join(tmp, "final.mp4")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// The default style cuts 4s per clip, so the video runs ~8s against a
	// 2s track.
	res, err := pipeline.Run(ctx, pipeline.Config{
		Intent:      "daily vlog",
		AssetPaths:  []string{clipA, clipB},
		MusicPath:   music,
		OutPath:     out,
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
	}, logging.New("debug"))
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	videoDur := 0.0
	for _, seg := range res.EDL.Timeline {
		videoDur += seg.End - seg.Start
	}
	outDur, err := probeDurationSeconds(res.OutputPath)
	if err != nil {
		t.Fatalf("probe output: %v", err)
	}
	if diff := outDur - videoDur; diff < -0.5 || diff > 0.5 {
		t.Fatalf("output duration = %vs, want ~%vs (looped track must not shorten the edit)", outDur, videoDur)
	}
}

func makeFixtureVideo(t *testing.T, path, color string, seconds int) string {
	t.Helper()
	cmd := exec.Command("ffmpeg",
		"-y",
		"-f", "lavfi",
		"-i", lavfiColor(color, seconds),
		"-f", "lavfi",
		"-i", lavfiSine(seconds),
		"-shortest",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		path,
	)
	if b, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("ffmpeg fixture failed: %v\n%s", err, string(b))
	}
	return path
}

func makeFixtureAudio(t *testing.T, path string, seconds int) string {
	t.Helper()
	cmd := exec.Command("ffmpeg",
		"-y",
		"-f", "lavfi",
		"-i", lavfiSine(seconds),
		path,
	)
	if b, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("ffmpeg audio fixture failed: %v\n%s", err, string(b))
	}
	return path
}
