package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Aditya200247/Ai-Video-editor/internal/types"
)

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		RFrameRate string `json:"r_frame_rate"`
	} `json:"streams"`
}

// Probe extracts technical metadata for one local file via ffprobe.
func (a *Adapter) Probe(ctx context.Context, path string) (types.AssetDescriptor, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return types.AssetDescriptor{}, fmt.Errorf("ffprobe %q: %w\n%s", path, err, string(b))
	}

	var out probeOutput
	if err := json.Unmarshal(b, &out); err != nil {
		return types.AssetDescriptor{}, fmt.Errorf("parse ffprobe output for %q: %w", path, err)
	}

	name := filepath.Base(path)
	desc := types.AssetDescriptor{
		ID:   strings.TrimSuffix(name, filepath.Ext(name)),
		Path: path,
		Kind: kindFromExtension(path),
	}
	if out.Format.Duration != "" {
		if d, err := strconv.ParseFloat(out.Format.Duration, 64); err == nil {
			desc.Duration = d
		}
	}
	for _, st := range out.Streams {
		if st.CodecType != "video" {
			continue
		}
		desc.Width = st.Width
		desc.Height = st.Height
		desc.FPS = parseFrameRate(st.RFrameRate)
		break
	}
	return desc, nil
}

func (a *Adapter) probeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w\n%s", err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return sec, nil
}

func (a *Adapter) probeHasAudio(ctx context.Context, path string) (bool, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-select_streams", "a",
		"-show_entries", "stream=index",
		"-of", "csv=p=0",
		path,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return false, fmt.Errorf("ffprobe audio streams: %w\n%s", err, string(b))
	}
	return strings.TrimSpace(string(b)) != "", nil
}

// parseFrameRate handles the "num/den" rational ffprobe reports.
func parseFrameRate(s string) float64 {
	if s == "" || s == "0/0" {
		return 0
	}
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		v, _ := strconv.ParseFloat(s, 64)
		return v
	}
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0
	}
	return n / d
}

func kindFromExtension(path string) types.MediaKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".wav", ".m4a", ".aac", ".flac", ".ogg":
		return types.KindAudio
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp":
		return types.KindImage
	default:
		return types.KindVideo
	}
}
