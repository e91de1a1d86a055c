package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Aditya200247/Ai-Video-editor/internal/ports"
)

// Output contract: every artifact is encoded at a fixed frame rate with a
// standard codec pair so concatenation can stream-copy.
const (
	outputFPS    = 24
	targetWidth  = 1280
	targetHeight = 720
	videoCodec   = "libx264"
	audioCodec   = "aac"
	audioBitrate = "192k"

	fadeSeconds     = 0.5
	dissolveSeconds = 0.5
)

// Adapter implements ports.MediaEngine and ports.Prober on top of the
// ffmpeg/ffprobe binaries. Intermediate artifacts live under workDir and are
// removed when the owning segment handle is released.
type Adapter struct {
	ffmpeg  string
	ffprobe string
	workDir string
}

func New(ffmpegPath, ffprobePath, workDir string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	if workDir == "" {
		workDir = os.TempDir()
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath, workDir: workDir}
}

type segment struct {
	adapter    *Adapter
	source     string
	start, end float64
	transforms []ports.Transform

	realized string // path of the rendered sub-clip, "" until realized
	released bool
}

// OpenSegment validates the locator and hands back a handle bound to
// [start, end). The sub-clip is rendered lazily at concatenation time; the
// handle owns the intermediate artifact.
func (a *Adapter) OpenSegment(_ context.Context, locator string, start, end float64) (ports.SegmentHandle, error) {
	if _, err := os.Stat(locator); err != nil {
		return nil, fmt.Errorf("open segment %q: %w", locator, err)
	}
	if end <= start {
		return nil, fmt.Errorf("open segment %q: empty range [%v, %v)", locator, start, end)
	}
	return &segment{adapter: a, source: locator, start: start, end: end}, nil
}

func (s *segment) ApplyTransform(t ports.Transform) error {
	switch t.Kind {
	case ports.TransformSpeed:
		if t.Factor <= 0 {
			return fmt.Errorf("speed must be > 0, got %v", t.Factor)
		}
	case ports.TransformSaturation:
		if t.Factor < 0 {
			return fmt.Errorf("saturation must be >= 0, got %v", t.Factor)
		}
	case ports.TransformFilter, ports.TransformTransition:
		if t.Tag == "" {
			return fmt.Errorf("%s transform needs a tag", t.Kind)
		}
	default:
		return fmt.Errorf("unknown transform kind %q", t.Kind)
	}
	s.transforms = append(s.transforms, t)
	return nil
}

func (s *segment) Release() error {
	if s.released {
		return nil
	}
	s.released = true
	if s.realized != "" {
		err := os.Remove(s.realized)
		s.realized = ""
		return err
	}
	return nil
}

// realize renders the trimmed, transformed, normalized sub-clip to a temp
// file under the adapter's work dir.
func (s *segment) realize(ctx context.Context) error {
	if s.realized != "" {
		return nil
	}
	chain, err := buildSegmentFilters(s)
	if err != nil {
		return err
	}

	out := filepath.Join(s.adapter.workDir, "seg-"+uuid.NewString()+".mp4")
	args := []string{
		"-hide_banner",
		"-y",
		"-ss", fmtSeconds(s.start),
		"-to", fmtSeconds(s.end),
		"-i", s.source,
		"-vf", chain.video,
	}
	if chain.audio != "" {
		args = append(args, "-af", chain.audio)
	}
	args = append(args,
		"-r", strconv.Itoa(outputFPS),
		"-c:v", videoCodec,
		"-preset", "veryfast",
		"-crf", "18",
		"-pix_fmt", "yuv420p",
		"-c:a", audioCodec,
		"-b:a", audioBitrate,
		out,
	)
	if err := s.adapter.run(ctx, args); err != nil {
		return fmt.Errorf("render segment %q [%v, %v): %w", s.source, s.start, s.end, err)
	}
	s.realized = out
	return nil
}

// Concatenate joins the segments in order, dissolving across boundaries
// where a segment asks for cross_dissolve, then mixes the background track
// and moves the result to outPath.
func (a *Adapter) Concatenate(ctx context.Context, handles []ports.SegmentHandle, mix *ports.AudioMix, outPath string) error {
	if len(handles) == 0 {
		return fmt.Errorf("concatenate: no segments")
	}
	segs := make([]*segment, len(handles))
	for i, h := range handles {
		s, ok := h.(*segment)
		if !ok {
			return fmt.Errorf("concatenate: segment %d was not opened by this engine", i)
		}
		segs[i] = s
	}

	for _, s := range segs {
		if err := s.realize(ctx); err != nil {
			return err
		}
	}

	// Fold left to right. A temp artifact is produced per step and removed
	// as soon as the next step consumed it; segment artifacts themselves are
	// owned by their handles.
	current := segs[0].realized
	currentOwned := false
	for i := 1; i < len(segs); i++ {
		next := segs[i].realized
		merged := filepath.Join(a.workDir, "cat-"+uuid.NewString()+".mp4")

		var err error
		if wantsDissolve(segs[i]) {
			err = a.xfadePair(ctx, current, next, merged)
		} else {
			err = a.concatPair(ctx, current, next, merged)
		}
		if currentOwned {
			_ = os.Remove(current)
		}
		if err != nil {
			return err
		}
		current = merged
		currentOwned = true
	}

	if mix != nil && mix.TrackPath != "" {
		if _, err := os.Stat(mix.TrackPath); err == nil {
			mixed := filepath.Join(a.workDir, "mix-"+uuid.NewString()+".mp4")
			err := a.mixBackground(ctx, current, mix, mixed)
			if currentOwned {
				_ = os.Remove(current)
			}
			if err != nil {
				return err
			}
			current = mixed
			currentOwned = true
		}
		// Unresolvable tracks are skipped; the edit still renders.
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("prepare output dir: %w", err)
	}
	if currentOwned {
		if err := os.Rename(current, outPath); err == nil {
			return nil
		}
		// Rename across filesystems fails; fall through to a copy encode.
	}
	args := []string{"-hide_banner", "-y", "-i", current, "-c", "copy", outPath}
	if err := a.run(ctx, args); err != nil {
		return fmt.Errorf("write output %q: %w", outPath, err)
	}
	if currentOwned {
		_ = os.Remove(current)
	}
	return nil
}

func wantsDissolve(s *segment) bool {
	for _, t := range s.transforms {
		if t.Kind == ports.TransformTransition && t.Tag == "cross_dissolve" {
			return true
		}
	}
	return false
}

// concatPair joins two already-normalized artifacts with the concat demuxer
// using stream copy.
func (a *Adapter) concatPair(ctx context.Context, first, second, out string) error {
	list := filepath.Join(a.workDir, "list-"+uuid.NewString()+".txt")
	content := fmt.Sprintf("file '%s'\nfile '%s'\n", escapeConcatPath(first), escapeConcatPath(second))
	if err := os.WriteFile(list, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}
	defer os.Remove(list)

	args := []string{
		"-hide_banner", "-y",
		"-f", "concat",
		"-safe", "0",
		"-i", list,
		"-c", "copy",
		out,
	}
	if err := a.run(ctx, args); err != nil {
		return fmt.Errorf("concat segments: %w", err)
	}
	return nil
}

// xfadePair blends the tail of first into the head of second over a fixed
// window, for both video and audio.
func (a *Adapter) xfadePair(ctx context.Context, first, second, out string) error {
	dur, err := a.probeDuration(ctx, first)
	if err != nil {
		return fmt.Errorf("cross dissolve: %w", err)
	}
	offset := dur - dissolveSeconds
	if offset < 0 {
		offset = 0
	}
	graph := fmt.Sprintf(
		"[0:v][1:v]xfade=transition=fade:duration=%s:offset=%s[v];[0:a][1:a]acrossfade=d=%s[aud]",
		fmtSeconds(dissolveSeconds), fmtSeconds(offset), fmtSeconds(dissolveSeconds),
	)
	args := []string{
		"-hide_banner", "-y",
		"-i", first,
		"-i", second,
		"-filter_complex", graph,
		"-map", "[v]",
		"-map", "[aud]",
		"-r", strconv.Itoa(outputFPS),
		"-c:v", videoCodec,
		"-preset", "veryfast",
		"-crf", "18",
		"-pix_fmt", "yuv420p",
		"-c:a", audioCodec,
		"-b:a", audioBitrate,
		out,
	}
	if err := a.run(ctx, args); err != nil {
		return fmt.Errorf("cross dissolve: %w", err)
	}
	return nil
}

// mixBackground loops the background track to cover the full video (or trims
// it when longer), attenuates it to mix.Level, and mixes it additively with
// any original audio.
func (a *Adapter) mixBackground(ctx context.Context, video string, mix *ports.AudioMix, out string) error {
	dur, err := a.probeDuration(ctx, video)
	if err != nil {
		return fmt.Errorf("mix background: %w", err)
	}
	hasAudio, err := a.probeHasAudio(ctx, video)
	if err != nil {
		return fmt.Errorf("mix background: %w", err)
	}

	graph := backgroundMixGraph(hasAudio, mix.Level)

	args := []string{
		"-hide_banner", "-y",
		"-i", video,
		"-stream_loop", "-1",
		"-i", mix.TrackPath,
		"-filter_complex", graph,
		"-map", "0:v",
		"-map", "[aud]",
		"-t", fmtSeconds(dur),
		"-c:v", "copy",
		"-c:a", audioCodec,
		"-b:a", audioBitrate,
		out,
	}
	if err := a.run(ctx, args); err != nil {
		return fmt.Errorf("mix background %q: %w", mix.TrackPath, err)
	}
	return nil
}

func (a *Adapter) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg: %w\n%s", err, string(b))
	}
	return nil
}

func fmtSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func escapeConcatPath(p string) string {
	return strings.ReplaceAll(p, "'", "'\\''")
}
