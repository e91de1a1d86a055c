// Package render drives a media engine through an Edit Decision List. It
// validates the whole timeline before opening anything, applies transforms
// in a fixed order, and guarantees that every handle it opened is released
// no matter where a render fails.
package render

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Aditya200247/Ai-Video-editor/internal/ports"
	"github.com/Aditya200247/Ai-Video-editor/internal/types"
)

// defaultMusicLevel scales the background track under the spoken/ambient
// audio of the cut footage.
const defaultMusicLevel = 0.3

type Engine struct {
	media ports.MediaEngine
	log   *slog.Logger
}

func New(media ports.MediaEngine, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{media: media, log: log}
}

// Render materializes edl into outPath. Transform order per segment is
// fixed: speed, then saturation, then filter, then transition.
func (e *Engine) Render(ctx context.Context, edl types.EDL, outPath string) (types.RenderResult, error) {
	if err := validate(edl); err != nil {
		return types.RenderResult{}, err
	}

	handles := make([]ports.SegmentHandle, 0, len(edl.Timeline))
	cleanup := func() {
		for _, h := range handles {
			if err := h.Release(); err != nil {
				e.log.Warn("segment release failed", "error", err)
			}
		}
	}

	for i, seg := range edl.Timeline {
		h, err := e.media.OpenSegment(ctx, seg.Source, seg.Start, seg.End)
		if err != nil {
			cleanup()
			return types.RenderResult{}, &SegmentError{
				Index: i, ClipID: seg.ClipID,
				Err: fmt.Errorf("%w: %v", ErrSourceUnavailable, err),
			}
		}
		handles = append(handles, h)

		if err := applyTransforms(h, seg); err != nil {
			cleanup()
			return types.RenderResult{}, &SegmentError{Index: i, ClipID: seg.ClipID, Err: err}
		}
	}

	var mix *ports.AudioMix
	if edl.AudioTrack != "" {
		mix = &ports.AudioMix{TrackPath: edl.AudioTrack, Level: defaultMusicLevel}
	}

	if err := e.media.Concatenate(ctx, handles, mix, outPath); err != nil {
		cleanup()
		return types.RenderResult{}, fmt.Errorf("render: concatenate: %w", err)
	}
	cleanup()

	e.log.Info("render complete", "segments", len(edl.Timeline), "output", outPath)
	return types.RenderResult{OutputPath: outPath, EDL: edl}, nil
}

func applyTransforms(h ports.SegmentHandle, seg types.EditSegment) error {
	if seg.Speed != 0 && seg.Speed != 1 {
		if err := h.ApplyTransform(ports.Transform{Kind: ports.TransformSpeed, Factor: seg.Speed}); err != nil {
			return fmt.Errorf("speed: %w", err)
		}
	}
	if seg.Saturation != 0 && seg.Saturation != 1 {
		if err := h.ApplyTransform(ports.Transform{Kind: ports.TransformSaturation, Factor: seg.Saturation}); err != nil {
			return fmt.Errorf("saturation: %w", err)
		}
	}
	if seg.Filter != "" && seg.Filter != types.FilterNone {
		if err := h.ApplyTransform(ports.Transform{Kind: ports.TransformFilter, Tag: string(seg.Filter)}); err != nil {
			return fmt.Errorf("filter: %w", err)
		}
	}
	if seg.Transition != "" {
		if err := h.ApplyTransform(ports.Transform{Kind: ports.TransformTransition, Tag: string(seg.Transition)}); err != nil {
			return fmt.Errorf("transition: %w", err)
		}
	}
	return nil
}

// validate rejects the EDL before any source is touched, so a defective
// timeline never leaves half-open handles behind.
func validate(edl types.EDL) error {
	if len(edl.Timeline) == 0 {
		return ErrEmptyTimeline
	}
	for i, seg := range edl.Timeline {
		if seg.Source == "" {
			return segmentErr(i, seg.ClipID, "no source locator")
		}
		if seg.Start < 0 {
			return segmentErr(i, seg.ClipID, "negative start %v", seg.Start)
		}
		if seg.End <= seg.Start {
			return segmentErr(i, seg.ClipID, "empty interval [%v, %v)", seg.Start, seg.End)
		}
		if seg.Speed < 0 {
			return segmentErr(i, seg.ClipID, "negative speed %v", seg.Speed)
		}
		switch seg.Transition {
		case "", types.TransitionCut, types.TransitionFadeIn, types.TransitionFadeOut, types.TransitionCrossDissolve:
		default:
			return segmentErr(i, seg.ClipID, "unknown transition %q", seg.Transition)
		}
		switch seg.Filter {
		case "", types.FilterNone, types.FilterBlackWhite, types.FilterVibrant:
		default:
			return segmentErr(i, seg.ClipID, "unknown filter %q", seg.Filter)
		}
	}
	return nil
}
