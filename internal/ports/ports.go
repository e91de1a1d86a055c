package ports

import (
	"context"

	"github.com/Aditya200247/Ai-Video-editor/internal/types"
)

// TransformKind names a per-segment transform applied by the media engine.
type TransformKind string

const (
	TransformSpeed      TransformKind = "speed"
	TransformSaturation TransformKind = "saturation"
	TransformFilter     TransformKind = "filter"
	TransformTransition TransformKind = "transition"
)

// Transform is one named transform. Factor carries multipliers (speed,
// saturation); Tag carries enumerated values (filter, transition).
type Transform struct {
	Kind   TransformKind
	Factor float64
	Tag    string
}

// SegmentHandle is an open, time-bounded view of one source clip. Transforms
// accumulate in application order; Release frees whatever the engine holds
// for the segment and must be safe to call exactly once.
type SegmentHandle interface {
	ApplyTransform(t Transform) error
	Release() error
}

// AudioMix describes the background track mixed under the concatenated
// video. Level scales the track's nominal volume.
type AudioMix struct {
	TrackPath string
	Level     float64
}

// MediaEngine is the decoding/encoding collaborator. Concatenate joins the
// segments in slice order, mixes the optional background track, and encodes
// the result to outPath. Segment handles from one engine must only be passed
// back to that engine.
type MediaEngine interface {
	OpenSegment(ctx context.Context, locator string, start, end float64) (SegmentHandle, error)
	Concatenate(ctx context.Context, segments []SegmentHandle, mix *AudioMix, outPath string) error
}

// Prober extracts technical metadata for one local media file.
type Prober interface {
	Probe(ctx context.Context, path string) (types.AssetDescriptor, error)
}

// ScriptModel is the generative-text collaborator. It returns the raw model
// payload for a JSON-only completion; callers own parsing and fallback.
type ScriptModel interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
