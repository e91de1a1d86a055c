package render

import (
	"errors"
	"fmt"
)

// ErrEmptyTimeline rejects an EDL with nothing to render.
var ErrEmptyTimeline = errors.New("render: empty timeline")

// ErrSourceUnavailable wraps failures to open a segment's source clip.
var ErrSourceUnavailable = errors.New("render: source unavailable")

// SegmentError pins a render failure to one timeline entry.
type SegmentError struct {
	Index  int
	ClipID string
	Err    error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("render: segment %d (clip %q): %v", e.Index, e.ClipID, e.Err)
}

func (e *SegmentError) Unwrap() error { return e.Err }

func segmentErr(index int, clipID string, format string, args ...any) error {
	return &SegmentError{Index: index, ClipID: clipID, Err: fmt.Errorf(format, args...)}
}
