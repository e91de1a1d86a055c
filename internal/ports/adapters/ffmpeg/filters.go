package ffmpeg

import (
	"fmt"
	"strings"

	"github.com/Aditya200247/Ai-Video-editor/internal/ports"
)

type filterChains struct {
	video string
	audio string
}

// buildSegmentFilters turns a segment's accumulated transforms into ffmpeg
// -vf/-af chains. The normalization prefix (scale, pad, sar, fps) makes
// every realized artifact uniform so later concatenation can stream-copy
// across sources with differing dimensions and frame rates.
func buildSegmentFilters(s *segment) (filterChains, error) {
	duration := s.end - s.start

	video := []string{
		fmt.Sprintf("scale=w=%d:h=%d:force_original_aspect_ratio=1:flags=lanczos", targetWidth, targetHeight),
		fmt.Sprintf("pad=w=%d:h=%d:x=(ow-iw)/2:y=(oh-ih)/2:color=black", targetWidth, targetHeight),
		"setsar=1",
		fmt.Sprintf("fps=%d", outputFPS),
	}
	var audio []string

	speed := 1.0
	saturation := 1.0
	fadeIn, fadeOut := false, false

	// Transforms arrive in the engine's fixed order; multipliers are folded
	// so one eq pass covers saturation and filter tags together.
	for _, t := range s.transforms {
		switch t.Kind {
		case ports.TransformSpeed:
			speed = t.Factor
		case ports.TransformSaturation:
			saturation *= t.Factor
		case ports.TransformFilter:
			switch t.Tag {
			case "black_white":
				saturation = 0
			case "vibrant":
				saturation *= 1.4
			case "none", "":
			default:
				return filterChains{}, fmt.Errorf("unknown filter tag %q", t.Tag)
			}
		case ports.TransformTransition:
			switch t.Tag {
			case "fade_in":
				fadeIn = true
			case "fade_out":
				fadeOut = true
			case "cut", "cross_dissolve":
				// cut needs nothing here; cross_dissolve is resolved at
				// concatenation time.
			default:
				return filterChains{}, fmt.Errorf("unknown transition tag %q", t.Tag)
			}
		}
	}

	if speed != 1.0 {
		video = append(video, fmt.Sprintf("setpts=PTS/%s", fmtSeconds(speed)))
		audio = append(audio, atempoChain(speed)...)
		duration /= speed
	}
	// eq saturation tops out at 3.0.
	if saturation != 1.0 {
		if saturation > 3.0 {
			saturation = 3.0
		}
		video = append(video, fmt.Sprintf("eq=saturation=%s", fmtSeconds(saturation)))
	}
	if fadeIn {
		fade := minFloat(fadeSeconds, duration)
		video = append(video, fmt.Sprintf("fade=t=in:st=0:d=%s", fmtSeconds(fade)))
		audio = append(audio, fmt.Sprintf("afade=t=in:st=0:d=%s", fmtSeconds(fade)))
	}
	if fadeOut {
		fade := minFloat(fadeSeconds, duration)
		start := maxFloat(duration-fade, 0)
		video = append(video, fmt.Sprintf("fade=t=out:st=%s:d=%s", fmtSeconds(start), fmtSeconds(fade)))
		audio = append(audio, fmt.Sprintf("afade=t=out:st=%s:d=%s", fmtSeconds(start), fmtSeconds(fade)))
	}

	return filterChains{
		video: strings.Join(video, ","),
		audio: strings.Join(audio, ","),
	}, nil
}

// backgroundMixGraph attenuates the looped track to level and sums it with
// the footage audio. amix would halve each input by default, so normalize=0
// keeps the footage audio at unit gain and the track at exactly level.
func backgroundMixGraph(hasAudio bool, level float64) string {
	if !hasAudio {
		return fmt.Sprintf("[1:a]volume=%s[aud]", fmtSeconds(level))
	}
	return fmt.Sprintf(
		"[1:a]volume=%s[bg];[0:a][bg]amix=inputs=2:duration=first:dropout_transition=0:normalize=0[aud]",
		fmtSeconds(level),
	)
}

// atempoChain expresses an arbitrary positive tempo factor as a chain of
// atempo filters, each within the filter's [0.5, 2.0] working range.
func atempoChain(speed float64) []string {
	var out []string
	for speed > 2.0 {
		out = append(out, "atempo=2.0")
		speed /= 2.0
	}
	for speed < 0.5 {
		out = append(out, "atempo=0.5")
		speed /= 0.5
	}
	return append(out, fmt.Sprintf("atempo=%s", fmtSeconds(speed)))
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
