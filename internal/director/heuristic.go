package director

import (
	"context"
	"fmt"

	"github.com/Aditya200247/Ai-Video-editor/internal/domain/vibe"
	"github.com/Aditya200247/Ai-Video-editor/internal/types"
)

const (
	// hypeBursts caps how many short cuts one asset contributes.
	hypeBursts = 2
	// hypeBurstGap is added to pacing when advancing between bursts.
	hypeBurstGap = 2.0
	hypeSpeed    = 1.5

	cinematicSaturation = 1.2

	// minUsableSeconds drops degenerate segments instead of erroring.
	minUsableSeconds = 0.1
)

type heuristicStrategy struct{}

func (heuristicStrategy) name() string { return "heuristic" }

func (heuristicStrategy) attempt(_ context.Context, req Request, cat vibe.Category, profile types.StyleProfile) (types.EDL, error) {
	return HeuristicEDL(cat, req.Assets, profile), nil
}

// HeuristicEDL is the deterministic fallback: a pure function of the
// category, the asset list, and the profile's pacing. Identical inputs
// always yield identical timelines. Assets too short to contribute a usable
// segment contribute nothing.
func HeuristicEDL(cat vibe.Category, assets []types.AssetDescriptor, profile types.StyleProfile) types.EDL {
	pacing := profile.Pacing()
	var timeline []types.EditSegment

	for _, asset := range assets {
		if asset.Kind == types.KindAudio {
			continue
		}
		switch cat {
		case vibe.CategoryHype:
			timeline = append(timeline, hypeSegments(asset, pacing)...)
		case vibe.CategoryCinematic:
			if seg, ok := cinematicSegment(asset, pacing); ok {
				timeline = append(timeline, seg)
			}
		default:
			if seg, ok := standardSegment(asset, pacing); ok {
				timeline = append(timeline, seg)
			}
		}
	}

	return types.EDL{
		Timeline:    timeline,
		Explanation: fmt.Sprintf("Generated a %s edit (heuristic path).", cat),
	}
}

// hypeSegments takes up to hypeBursts short bursts from the asset, spaced by
// pacing+gap, stopping once a burst would overrun the source.
func hypeSegments(asset types.AssetDescriptor, pacing float64) []types.EditSegment {
	var out []types.EditSegment
	pos := 0.0
	for i := 0; i < hypeBursts; i++ {
		if pos+pacing > asset.Duration {
			break
		}
		desc := fmt.Sprintf("Hype cut %d", i+1)
		if i%2 == 0 {
			desc += " (zoom)"
		}
		out = append(out, types.EditSegment{
			ClipID:      asset.ID,
			Source:      asset.Path,
			Start:       pos,
			End:         pos + pacing,
			Description: desc,
			Transition:  types.TransitionCut,
			Speed:       hypeSpeed,
		})
		pos += pacing + hypeBurstGap
	}
	return out
}

// cinematicSegment centers one stable shot of roughly pacing length, clamped
// to the asset bounds.
func cinematicSegment(asset types.AssetDescriptor, pacing float64) (types.EditSegment, bool) {
	mid := asset.Duration / 2
	half := pacing / 2
	start := mid - half
	if start < 0 {
		start = 0
	}
	end := mid + half
	if end > asset.Duration {
		end = asset.Duration
	}
	if end-start < minUsableSeconds {
		return types.EditSegment{}, false
	}
	return types.EditSegment{
		ClipID:      asset.ID,
		Source:      asset.Path,
		Start:       start,
		End:         end,
		Description: "Cinematic stable shot",
		Transition:  types.TransitionCrossDissolve,
		Saturation:  cinematicSaturation,
	}, true
}

func standardSegment(asset types.AssetDescriptor, pacing float64) (types.EditSegment, bool) {
	end := asset.Duration
	if pacing < end {
		end = pacing
	}
	if end < minUsableSeconds {
		return types.EditSegment{}, false
	}
	return types.EditSegment{
		ClipID:      asset.ID,
		Source:      asset.Path,
		Start:       0,
		End:         end,
		Description: "Standard cut",
		Transition:  types.TransitionCut,
	}, true
}
