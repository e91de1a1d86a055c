package director

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Aditya200247/Ai-Video-editor/internal/domain/vibe"
	"github.com/Aditya200247/Ai-Video-editor/internal/ports"
	"github.com/Aditya200247/Ai-Video-editor/internal/types"
)

type llmStrategy struct {
	model ports.ScriptModel
}

func (*llmStrategy) name() string { return "llm" }

// attempt asks the model for an EDL and validates the response against the
// supplied assets. Every failure here is recoverable: the caller falls
// through to the heuristic.
func (s *llmStrategy) attempt(ctx context.Context, req Request, cat vibe.Category, profile types.StyleProfile) (types.EDL, error) {
	payload, err := s.model.CompleteJSON(ctx, buildSystemPrompt(cat, profile), buildUserPrompt(req))
	if err != nil {
		return types.EDL{}, fmt.Errorf("model call: %w", err)
	}

	var edl types.EDL
	if err := json.Unmarshal([]byte(payload), &edl); err != nil {
		return types.EDL{}, fmt.Errorf("parse model payload: %w", err)
	}
	if err := resolveTimeline(&edl, req.Assets); err != nil {
		return types.EDL{}, err
	}

	explanation := strings.TrimSpace(edl.Explanation)
	edl.Explanation = fmt.Sprintf("Generated a %s edit (llm path).", cat)
	if explanation != "" {
		edl.Explanation += " " + explanation
	}
	return edl, nil
}

// resolveTimeline checks the model's timeline against the supplied assets
// and fills in source locators. A violation anywhere rejects the whole
// response; partially valid timelines are not worth rendering.
func resolveTimeline(edl *types.EDL, assets []types.AssetDescriptor) error {
	if len(edl.Timeline) == 0 {
		return fmt.Errorf("model returned an empty timeline")
	}

	byID := make(map[string]types.AssetDescriptor, len(assets))
	for _, a := range assets {
		if a.ID == "" {
			return fmt.Errorf("asset %q has no id", a.Path)
		}
		if _, dup := byID[a.ID]; dup {
			return fmt.Errorf("duplicate asset id %q", a.ID)
		}
		byID[a.ID] = a
	}

	for i := range edl.Timeline {
		seg := &edl.Timeline[i]
		if seg.ClipID == "" {
			return fmt.Errorf("segment %d has no clip id", i)
		}
		asset, ok := byID[seg.ClipID]
		if !ok {
			return fmt.Errorf("segment %d references unknown clip %q", i, seg.ClipID)
		}
		if seg.Start < 0 || seg.End <= seg.Start || seg.End > asset.Duration {
			return fmt.Errorf("segment %d has invalid bounds [%v, %v) for clip %q (duration %v)",
				i, seg.Start, seg.End, seg.ClipID, asset.Duration)
		}
		if seg.Speed < 0 {
			return fmt.Errorf("segment %d has invalid speed %v", i, seg.Speed)
		}
		switch seg.Transition {
		case "", types.TransitionCut, types.TransitionFadeIn, types.TransitionFadeOut, types.TransitionCrossDissolve:
		default:
			return fmt.Errorf("segment %d has unknown transition %q", i, seg.Transition)
		}
		switch seg.Filter {
		case "", types.FilterNone, types.FilterBlackWhite, types.FilterVibrant:
		default:
			return fmt.Errorf("segment %d has unknown filter %q", i, seg.Filter)
		}
		seg.Source = asset.Path
	}
	return nil
}
