// Package director turns a user intent plus probed assets into an Edit
// Decision List. It tries the generative model first when one is configured
// and falls through to the deterministic heuristic on any failure; the
// heuristic cannot fail, so synthesis as a whole never does.
package director

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Aditya200247/Ai-Video-editor/internal/domain/vibe"
	"github.com/Aditya200247/Ai-Video-editor/internal/ports"
	"github.com/Aditya200247/Ai-Video-editor/internal/styles"
	"github.com/Aditya200247/Ai-Video-editor/internal/types"
)

// ErrNoAssets is the one hard failure synthesis surfaces.
var ErrNoAssets = errors.New("director: no assets supplied")

// Request carries everything one synthesis call needs. Reference is
// advisory: it biases the model prompt and never changes heuristic output.
type Request struct {
	Intent    string
	Assets    []types.AssetDescriptor
	Reference *types.ReferenceStyle
}

type strategy interface {
	name() string
	attempt(ctx context.Context, req Request, cat vibe.Category, profile types.StyleProfile) (types.EDL, error)
}

// Synthesizer owns the strategy chain. Safe for concurrent use: the catalog
// is read-only and the model is stateless per call.
type Synthesizer struct {
	catalog    *styles.Catalog
	strategies []strategy
	log        *slog.Logger
}

// New builds a synthesizer. model may be nil, in which case only the
// heuristic strategy runs.
func New(catalog *styles.Catalog, model ports.ScriptModel, log *slog.Logger) *Synthesizer {
	if log == nil {
		log = slog.Default()
	}
	var chain []strategy
	if model != nil {
		chain = append(chain, &llmStrategy{model: model})
	}
	chain = append(chain, heuristicStrategy{})
	return &Synthesizer{catalog: catalog, strategies: chain, log: log}
}

// Synthesize classifies the intent, looks up the style profile, and walks
// the strategy chain. Every strategy failure short of the terminal heuristic
// is logged and absorbed.
func (s *Synthesizer) Synthesize(ctx context.Context, req Request) (types.EDL, error) {
	if len(req.Assets) == 0 {
		return types.EDL{}, ErrNoAssets
	}

	category := vibe.Classify(req.Intent)
	profile := s.catalog.Get(category)
	s.log.Debug("classified intent", "category", category, "pacing", profile.Pacing())

	var lastErr error
	for _, st := range s.strategies {
		edl, err := st.attempt(ctx, req, category, profile)
		if err == nil {
			s.log.Info("synthesized edit plan",
				"path", st.name(),
				"category", category,
				"segments", len(edl.Timeline),
			)
			return edl, nil
		}
		lastErr = err
		s.log.Warn("synthesis strategy failed, falling through",
			"path", st.name(),
			"error", err,
		)
	}
	// Unreachable while the heuristic strategy terminates the chain.
	return types.EDL{}, lastErr
}
