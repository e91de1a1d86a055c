// Package refstyle derives a coarse editing style from a reference video.
// The analysis is intentionally cheap: it needs only the container duration,
// not a shot-boundary pass.
package refstyle

import (
	"context"
	"fmt"

	"github.com/Aditya200247/Ai-Video-editor/internal/ports"
	"github.com/Aditya200247/Ai-Video-editor/internal/types"
)

const (
	// assumedShotSeconds sizes the synthetic shot count from the duration.
	assumedShotSeconds = 3.0
	// fastThresholdSeconds splits fast from slow pacing.
	fastThresholdSeconds = 2.5
)

const (
	PacingFast = "fast"
	PacingSlow = "slow"
)

type Analyzer struct {
	prober ports.Prober
}

func NewAnalyzer(prober ports.Prober) *Analyzer {
	return &Analyzer{prober: prober}
}

// Analyze probes the reference video and classifies its pacing.
func (a *Analyzer) Analyze(ctx context.Context, path string) (types.ReferenceStyle, error) {
	desc, err := a.prober.Probe(ctx, path)
	if err != nil {
		return types.ReferenceStyle{}, fmt.Errorf("refstyle: probe %s: %w", path, err)
	}
	return FromDuration(desc.Duration, path), nil
}

// FromDuration is the pure classification core, split out so callers with a
// known duration skip the probe.
func FromDuration(duration float64, sourcePath string) types.ReferenceStyle {
	shots := int(duration / assumedShotSeconds)
	if shots < 1 {
		shots = 1
	}
	avg := duration / float64(shots)
	pacing := PacingSlow
	if avg < fastThresholdSeconds {
		pacing = PacingFast
	}
	return types.ReferenceStyle{
		Pacing:        pacing,
		AvgShotLength: avg,
		Duration:      duration,
		SourcePath:    sourcePath,
	}
}
