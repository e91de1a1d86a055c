// Package usecase runs one edit end to end: probe the uploaded assets,
// synthesize an Edit Decision List from the user's intent, and render it.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Aditya200247/Ai-Video-editor/internal/director"
	"github.com/Aditya200247/Ai-Video-editor/internal/ports"
	"github.com/Aditya200247/Ai-Video-editor/internal/refstyle"
	"github.com/Aditya200247/Ai-Video-editor/internal/render"
	"github.com/Aditya200247/Ai-Video-editor/internal/styles"
	"github.com/Aditya200247/Ai-Video-editor/internal/types"
)

// probeConcurrency bounds parallel ffprobe invocations.
const probeConcurrency = 4

type Deps struct {
	Prober  ports.Prober
	Media   ports.MediaEngine
	Model   ports.ScriptModel // nil disables the generative path
	Catalog *styles.Catalog
	Log     *slog.Logger
}

type Usecase struct {
	d        Deps
	director *director.Synthesizer
	engine   *render.Engine
	analyzer *refstyle.Analyzer
	log      *slog.Logger
}

func New(d Deps) Usecase {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	return Usecase{
		d:        d,
		director: director.New(d.Catalog, d.Model, d.Log),
		engine:   render.New(d.Media, d.Log),
		analyzer: refstyle.NewAnalyzer(d.Prober),
		log:      d.Log,
	}
}

type Input struct {
	Intent     string
	AssetPaths []string
	// ReferencePath optionally names a video whose pacing biases the plan.
	ReferencePath string
	// AudioTrack optionally names the background music file.
	AudioTrack string
	OutPath    string
}

type Result struct {
	Render    types.RenderResult
	Assets    []types.AssetDescriptor
	Reference *types.ReferenceStyle
}

func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	assets, err := u.probeAll(ctx, in.AssetPaths)
	if err != nil {
		return Result{}, err
	}

	var ref *types.ReferenceStyle
	if in.ReferencePath != "" {
		style, err := u.analyzer.Analyze(ctx, in.ReferencePath)
		if err != nil {
			return Result{}, err
		}
		ref = &style
		u.log.Info("analyzed reference", "pacing", style.Pacing, "avg_shot_length", style.AvgShotLength)
	}

	edl, err := u.director.Synthesize(ctx, director.Request{
		Intent:    in.Intent,
		Assets:    assets,
		Reference: ref,
	})
	if err != nil {
		return Result{}, err
	}
	if in.AudioTrack != "" {
		edl.AudioTrack = in.AudioTrack
	}

	res, err := u.engine.Render(ctx, edl, in.OutPath)
	if err != nil {
		return Result{}, err
	}
	return Result{Render: res, Assets: assets, Reference: ref}, nil
}

// probeAll probes the inputs concurrently, preserving input order.
func (u Usecase) probeAll(ctx context.Context, paths []string) ([]types.AssetDescriptor, error) {
	assets := make([]types.AssetDescriptor, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(probeConcurrency)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			desc, err := u.d.Prober.Probe(gctx, p)
			if err != nil {
				return fmt.Errorf("probe %s: %w", p, err)
			}
			assets[i] = desc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	assignAssetIDs(assets)
	return assets, nil
}

// assignAssetIDs guarantees every descriptor carries a unique non-empty id.
// Segments reference clips by id, so a prober that leaves it blank (or two
// inputs sharing a filename stem) would make the plan ambiguous.
func assignAssetIDs(assets []types.AssetDescriptor) {
	seen := make(map[string]bool, len(assets))
	for i := range assets {
		id := assets[i].ID
		if id == "" {
			name := assets[i].Filename()
			id = strings.TrimSuffix(name, filepath.Ext(name))
		}
		if id == "" {
			id = fmt.Sprintf("asset-%d", i+1)
		}
		if seen[id] {
			base := id
			for n := 2; ; n++ {
				id = fmt.Sprintf("%s-%d", base, n)
				if !seen[id] {
					break
				}
			}
		}
		seen[id] = true
		assets[i].ID = id
	}
}
