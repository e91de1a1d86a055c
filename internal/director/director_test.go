package director

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/Aditya200247/Ai-Video-editor/internal/domain/vibe"
	"github.com/Aditya200247/Ai-Video-editor/internal/styles"
	"github.com/Aditya200247/Ai-Video-editor/internal/types"
)

type fakeModel struct {
	payload string
	err     error
	calls   int
}

func (m *fakeModel) CompleteJSON(_ context.Context, _, _ string) (string, error) {
	m.calls++
	return m.payload, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAssets() []types.AssetDescriptor {
	return []types.AssetDescriptor{
		{ID: "a1", Path: "/in/a1.mp4", Kind: types.KindVideo, Duration: 10.0},
		{ID: "a2", Path: "/in/a2.mp4", Kind: types.KindVideo, Duration: 6.0},
	}
}

func TestSynthesizeNoAssets(t *testing.T) {
	t.Parallel()

	s := New(styles.Load(""), nil, discardLogger())
	_, err := s.Synthesize(context.Background(), Request{Intent: "anything"})
	if !errors.Is(err, ErrNoAssets) {
		t.Fatalf("err = %v, want ErrNoAssets", err)
	}
}

func TestSynthesizeHypeHeuristic(t *testing.T) {
	t.Parallel()

	s := New(styles.Load(""), nil, discardLogger())
	edl, err := s.Synthesize(context.Background(), Request{
		Intent: "Make a fast hype reel for gaming",
		Assets: testAssets(),
	})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(edl.Timeline) == 0 {
		t.Fatal("empty timeline")
	}
	pacing := styles.Load("").Get(vibe.CategoryHype).Pacing()
	for i, seg := range edl.Timeline {
		if seg.Speed != hypeSpeed {
			t.Errorf("segment %d speed = %v, want %v", i, seg.Speed, hypeSpeed)
		}
		if seg.Transition != types.TransitionCut {
			t.Errorf("segment %d transition = %q, want cut", i, seg.Transition)
		}
		if got := seg.End - seg.Start; got != pacing {
			t.Errorf("segment %d length = %v, want pacing %v", i, got, pacing)
		}
	}
	if !strings.Contains(edl.Explanation, "hype") {
		t.Errorf("explanation %q does not mention hype", edl.Explanation)
	}
}

func TestSynthesizeCinematicHeuristic(t *testing.T) {
	t.Parallel()

	s := New(styles.Load(""), nil, discardLogger())
	edl, err := s.Synthesize(context.Background(), Request{
		Intent: "slow cinematic emotional movie",
		Assets: []types.AssetDescriptor{
			{ID: "a1", Path: "/in/a1.mp4", Kind: types.KindVideo, Duration: 8.0},
		},
	})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(edl.Timeline) != 1 {
		t.Fatalf("timeline length = %d, want 1", len(edl.Timeline))
	}
	seg := edl.Timeline[0]
	if seg.Transition != types.TransitionCrossDissolve {
		t.Errorf("transition = %q, want cross_dissolve", seg.Transition)
	}
	if seg.Saturation != cinematicSaturation {
		t.Errorf("saturation = %v, want %v", seg.Saturation, cinematicSaturation)
	}
	if seg.Start < 0 || seg.End > 8.0 || seg.End <= seg.Start {
		t.Errorf("segment bounds [%v, %v) out of range", seg.Start, seg.End)
	}
	if center := seg.Start + seg.End; math.Abs(center-8.0) > 1e-9 {
		t.Errorf("segment [%v, %v) is not centered in the 8s source", seg.Start, seg.End)
	}
	pacing := styles.Load("").Get(vibe.CategoryCinematic).Pacing()
	if length := seg.End - seg.Start; math.Abs(length-pacing) > 1e-9 {
		t.Errorf("segment length = %v, want pacing %v", length, pacing)
	}
}

func TestSynthesizeModelSuccess(t *testing.T) {
	t.Parallel()

	model := &fakeModel{payload: `{
		"timeline": [
			{"clip_id": "a1", "start": 1.0, "end": 3.0, "description": "intro", "transition": "cut"}
		],
		"explanation": "Opened with the strongest moment."
	}`}
	s := New(styles.Load(""), model, discardLogger())
	edl, err := s.Synthesize(context.Background(), Request{
		Intent: "make a fast hype reel",
		Assets: testAssets(),
	})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if model.calls != 1 {
		t.Fatalf("model calls = %d, want 1", model.calls)
	}
	if len(edl.Timeline) != 1 {
		t.Fatalf("timeline length = %d, want 1", len(edl.Timeline))
	}
	if got := edl.Timeline[0].Source; got != "/in/a1.mp4" {
		t.Errorf("source = %q, want resolved asset path", got)
	}
	if !strings.Contains(edl.Explanation, "llm path") {
		t.Errorf("explanation %q does not name the llm path", edl.Explanation)
	}
	if !strings.Contains(edl.Explanation, "strongest moment") {
		t.Errorf("explanation %q dropped the model's note", edl.Explanation)
	}
}

func TestSynthesizeFallsThroughToHeuristic(t *testing.T) {
	t.Parallel()

	assets := testAssets()
	intent := "make a fast hype reel"
	catalog := styles.Load("")
	want := HeuristicEDL(vibe.Classify(intent), assets, catalog.Get(vibe.Classify(intent)))

	cases := []struct {
		name  string
		model *fakeModel
	}{
		{"transport error", &fakeModel{err: errors.New("boom")}},
		{"malformed json", &fakeModel{payload: "not json at all"}},
		{"empty timeline", &fakeModel{payload: `{"timeline": [], "explanation": "x"}`}},
		{"unknown clip", &fakeModel{payload: `{"timeline": [{"clip_id": "nope", "start": 0, "end": 1}]}`}},
		{"empty clip id", &fakeModel{payload: `{"timeline": [{"clip_id": "", "start": 0, "end": 1}]}`}},
		{"out of bounds", &fakeModel{payload: `{"timeline": [{"clip_id": "a2", "start": 0, "end": 99}]}`}},
		{"bad transition", &fakeModel{payload: `{"timeline": [{"clip_id": "a1", "start": 0, "end": 1, "transition": "wipe"}]}`}},
		{"bad filter", &fakeModel{payload: `{"timeline": [{"clip_id": "a1", "start": 0, "end": 1, "filter": "sepia"}]}`}},
		{"negative speed", &fakeModel{payload: `{"timeline": [{"clip_id": "a1", "start": 0, "end": 1, "speed": -2}]}`}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := New(catalog, tc.model, discardLogger())
			got, err := s.Synthesize(context.Background(), Request{Intent: intent, Assets: assets})
			if err != nil {
				t.Fatalf("Synthesize: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("fallback EDL diverged from direct heuristic output\ngot:  %+v\nwant: %+v", got, want)
			}
		})
	}
}

func TestHeuristicDeterministic(t *testing.T) {
	t.Parallel()

	catalog := styles.Load("")
	profile := catalog.Get(vibe.CategoryHype)
	assets := testAssets()
	first := HeuristicEDL(vibe.CategoryHype, assets, profile)
	for i := 0; i < 5; i++ {
		if got := HeuristicEDL(vibe.CategoryHype, assets, profile); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged: %+v", i, got)
		}
	}
}

func TestHeuristicSkipsAudioAndShortAssets(t *testing.T) {
	t.Parallel()

	catalog := styles.Load("")
	assets := []types.AssetDescriptor{
		{ID: "song", Path: "/in/song.mp3", Kind: types.KindAudio, Duration: 180},
		{ID: "blip", Path: "/in/blip.mp4", Kind: types.KindVideo, Duration: 0.05},
		{ID: "ok", Path: "/in/ok.mp4", Kind: types.KindVideo, Duration: 5},
	}
	edl := HeuristicEDL(vibe.CategoryVlog, assets, catalog.Get(vibe.CategoryVlog))
	if len(edl.Timeline) != 1 {
		t.Fatalf("timeline length = %d, want 1", len(edl.Timeline))
	}
	if edl.Timeline[0].ClipID != "ok" {
		t.Errorf("clip = %q, want ok", edl.Timeline[0].ClipID)
	}
}

func TestHypeBurstsStopOnOverrun(t *testing.T) {
	t.Parallel()

	profile := types.StyleProfile{PacingSeconds: 3.0}
	// Second burst would start at 5.0 and need 3.0s; only one fits.
	segs := hypeSegments(types.AssetDescriptor{ID: "a", Path: "/a.mp4", Duration: 6.0}, profile.Pacing())
	if len(segs) != 1 {
		t.Fatalf("segments = %d, want 1", len(segs))
	}
	if segs[0].Start != 0 || segs[0].End != 3.0 {
		t.Errorf("segment bounds [%v, %v), want [0, 3)", segs[0].Start, segs[0].End)
	}
	if !strings.Contains(segs[0].Description, "(zoom)") {
		t.Errorf("first burst description %q missing zoom marker", segs[0].Description)
	}
}

func TestBuildPrompts(t *testing.T) {
	t.Parallel()

	catalog := styles.Load("")
	system := buildSystemPrompt(vibe.CategoryCinematic, catalog.Get(vibe.CategoryCinematic))
	if !strings.Contains(system, "cinematic") {
		t.Errorf("system prompt does not name the style:\n%s", system)
	}
	if !strings.Contains(system, `"timeline"`) {
		t.Errorf("system prompt does not describe the output schema:\n%s", system)
	}

	user := buildUserPrompt(Request{
		Intent:    "slow moody edit",
		Assets:    testAssets(),
		Reference: &types.ReferenceStyle{Pacing: "slow", AvgShotLength: 4.2},
	})
	for _, want := range []string{"clip_id=a1", "clip_id=a2", "slow moody edit", "average shot length 4.2"} {
		if !strings.Contains(user, want) {
			t.Errorf("user prompt missing %q:\n%s", want, user)
		}
	}
}
