package types

// MediaKind tells the director what a source asset contains.
type MediaKind string

const (
	KindVideo MediaKind = "video"
	KindAudio MediaKind = "audio"
	KindImage MediaKind = "image"
)

// AssetDescriptor describes one source media item. It is produced by the
// metadata probe and treated as immutable for the lifetime of a request.
type AssetDescriptor struct {
	ID       string    `json:"file_id"`
	Path     string    `json:"path"`
	Kind     MediaKind `json:"kind"`
	Duration float64   `json:"duration"` // seconds
	FPS      float64   `json:"fps,omitempty"`
	Width    int       `json:"width,omitempty"`
	Height   int       `json:"height,omitempty"`
}

// Filename returns the last path element; prompts embed this instead of the
// full locator to bound prompt size.
func (a AssetDescriptor) Filename() string {
	for i := len(a.Path) - 1; i >= 0; i-- {
		if a.Path[i] == '/' || a.Path[i] == '\\' {
			return a.Path[i+1:]
		}
	}
	return a.Path
}

// StyleExample is one worked intent→snippet pair shown to the model.
type StyleExample struct {
	UserRequest string `yaml:"user_request" json:"user_request"`
	EDLSnippet  string `yaml:"edl_snippet" json:"edl_snippet"`
}

// StyleProfile carries the pacing and prompt material for one style category.
// The zero value is a valid empty profile.
type StyleProfile struct {
	PacingSeconds     float64        `yaml:"pacing" json:"pacing"`
	Description       string         `yaml:"description" json:"description"`
	SystemInstruction string         `yaml:"system_instruction" json:"system_instruction"`
	Examples          []StyleExample `yaml:"examples" json:"examples,omitempty"`
}

// DefaultPacingSeconds applies when a profile does not set pacing.
const DefaultPacingSeconds = 3.0

// Pacing returns the profile's target segment duration in seconds.
func (p StyleProfile) Pacing() float64 {
	if p.PacingSeconds <= 0 {
		return DefaultPacingSeconds
	}
	return p.PacingSeconds
}

// ReferenceStyle holds pacing hints derived from an external reference video.
// Advisory only: it biases the LLM prompt and never changes heuristic output.
type ReferenceStyle struct {
	Pacing        string  `json:"pacing"` // "fast" or "slow"
	AvgShotLength float64 `json:"avg_shot_length"`
	Duration      float64 `json:"duration"`
	SourcePath    string  `json:"source_path,omitempty"`
}

// Transition tags understood by the render engine.
type Transition string

const (
	TransitionCut           Transition = "cut"
	TransitionFadeIn        Transition = "fade_in"
	TransitionFadeOut       Transition = "fade_out"
	TransitionCrossDissolve Transition = "cross_dissolve"
)

// Filter tags understood by the render engine.
type Filter string

const (
	FilterNone       Filter = "none"
	FilterBlackWhite Filter = "black_white"
	FilterVibrant    Filter = "vibrant"
)

// EditSegment is one entry of an EDL timeline. The JSON shape doubles as the
// wire contract the LLM must produce, so tags follow it exactly.
type EditSegment struct {
	ClipID      string     `json:"clip_id"`
	Source      string     `json:"source_path,omitempty"` // resolved locator
	Start       float64    `json:"start"`
	End         float64    `json:"end"`
	Description string     `json:"description,omitempty"`
	Transition  Transition `json:"transition,omitempty"`
	Speed       float64    `json:"speed,omitempty"`      // >0, 1.0 = unchanged
	Saturation  float64    `json:"saturation,omitempty"` // 1.0 = unchanged
	Filter      Filter     `json:"filter,omitempty"`
}

// EDL is the ordered edit plan handed from synthesis to rendering. Produced
// fresh per request, consumed exactly once.
type EDL struct {
	Timeline    []EditSegment `json:"timeline"`
	AudioTrack  string        `json:"audio_track,omitempty"`
	Explanation string        `json:"explanation"`
}

// RenderResult names the finished artifact together with the plan that
// produced it.
type RenderResult struct {
	OutputPath string `json:"output_path"`
	EDL        EDL    `json:"edl"`
}
