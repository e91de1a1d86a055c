package director

import (
	"fmt"
	"strings"

	"github.com/Aditya200247/Ai-Video-editor/internal/domain/vibe"
	"github.com/Aditya200247/Ai-Video-editor/internal/types"
)

const edlSchemaHint = `Respond with a single JSON object of this shape:
{
  "timeline": [
    {
      "clip_id": "<file_id of a provided asset>",
      "start": <seconds, float>,
      "end": <seconds, float>,
      "description": "<what this cut shows>",
      "transition": "cut" | "fade_in" | "fade_out" | "cross_dissolve",
      "speed": <playback multiplier, float, omit for 1.0>,
      "saturation": <color multiplier, float, omit for 1.0>,
      "filter": "none" | "black_white" | "vibrant"
    }
  ],
  "explanation": "<one sentence on the editing choices>"
}
Only reference clip_id values from the asset list. Keep start/end within each clip's duration.`

func buildSystemPrompt(cat vibe.Category, profile types.StyleProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional video editor working in the %s style.\n", cat)
	if profile.Description != "" {
		b.WriteString(profile.Description)
		b.WriteString("\n")
	}
	if profile.SystemInstruction != "" {
		b.WriteString(profile.SystemInstruction)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Aim for cuts around %.1f seconds long.\n\n", profile.Pacing())
	b.WriteString(edlSchemaHint)

	if len(profile.Examples) > 0 {
		b.WriteString("\n\nExamples:\n")
		for _, ex := range profile.Examples {
			fmt.Fprintf(&b, "Request: %s\nEDL: %s\n", ex.UserRequest, ex.EDLSnippet)
		}
	}
	return b.String()
}

func buildUserPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("Available assets:\n")
	for _, a := range req.Assets {
		fmt.Fprintf(&b, "- clip_id=%s kind=%s duration=%.2fs name=%s\n",
			a.ID, a.Kind, a.Duration, a.Filename())
	}
	if req.Reference != nil {
		fmt.Fprintf(&b, "\nMatch the reference footage: %s pacing, average shot length %.1fs.\n",
			req.Reference.Pacing, req.Reference.AvgShotLength)
	}
	fmt.Fprintf(&b, "\nUser request: %s\n", req.Intent)
	return b.String()
}
