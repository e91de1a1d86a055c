package vibe

import "strings"

// Category is a coarse creative classification driving pacing and effect
// defaults.
type Category string

const (
	CategoryHype      Category = "hype"
	CategoryCinematic Category = "cinematic"
	CategoryVlog      Category = "vlog"
)

// DefaultCategory applies when no keyword table matches the intent.
const DefaultCategory = CategoryVlog

type keywordEntry struct {
	category Category
	keywords []string
}

// Ordered table: first category whose keyword set intersects the lowered
// intent wins. No fuzzy scoring.
var keywordTable = []keywordEntry{
	{CategoryHype, []string{"fast", "hype", "quick", "energetic", "gaming"}},
	{CategoryCinematic, []string{"slow", "cinematic", "movie", "film", "sad", "emotional"}},
}

// Classify maps a free-text intent to a style category. Pure and
// deterministic: the same intent always yields the same category.
func Classify(intent string) Category {
	lowered := strings.ToLower(intent)
	for _, entry := range keywordTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				return entry.category
			}
		}
	}
	return DefaultCategory
}
