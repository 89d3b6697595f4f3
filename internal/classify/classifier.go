package classify

import (
	"strings"

	"github.com/subuhana2303/vaanirakshak/internal/catalog"
	"github.com/subuhana2303/vaanirakshak/internal/models"
)

// Classifier maps raw utterance text to an emergency category by substring
// matching against the phrase catalog. It holds no mutable state and is safe
// for concurrent use.
type Classifier struct {
	phrases catalog.Phrases
}

func New(phrases catalog.Phrases) *Classifier {
	return &Classifier{phrases: phrases}
}

// Classify returns the first category in priority order with a phrase that
// is a substring of the utterance. Blank input and unmatched input both
// return CategoryUnknown; Classify never fails.
func (c *Classifier) Classify(utterance string) models.Category {
	text := CleanText(utterance)
	if text == "" {
		return models.CategoryUnknown
	}

	for _, cat := range models.CategoryOrder {
		for _, phrase := range c.phrases[cat] {
			if strings.Contains(text, phrase) {
				return cat
			}
		}
	}

	return models.CategoryUnknown
}

// Speech recognizers emit hesitation tokens that would break substring
// matching ("uh fire" is fine, "fiuhre" never happens, but "um" glued to a
// phrase boundary does).
var fillerWords = map[string]bool{
	"um": true, "uh": true, "er": true, "ah": true, "well": true,
}

// CleanText lowercases, collapses whitespace, and strips filler words.
func CleanText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if !fillerWords[w] {
			kept = append(kept, w)
		}
	}

	return strings.Join(kept, " ")
}
