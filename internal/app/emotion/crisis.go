package emotion

import "strings"

// defaultCrisisKeywords are plain substrings, not regexps. Checked
// before normal classification on every non-first message.
var defaultCrisisKeywords = []string{
	"suicide",
	"kill myself",
	"end it all",
	"die",
	"hurt myself",
}

// CrisisKeywords implements domain.CrisisDetector with a fixed
// substring list.
type CrisisKeywords struct {
	keywords []string
}

func NewCrisisKeywords() *CrisisKeywords {
	return &CrisisKeywords{keywords: defaultCrisisKeywords}
}

func (c *CrisisKeywords) InCrisis(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range c.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
