package emotion

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PreranaYekkele/CalmBot/internal/domain"
)

// Rule associates an emotion with its match patterns. Patterns are
// regular expression fragments with search (not anchored) semantics;
// any pattern matching means the rule's emotion.
type Rule struct {
	Emotion  domain.Emotion
	Patterns []string
}

// DefaultRules returns the built-in pattern table. Order matters:
// rules are evaluated top to bottom and the first match wins, so
// anxiety outranks depression, which outranks anger.
func DefaultRules() []Rule {
	return []Rule{
		{
			Emotion: domain.EmotionAnxiety,
			Patterns: []string{
				`anxi(ous|ety)`, `worried?`, `stress(ed|ful)`,
				`nervous`, `panic`, `overwhelm(ed|ing)`,
				`fear(ed|ful)?`, `scared`, `tense`, `uneasy`,
				`restless`, `overthinking`, `cant\s+stop\s+thinking`,
			},
		},
		{
			Emotion: domain.EmotionDepression,
			Patterns: []string{
				`depress(ed|ion)`, `sad`, `down`, `hopeless`,
				`unmotivated`, `tired`, `lonely`, `empty`,
				`worthless`, `numb`, `exhausted`, `cant\s+cope`,
			},
		},
		{
			Emotion: domain.EmotionAnger,
			Patterns: []string{
				`angry?`, `mad`, `frustrat(ed|ing)`,
				`irritat(ed|ing)`, `upset`, `furious`,
				`rage`, `hate`, `annoyed`, `fed up`,
			},
		},
	}
}

type compiledRule struct {
	emotion  domain.Emotion
	patterns []*regexp.Regexp
}

// Rules is the rule-based EmotionClassifier. Patterns are compiled
// once at construction; Classify is pure and never errors.
type Rules struct {
	rules []compiledRule
}

// NewRules compiles a pattern table into a classifier.
func NewRules(table []Rule) (*Rules, error) {
	compiled := make([]compiledRule, 0, len(table))
	for _, rule := range table {
		cr := compiledRule{emotion: rule.Emotion}
		for _, p := range rule.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("compiling pattern %q for %s: %w", p, rule.Emotion, err)
			}
			cr.patterns = append(cr.patterns, re)
		}
		compiled = append(compiled, cr)
	}
	return &Rules{rules: compiled}, nil
}

// NewDefaultRules builds a classifier from the built-in table.
func NewDefaultRules() *Rules {
	r, err := NewRules(DefaultRules())
	if err != nil {
		// The built-in table is static; a compile failure is a bug.
		panic(err)
	}
	return r
}

// Classify implements domain.EmotionClassifier. Matching is
// case-insensitive substring search in fixed rule order; no match
// falls back to general.
func (r *Rules) Classify(_ context.Context, text string) (domain.Emotion, error) {
	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		for _, re := range rule.patterns {
			if re.MatchString(lower) {
				return rule.emotion, nil
			}
		}
	}
	return domain.EmotionGeneral, nil
}
