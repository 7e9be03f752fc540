package classifier_test

import (
	"testing"

	"github.com/PreranaYekkele/CalmBot/internal/adapters/classifier"
	"github.com/PreranaYekkele/CalmBot/internal/domain"
)

func TestParseLabel(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.Emotion
	}{
		{"anxiety", domain.EmotionAnxiety},
		{"depression", domain.EmotionDepression},
		{"anger", domain.EmotionAnger},
		{"general", domain.EmotionGeneral},
		{"Anxiety", domain.EmotionAnxiety},
		{"  anger  ", domain.EmotionAnger},
		{"depression.", domain.EmotionDepression},
		{`"anxiety"`, domain.EmotionAnxiety},
		{"sadness", domain.EmotionGeneral},
		{"crisis", domain.EmotionGeneral},
		{"", domain.EmotionGeneral},
		{"I think the label is anxiety", domain.EmotionGeneral},
	}

	for _, tc := range cases {
		if got := classifier.ParseLabel(tc.raw); got != tc.want {
			t.Errorf("ParseLabel(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNewOpenAIClassifierRequiresModel(t *testing.T) {
	if _, err := classifier.NewOpenAIClassifier("key", ""); err == nil {
		t.Fatal("expected an error for empty model")
	}
}
