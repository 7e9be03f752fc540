package emotion_test

import (
	"context"
	"testing"

	"github.com/PreranaYekkele/CalmBot/internal/app/emotion"
	"github.com/PreranaYekkele/CalmBot/internal/domain"
)

func classify(t *testing.T, text string) domain.Emotion {
	t.Helper()

	emo, err := emotion.NewDefaultRules().Classify(context.Background(), text)
	if err != nil {
		t.Fatalf("Classify(%q) failed: %v", text, err)
	}
	return emo
}

func TestClassifyMatchesPatterns(t *testing.T) {
	cases := []struct {
		text string
		want domain.Emotion
	}{
		{"I feel anxious about work", domain.EmotionAnxiety},
		{"my anxiety is back", domain.EmotionAnxiety},
		{"I'm so worried", domain.EmotionAnxiety},
		{"everything is stressful", domain.EmotionAnxiety},
		{"I cant stop thinking about it", domain.EmotionAnxiety},
		{"I've been depressed lately", domain.EmotionDepression},
		{"feeling hopeless", domain.EmotionDepression},
		{"I feel empty inside", domain.EmotionDepression},
		{"I'm furious about this", domain.EmotionAnger},
		{"that was so frustrating", domain.EmotionAnger},
		{"I'm fed up", domain.EmotionAnger},
	}

	for _, tc := range cases {
		if got := classify(t, tc.text); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	if got := classify(t, "I'M SO WORRIED ABOUT TOMORROW"); got != domain.EmotionAnxiety {
		t.Fatalf("expected anxiety, got %s", got)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Contains both an anxiety and an anger pattern; anxiety is
	// evaluated first and must win.
	if got := classify(t, "I am anxious and also furious"); got != domain.EmotionAnxiety {
		t.Fatalf("expected anxiety to outrank anger, got %s", got)
	}

	// Depression outranks anger the same way.
	if got := classify(t, "hopeless and furious"); got != domain.EmotionDepression {
		t.Fatalf("expected depression to outrank anger, got %s", got)
	}
}

func TestClassifyFallsBackToGeneral(t *testing.T) {
	for _, text := range []string{
		"What time is it?",
		"",
		"   ",
	} {
		if got := classify(t, text); got != domain.EmotionGeneral {
			t.Errorf("Classify(%q) = %s, want general", text, got)
		}
	}
}

func TestClassifyIsPure(t *testing.T) {
	rules := emotion.NewDefaultRules()
	ctx := context.Background()

	first, _ := rules.Classify(ctx, "I feel anxious and sad")
	for i := 0; i < 10; i++ {
		got, err := rules.Classify(ctx, "I feel anxious and sad")
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if got != first {
			t.Fatalf("classification changed between calls: %s then %s", first, got)
		}
	}
}

func TestNewRulesRejectsBadPattern(t *testing.T) {
	_, err := emotion.NewRules([]emotion.Rule{
		{Emotion: domain.EmotionAnger, Patterns: []string{`ang(ry`}},
	})
	if err == nil {
		t.Fatal("expected a compile error for an unbalanced pattern")
	}
}

func TestCrisisKeywords(t *testing.T) {
	detector := emotion.NewCrisisKeywords()

	cases := []struct {
		text string
		want bool
	}{
		{"I want to hurt myself", true},
		{"sometimes I think about suicide", true},
		{"I just want to END IT ALL", true},
		{"I'm feeling a bit sad today", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := detector.InCrisis(tc.text); got != tc.want {
			t.Errorf("InCrisis(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
