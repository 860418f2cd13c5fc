package services

import (
	"context"
	"testing"
)

func TestAnalyzeLabels(t *testing.T) {
	s := NewSentimentService()

	testCases := []struct {
		name  string
		text  string
		label string
	}{
		{"positive", "I love this!", "POSITIVE"},
		{"strongly positive", "This is an excellent, wonderful product", "POSITIVE"},
		{"negative", "This is terrible and I hate it", "NEGATIVE"},
		{"neutral fact", "The meeting is on Tuesday at noon", "NEUTRAL"},
		{"negated positive", "This is not good", "NEGATIVE"},
		{"intensified positive", "This is very good", "POSITIVE"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := s.Analyze(context.Background(), tc.text)

			if !result.Success {
				t.Fatalf("Analyze(%q) reported failure: %s", tc.text, result.Error)
			}
			if result.Sentiment != tc.label {
				t.Errorf("Analyze(%q) = %s, want %s", tc.text, result.Sentiment, tc.label)
			}
		})
	}
}

func TestAnalyzeScoreRange(t *testing.T) {
	s := NewSentimentService()

	for _, text := range []string{
		"I love this!",
		"I hate everything about this awful broken thing",
		"hello world",
		"not not good",
	} {
		result := s.Analyze(context.Background(), text)
		if result.Score < 0 || result.Score > 1 {
			t.Errorf("Analyze(%q) score = %v, want [0,1]", text, result.Score)
		}
		if result.Confidence < 0 || result.Confidence > 1 {
			t.Errorf("Analyze(%q) confidence = %v, want [0,1]", text, result.Confidence)
		}
	}
}

func TestAnalyzePositiveScoreAboveHalf(t *testing.T) {
	result := NewSentimentService().Analyze(context.Background(), "I love this!")

	if result.Sentiment != "POSITIVE" {
		t.Fatalf("sentiment = %s, want POSITIVE", result.Sentiment)
	}
	if result.Score <= 0.5 {
		t.Errorf("score = %v, want > 0.5", result.Score)
	}
	if result.Details == nil {
		t.Fatal("details must be present on success")
	}
	if result.Details.Polarity <= 0 {
		t.Errorf("polarity = %v, want > 0", result.Details.Polarity)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	result := NewSentimentService().Analyze(context.Background(), "")

	if !result.Success {
		t.Error("empty text must short-circuit to the successful neutral fallback")
	}
	if result.Sentiment != "NEUTRAL" || result.Score != 0.5 {
		t.Errorf("empty text fallback = %s/%v, want NEUTRAL/0.5", result.Sentiment, result.Score)
	}
	if result.Confidence != 0 {
		t.Errorf("empty text confidence = %v, want 0", result.Confidence)
	}
}

func TestAnalyzeNoOpinionWords(t *testing.T) {
	result := NewSentimentService().Analyze(context.Background(), "the quick brown fox jumps over the lazy dog")

	if result.Sentiment != "NEUTRAL" {
		t.Errorf("sentiment = %s, want NEUTRAL", result.Sentiment)
	}
	if result.Score != 0.5 {
		t.Errorf("score = %v, want 0.5", result.Score)
	}
}

func TestScoreTextNegation(t *testing.T) {
	positive, _ := scoreText("good")
	negated, _ := scoreText("not good")

	if positive <= 0 {
		t.Fatalf("polarity(%q) = %v, want > 0", "good", positive)
	}
	if negated >= 0 {
		t.Errorf("polarity(%q) = %v, want < 0", "not good", negated)
	}
	// negation dampens, it does not mirror
	if -negated >= positive {
		t.Errorf("negated magnitude %v should be smaller than %v", -negated, positive)
	}
}

func TestScoreTextIntensifier(t *testing.T) {
	plain, _ := scoreText("good")
	boosted, _ := scoreText("very good")

	if boosted <= plain {
		t.Errorf("polarity(%q) = %v, want > polarity(%q) = %v", "very good", boosted, "good", plain)
	}
	if boosted > 1 {
		t.Errorf("polarity must stay clamped to 1, got %v", boosted)
	}
}
