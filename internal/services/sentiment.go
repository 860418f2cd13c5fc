package services

import (
	"context"
	"strings"

	"github.com/adityarao21/text-analyzer/internal/models"
)

// SentimentService scores text with a lexicon: every opinion word carries a
// polarity in [-1, 1] and a subjectivity in [0, 1], negators flip and dampen
// polarity, intensifiers scale the following word. The aggregate maps onto
// the external contract as score=(polarity+1)/2 and confidence=1-subjectivity.
//
// The computation is CPU-local; ctx is accepted for contract symmetry with
// the network-bound capabilities.
type SentimentService struct{}

func NewSentimentService() *SentimentService {
	return &SentimentService{}
}

// Label thresholds on mean polarity.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

type lexiconEntry struct {
	polarity     float64
	subjectivity float64
}

var sentimentLexicon = map[string]lexiconEntry{
	// positive
	"love":       {0.8, 0.9},
	"loved":      {0.8, 0.9},
	"like":       {0.4, 0.6},
	"adore":      {0.9, 0.9},
	"amazing":    {0.8, 0.9},
	"awesome":    {0.9, 0.95},
	"beautiful":  {0.85, 0.9},
	"best":       {1.0, 0.3},
	"better":     {0.5, 0.5},
	"brilliant":  {0.9, 0.9},
	"delightful": {0.8, 0.9},
	"excellent":  {1.0, 1.0},
	"enjoy":      {0.5, 0.6},
	"fantastic":  {0.9, 0.9},
	"good":       {0.7, 0.6},
	"great":      {0.8, 0.75},
	"happy":      {0.8, 1.0},
	"helpful":    {0.55, 0.4},
	"impressive": {0.8, 0.9},
	"nice":       {0.6, 1.0},
	"perfect":    {1.0, 1.0},
	"pleasant":   {0.7, 0.8},
	"reliable":   {0.5, 0.4},
	"wonderful":  {1.0, 1.0},

	// negative
	"awful":        {-1.0, 1.0},
	"bad":          {-0.7, 0.65},
	"broken":       {-0.5, 0.4},
	"disappointed": {-0.65, 0.75},
	"dreadful":     {-0.9, 0.9},
	"hate":         {-0.8, 0.9},
	"hated":        {-0.8, 0.9},
	"horrible":     {-1.0, 1.0},
	"poor":         {-0.6, 0.6},
	"sad":          {-0.7, 1.0},
	"slow":         {-0.3, 0.4},
	"terrible":     {-1.0, 1.0},
	"ugly":         {-0.7, 0.9},
	"unhappy":      {-0.75, 1.0},
	"unreliable":   {-0.5, 0.5},
	"useless":      {-0.6, 0.6},
	"worst":        {-1.0, 0.3},
	"wrong":        {-0.5, 0.5},
}

// intensifiers scale the polarity and subjectivity of the word they precede.
var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"extremely":  1.5,
	"incredibly": 1.5,
	"so":         1.2,
	"quite":      1.1,
	"slightly":   0.7,
	"somewhat":   0.8,
	"barely":     0.6,
}

var negators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"neither": true,
	"nor":     true,
	"cannot":  true,
	"n't":     true,
	"dont":    true,
	"don't":   true,
	"doesnt":  true,
	"doesn't": true,
	"isnt":    true,
	"isn't":   true,
	"wasnt":   true,
	"wasn't":  true,
}

// Analyze classifies text. It never returns an error: empty input yields the
// neutral fallback and any text with no opinion words comes back NEUTRAL.
func (s *SentimentService) Analyze(ctx context.Context, text string) models.SentimentResult {
	if text == "" {
		return models.NeutralSentiment(true, "")
	}

	polarity, subjectivity := scoreText(text)

	label := "NEUTRAL"
	switch {
	case polarity > positiveThreshold:
		label = "POSITIVE"
	case polarity < negativeThreshold:
		label = "NEGATIVE"
	}

	return models.SentimentResult{
		Sentiment:  label,
		Score:      (polarity + 1) / 2,
		Confidence: 1 - subjectivity,
		Details: &models.SentimentDetails{
			Polarity:     polarity,
			Subjectivity: subjectivity,
		},
		Success: true,
	}
}

// scoreText returns mean polarity and mean subjectivity over the opinion
// words found in text. Text without any opinion word scores (0, 0).
func scoreText(text string) (polarity, subjectivity float64) {
	words := tokenize(text)

	var polaritySum, subjectivitySum float64
	var scored int

	negate := false
	multiplier := 1.0

	for _, word := range words {
		if negators[word] {
			negate = true
			continue
		}
		if m, ok := intensifiers[word]; ok {
			multiplier *= m
			continue
		}

		entry, ok := sentimentLexicon[word]
		if !ok {
			// a non-modifier word breaks the negation/intensifier chain
			negate = false
			multiplier = 1.0
			continue
		}

		p := clamp(entry.polarity*multiplier, -1, 1)
		sub := clamp(entry.subjectivity*multiplier, 0, 1)
		if negate {
			// negation flips and dampens rather than mirroring
			p *= -0.5
		}

		polaritySum += p
		subjectivitySum += sub
		scored++

		negate = false
		multiplier = 1.0
	}

	if scored == 0 {
		return 0, 0
	}
	return polaritySum / float64(scored), subjectivitySum / float64(scored)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		case r == '\'':
			return false
		}
		return true
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
