package models

import (
	"strings"
	"time"

	"github.com/adityarao21/text-analyzer/internal/metrics"
)

// AnalysisRequest is the input to one fan-out. It is built once per incoming
// HTTP call and never mutated after Normalize.
type AnalysisRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// Normalize fills in language defaults and canonicalizes the codes.
func (r *AnalysisRequest) Normalize(defaultSource, defaultTarget string) {
	if r.SourceLang == "" {
		r.SourceLang = defaultSource
	}
	if r.TargetLang == "" {
		r.TargetLang = defaultTarget
	}
	r.SourceLang = NormalizeLanguageCode(r.SourceLang)
	r.TargetLang = NormalizeLanguageCode(r.TargetLang)
}

// supportedLanguages maps the language codes the translation vendor accepts.
// Codes outside this table are passed through lowercased and left for the
// vendor to reject.
var supportedLanguages = map[string]string{
	"en": "en",
	"hi": "hi",
	"bn": "bn",
	"gu": "gu",
	"kn": "kn",
	"ml": "ml",
	"mr": "mr",
	"ta": "ta",
	"te": "te",
}

// NormalizeLanguageCode lowercases a language code and maps it through the
// supported-language table. Empty input defaults to English.
func NormalizeLanguageCode(lang string) string {
	if lang == "" {
		return "en"
	}
	lower := strings.ToLower(lang)
	if code, ok := supportedLanguages[lower]; ok {
		return code
	}
	return lower
}

// TranslationResult is the translation capability's slot in the response.
// On failure TranslatedText holds the original text so consumers never see
// an absent payload.
type TranslationResult struct {
	TranslatedText string `json:"translated_text"`
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
}

// SentimentDetails carries the raw lexicon measurements behind a sentiment
// classification.
type SentimentDetails struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// SentimentResult is the sentiment capability's slot in the response.
// On failure it holds the neutral fallback (NEUTRAL, score 0.5).
type SentimentResult struct {
	Sentiment  string            `json:"sentiment"`
	Score      float64           `json:"score"`
	Confidence float64           `json:"confidence"`
	Details    *SentimentDetails `json:"details"`
	Success    bool              `json:"success"`
	Error      string            `json:"error,omitempty"`
}

// NeutralSentiment returns the documented sentiment fallback payload.
func NeutralSentiment(success bool, errMsg string) SentimentResult {
	return SentimentResult{
		Sentiment: "NEUTRAL",
		Score:     0.5,
		Success:   success,
		Error:     errMsg,
	}
}

// ChatResult is the chat capability's slot in the response.
// On failure Response holds a user-facing canned message.
type ChatResult struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// ResponseBundle aggregates one result per capability plus the wall-clock
// duration of the whole fan-out. It is owned by the request that built it.
type ResponseBundle struct {
	Translation TranslationResult
	Sentiment   SentimentResult
	Chat        ChatResult
	Elapsed     time.Duration
}

// ServiceStatus reports which capabilities were configured at startup.
// It is included in orchestration-level error responses so callers can tell
// a degraded deployment from a transient failure.
type ServiceStatus struct {
	Translation bool `json:"translation"`
	Sentiment   bool `json:"sentiment"`
	Chat        bool `json:"chat"`
}

// MetricsSnapshot aliases the recorder's snapshot type so the models package
// stays the single vocabulary for response shapes.
type MetricsSnapshot = metrics.Snapshot
