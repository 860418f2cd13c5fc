package services

import (
	"fmt"

	"github.com/adityarao21/text-analyzer/internal/models"
)

// AnalysisResponse is the externally documented /analyze response schema.
type AnalysisResponse struct {
	Translation models.TranslationResult `json:"translation"`
	Sentiment   models.SentimentResult   `json:"sentiment"`
	Chat        models.ChatResult        `json:"chat"`
	Performance Performance              `json:"performance"`
}

// Performance carries the request's wall-clock time plus the process-wide
// metrics snapshot.
type Performance struct {
	TotalTime string                 `json:"total_time"`
	Metrics   models.MetricsSnapshot `json:"metrics"`
}

// ResponseFormatter shapes internal bundles into the external schema.
// It is pure and cannot fail.
type ResponseFormatter struct{}

// NewResponseFormatter constructor creates a new response formatter
func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

// Format maps a completed bundle and a metrics snapshot onto the response
// schema. Total time is rendered as fixed two-decimal seconds, e.g. "0.42s".
func (f *ResponseFormatter) Format(bundle models.ResponseBundle, snapshot models.MetricsSnapshot) AnalysisResponse {
	return AnalysisResponse{
		Translation: bundle.Translation,
		Sentiment:   bundle.Sentiment,
		Chat:        bundle.Chat,
		Performance: Performance{
			TotalTime: fmt.Sprintf("%.2fs", bundle.Elapsed.Seconds()),
			Metrics:   snapshot,
		},
	}
}
