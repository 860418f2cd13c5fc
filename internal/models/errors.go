package models

import "errors"

// Analysis history errors
var (
	ErrAnalysisNotFound   = errors.New("analysis not found")
	ErrDuplicateAnalysis  = errors.New("analysis already exists")
	ErrHistoryUnavailable = errors.New("analysis history is not configured")
)
