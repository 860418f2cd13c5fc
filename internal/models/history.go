package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalysisRecord is one persisted fan-out result. The three capability
// results are stored as jsonb so the schema survives result-shape additions.
type AnalysisRecord struct {
	ID           uuid.UUID         `json:"id"`
	Text         string            `json:"text"`
	SourceLang   string            `json:"source_lang"`
	TargetLang   string            `json:"target_lang"`
	Translation  TranslationResult `json:"translation"`
	Sentiment    SentimentResult   `json:"sentiment"`
	Chat         ChatResult        `json:"chat"`
	TotalSeconds float64           `json:"total_seconds"`
	CreatedAt    time.Time         `json:"created_at"`
}

// NewAnalysisRecord builds a record from a completed bundle.
func NewAnalysisRecord(req AnalysisRequest, bundle ResponseBundle) AnalysisRecord {
	return AnalysisRecord{
		ID:           uuid.New(),
		Text:         req.Text,
		SourceLang:   req.SourceLang,
		TargetLang:   req.TargetLang,
		Translation:  bundle.Translation,
		Sentiment:    bundle.Sentiment,
		Chat:         bundle.Chat,
		TotalSeconds: bundle.Elapsed.Seconds(),
	}
}

type HistoryService struct {
	pool *pgxpool.Pool
}

func NewHistoryService(pool *pgxpool.Pool) *HistoryService {
	return &HistoryService{pool: pool}
}

// Create inserts a completed analysis.
func (s *HistoryService) Create(ctx context.Context, rec *AnalysisRecord) error {
	query := `
		INSERT INTO analyses (id, text, source_lang, target_lang, translation, sentiment, chat, total_seconds)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	translationJSON, err := json.Marshal(rec.Translation)
	if err != nil {
		return fmt.Errorf("failed to marshal translation result: %w", err)
	}
	sentimentJSON, err := json.Marshal(rec.Sentiment)
	if err != nil {
		return fmt.Errorf("failed to marshal sentiment result: %w", err)
	}
	chatJSON, err := json.Marshal(rec.Chat)
	if err != nil {
		return fmt.Errorf("failed to marshal chat result: %w", err)
	}

	err = s.pool.QueryRow(ctx, query,
		rec.ID, rec.Text, rec.SourceLang, rec.TargetLang,
		translationJSON, sentimentJSON, chatJSON, rec.TotalSeconds,
	).Scan(&rec.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateAnalysis
		}
		return fmt.Errorf("failed to create analysis record: %w", err)
	}

	return nil
}

// Recent returns the newest records first, capped at limit.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := `
		SELECT id, text, source_lang, target_lang, translation, sentiment, chat, total_seconds, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1
	`

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis history: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		var translationJSON, sentimentJSON, chatJSON []byte

		err := rows.Scan(
			&rec.ID, &rec.Text, &rec.SourceLang, &rec.TargetLang,
			&translationJSON, &sentimentJSON, &chatJSON,
			&rec.TotalSeconds, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis record: %w", err)
		}

		if err := json.Unmarshal(translationJSON, &rec.Translation); err != nil {
			return nil, fmt.Errorf("failed to unmarshal translation result: %w", err)
		}
		if err := json.Unmarshal(sentimentJSON, &rec.Sentiment); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sentiment result: %w", err)
		}
		if err := json.Unmarshal(chatJSON, &rec.Chat); err != nil {
			return nil, fmt.Errorf("failed to unmarshal chat result: %w", err)
		}

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analysis history: %w", err)
	}

	return records, nil
}
