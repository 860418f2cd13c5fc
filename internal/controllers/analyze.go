package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/adityarao21/text-analyzer/internal/metrics"
	"github.com/adityarao21/text-analyzer/internal/models"
	"github.com/adityarao21/text-analyzer/internal/orchestrator"
	"github.com/adityarao21/text-analyzer/internal/services"
)

// AnalyzeController handles the JSON analysis API.
type AnalyzeController struct {
	orchestrator   *orchestrator.Orchestrator
	formatter      *services.ResponseFormatter
	recorder       *metrics.Recorder
	historyService *models.HistoryService // nil when persistence is not configured
}

// NewAnalyzeController creates a new AnalyzeController. historyService may be
// nil, in which case results are not persisted.
func NewAnalyzeController(
	orch *orchestrator.Orchestrator,
	formatter *services.ResponseFormatter,
	recorder *metrics.Recorder,
	historyService *models.HistoryService,
) *AnalyzeController {
	return &AnalyzeController{
		orchestrator:   orch,
		formatter:      formatter,
		recorder:       recorder,
		historyService: historyService,
	}
}

// orchestrationError is the 500 payload for failures of the orchestration
// mechanism itself, as opposed to any single capability's failure.
type orchestrationError struct {
	Error         string               `json:"error"`
	Details       string               `json:"details"`
	ServiceStatus models.ServiceStatus `json:"service_status"`
}

// PostAnalyze handles POST /analyze. Input validation failures are 400 and
// never reach the orchestrator; capability failures are 200 with the failed
// slot marked; only a failure of the fan-out machinery itself is a 500.
func (c *AnalyzeController) PostAnalyze(w http.ResponseWriter, r *http.Request) {
	// Belt and suspenders: a panic out of Process means the orchestration
	// mechanism broke, not a capability. Capability panics are absorbed a
	// layer below.
	defer func() {
		if p := recover(); p != nil {
			log.Printf("Orchestration panic: %v", p)
			sendJSON(w, http.StatusInternalServerError, orchestrationError{
				Error:         "Error processing request",
				Details:       fmt.Sprint(p),
				ServiceStatus: c.orchestrator.ServiceStatus(),
			})
		}
	}()

	var req models.AnalysisRequest
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			sendJSONError(w, http.StatusBadRequest, "No data provided")
			return
		}
		sendJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Text == "" {
		sendJSONError(w, http.StatusBadRequest, "No text provided")
		return
	}

	bundle := c.orchestrator.Process(r.Context(), req)

	if c.historyService != nil {
		c.persistResult(req, bundle)
	}

	sendJSON(w, http.StatusOK, c.formatter.Format(bundle, c.recorder.Snapshot()))
}

// persistResult stores the completed analysis best-effort: a failed insert
// is logged, never surfaced to the client. Detached from the request context
// so a client disconnect cannot cancel the write.
func (c *AnalyzeController) persistResult(req models.AnalysisRequest, bundle models.ResponseBundle) {
	rec := models.NewAnalysisRecord(req, bundle)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), models.QueryTimeout)
		defer cancel()

		if err := c.historyService.Create(ctx, &rec); err != nil {
			log.Printf("Failed to persist analysis %s: %v", rec.ID, err)
		}
	}()
}

// GetMetrics handles GET /metrics.
func (c *AnalyzeController) GetMetrics(w http.ResponseWriter, r *http.Request) {
	snapshot := c.recorder.Snapshot()
	if snapshot == nil {
		sendJSONError(w, http.StatusInternalServerError, "Failed to retrieve metrics")
		return
	}
	sendJSON(w, http.StatusOK, snapshot)
}

// GetHistory handles GET /history?limit=N. Only mounted when persistence is
// configured.
func (c *AnalyzeController) GetHistory(w http.ResponseWriter, r *http.Request) {
	if c.historyService == nil {
		sendJSONError(w, http.StatusServiceUnavailable, models.ErrHistoryUnavailable.Error())
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			sendJSONError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	records, err := c.historyService.Recent(r.Context(), limit)
	if err != nil {
		log.Printf("Failed to read analysis history: %v", err)
		sendJSONError(w, http.StatusInternalServerError, "Failed to retrieve history")
		return
	}
	if records == nil {
		records = []models.AnalysisRecord{}
	}

	sendJSON(w, http.StatusOK, map[string]any{
		"analyses":     records,
		"count":        len(records),
		"retrieved_at": time.Now().UTC(),
	})
}
