package orchestrator

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/adityarao21/text-analyzer/internal/metrics"
	"github.com/adityarao21/text-analyzer/internal/models"
)

// The capability interfaces the orchestrator fans out to. Implementations
// never return a Go error: every failure mode is folded into the result's
// success/error fields so a broken capability cannot fail the request.

type Translator interface {
	Translate(ctx context.Context, text, targetLang, sourceLang string) models.TranslationResult
}

type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) models.SentimentResult
}

type ChatResponder interface {
	Respond(ctx context.Context, text string) models.ChatResult
}

// Orchestrator runs the three capability calls for one request concurrently
// and joins all of them before returning. Any adapter may be nil, meaning
// that capability was not configured at startup; its slot is then filled with
// the documented fallback without an external call.
type Orchestrator struct {
	translator Translator
	sentiment  SentimentAnalyzer
	chat       ChatResponder
	recorder   *metrics.Recorder

	// per-capability deadline; a capability that exceeds it reports failure
	// for its own slot only
	timeout time.Duration

	defaultSourceLang string
	defaultTargetLang string
}

type Config struct {
	Translator        Translator
	Sentiment         SentimentAnalyzer
	Chat              ChatResponder
	Recorder          *metrics.Recorder
	AdapterTimeout    time.Duration
	DefaultSourceLang string
	DefaultTargetLang string
}

func New(cfg Config) *Orchestrator {
	if cfg.AdapterTimeout <= 0 {
		cfg.AdapterTimeout = 30 * time.Second
	}
	if cfg.DefaultSourceLang == "" {
		cfg.DefaultSourceLang = "en"
	}
	if cfg.DefaultTargetLang == "" {
		cfg.DefaultTargetLang = "hi"
	}
	if cfg.Recorder == nil {
		cfg.Recorder = metrics.NewRecorder()
	}
	return &Orchestrator{
		translator:        cfg.Translator,
		sentiment:         cfg.Sentiment,
		chat:              cfg.Chat,
		recorder:          cfg.Recorder,
		timeout:           cfg.AdapterTimeout,
		defaultSourceLang: cfg.DefaultSourceLang,
		defaultTargetLang: cfg.DefaultTargetLang,
	}
}

// ServiceStatus reports which capabilities were configured at startup.
func (o *Orchestrator) ServiceStatus() models.ServiceStatus {
	return models.ServiceStatus{
		Translation: o.translator != nil,
		Sentiment:   o.sentiment != nil,
		Chat:        o.chat != nil,
	}
}

// Process fans the request out to all three capabilities, waits for every
// one of them to settle, and returns the combined bundle. The three calls
// have no ordering dependency; each writes its own bundle field, so no
// synchronization beyond the join is needed. A slow or failing capability
// never drops another's result: there is no global deadline, only the
// uniform per-capability timeout.
func (o *Orchestrator) Process(ctx context.Context, req models.AnalysisRequest) models.ResponseBundle {
	req.Normalize(o.defaultSourceLang, o.defaultTargetLang)

	start := time.Now()
	var bundle models.ResponseBundle

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		bundle.Translation = o.runTranslation(ctx, req)
	}()
	go func() {
		defer wg.Done()
		bundle.Sentiment = o.runSentiment(ctx, req.Text)
	}()
	go func() {
		defer wg.Done()
		bundle.Chat = o.runChat(ctx, req.Text)
	}()

	wg.Wait()
	bundle.Elapsed = time.Since(start)
	return bundle
}

// Every runX wrapper follows the same contract: it always records exactly
// one metrics call for its category (success, failure, fallback, or
// short-circuit alike), applies the uniform timeout, and converts a panic
// from a misbehaving adapter into a failed result for that slot only.

func (o *Orchestrator) runTranslation(ctx context.Context, req models.AnalysisRequest) (result models.TranslationResult) {
	start := time.Now()
	defer func() {
		o.recorder.Record(metrics.CategoryTranslation, time.Since(start))
		if p := recover(); p != nil {
			log.Printf("translation adapter panic: %v", p)
			result = models.TranslationResult{
				TranslatedText: req.Text,
				Success:        false,
				Error:          "translation service failed unexpectedly",
				SourceLang:     req.SourceLang,
				TargetLang:     req.TargetLang,
			}
		}
	}()

	if o.translator == nil {
		return models.TranslationResult{
			TranslatedText: req.Text,
			Success:        false,
			Error:          "Translation service not available",
			SourceLang:     req.SourceLang,
			TargetLang:     req.TargetLang,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	return o.translator.Translate(ctx, req.Text, req.TargetLang, req.SourceLang)
}

func (o *Orchestrator) runSentiment(ctx context.Context, text string) (result models.SentimentResult) {
	start := time.Now()
	defer func() {
		o.recorder.Record(metrics.CategorySentiment, time.Since(start))
		if p := recover(); p != nil {
			log.Printf("sentiment adapter panic: %v", p)
			result = models.NeutralSentiment(false, "sentiment analysis failed unexpectedly")
		}
	}()

	if o.sentiment == nil {
		return models.NeutralSentiment(false, "Sentiment analysis not available")
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	return o.sentiment.Analyze(ctx, text)
}

func (o *Orchestrator) runChat(ctx context.Context, text string) (result models.ChatResult) {
	start := time.Now()
	defer func() {
		o.recorder.Record(metrics.CategoryChat, time.Since(start))
		if p := recover(); p != nil {
			log.Printf("chat adapter panic: %v", p)
			result = models.ChatResult{
				Response: "I apologize, but I'm having trouble processing your request.",
				Success:  false,
				Error:    "chat service failed unexpectedly",
			}
		}
	}()

	if o.chat == nil {
		return models.ChatResult{
			Response: "Chat service not available",
			Success:  false,
			Error:    "Chat service not loaded",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	return o.chat.Respond(ctx, text)
}
