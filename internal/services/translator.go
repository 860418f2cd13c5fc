package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/adityarao21/text-analyzer/internal/models"
)

// DefaultTranslatorURL is the RapidAPI Microsoft Translator v3 endpoint.
const DefaultTranslatorURL = "https://microsoft-translator-text.p.rapidapi.com/translate"

const rapidAPIHost = "microsoft-translator-text.p.rapidapi.com"

// TranslatorService calls the RapidAPI translation endpoint. It implements
// the capability contract: Translate never returns an error, every failure
// mode collapses into a TranslationResult with success=false and the
// original text echoed back as the payload.
type TranslatorService struct {
	APIKey string
	Client *http.Client

	// BaseURL is overridable for tests; zero value means the real endpoint.
	BaseURL string
}

// NewTranslatorService creates a translator client with the given RapidAPI key.
func NewTranslatorService(apiKey string) (*TranslatorService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("RAPID_API_KEY is required for the translation service")
	}
	return &TranslatorService{
		APIKey: apiKey,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		BaseURL: DefaultTranslatorURL,
	}, nil
}

// Request body item for the translate endpoint
type translateRequestItem struct {
	Text string `json:"text"`
}

// Response from the translate endpoint
type translateResponseItem struct {
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

// Translate converts text into targetLang. Empty text short-circuits before
// any network call and reports success with an empty echo.
func (s *TranslatorService) Translate(ctx context.Context, text, targetLang, sourceLang string) models.TranslationResult {
	targetLang = models.NormalizeLanguageCode(targetLang)
	if sourceLang != "" {
		sourceLang = models.NormalizeLanguageCode(sourceLang)
	}

	result := models.TranslationResult{
		SourceLang: sourceLang,
		TargetLang: targetLang,
	}
	if result.SourceLang == "" {
		result.SourceLang = "auto"
	}

	if text == "" {
		result.TranslatedText = ""
		result.Success = true
		return result
	}

	translated, err := s.callTranslateAPI(ctx, text, targetLang, sourceLang)
	if err != nil {
		log.Printf("Translation error: %v", err)
		result.TranslatedText = text // echo the original so the payload is never absent
		result.Success = false
		result.Error = err.Error()
		return result
	}

	result.TranslatedText = translated
	result.Success = true
	return result
}

// callTranslateAPI performs the actual HTTP round trip.
func (s *TranslatorService) callTranslateAPI(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	body := []translateRequestItem{{Text: text}}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := s.BaseURL
	if url == "" {
		url = DefaultTranslatorURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("api-version", "3.0")
	q.Set("to", targetLang)
	if sourceLang != "" {
		q.Set("from", sourceLang)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-RapidAPI-Key", s.APIKey)
	req.Header.Set("X-RapidAPI-Host", rapidAPIHost)

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call translation API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("translation API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var items []translateResponseItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(items) == 0 || len(items[0].Translations) == 0 {
		return "", fmt.Errorf("no translations in API response")
	}

	return items[0].Translations[0].Text, nil
}
