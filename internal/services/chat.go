package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/adityarao21/text-analyzer/internal/models"
)

// User-facing fallback strings for the chat capability.
const (
	chatEmptyPrompt  = "I'd be happy to help! Please provide your question or message."
	chatFailureReply = "I apologize, but I'm having trouble processing your request at the moment. Please try again."
)

// ChatService generates conversational replies with Gemini. Respond never
// returns an error: upstream failures collapse into a ChatResult carrying
// the canned apology and success=false.
type ChatService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewChatService creates a Gemini-backed chat client.
func NewChatService(ctx context.Context, apiKey, modelName string) (*ChatService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required for the chat service")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.8)
	model.SetTopK(40)
	model.SetMaxOutputTokens(1024)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockMediumAndAbove},
	}

	return &ChatService{
		client: client,
		model:  model,
	}, nil
}

// Close closes the underlying genai client.
func (s *ChatService) Close() error {
	return s.client.Close()
}

// Respond produces a chat reply for text. Empty text short-circuits before
// any model call and asks the user for input.
func (s *ChatService) Respond(ctx context.Context, text string) models.ChatResult {
	if text == "" {
		return models.ChatResult{
			Response: chatEmptyPrompt,
			Success:  true,
		}
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(buildChatPrompt(text)))
	if err != nil {
		log.Printf("Chat generation error: %v", err)
		return models.ChatResult{
			Response: chatFailureReply,
			Success:  false,
			Error:    err.Error(),
		}
	}

	reply, err := extractResponseText(resp)
	if err != nil {
		log.Printf("Chat response error: %v", err)
		return models.ChatResult{
			Response: chatFailureReply,
			Success:  false,
			Error:    err.Error(),
		}
	}

	return models.ChatResult{
		Response: reply,
		Success:  true,
	}
}

// buildChatPrompt wraps the user message in the assistant instruction.
func buildChatPrompt(text string) string {
	return fmt.Sprintf(`You are a helpful AI assistant with deep knowledge of diverse topics. Please provide a clear and informative response to help the user.

Question/Message: %s

Response:`, text)
}

// extractResponseText pulls the first non-empty text candidate out of a
// Gemini response.
func extractResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("no response received from Gemini")
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
			continue
		}
		var combined strings.Builder
		for _, part := range candidate.Content.Parts {
			text, ok := part.(genai.Text)
			if !ok {
				continue
			}
			combined.WriteString(string(text))
		}
		if reply := strings.TrimSpace(combined.String()); reply != "" {
			return reply, nil
		}
	}
	return "", fmt.Errorf("no text parts found in Gemini response")
}
