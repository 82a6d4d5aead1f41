package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"eventify/config"
	apperrors "eventify/pkg/app_errors"
)

type AIService interface {
	// GenerateDescription 依活動資訊產生文案
	GenerateDescription(ctx context.Context, title, category, location, additionalInfo string) (string, error)
	// EnhanceDescription 潤飾既有文案
	EnhanceDescription(ctx context.Context, title, description string) (string, error)
}

type AIServiceImpl struct {
	cfg    config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) AIService {
	return &AIServiceImpl{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (s *AIServiceImpl) GenerateDescription(ctx context.Context, title, category, location, additionalInfo string) (string, error) {
	if category == "" {
		category = "General"
	}
	if location == "" {
		location = "TBD"
	}
	prompt := fmt.Sprintf(`Generate an engaging and professional event description for the following event:

Title: %s
Category: %s
Location: %s
`, title, category, location)
	if additionalInfo != "" {
		prompt += fmt.Sprintf("Additional Details: %s\n", additionalInfo)
	}
	prompt += `
Please write a compelling description (150-200 words) that:
1. Captures the essence of the event
2. Highlights what attendees can expect
3. Creates excitement and encourages RSVPs
4. Is professional yet approachable in tone

Only return the description text, no additional commentary.`

	return s.complete(ctx,
		"You are an expert event marketing copywriter who creates engaging event descriptions.",
		prompt, 300)
}

func (s *AIServiceImpl) EnhanceDescription(ctx context.Context, title, description string) (string, error) {
	if title == "" {
		title = "Event"
	}
	prompt := fmt.Sprintf(`Enhance and improve the following event description while maintaining its core message:

Event Title: %s
Original Description: %s

Please:
1. Improve the language and flow
2. Make it more engaging and compelling
3. Add any missing calls-to-action
4. Keep it professional yet inviting
5. Maintain approximately the same length

Only return the enhanced description text, no additional commentary.`, title, description)

	return s.complete(ctx,
		"You are an expert event marketing copywriter who enhances event descriptions.",
		prompt, 400)
}

func (s *AIServiceImpl) complete(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	if s.cfg.APIKey == "" {
		return "", apperrors.ErrAIServiceUnavailable
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(s.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai completion failed: status %d", resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("ai completion failed: empty choices")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
