package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultEndpoint = "https://api.openai.com/v1/chat/completions"

type openAIChatRequest struct {
	Model       string              `json:"model"`
	Messages    []openAIChatMessage `json:"messages"`
	Temperature float64             `json:"temperature,omitempty"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
}

type openAIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// OpenAI is the live Client implementation.
type OpenAI struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func NewOpenAI(apiKey, model string) *OpenAI {
	return &OpenAI{
		apiKey:   strings.TrimSpace(apiKey),
		model:    model,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchMetadata asks the model for a game's descriptive fields keyed by
// title. Without an API key it returns an empty map rather than an error,
// so an unconfigured deployment simply gets no enrichment.
func (o *OpenAI) FetchMetadata(ctx context.Context, title string) (map[string]string, error) {
	if o.apiKey == "" {
		return map[string]string{}, nil
	}
	prompt := fmt.Sprintf(`Provide metadata for the board game %q. Return the information in JSON format with these fields:
- title: the correct, official title of the game (correct any typos, capitalization, or formatting issues)
- player_count: typical player count (e.g., "2-4 players")
- game_type: category/genre (e.g., "Strategy", "Party", "Cooperative")
- playtime: typical play time (e.g., "30-60 minutes")
- complexity: complexity level (e.g., "Easy", "Medium", "Hard")
- setup_time: typical setup time (e.g., "5-10 minutes")
- game_elements: comma-separated gameplay elements (e.g., "dice, trading, tile placement")
- description: brief description of the game

If you don't know the game, return an empty JSON object {}.`, title)

	content, err := o.complete(ctx, "You are a board game expert. Provide accurate metadata in JSON format.", prompt, 400, 0.3)
	if err != nil {
		return nil, err
	}
	metadata := map[string]string{}
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &metadata); err != nil {
		// Unparseable output still carries prose worth keeping.
		return map[string]string{"description": content}, nil
	}
	return metadata, nil
}

// FetchRecommendations asks the model to pick up to limit games from the
// catalog snapshot that match the natural-language query.
func (o *OpenAI) FetchRecommendations(ctx context.Context, query string, catalog []GameFacts, limit int) ([]Recommendation, error) {
	if o.apiKey == "" || len(catalog) == 0 {
		return []Recommendation{}, nil
	}
	if limit < 1 {
		limit = 5
	}
	lines := make([]string, 0, len(catalog))
	for _, game := range catalog {
		lines = append(lines, fmt.Sprintf("- %s: %s, %s, %s, Complexity: %s",
			orNA(game.Title), orNA(game.PlayerCount), orNA(game.GameType), orNA(game.Playtime), orNA(game.Complexity)))
	}
	prompt := fmt.Sprintf(`Based on this query: %q

And these available games:
%s

Recommend up to %d games that best match the query. For each recommendation provide the game title and brief reasoning why it matches.

Return as JSON array with objects containing "title" and "reasoning" fields.`, query, strings.Join(lines, "\n"), limit)

	content, err := o.complete(ctx, "You are a board game recommendation expert. Provide helpful, accurate recommendations.", prompt, 500, 0.7)
	if err != nil {
		return nil, err
	}
	var recommendations []Recommendation
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &recommendations); err != nil {
		return []Recommendation{}, nil
	}
	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations, nil
}

func (o *OpenAI) complete(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	reqBody := openAIChatRequest{
		Model: o.model,
		Messages: []openAIChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to build OpenAI request")
	}

	reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, o.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build OpenAI request")
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach OpenAI")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read OpenAI response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("OpenAI request failed (%d)", resp.StatusCode)
	}

	var parsed openAIChatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse OpenAI response")
	}
	if parsed.Error != nil {
		return "", errors.New(parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("OpenAI returned no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}
