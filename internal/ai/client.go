// Package ai talks to the OpenAI chat API to enrich game records and build
// recommendations. Both calls are best effort: callers treat any error as
// "no metadata" / "no recommendations" and carry on.
package ai

import "context"

// GameFacts is the catalog snapshot line handed to the recommendation
// prompt, one per game.
type GameFacts struct {
	Title       string
	PlayerCount string
	GameType    string
	Playtime    string
	Complexity  string
}

// Recommendation is one suggested game with the model's reasoning.
type Recommendation struct {
	Title     string `json:"title"`
	Reasoning string `json:"reasoning"`
}

// Client is the metadata/recommendation collaborator. The server holds one
// instance constructed at startup; tests inject a fake.
type Client interface {
	FetchMetadata(ctx context.Context, title string) (map[string]string, error)
	FetchRecommendations(ctx context.Context, query string, catalog []GameFacts, limit int) ([]Recommendation, error)
}
