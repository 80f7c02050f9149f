package server

import (
	"encoding/json"

	"gamedex/internal/catalog"
	"gamedex/internal/db"
	"gamedex/internal/web"
)

func gameView(summary catalog.GameSummary) web.GameView {
	return web.GameView{
		ID:            summary.Game.ID,
		Title:         summary.Game.Title,
		PlayerCount:   summary.Game.PlayerCount,
		GameType:      summary.Game.GameType,
		Playtime:      summary.Game.Playtime,
		Complexity:    summary.Game.Complexity,
		SetupTime:     summary.Game.SetupTime,
		GameElements:  summary.Game.GameElements,
		Description:   summary.Game.Description,
		AverageRating: summary.AverageRating,
		LastPlayed:    summary.LastPlayed,
		Ratings:       summary.Ratings,
		CreatedAt:     summary.Game.CreatedAt,
		UpdatedAt:     summary.Game.UpdatedAt,
	}
}

func memberViews(members []db.FamilyMember) []web.MemberView {
	views := make([]web.MemberView, 0, len(members))
	for _, member := range members {
		views = append(views, web.MemberView{
			ID:        member.ID,
			Name:      member.Name,
			CreatedAt: member.CreatedAt,
		})
	}
	return views
}

func playLogViews(entries []catalog.PlayLogEntry) []web.PlayLogView {
	views := make([]web.PlayLogView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, web.PlayLogView{
			ID:              entry.ID,
			GameID:          entry.GameID,
			GameTitle:       entry.GameTitle,
			PlayedAt:        entry.PlayedAt,
			Players:         entry.Players,
			Winner:          entry.Winner,
			Notes:           entry.Notes,
			DurationMinutes: entry.DurationMinutes,
		})
	}
	return views
}

func eventViews(events []db.Event) []web.EventView {
	views := make([]web.EventView, 0, len(events))
	for _, event := range events {
		views = append(views, web.EventView{
			ID:        event.ID,
			Type:      event.Type,
			Payload:   json.RawMessage(event.Payload),
			CreatedAt: event.CreatedAt,
		})
	}
	return views
}
