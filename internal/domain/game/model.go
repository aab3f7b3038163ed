package game

import (
	"fmt"
	"time"
)

// Game is one scheduled or completed matchup as returned by the statistics service.
type Game struct {
	ID        string
	Date      time.Time
	Season    string
	HomeTeam  string
	AwayTeam  string
	HomeScore *int
	AwayScore *int
}

// TotalPoints is the combined score, or 0 while either side is unknown.
func (g Game) TotalPoints() int {
	if g.HomeScore == nil || g.AwayScore == nil {
		return 0
	}
	return *g.HomeScore + *g.AwayScore
}

func (g Game) Played() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// Filter narrows a games listing. An empty Team means every team.
type Filter struct {
	Team   string
	Season string
	Limit  int
	Offset int
}

func (f Filter) Validate() error {
	if f.Season == "" {
		return fmt.Errorf("season is required")
	}
	if f.Limit <= 0 {
		return fmt.Errorf("limit must be greater than zero")
	}
	if f.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	return nil
}

// Page is one slice of a games listing. Total is set only when the service reports an exact count.
type Page struct {
	Games []Game
	Total *int
}
