package player

import "time"

// Player is a searchable athlete.
type Player struct {
	ID       string
	Name     string
	Team     string
	Position string
}

// SearchResult is one page of player search hits plus provenance reported by the service.
type SearchResult struct {
	Players    []Player
	DataSource string
	Timestamp  time.Time
}

// Averages are per-game season averages. Extra keeps any metric the service adds later.
type Averages struct {
	Pts     float64
	Reb     float64
	Ast     float64
	Stl     float64
	Blk     float64
	FGPct   float64
	FG3Pct  float64
	FTPct   float64
	Minutes float64
	Extra   map[string]float64
}

type Stats struct {
	PlayerID    string
	Season      string
	GamesPlayed int
	Averages    Averages
}

// Empty reports a season without recorded appearances. It is a valid answer, not a failure.
func (s Stats) Empty() bool {
	return s.GamesPlayed == 0
}
