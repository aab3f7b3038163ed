package team

// Team is an NBA franchise keyed by its three letter abbreviation.
type Team struct {
	Abbr       string
	Name       string
	Conference string
}

// Stats is a team season record.
type Stats struct {
	Team          string
	Season        string
	GamesPlayed   int
	Wins          int
	Losses        int
	WinPercentage float64
}
