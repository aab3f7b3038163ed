package team

import (
	"sort"
	"strings"
)

const (
	ConferenceEast = "East"
	ConferenceWest = "West"
)

var catalog = map[string]Team{
	"ATL": {Abbr: "ATL", Name: "Atlanta Hawks", Conference: ConferenceEast},
	"BOS": {Abbr: "BOS", Name: "Boston Celtics", Conference: ConferenceEast},
	"BKN": {Abbr: "BKN", Name: "Brooklyn Nets", Conference: ConferenceEast},
	"CHA": {Abbr: "CHA", Name: "Charlotte Hornets", Conference: ConferenceEast},
	"CHI": {Abbr: "CHI", Name: "Chicago Bulls", Conference: ConferenceEast},
	"CLE": {Abbr: "CLE", Name: "Cleveland Cavaliers", Conference: ConferenceEast},
	"DET": {Abbr: "DET", Name: "Detroit Pistons", Conference: ConferenceEast},
	"IND": {Abbr: "IND", Name: "Indiana Pacers", Conference: ConferenceEast},
	"MIA": {Abbr: "MIA", Name: "Miami Heat", Conference: ConferenceEast},
	"MIL": {Abbr: "MIL", Name: "Milwaukee Bucks", Conference: ConferenceEast},
	"NYK": {Abbr: "NYK", Name: "New York Knicks", Conference: ConferenceEast},
	"ORL": {Abbr: "ORL", Name: "Orlando Magic", Conference: ConferenceEast},
	"PHI": {Abbr: "PHI", Name: "Philadelphia 76ers", Conference: ConferenceEast},
	"TOR": {Abbr: "TOR", Name: "Toronto Raptors", Conference: ConferenceEast},
	"WAS": {Abbr: "WAS", Name: "Washington Wizards", Conference: ConferenceEast},
	"DAL": {Abbr: "DAL", Name: "Dallas Mavericks", Conference: ConferenceWest},
	"DEN": {Abbr: "DEN", Name: "Denver Nuggets", Conference: ConferenceWest},
	"GSW": {Abbr: "GSW", Name: "Golden State Warriors", Conference: ConferenceWest},
	"HOU": {Abbr: "HOU", Name: "Houston Rockets", Conference: ConferenceWest},
	"LAC": {Abbr: "LAC", Name: "LA Clippers", Conference: ConferenceWest},
	"LAL": {Abbr: "LAL", Name: "Los Angeles Lakers", Conference: ConferenceWest},
	"MEM": {Abbr: "MEM", Name: "Memphis Grizzlies", Conference: ConferenceWest},
	"MIN": {Abbr: "MIN", Name: "Minnesota Timberwolves", Conference: ConferenceWest},
	"NOP": {Abbr: "NOP", Name: "New Orleans Pelicans", Conference: ConferenceWest},
	"OKC": {Abbr: "OKC", Name: "Oklahoma City Thunder", Conference: ConferenceWest},
	"PHX": {Abbr: "PHX", Name: "Phoenix Suns", Conference: ConferenceWest},
	"POR": {Abbr: "POR", Name: "Portland Trail Blazers", Conference: ConferenceWest},
	"SAC": {Abbr: "SAC", Name: "Sacramento Kings", Conference: ConferenceWest},
	"SAS": {Abbr: "SAS", Name: "San Antonio Spurs", Conference: ConferenceWest},
	"UTA": {Abbr: "UTA", Name: "Utah Jazz", Conference: ConferenceWest},
}

// Catalog lists every franchise ordered by abbreviation.
func Catalog() []Team {
	out := make([]Team, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Abbr < out[j].Abbr })
	return out
}

func Lookup(abbr string) (Team, bool) {
	t, ok := catalog[Normalize(abbr)]
	return t, ok
}

// Normalize upper-cases and trims a user supplied abbreviation.
func Normalize(abbr string) string {
	return strings.ToUpper(strings.TrimSpace(abbr))
}
