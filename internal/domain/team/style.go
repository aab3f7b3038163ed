package team

// Style is the presentation a team gets on gauges and tables.
type Style struct {
	Primary   string
	Secondary string
}

var DefaultStyle = Style{Primary: "#64748b", Secondary: "#e2e8f0"}

var styles = map[string]Style{
	"ATL": {Primary: "#e03a3e", Secondary: "#c1d32f"},
	"BOS": {Primary: "#007a33", Secondary: "#ba9653"},
	"BKN": {Primary: "#000000", Secondary: "#ffffff"},
	"CHA": {Primary: "#1d1160", Secondary: "#00788c"},
	"CHI": {Primary: "#ce1141", Secondary: "#000000"},
	"CLE": {Primary: "#860038", Secondary: "#fdbb30"},
	"DAL": {Primary: "#00538c", Secondary: "#b8c4ca"},
	"DEN": {Primary: "#0e2240", Secondary: "#fec524"},
	"DET": {Primary: "#c8102e", Secondary: "#1d42ba"},
	"GSW": {Primary: "#1d428a", Secondary: "#ffc72c"},
	"HOU": {Primary: "#ce1141", Secondary: "#c4ced4"},
	"IND": {Primary: "#002d62", Secondary: "#fdbb30"},
	"LAC": {Primary: "#c8102e", Secondary: "#1d428a"},
	"LAL": {Primary: "#552583", Secondary: "#fdb927"},
	"MEM": {Primary: "#5d76a9", Secondary: "#12173f"},
	"MIA": {Primary: "#98002e", Secondary: "#f9a01b"},
	"MIL": {Primary: "#00471b", Secondary: "#eee1c6"},
	"MIN": {Primary: "#0c2340", Secondary: "#236192"},
	"NOP": {Primary: "#0c2340", Secondary: "#c8102e"},
	"NYK": {Primary: "#006bb6", Secondary: "#f58426"},
	"OKC": {Primary: "#007ac1", Secondary: "#ef3b24"},
	"ORL": {Primary: "#0077c0", Secondary: "#c4ced4"},
	"PHI": {Primary: "#006bb6", Secondary: "#ed174c"},
	"PHX": {Primary: "#1d1160", Secondary: "#e56020"},
	"POR": {Primary: "#e03a3e", Secondary: "#000000"},
	"SAC": {Primary: "#5a2d81", Secondary: "#63727a"},
	"SAS": {Primary: "#c4ced4", Secondary: "#000000"},
	"TOR": {Primary: "#ce1141", Secondary: "#000000"},
	"UTA": {Primary: "#002b5c", Secondary: "#f9a01b"},
	"WAS": {Primary: "#002b5c", Secondary: "#e31837"},
}

// StyleFor always returns a style; unknown abbreviations fall back to DefaultStyle.
func StyleFor(abbr string) Style {
	if s, ok := styles[Normalize(abbr)]; ok {
		return s
	}
	return DefaultStyle
}
