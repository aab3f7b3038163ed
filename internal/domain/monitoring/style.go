package monitoring

import "strings"

// ModelStyle is the label and accent colour used for a model on performance charts.
type ModelStyle struct {
	Label string
	Color string
}

var DefaultModelStyle = ModelStyle{Label: "Model", Color: "#64748b"}

var modelStyles = map[string]ModelStyle{
	"game_logistic":      {Label: "Logistic Regression", Color: "#2563eb"},
	"game_random_forest": {Label: "Random Forest", Color: "#16a34a"},
	"game_xgboost":       {Label: "XGBoost", Color: "#ea580c"},
	"game_ensemble":      {Label: "Ensemble", Color: "#9333ea"},
}

// StyleForModel resolves a model name or "name:version" id. Unknown models get the default
// colour and keep their own name as the label.
func StyleForModel(name string) ModelStyle {
	base, _, _ := strings.Cut(strings.TrimSpace(name), ":")
	if s, ok := modelStyles[base]; ok {
		return s
	}
	if base == "" {
		return DefaultModelStyle
	}
	return ModelStyle{Label: base, Color: DefaultModelStyle.Color}
}

var severityRank = map[Severity]int{
	SeverityInfo:     1,
	SeverityWarning:  2,
	SeverityCritical: 3,
}

// Rank orders severities; unknown values sort below info.
func (s Severity) Rank() int {
	return severityRank[s]
}
