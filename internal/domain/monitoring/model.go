package monitoring

import "time"

// Health is the upstream service heartbeat.
type Health struct {
	Status        string
	UptimeSeconds float64
	ModelsLoaded  int
	Version       string
}

func (h Health) Healthy() bool {
	return h.Status == "healthy"
}

type ModelInfo struct {
	Name      string
	Version   string
	Type      string
	Metrics   map[string]float64
	CreatedAt time.Time
}

// ID is the "name:version" form the prediction service reports as model_used.
func (m ModelInfo) ID() string {
	if m.Version == "" {
		return m.Name
	}
	return m.Name + ":" + m.Version
}

type ModelPerformance struct {
	Model     string
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
	ROCAUC    float64
}

type FeatureDrift struct {
	Feature string
	Score   float64
	Drifted bool
}

// DriftStatus compares the input distribution score against its alert threshold.
type DriftStatus struct {
	DriftDetected bool
	Score         float64
	Threshold     float64
	Features      []FeatureDrift
	CheckedAt     time.Time
}

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

type Alert struct {
	ID        string
	Severity  Severity
	Message   string
	Model     string
	CreatedAt time.Time
	Resolved  bool
}
