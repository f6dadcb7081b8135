package entity

// Metric status values produced by the report analyzer.
const (
	MetricStatusNormal   = "normal"
	MetricStatusLow      = "low"
	MetricStatusHigh     = "high"
	MetricStatusMild     = "mild"
	MetricStatusModerate = "moderate"
	MetricStatusSevere   = "severe"
)

// MetricAnalysis is the derived assessment of a single metric from one daily
// report.
type MetricAnalysis struct {
	Status         string `json:"status"`
	Text           string `json:"text"`
	Recommendation string `json:"recommendation"`
}

// ReportAnalysis is the per-metric breakdown derived from one daily report.
type ReportAnalysis struct {
	Usage MetricAnalysis `json:"usage"`
	Leak  MetricAnalysis `json:"leak"`
	AHI   MetricAnalysis `json:"ahi"`
}

// ReportAssessment is the complete analyzer output: the per-metric breakdown
// plus a summary recommendation composed from whichever thresholds were
// crossed.
type ReportAssessment struct {
	Analysis              ReportAnalysis `json:"analysis"`
	OverallRecommendation string         `json:"overallRecommendation"`
}
