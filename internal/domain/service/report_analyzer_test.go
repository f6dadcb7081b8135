package service

import (
	"testing"

	"megacare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReport(usageHours, medianLeak, ahi float64) *entity.DailyReport {
	return &entity.DailyReport{
		ReportDate: "2025-06-01",
		UsageHours: usageHours,
		Leak:       entity.LeakStats{Median: medianLeak, Percentile95: medianLeak * 2},
		Pressure:   entity.PressureStats{Median: 9.4, Percentile95: 11.2},
		EventsPerHour: entity.EventsPerHour{
			AHI:           ahi,
			CentralApneas: ahi / 3,
			Hypopneas:     ahi / 2,
		},
	}
}

func TestReportAnalyzer_Analyze_AllNormal(t *testing.T) {
	analyzer := NewReportAnalyzer()

	assessment := analyzer.Analyze(newReport(7.5, 8.0, 2.1))
	require.NotNil(t, assessment)

	assert.Equal(t, entity.MetricStatusNormal, assessment.Analysis.Usage.Status)
	assert.Equal(t, entity.MetricStatusNormal, assessment.Analysis.Leak.Status)
	assert.Equal(t, entity.MetricStatusNormal, assessment.Analysis.AHI.Status)
	assert.Equal(t, "Therapy is on track. Keep up the good routine.", assessment.OverallRecommendation)
}

func TestReportAnalyzer_Analyze_UsageBoundary(t *testing.T) {
	analyzer := NewReportAnalyzer()

	// Exactly at the compliance target counts as compliant.
	atTarget := analyzer.Analyze(newReport(4.0, 8.0, 2.0))
	assert.Equal(t, entity.MetricStatusNormal, atTarget.Analysis.Usage.Status)

	belowTarget := analyzer.Analyze(newReport(3.9, 8.0, 2.0))
	assert.Equal(t, entity.MetricStatusLow, belowTarget.Analysis.Usage.Status)
	assert.NotEmpty(t, belowTarget.Analysis.Usage.Recommendation)
}

func TestReportAnalyzer_Analyze_LeakBoundary(t *testing.T) {
	analyzer := NewReportAnalyzer()

	belowLimit := analyzer.Analyze(newReport(7.0, 23.9, 2.0))
	assert.Equal(t, entity.MetricStatusNormal, belowLimit.Analysis.Leak.Status)

	// A median exactly at the limit counts as high.
	atLimit := analyzer.Analyze(newReport(7.0, 24.0, 2.0))
	assert.Equal(t, entity.MetricStatusHigh, atLimit.Analysis.Leak.Status)
	assert.NotEmpty(t, atLimit.Analysis.Leak.Recommendation)
}

func TestReportAnalyzer_Analyze_AHIBands(t *testing.T) {
	analyzer := NewReportAnalyzer()

	// Band lower bounds are inclusive.
	tests := []struct {
		name       string
		ahi        float64
		wantStatus string
	}{
		{"below mild", 4.9, entity.MetricStatusNormal},
		{"at mild bound", 5.0, entity.MetricStatusMild},
		{"below moderate", 14.9, entity.MetricStatusMild},
		{"at moderate bound", 15.0, entity.MetricStatusModerate},
		{"below severe", 29.9, entity.MetricStatusModerate},
		{"at severe bound", 30.0, entity.MetricStatusSevere},
		{"far above severe", 62.4, entity.MetricStatusSevere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment := analyzer.Analyze(newReport(7.0, 8.0, tt.ahi))
			assert.Equal(t, tt.wantStatus, assessment.Analysis.AHI.Status)
		})
	}
}

func TestReportAnalyzer_Analyze_SevereAHIDominatesRecommendation(t *testing.T) {
	analyzer := NewReportAnalyzer()

	// Severe AHI outranks every other finding in the summary.
	assessment := analyzer.Analyze(newReport(2.0, 40.0, 45.0))

	assert.Equal(t, entity.MetricStatusLow, assessment.Analysis.Usage.Status)
	assert.Equal(t, entity.MetricStatusHigh, assessment.Analysis.Leak.Status)
	assert.Equal(t, entity.MetricStatusSevere, assessment.Analysis.AHI.Status)
	assert.Contains(t, assessment.OverallRecommendation, "as soon as possible")
}

func TestReportAnalyzer_Analyze_LowUsageHighLeakCombined(t *testing.T) {
	analyzer := NewReportAnalyzer()

	assessment := analyzer.Analyze(newReport(2.5, 30.0, 3.0))

	assert.Equal(t, entity.MetricStatusLow, assessment.Analysis.Usage.Status)
	assert.Equal(t, entity.MetricStatusHigh, assessment.Analysis.Leak.Status)
	assert.Contains(t, assessment.OverallRecommendation, "mask")
}

func TestReportAnalyzer_Analyze_Deterministic(t *testing.T) {
	analyzer := NewReportAnalyzer()
	report := newReport(5.2, 12.0, 7.7)

	first := analyzer.Analyze(report)
	second := analyzer.Analyze(report)

	assert.Equal(t, first, second)
}
