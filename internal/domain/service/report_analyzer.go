package service

import (
	"fmt"

	"megacare/internal/domain/entity"
)

// Clinical thresholds for the report analyzer. Boundary convention:
//
//   - usage is compliant when usageHours >= UsageComplianceHours (inclusive)
//   - leak is normal when leak.median < LeakHighThreshold (a median exactly at
//     the threshold counts as high)
//   - AHI bands are inclusive on their lower bound: an AHI of exactly 5.0 is
//     mild, exactly 30.0 is severe
const (
	// UsageComplianceHours is the minimum nightly usage counted as compliant,
	// matching the common 4-hours-per-night insurance criterion.
	UsageComplianceHours = 4.0

	// LeakHighThreshold is the median leak in L/min at or above which the mask
	// seal is considered problematic.
	LeakHighThreshold = 24.0

	// AHI band lower bounds, events per hour.
	AHIMildThreshold     = 5.0
	AHIModerateThreshold = 15.0
	AHISevereThreshold   = 30.0
)

// ReportAnalyzer derives a qualitative assessment from one day's raw report.
// It is a pure mapping from input metrics to an output structure: no I/O, no
// side effects, deterministic for a given report.
type ReportAnalyzer struct{}

// NewReportAnalyzer is the constructor for ReportAnalyzer.
func NewReportAnalyzer() *ReportAnalyzer {
	return &ReportAnalyzer{}
}

// Analyze classifies the report's usage, leak and event-rate metrics and
// composes an overall recommendation from whichever thresholds were crossed.
func (a *ReportAnalyzer) Analyze(report *entity.DailyReport) *entity.ReportAssessment {
	analysis := entity.ReportAnalysis{
		Usage: a.analyzeUsage(report.UsageHours),
		Leak:  a.analyzeLeak(report.Leak.Median),
		AHI:   a.analyzeAHI(report.EventsPerHour.AHI),
	}

	return &entity.ReportAssessment{
		Analysis:              analysis,
		OverallRecommendation: a.overallRecommendation(&analysis),
	}
}

func (a *ReportAnalyzer) analyzeUsage(usageHours float64) entity.MetricAnalysis {
	if usageHours >= UsageComplianceHours {
		return entity.MetricAnalysis{
			Status:         entity.MetricStatusNormal,
			Text:           fmt.Sprintf("You used your device for %.1f hours, meeting the %.0f-hour compliance target.", usageHours, UsageComplianceHours),
			Recommendation: "Great job. Keep up your current routine.",
		}
	}

	return entity.MetricAnalysis{
		Status:         entity.MetricStatusLow,
		Text:           fmt.Sprintf("You used your device for %.1f hours, below the %.0f-hour compliance target.", usageHours, UsageComplianceHours),
		Recommendation: "Try to use your device for the whole night, every night.",
	}
}

func (a *ReportAnalyzer) analyzeLeak(medianLeak float64) entity.MetricAnalysis {
	if medianLeak < LeakHighThreshold {
		return entity.MetricAnalysis{
			Status:         entity.MetricStatusNormal,
			Text:           fmt.Sprintf("Your median mask leak was %.1f L/min, within the acceptable range.", medianLeak),
			Recommendation: "Your mask seal looks good.",
		}
	}

	return entity.MetricAnalysis{
		Status:         entity.MetricStatusHigh,
		Text:           fmt.Sprintf("Your median mask leak was %.1f L/min, at or above the %.0f L/min limit.", medianLeak, LeakHighThreshold),
		Recommendation: "Check your mask fit and headgear. Consider a mask refit if leaks persist.",
	}
}

func (a *ReportAnalyzer) analyzeAHI(ahi float64) entity.MetricAnalysis {
	switch {
	case ahi < AHIMildThreshold:
		return entity.MetricAnalysis{
			Status:         entity.MetricStatusNormal,
			Text:           fmt.Sprintf("Your AHI was %.1f events/hour, within the normal range.", ahi),
			Recommendation: "Your therapy is controlling your sleep apnea well.",
		}
	case ahi < AHIModerateThreshold:
		return entity.MetricAnalysis{
			Status:         entity.MetricStatusMild,
			Text:           fmt.Sprintf("Your AHI was %.1f events/hour, in the mild range.", ahi),
			Recommendation: "Keep monitoring. Mention this to your clinician at your next review.",
		}
	case ahi < AHISevereThreshold:
		return entity.MetricAnalysis{
			Status:         entity.MetricStatusModerate,
			Text:           fmt.Sprintf("Your AHI was %.1f events/hour, in the moderate range.", ahi),
			Recommendation: "Contact your clinician to review your therapy settings.",
		}
	default:
		return entity.MetricAnalysis{
			Status:         entity.MetricStatusSevere,
			Text:           fmt.Sprintf("Your AHI was %.1f events/hour, in the severe range.", ahi),
			Recommendation: "Contact your clinician as soon as possible.",
		}
	}
}

func (a *ReportAnalyzer) overallRecommendation(analysis *entity.ReportAnalysis) string {
	switch {
	case analysis.AHI.Status == entity.MetricStatusSevere:
		return "Your event rate is severely elevated. Please contact your clinician as soon as possible."
	case analysis.AHI.Status == entity.MetricStatusModerate:
		return "Your event rate is elevated. Please arrange a review with your clinician."
	case analysis.Usage.Status == entity.MetricStatusLow && analysis.Leak.Status == entity.MetricStatusHigh:
		return "Low usage combined with high mask leak. Fixing the mask fit often makes the device easier to sleep with."
	case analysis.Leak.Status == entity.MetricStatusHigh:
		return "Your mask leak is high. Check the mask fit and headgear before tonight."
	case analysis.Usage.Status == entity.MetricStatusLow:
		return "Your nightly usage is below target. Try to keep the device on for the whole night."
	case analysis.AHI.Status == entity.MetricStatusMild:
		return "Therapy is mostly on track; your event rate is slightly elevated and worth watching."
	default:
		return "Therapy is on track. Keep up the good routine."
	}
}
