package entity

// ReportDateLayout is the layout of daily report document IDs. One report
// exists per customer per calendar date; resubmitting the same date
// overwrites the stored document.
const ReportDateLayout = "2006-01-02"

// DailyReport holds one calendar day's aggregated therapy metrics for a
// customer. The document ID equals ReportDate.
type DailyReport struct {
	ID                      string         `firestore:"-" json:"reportId"`
	ReportDate              string         `firestore:"reportDate" json:"reportDate"`
	UsageHours              float64        `firestore:"usageHours" json:"usageHours"`
	CheyneStokesRespiration string         `firestore:"cheyneStokesRespiration,omitempty" json:"cheyneStokesRespiration,omitempty"`
	RERA                    float64        `firestore:"rera,omitempty" json:"rera,omitempty"`
	Leak                    LeakStats      `firestore:"leak" json:"leak"`
	Pressure                PressureStats  `firestore:"pressure" json:"pressure"`
	EventsPerHour           EventsPerHour  `firestore:"eventsPerHour" json:"eventsPerHour"`
	DeviceSnapshot          map[string]any `firestore:"deviceSnapshot,omitempty" json:"deviceSnapshot,omitempty"`
}

// LeakStats holds the mask-leak distribution for one night, in L/min.
type LeakStats struct {
	Median       float64 `firestore:"median" json:"median"`
	Percentile95 float64 `firestore:"percentile95" json:"percentile95"`
}

// PressureStats holds the delivered-pressure distribution for one night,
// in cmH2O.
type PressureStats struct {
	Median       float64 `firestore:"median" json:"median"`
	Percentile95 float64 `firestore:"percentile95" json:"percentile95"`
}

// EventsPerHour holds respiratory event rates for one night.
type EventsPerHour struct {
	AHI           float64 `firestore:"ahi" json:"ahi"`
	CentralApneas float64 `firestore:"centralApneas" json:"centralApneas"`
	Hypopneas     float64 `firestore:"hypopneas" json:"hypopneas"`
}
