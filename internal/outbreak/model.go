package outbreak

import (
	"healify/internal/disease"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Color is the map marker colour of the severity.
func (s Severity) Color() string {
	switch s {
	case SeverityCritical:
		return "#dc3545"
	case SeverityHigh:
		return "#fd7e14"
	case SeverityMedium:
		return "#0dcaf0"
	default:
		return "#6c757d"
	}
}

type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Outbreak struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Disease         disease.ID `json:"disease"`
	Description     string     `json:"description"`
	State           string     `json:"state"`
	Cases           int        `json:"cases"`
	Rate            float64    `json:"rate"` // per 1000
	Severity        Severity   `json:"severity"`
	Color           string     `json:"color"`
	Position        Position   `json:"position"`
	HealthContact   string     `json:"health_contact"`
	NearbyHospitals int        `json:"nearby_hospitals"`
	LatestNews      string     `json:"latest_news"`
}

type StateStat struct {
	State string  `json:"state"`
	Cases int     `json:"cases"`
	Rate  float64 `json:"rate"`
}

// TrendPoint holds the reported cases of one month.
type TrendPoint struct {
	Month     string `json:"month"`
	Diarrhea  int    `json:"diarrhea"`
	Cholera   int    `json:"cholera"`
	Typhoid   int    `json:"typhoid"`
	Hepatitis int    `json:"hepatitis"`
}
