package water

import (
	"strings"
)

// Reading is one water sample as the prediction endpoint expects it.
type Reading struct {
	PHLevel             float64 `json:"ph_level" validate:"gte=0,lte=14"`
	TurbidityNTU        float64 `json:"turbidity_ntu" validate:"gte=0"`
	ContaminantLevelPPM float64 `json:"contaminant_level_ppm" validate:"gte=0"`
	TemperatureCelsius  float64 `json:"temperature_celsius" validate:"gte=-50,lte=100"`
	WaterSourceType     string  `json:"water_source_type" validate:"required"`
	BacteriaCountCFUML  float64 `json:"bacteria_count_cfu_ml" validate:"gte=0"`
	NitrateLevelMgL     float64 `json:"nitrate_level_mg_l" validate:"gte=0"`
	DissolvedOxygenMgL  float64 `json:"dissolved_oxygen_mg_l" validate:"gte=0"`
}

type Prediction struct {
	RiskLevel   string   `json:"risk_level"`
	ModelUsed   string   `json:"model_used"`
	Probability *float64 `json:"probability,omitempty"`
}

// ModelName is the model identifier without its "_outbreak" suffix.
func (p Prediction) ModelName() string {
	return strings.Replace(p.ModelUsed, "_outbreak", "", 1)
}

// Alarming reports a high or critical risk level.
func (p Prediction) Alarming() bool {
	switch strings.ToLower(strings.TrimSpace(p.RiskLevel)) {
	case "high", "critical":
		return true
	}
	return false
}

type Analysis struct {
	Prediction
	Model   string `json:"model"`
	Alerted bool   `json:"alerted"`
}
