package water

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidReading = errors.New("invalid water reading")

type Predictor interface {
	Predict(ctx context.Context, reading Reading) (Prediction, error)
}

type Notifier interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type Service struct {
	predictor     Predictor
	notifier      Notifier
	officerChatID int64
	validate      *validator.Validate
	logger        *slog.Logger
}

// NewService alerts officerChatID through notifier on alarming readings.
// A nil notifier or zero chat id disables alerts.
func NewService(predictor Predictor, notifier Notifier, officerChatID int64, validate *validator.Validate, logger *slog.Logger) *Service {
	return &Service{
		predictor:     predictor,
		notifier:      notifier,
		officerChatID: officerChatID,
		validate:      validate,
		logger:        logger,
	}
}

func (s *Service) Analyze(ctx context.Context, reading Reading) (Analysis, error) {
	if err := s.validate.Struct(reading); err != nil {
		return Analysis{}, fmt.Errorf("%w: %w", ErrInvalidReading, err)
	}

	p, err := s.predictor.Predict(ctx, reading)
	if err != nil {
		s.logger.Warn("water prediction failed", "error", err)
		return Analysis{}, err
	}

	out := Analysis{Prediction: p, Model: p.ModelName()}
	if p.Alarming() {
		out.Alerted = s.alert(ctx, reading, p)
	}
	return out, nil
}

// alert never fails the analysis; delivery errors are only logged.
func (s *Service) alert(ctx context.Context, r Reading, p Prediction) bool {
	if s.notifier == nil || s.officerChatID == 0 {
		s.logger.Warn("alarming water reading, alerts disabled", "risk", p.RiskLevel, "source", r.WaterSourceType)
		return false
	}

	if err := s.notifier.SendMessage(ctx, s.officerChatID, alertText(r, p)); err != nil {
		s.logger.Error("water alert failed", "error", err)
		return false
	}
	s.logger.Info("water alert sent", "risk", p.RiskLevel, "source", r.WaterSourceType)
	return true
}

func alertText(r Reading, p Prediction) string {
	text := fmt.Sprintf("Water quality alert: %s risk (model %s)\n", p.RiskLevel, p.ModelName())
	if p.Probability != nil {
		text += fmt.Sprintf("Confidence: %.1f%%\n", *p.Probability*100)
	}
	text += fmt.Sprintf(
		"Source: %s\npH: %.1f\nTurbidity: %.1f NTU\nContaminants: %.1f ppm\nTemperature: %.1f °C\nBacteria: %.0f CFU/ml\nNitrate: %.1f mg/l\nDissolved oxygen: %.1f mg/l",
		r.WaterSourceType, r.PHLevel, r.TurbidityNTU, r.ContaminantLevelPPM, r.TemperatureCelsius,
		r.BacteriaCountCFUML, r.NitrateLevelMgL, r.DissolvedOxygenMgL,
	)
	return text
}
