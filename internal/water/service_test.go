package water

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"healify/internal/i18n"
	"healify/internal/logging"
	"healify/internal/platform/validate"
)

type fakePredictor struct {
	prediction Prediction
	err        error
	calls      int
}

func (f *fakePredictor) Predict(context.Context, Reading) (Prediction, error) {
	f.calls++
	return f.prediction, f.err
}

type fakeNotifier struct {
	chatID int64
	texts  []string
	err    error
}

func (f *fakeNotifier) SendMessage(_ context.Context, chatID int64, text string) error {
	f.chatID = chatID
	f.texts = append(f.texts, text)
	return f.err
}

func newService(p Predictor, n Notifier, chatID int64) *Service {
	return NewService(p, n, chatID, validate.New(), logging.NewWithWriter(io.Discard, "error"))
}

func TestService_AnalyzeAlertsOnHighRisk(t *testing.T) {
	req := require.New(t)
	prob := 0.91
	p := &fakePredictor{prediction: Prediction{RiskLevel: "High", ModelUsed: "cholera_outbreak", Probability: &prob}}
	n := &fakeNotifier{}

	a, err := newService(p, n, 77).Analyze(context.Background(), sampleReading())
	req.NoError(err)
	req.True(a.Alerted)
	req.Equal("cholera", a.Model)
	req.Equal(int64(77), n.chatID)
	req.Len(n.texts, 1)
	req.Contains(n.texts[0], "High risk")
	req.Contains(n.texts[0], "Confidence: 91.0%")
	req.Contains(n.texts[0], "Source: River")
}

func TestService_AnalyzeLowRiskDoesNotAlert(t *testing.T) {
	n := &fakeNotifier{}
	p := &fakePredictor{prediction: Prediction{RiskLevel: "Low", ModelUsed: "typhoid_outbreak"}}

	a, err := newService(p, n, 77).Analyze(context.Background(), sampleReading())
	require.NoError(t, err)
	require.False(t, a.Alerted)
	require.Empty(t, n.texts)
}

func TestService_AlertFailureIsNotReturned(t *testing.T) {
	n := &fakeNotifier{err: errors.New("telegram down")}
	p := &fakePredictor{prediction: Prediction{RiskLevel: "Critical", ModelUsed: "m"}}

	a, err := newService(p, n, 77).Analyze(context.Background(), sampleReading())
	require.NoError(t, err)
	require.False(t, a.Alerted)
	require.Len(t, n.texts, 1)
}

func TestService_AlertsDisabled(t *testing.T) {
	p := &fakePredictor{prediction: Prediction{RiskLevel: "High", ModelUsed: "m"}}

	a, err := newService(p, nil, 0).Analyze(context.Background(), sampleReading())
	require.NoError(t, err)
	require.False(t, a.Alerted)
}

func TestService_AnalyzeInvalidReading(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Reading)
		field  string
	}{
		{"ph too high", func(r *Reading) { r.PHLevel = 15 }, "ph_level"},
		{"negative turbidity", func(r *Reading) { r.TurbidityNTU = -1 }, "turbidity_ntu"},
		{"missing source", func(r *Reading) { r.WaterSourceType = "" }, "water_source_type"},
		{"negative bacteria", func(r *Reading) { r.BacteriaCountCFUML = -5 }, "bacteria_count_cfu_ml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePredictor{}
			r := sampleReading()
			tt.modify(&r)

			_, err := newService(p, nil, 0).Analyze(context.Background(), r)
			require.ErrorIs(t, err, ErrInvalidReading)
			require.Contains(t, validate.Details(err), tt.field)
			require.Zero(t, p.calls)
		})
	}
}

func TestHandler_Predict(t *testing.T) {
	prob := 0.5
	ok := &fakePredictor{prediction: Prediction{RiskLevel: "Low", ModelUsed: "hepatitis_outbreak", Probability: &prob}}
	failing := &fakePredictor{err: errors.New(ErrRemote.Error() + ": HTTP error! status: 500")}
	body, _ := json.Marshal(sampleReading())

	tests := []struct {
		name      string
		predictor Predictor
		body      string
		status    int
		contains  string
	}{
		{"ok", ok, string(body), http.StatusOK, `"model":"hepatitis"`},
		{"remote failure", failing, string(body), http.StatusBadGateway, "Failed to get analysis. HTTP error! status: 500"},
		{"invalid reading", ok, `{"ph_level":20}`, http.StatusBadRequest, "ph_level"},
		{"malformed", ok, `{`, http.StatusBadRequest, "Invalid request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			RegisterRoutes(r, NewHandler(newService(tt.predictor, nil, 0), i18n.Default()))

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/water/predictions", strings.NewReader(tt.body)))
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			require.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}
