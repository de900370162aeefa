package report

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"healify/internal/assessment"
	"healify/internal/disease"
	"healify/internal/i18n"
	"healify/internal/logging"
)

type fakeTelegram struct {
	chatID   int64
	fileName string
	data     []byte
	err      error
}

func (f *fakeTelegram) SendDocument(_ context.Context, chatID int64, data []byte, fileName string) error {
	f.chatID, f.data, f.fileName = chatID, data, fileName
	return f.err
}

func fontPath(t *testing.T) string {
	t.Helper()
	for _, p := range defaultFontPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	t.Skip("no DejaVu font installed")
	return ""
}

func sample() *assessment.Assessment {
	return &assessment.Assessment{
		ID:       uuid.New(),
		Locale:   i18n.English,
		Patient:  assessment.Patient{Name: "Asha", Age: 34, Gender: "female", Location: "Guwahati"},
		Symptoms: []disease.Symptom{disease.Diarrhea, disease.Vomiting, disease.Dehydration, disease.Nausea},
		Outcome: assessment.Outcome{Results: []assessment.Match{
			{Disease: disease.Cholera, Name: "Cholera", Score: 100},
			{Disease: disease.Gastroenteritis, Name: "Gastroenteritis", Score: 57},
		}},
		CreatedAt: time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC),
	}
}

func newService(tg TelegramClient, chatID int64, font string) *Service {
	return NewService(tg, chatID, font, i18n.Default(), logging.NewWithWriter(io.Discard, "error"))
}

func TestService_Render(t *testing.T) {
	svc := newService(nil, 0, fontPath(t))

	data, err := svc.Render(sample())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	empty := sample()
	empty.Results = nil
	data, err = svc.Render(empty)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestService_RenderMissingFont(t *testing.T) {
	svc := newService(nil, 0, "/nonexistent/font.ttf")
	_, err := svc.Render(sample())
	require.Error(t, err)
	require.Contains(t, err.Error(), "/nonexistent/font.ttf")
}

func TestService_SendToHealthOfficer(t *testing.T) {
	req := require.New(t)
	tg := &fakeTelegram{}
	svc := newService(tg, 99, fontPath(t))
	a := sample()

	req.NoError(svc.SendToHealthOfficer(context.Background(), a))
	req.Equal(int64(99), tg.chatID)
	req.Equal("report_"+a.ID.String()+".pdf", tg.fileName)
	req.True(bytes.HasPrefix(tg.data, []byte("%PDF")))

	tg.err = errors.New("telegram down")
	req.Error(svc.SendToHealthOfficer(context.Background(), a))
}

func TestService_SendNotConfigured(t *testing.T) {
	require.ErrorIs(t, newService(nil, 99, "").SendToHealthOfficer(context.Background(), sample()), ErrNotConfigured)
	require.ErrorIs(t, newService(&fakeTelegram{}, 0, "").SendToHealthOfficer(context.Background(), sample()), ErrNotConfigured)
}

type fakeAssessments map[uuid.UUID]*assessment.Assessment

func (f fakeAssessments) Get(_ context.Context, id uuid.UUID) (*assessment.Assessment, error) {
	if a, ok := f[id]; ok {
		return a, nil
	}
	return nil, assessment.ErrNotFound
}

func TestHandler(t *testing.T) {
	font := fontPath(t)
	a := sample()
	tg := &fakeTelegram{}

	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(newService(tg, 5, font), fakeAssessments{a.ID: a}))

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"download", http.MethodGet, "/assessments/" + a.ID.String() + "/report", http.StatusOK},
		{"send", http.MethodPost, "/assessments/" + a.ID.String() + "/report/send", http.StatusOK},
		{"unknown", http.MethodGet, "/assessments/" + uuid.NewString() + "/report", http.StatusNotFound},
		{"bad id", http.MethodPost, "/assessments/x/report/send", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
	require.Equal(t, int64(5), tg.chatID)
}
