package conversation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"healify/internal/i18n"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		RegisterRoutes(r, NewHandler(newService(t)))
	})
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Chat(t *testing.T) {
	h := newRouter(t)
	tests := []struct {
		name     string
		target   string
		body     string
		headers  []string
		status   int
		lang     i18n.Locale
		contains string
	}{
		{"english", "/api/chat", `{"message":"what causes cholera"}`, nil, http.StatusOK, i18n.English, "Causes of Cholera:"},
		{"lang in body", "/api/chat", `{"message":"xyz","lang":"hi"}`, nil, http.StatusOK, i18n.Hindi, "मुझे खेद है"},
		{"lang in query", "/api/chat?lang=hi", `{"message":"xyz"}`, nil, http.StatusOK, i18n.Hindi, "मुझे खेद है"},
		{"script detected", "/api/chat", `{"message":"कुछ और बताइए"}`, []string{"Accept-Language", "en-US"}, http.StatusOK, i18n.Hindi, "मुझे खेद है"},
		{"accept-language", "/api/chat", `{"message":"xyz"}`, []string{"Accept-Language", "hi-IN,hi;q=0.9"}, http.StatusOK, i18n.Hindi, "मुझे खेद है"},
		{"blank message", "/api/chat", `{"message":"  "}`, nil, http.StatusBadRequest, "", ""},
		{"unknown field", "/api/chat", `{"msg":"hello"}`, nil, http.StatusBadRequest, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.target, tt.body, tt.headers...)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status != http.StatusOK {
				return
			}
			var resp ChatResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, tt.lang, resp.Lang)
			require.Contains(t, resp.Reply, tt.contains)
		})
	}
}

func TestHandler_ConversationFlow(t *testing.T) {
	req := require.New(t)
	h := newRouter(t)

	rec := do(t, h, http.MethodPost, "/api/conversations", `{"lang":"bn"}`)
	req.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var c Conversation
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &c))
	req.Equal(i18n.Bengali, c.Locale)
	req.Len(c.History, 1)

	rec = do(t, h, http.MethodPost, "/api/conversations/"+c.ID.String()+"/messages", `{"text":"hello"}`)
	req.Equal(http.StatusOK, rec.Code, rec.Body.String())
	var turn Turn
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &turn))
	req.Equal(SenderAssistant, turn.Sender)

	rec = do(t, h, http.MethodGet, "/api/conversations/"+c.ID.String(), "")
	req.Equal(http.StatusOK, rec.Code)
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &c))
	req.Len(c.History, 3)
}

func TestHandler_StartWithoutBody(t *testing.T) {
	rec := do(t, newRouter(t), http.MethodPost, "/api/conversations", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	h := newRouter(t)
	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"bad id", http.MethodGet, "/api/conversations/not-a-uuid", "", http.StatusBadRequest},
		{"unknown id", http.MethodGet, "/api/conversations/" + uuid.NewString(), "", http.StatusNotFound},
		{"send to unknown id", http.MethodPost, "/api/conversations/" + uuid.NewString() + "/messages", `{"text":"hi"}`, http.StatusNotFound},
		{"malformed body", http.MethodPost, "/api/conversations", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}
