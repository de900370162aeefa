package telegram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_SendMessage(t *testing.T) {
	req := require.New(t)
	var got sendMessageReq
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient("secret").WithBaseURL(srv.URL)
	req.NoError(c.SendMessage(context.Background(), 42, "high risk"))
	req.Equal("/botsecret/sendMessage", path)
	req.Equal(int64(42), got.ChatID)
	req.Equal("high risk", got.Text)
}

func TestClient_SendDocument(t *testing.T) {
	req := require.New(t)
	var chatID, fileName, content string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chatID = r.FormValue("chat_id")
		f, h, err := r.FormFile("document")
		if err == nil {
			fileName = h.Filename
			b, _ := io.ReadAll(f)
			content = string(b)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient("secret").WithBaseURL(srv.URL)
	req.NoError(c.SendDocument(context.Background(), -7, []byte("%PDF"), "report.pdf"))
	req.Equal("-7", chatID)
	req.Equal("report.pdf", fileName)
	req.Equal("%PDF", content)
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false,"description":"chat not found"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewClient("secret").WithBaseURL(srv.URL).SendMessage(context.Background(), 1, "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "chat not found")
}
