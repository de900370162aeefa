package conversation

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"healify/internal/i18n"
	"healify/internal/platform/httpjson"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type ChatRequest struct {
	Message string `json:"message"`
	Lang    string `json:"lang"`
}

type ChatResponse struct {
	Reply string      `json:"reply"`
	Lang  i18n.Locale `json:"lang"`
}

type StartRequest struct {
	Lang string `json:"lang"`
}

type MessageRequest struct {
	Text string `json:"text"`
}

// chatLocale prefers an explicit lang, then the script of the message,
// then Accept-Language.
func chatLocale(r *http.Request, lang, text string) i18n.Locale {
	if strings.TrimSpace(lang) == "" {
		lang = r.URL.Query().Get("lang")
	}
	if strings.TrimSpace(lang) != "" {
		return i18n.Negotiate(lang)
	}
	if loc := i18n.DetectLocale(text); loc != i18n.English {
		return loc
	}
	return i18n.Negotiate(r.Header.Get("Accept-Language"))
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		httpjson.Error(w, http.StatusBadRequest, ErrEmptyMessage.Error())
		return
	}

	loc := chatLocale(r, req.Lang, req.Message)
	httpjson.Write(w, http.StatusOK, ChatResponse{
		Reply: h.svc.Reply(loc, req.Message),
		Lang:  loc,
	})
}

func (h *Handler) StartConversation(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := httpjson.Decode(r, &req); err != nil && !errors.Is(err, io.EOF) {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Lang == "" {
		req.Lang = r.URL.Query().Get("lang")
	}

	var loc i18n.Locale
	if strings.TrimSpace(req.Lang) != "" {
		loc = i18n.Negotiate(req.Lang)
	}

	c, err := h.svc.Start(r.Context(), loc)
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "Failed to create conversation")
		return
	}
	httpjson.Write(w, http.StatusCreated, c)
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid conversation ID")
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, c)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid conversation ID")
		return
	}

	var req MessageRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request")
		return
	}

	turn, err := h.svc.Send(r.Context(), id, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, turn)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmptyMessage):
		httpjson.Error(w, http.StatusBadRequest, err.Error())
	default:
		httpjson.Error(w, http.StatusInternalServerError, "Processing failed")
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/chat", h.Chat)
	r.Post("/conversations", h.StartConversation)
	r.Get("/conversations/{id}", h.GetConversation)
	r.Post("/conversations/{id}/messages", h.SendMessage)
}
