package outbreak

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"healify/internal/i18n"
	"healify/internal/platform/httpjson"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func locale(r *http.Request) i18n.Locale {
	return i18n.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
}

func (h *Handler) ListOutbreaks(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, h.svc.List(locale(r)))
}

func (h *Handler) GetOutbreak(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid outbreak ID")
		return
	}
	o, err := h.svc.Get(locale(r), id)
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, o)
}

func (h *Handler) StateStats(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, h.svc.StateStats())
}

func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, h.svc.Trends())
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/outbreaks", h.ListOutbreaks)
	r.Get("/outbreaks/{id}", h.GetOutbreak)
	r.Get("/stats/states", h.StateStats)
	r.Get("/stats/trends", h.Trends)
}
