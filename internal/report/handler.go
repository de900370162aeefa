package report

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"healify/internal/assessment"
	"healify/internal/platform/httpjson"
)

// Assessments loads the assessment a report is made of.
type Assessments interface {
	Get(ctx context.Context, id uuid.UUID) (*assessment.Assessment, error)
}

type Handler struct {
	svc         *Service
	assessments Assessments
}

func NewHandler(svc *Service, assessments Assessments) *Handler {
	return &Handler{svc: svc, assessments: assessments}
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*assessment.Assessment, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid assessment ID")
		return nil, false
	}
	a, err := h.assessments.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, assessment.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, err.Error())
		} else {
			httpjson.Error(w, http.StatusInternalServerError, "Failed to load assessment")
		}
		return nil, false
	}
	return a, true
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	a, ok := h.load(w, r)
	if !ok {
		return
	}

	data, err := h.svc.Render(a)
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "Failed to render report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+FileName(a)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	a, ok := h.load(w, r)
	if !ok {
		return
	}

	err := h.svc.SendToHealthOfficer(r.Context(), a)
	switch {
	case errors.Is(err, ErrNotConfigured):
		httpjson.Error(w, http.StatusServiceUnavailable, err.Error())
	case err != nil:
		httpjson.Error(w, http.StatusBadGateway, "Failed to send report")
	default:
		httpjson.Write(w, http.StatusOK, map[string]string{"status": "sent"})
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/assessments/{id}/report", h.Download)
	r.Post("/assessments/{id}/report/send", h.Send)
}
