package assessment

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"healify/internal/disease"
	"healify/internal/i18n"
	"healify/internal/platform/httpjson"
	"healify/internal/platform/validate"
)

type Handler struct {
	svc     Service
	catalog *i18n.Catalog
}

func NewHandler(svc Service, catalog *i18n.Catalog) *Handler {
	return &Handler{svc: svc, catalog: catalog}
}

type SymptomsResponse struct {
	Lang     i18n.Locale         `json:"lang"`
	Symptoms []i18n.SymptomLabel `json:"symptoms"`
}

type PredictRequest struct {
	Symptoms []string `json:"symptoms"`
	Lang     string   `json:"lang"`
}

type PredictResponse struct {
	Lang     i18n.Locale       `json:"lang"`
	Symptoms []disease.Symptom `json:"symptoms"`
	Outcome
}

// requestLocale prefers the body, then ?lang=, then Accept-Language.
func requestLocale(r *http.Request, lang string) i18n.Locale {
	return i18n.Negotiate(lang, r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
}

func (h *Handler) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	loc := requestLocale(r, "")
	httpjson.Write(w, http.StatusOK, SymptomsResponse{Lang: loc, Symptoms: h.svc.Symptoms(loc)})
}

func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request")
		return
	}

	loc := requestLocale(r, req.Lang)
	symptoms, outcome, err := h.svc.Predict(loc, req.Symptoms)
	if err != nil {
		h.writeError(w, loc, err)
		return
	}
	httpjson.Write(w, http.StatusOK, PredictResponse{Lang: loc, Symptoms: symptoms, Outcome: outcome})
}

func (h *Handler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	var form Form
	if err := httpjson.Decode(r, &form); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request")
		return
	}

	loc := requestLocale(r, form.Lang)
	form.Lang = string(loc)

	a, err := h.svc.Submit(r.Context(), form)
	if err != nil {
		h.writeError(w, loc, err)
		return
	}
	httpjson.Write(w, http.StatusCreated, a)
}

func (h *Handler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid assessment ID")
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, i18n.English, err)
		return
	}
	httpjson.Write(w, http.StatusOK, a)
}

func (h *Handler) writeError(w http.ResponseWriter, loc i18n.Locale, err error) {
	switch {
	case errors.Is(err, ErrNoSymptoms):
		httpjson.Error(w, http.StatusBadRequest, h.catalog.Text(loc, i18n.KeyNoSymptoms))
	case errors.Is(err, ErrUnknownSymptom):
		httpjson.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidForm):
		httpjson.ValidationError(w, ErrInvalidForm.Error(), validate.Details(err))
	case errors.Is(err, ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, err.Error())
	default:
		httpjson.Error(w, http.StatusInternalServerError, "Processing failed")
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/symptoms", h.ListSymptoms)
	r.Post("/predictions", h.Predict)
	r.Post("/assessments", h.CreateAssessment)
	r.Get("/assessments/{id}", h.GetAssessment)
}
