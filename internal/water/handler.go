package water

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"healify/internal/i18n"
	"healify/internal/platform/httpjson"
	"healify/internal/platform/validate"
)

type Handler struct {
	svc     *Service
	catalog *i18n.Catalog
}

func NewHandler(svc *Service, catalog *i18n.Catalog) *Handler {
	return &Handler{svc: svc, catalog: catalog}
}

func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var reading Reading
	if err := httpjson.Decode(r, &reading); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request")
		return
	}

	analysis, err := h.svc.Analyze(r.Context(), reading)
	switch {
	case errors.Is(err, ErrInvalidReading):
		httpjson.ValidationError(w, ErrInvalidReading.Error(), validate.Details(err))
	case err != nil:
		loc := i18n.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
		httpjson.Error(w, http.StatusBadGateway, h.catalog.Text(loc, i18n.KeyWaterError)+" "+remoteMessage(err))
	default:
		httpjson.Write(w, http.StatusOK, analysis)
	}
}

// remoteMessage strips the ErrRemote prefix from err.
func remoteMessage(err error) string {
	return strings.TrimPrefix(err.Error(), ErrRemote.Error()+": ")
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/water/predictions", h.Predict)
}
