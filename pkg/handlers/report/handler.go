package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/de-tools/sales-atlas/pkg/store/bundle"
	"github.com/rs/zerolog"
)

// maxBundleBytes bounds the request body of a report request
const maxBundleBytes = 32 << 20

type Handler struct {
	service  report.Service
	defaults report.Formulas
}

func NewHandler(service report.Service, defaults report.Formulas) *Handler {
	return &Handler{
		service:  service,
		defaults: defaults,
	}
}

func (h *Handler) ListFormulas(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	revenue, bonus := h.service.Formulas()
	writeJSON(w, http.StatusOK, api.Formulas{Revenue: revenue, Bonus: bonus}, logger)
}

func (h *Handler) CreateSalesReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	formulas := h.defaults
	if v := r.URL.Query().Get("revenue"); v != "" {
		formulas.Revenue = v
	}
	if v := r.URL.Query().Get("bonus"); v != "" {
		formulas.Bonus = v
	}

	src := bundle.NewReaderSource(http.MaxBytesReader(w, r.Body, maxBundleBytes))
	rep, err := h.service.Generate(ctx, src, formulas)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Error().Err(err).Msg("failed to generate sales report")
		} else {
			logger.Debug().Err(err).Int("status", status).Msg("sales report rejected")
		}
		http.Error(w, err.Error(), status)
		return
	}

	writeJSON(w, http.StatusOK, adapters.MapSalesReportDomainToApi(rep), logger)
}

func statusFor(err error) int {
	var invalid *sales.InvalidInputError
	var missing *sales.MissingConfigError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &missing):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}, logger *zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
