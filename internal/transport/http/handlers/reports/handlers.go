package reportshandler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"paie/internal/domain/export"
	"paie/internal/domain/roster"
	"paie/internal/platform/metrics"
	"paie/internal/transport/http/api"
	"paie/internal/transport/http/middleware"
)

type Handler struct {
	Roster  *roster.Service
	Metrics *metrics.Collector
	now     func() time.Time
}

func NewHandler(svc *roster.Service, collector *metrics.Collector) *Handler {
	return &Handler{Roster: svc, Metrics: collector, now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/summary", h.handleSummary)
		r.Get("/export", h.handleExport)
	})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	summary, err := h.Roster.Summary(r.Context())
	if err != nil {
		slog.Error("roster summary failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "summary_failed", "failed to aggregate roster", requestID)
		return
	}
	if h.Metrics != nil {
		h.Metrics.Computed(summary.EmployeeCount)
	}
	api.Success(w, summary, requestID)
}

// handleExport buffers the register so an error never leaves a partial
// attachment behind.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	entries, err := h.Roster.Entries(r.Context())
	if err != nil {
		slog.Error("roster export failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export roster", requestID)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteRegister(&buf, entries); err != nil {
		if errors.Is(err, export.ErrNothingToExport) {
			api.Fail(w, http.StatusConflict, "roster_empty", "roster is empty, nothing to export", requestID)
			return
		}
		slog.Error("register encode failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export roster", requestID)
		return
	}
	if h.Metrics != nil {
		h.Metrics.Computed(len(entries))
		h.Metrics.Exported()
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+export.Filename(h.now()))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("register write failed", "err", err, "requestId", requestID)
	}
}
