package employeeshandler

import (
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
	"paie/internal/transport/http/shared"
)

type Handler struct {
	Roster  *roster.Service
	Metrics *metrics.Collector
	// Protect wraps the mutating routes; nil leaves them open.
	Protect func(http.Handler) http.Handler
	now     func() time.Time
}

func NewHandler(svc *roster.Service, collector *metrics.Collector, protect func(http.Handler) http.Handler) *Handler {
	return &Handler{Roster: svc, Metrics: collector, Protect: protect, now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{employeeID}", h.handleGet)
		r.Get("/{employeeID}/payslip", h.handlePayslip)

		r.Group(func(r chi.Router) {
			if h.Protect != nil {
				r.Use(h.Protect)
			}
			r.Post("/", h.handleCreate)
			r.Delete("/{employeeID}", h.handleDelete)
		})
	})
}

type createRequest struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	shared.EmployeeRequest
}

// listRow is the tabular view: identity plus gross and net.
type listRow struct {
	ID          string  `json:"id"`
	LastName    string  `json:"lastName"`
	FirstName   string  `json:"firstName"`
	GrossSalary float64 `json:"grossSalary"`
	NetPay      float64 `json:"netPay"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, shared.DefaultPageSize, shared.MaxPageSize)
	entries, total, err := h.Roster.Listing(r.Context(), page.Limit, page.Offset)
	if err != nil {
		slog.Error("roster listing failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list employees", requestID)
		return
	}
	h.computed(len(entries))

	rows := make([]listRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, listRow{
			ID:          e.ID,
			LastName:    e.LastName,
			FirstName:   e.FirstName,
			GrossSalary: e.Result.GrossSalary,
			NetPay:      e.Result.NetPay,
		})
	}
	api.Page(w, rows, page.Meta(total), requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload createRequest
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}

	in := roster.Input{
		LastName:  payload.LastName,
		FirstName: payload.FirstName,
		Employee:  payload.Employee(),
	}
	v := shared.NewValidator()
	if payload.GrossSalary == nil {
		v.Add("grossSalary", "is required")
	}
	if v.AddErrors(in.Validate(), shared.EmployeeFields) {
		api.Fail(w, http.StatusBadRequest, "invalid_employee", "invalid employee", requestID)
		return
	}
	if v.Reject(w, requestID) {
		return
	}

	rec, err := h.Roster.Register(r.Context(), in)
	if err != nil {
		slog.Error("roster add failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "create_failed", "failed to add employee", requestID)
		return
	}
	slog.Info("employee added", "employeeId", rec.ID, "requestId", requestID)

	entry := roster.Entry{Record: rec, Result: h.Roster.Engine.Compute(rec.Employee)}
	h.computed(1)
	api.Created(w, entry, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.computed(1)
	api.Success(w, entry, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "employeeID")
	if err := h.Roster.Remove(r.Context(), id); err != nil {
		if errors.Is(err, roster.ErrEmployeeNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
			return
		}
		slog.Error("roster remove failed", "err", err, "employeeId", id, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "delete_failed", "failed to remove employee", requestID)
		return
	}
	slog.Info("employee removed", "employeeId", id, "requestId", requestID)
	api.Success(w, map[string]string{"id": id, "status": "removed"}, requestID)
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=bulletin_"+entry.ID+".pdf")
	if err := export.WritePayslip(w, entry, h.Roster.Engine.Schedule(), h.now()); err != nil {
		slog.Error("payslip render failed", "err", err, "employeeId", entry.ID, "requestId", requestID)
		return
	}
	h.computed(1)
	if h.Metrics != nil {
		h.Metrics.PayslipRendered()
	}
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (roster.Entry, bool) {
	requestID := middleware.GetRequestID(r.Context())
	entry, err := h.Roster.Payroll(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		if errors.Is(err, roster.ErrEmployeeNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
			return roster.Entry{}, false
		}
		slog.Error("roster lookup failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "lookup_failed", "failed to load employee", requestID)
		return roster.Entry{}, false
	}
	return entry, true
}

func (h *Handler) computed(n int) {
	if h.Metrics != nil {
		h.Metrics.Computed(n)
	}
}
