package payrollhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"paie/internal/domain/payroll"
	"paie/internal/platform/metrics"
	"paie/internal/transport/http/api"
	"paie/internal/transport/http/middleware"
	"paie/internal/transport/http/shared"
)

type Handler struct {
	Engine  *payroll.Engine
	Metrics *metrics.Collector
}

func NewHandler(engine *payroll.Engine, collector *metrics.Collector) *Handler {
	return &Handler{Engine: engine, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/schedule", h.handleSchedule)
		r.Post("/compute", h.handleCompute)
	})
}

type scheduleResponse struct {
	payroll.Schedule
	Currency          string  `json:"currency"`
	EmployeeTotalRate float64 `json:"employeeTotalRate"`
	EmployerTotalRate float64 `json:"employerTotalRate"`
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	s := h.Engine.Schedule()
	api.Success(w, scheduleResponse{
		Schedule:          s,
		Currency:          payroll.Currency,
		EmployeeTotalRate: s.EmployeeRates.TotalRate(),
		EmployerTotalRate: s.EmployerRates.TotalRate(),
	}, middleware.GetRequestID(r.Context()))
}

// handleCompute runs the engine for an ad-hoc employee. Zero gross is
// accepted here; the roster route is stricter.
func (h *Handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload shared.EmployeeRequest
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}

	v := shared.NewValidator()
	if payload.GrossSalary == nil {
		v.Add("grossSalary", "is required")
	}
	emp := payload.Employee()
	if v.AddErrors(emp.Validate(), shared.EmployeeFields) {
		api.Fail(w, http.StatusBadRequest, "invalid_employee", "invalid employee", requestID)
		return
	}
	if v.Reject(w, requestID) {
		return
	}

	result := h.Engine.Compute(emp)
	if h.Metrics != nil {
		h.Metrics.Computed(1)
	}
	api.Success(w, result, requestID)
}
