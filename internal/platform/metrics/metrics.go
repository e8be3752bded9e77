package metrics

import (
	"net/http"
	"sync/atomic"
	"time"
)

// Collector aggregates request and payroll counters for the /metrics route.
type Collector struct {
	requests    atomic.Uint64
	serverErrs  atomic.Uint64
	clientErrs  atomic.Uint64
	rateLimited atomic.Uint64
	durationMs  atomic.Uint64

	computations atomic.Uint64
	exports      atomic.Uint64
	payslips     atomic.Uint64
}

type Snapshot struct {
	RequestsTotal     uint64  `json:"requestsTotal"`
	ServerErrorsTotal uint64  `json:"serverErrorsTotal"`
	ClientErrorsTotal uint64  `json:"clientErrorsTotal"`
	RateLimitedTotal  uint64  `json:"rateLimitedTotal"`
	TotalDurationMs   uint64  `json:"totalDurationMs"`
	AvgDurationMs     float64 `json:"avgDurationMs"`
	ComputationsTotal uint64  `json:"computationsTotal"`
	ExportsTotal      uint64  `json:"exportsTotal"`
	PayslipsTotal     uint64  `json:"payslipsTotal"`
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.requests.Add(1)
	switch {
	case status == http.StatusTooManyRequests:
		c.rateLimited.Add(1)
		c.clientErrs.Add(1)
	case status >= 500:
		c.serverErrs.Add(1)
	case status >= 400:
		c.clientErrs.Add(1)
	}
	c.durationMs.Add(uint64(duration.Milliseconds()))
}

// Computed counts payroll results produced, one per employee.
func (c *Collector) Computed(n int) {
	if n > 0 {
		c.computations.Add(uint64(n))
	}
}

func (c *Collector) Exported() { c.exports.Add(1) }
func (c *Collector) PayslipRendered() { c.payslips.Add(1) }

func (c *Collector) Snapshot() Snapshot {
	s := Snapshot{
		RequestsTotal:     c.requests.Load(),
		ServerErrorsTotal: c.serverErrs.Load(),
		ClientErrorsTotal: c.clientErrs.Load(),
		RateLimitedTotal:  c.rateLimited.Load(),
		TotalDurationMs:   c.durationMs.Load(),
		ComputationsTotal: c.computations.Load(),
		ExportsTotal:      c.exports.Load(),
		PayslipsTotal:     c.payslips.Load(),
	}
	if s.RequestsTotal > 0 {
		s.AvgDurationMs = float64(s.TotalDurationMs) / float64(s.RequestsTotal)
	}
	return s
}
