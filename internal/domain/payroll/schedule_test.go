package payroll

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultScheduleValid(t *testing.T) {
	if err := DefaultSchedule().Validate(); err != nil {
		t.Fatalf("default schedule invalid: %v", err)
	}
}

func TestScheduleTotals(t *testing.T) {
	s := DefaultSchedule()
	require.InDelta(t, 0.1875, s.EmployeeRates.TotalRate(), 1e-12)
	require.InDelta(t, 0.2375, s.EmployerRates.TotalRate(), 1e-12)
}

func TestTaxBoundaries(t *testing.T) {
	s := DefaultSchedule()
	cases := map[float64]float64{
		-5000:  0,
		0:      0,
		30000:  0,
		75000:  9000,
		120000: 18000,
		360000: 90000,
		400000: 104000,
	}
	for base, want := range cases {
		require.InDelta(t, want, s.Tax(base), delta, "base %v", base)
	}
}

func TestTaxContinuousAtBoundaries(t *testing.T) {
	s := DefaultSchedule()
	const eps = 1e-3
	for _, b := range s.Brackets[1:] {
		below := s.Tax(b.Floor - eps)
		above := s.Tax(b.Floor + eps)
		if diff := above - below; diff < 0 || diff > 2*eps*0.35+1e-9 {
			t.Fatalf("tax jumps at %v: below %v above %v", b.Floor, below, above)
		}
	}
}

func TestScheduleValidateRejectsUnorderedBrackets(t *testing.T) {
	s := DefaultSchedule()
	s.Brackets = []Bracket{{Floor: 0, Rate: 0}, {Floor: 50000, Rate: 0.2}, {Floor: 40000, Rate: 0.3}}
	if err := s.Validate(); !errors.Is(err, ErrInvalidSchedule) {
		t.Fatalf("expected ErrInvalidSchedule, got %v", err)
	}
}

func TestScheduleValidateRejectsMissingRate(t *testing.T) {
	s := DefaultSchedule()
	s.EmployerRates = Rates{ContributionSocialSecurity: 0.1, ContributionPension: 0.1}
	if err := s.Validate(); !errors.Is(err, ErrInvalidSchedule) {
		t.Fatalf("expected ErrInvalidSchedule, got %v", err)
	}
}

func TestScheduleValidateRejectsRateOutOfRange(t *testing.T) {
	s := DefaultSchedule()
	s.Brackets[3].Rate = 1.5
	if err := s.Validate(); !errors.Is(err, ErrInvalidSchedule) {
		t.Fatalf("expected ErrInvalidSchedule, got %v", err)
	}
}

const scheduleJSON = `{
  "name": "test",
  "employeeRates": {"social_security": 0.1, "pension": 0.1, "unemployment": 0},
  "employerRates": {"social_security": 0.2, "pension": 0, "unemployment": 0},
  "spouseAbatement": 0,
  "childAbatement": 0,
  "brackets": [{"floor": 0, "rate": 0}, {"floor": 10000, "rate": 0.5}]
}`

func TestLoadSchedule(t *testing.T) {
	s, err := LoadSchedule(strings.NewReader(scheduleJSON))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if s.Name != "test" || len(s.Brackets) != 2 {
		t.Fatalf("unexpected schedule: %+v", s)
	}

	res := NewEngine(s).Compute(single(20000))
	require.InDelta(t, 4000, res.EmployeeContributions.Total, delta)
	require.InDelta(t, 3000, res.IncomeTax, delta)
	require.InDelta(t, 13000, res.NetPay, delta)
	require.InDelta(t, 24000, res.TotalEmployerCost, delta)
}

func TestLoadScheduleRejectsBadJSON(t *testing.T) {
	if _, err := LoadSchedule(strings.NewReader("{")); !errors.Is(err, ErrInvalidSchedule) {
		t.Fatalf("expected ErrInvalidSchedule, got %v", err)
	}
}

func TestLoadScheduleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	if err := os.WriteFile(path, []byte(scheduleJSON), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := LoadScheduleFile(path); err != nil {
		t.Fatalf("load file failed: %v", err)
	}
	if _, err := LoadScheduleFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
