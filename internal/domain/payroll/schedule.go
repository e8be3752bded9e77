package payroll

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

// Rates maps each contribution kind to its share of gross salary.
type Rates map[ContributionKind]float64

// Bracket is one segment of the progressive schedule. Rate applies to the
// portion of the base above Floor, up to the next bracket's Floor.
type Bracket struct {
	Floor float64 `json:"floor"`
	Rate  float64 `json:"rate"`
}

// Schedule is the jurisdiction policy the engine applies. Brackets are
// ordered by strictly increasing Floor.
type Schedule struct {
	Name            string    `json:"name"`
	EmployeeRates   Rates     `json:"employeeRates"`
	EmployerRates   Rates     `json:"employerRates"`
	SpouseAbatement float64   `json:"spouseAbatement"`
	ChildAbatement  float64   `json:"childAbatement"`
	Brackets        []Bracket `json:"brackets"`
}

// DefaultSchedule returns the 2024 CNAS rates and IRG barème.
func DefaultSchedule() Schedule {
	return Schedule{
		Name: "DZ-2024",
		EmployeeRates: Rates{
			ContributionSocialSecurity: 0.09,
			ContributionPension:        0.0925,
			ContributionUnemployment:   0.005,
		},
		EmployerRates: Rates{
			ContributionSocialSecurity: 0.125,
			ContributionPension:        0.1025,
			ContributionUnemployment:   0.01,
		},
		SpouseAbatement: 1000,
		ChildAbatement:  500,
		Brackets: []Bracket{
			{Floor: 0, Rate: 0},
			{Floor: 30000, Rate: 0.20},
			{Floor: 120000, Rate: 0.30},
			{Floor: 360000, Rate: 0.35},
		},
	}
}

func (s Schedule) Validate() error {
	if err := s.EmployeeRates.validate("employeeRates"); err != nil {
		return err
	}
	if err := s.EmployerRates.validate("employerRates"); err != nil {
		return err
	}
	if s.SpouseAbatement < 0 || s.ChildAbatement < 0 {
		return fmt.Errorf("%w: abatements must not be negative", ErrInvalidSchedule)
	}
	if len(s.Brackets) == 0 {
		return fmt.Errorf("%w: at least one bracket is required", ErrInvalidSchedule)
	}
	for i, b := range s.Brackets {
		if b.Rate < 0 || b.Rate > 1 {
			return fmt.Errorf("%w: bracket %d rate %v out of range", ErrInvalidSchedule, i, b.Rate)
		}
		if i > 0 && b.Floor <= s.Brackets[i-1].Floor {
			return fmt.Errorf("%w: bracket %d floor must be above %v", ErrInvalidSchedule, i, s.Brackets[i-1].Floor)
		}
	}
	return nil
}

func (r Rates) validate(field string) error {
	for _, kind := range ContributionKinds {
		rate, ok := r[kind]
		if !ok {
			return fmt.Errorf("%w: %s missing %s", ErrInvalidSchedule, field, kind)
		}
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%w: %s %s rate %v out of range", ErrInvalidSchedule, field, kind, rate)
		}
	}
	for kind := range r {
		if !kind.valid() {
			return fmt.Errorf("%w: %s has unknown kind %q", ErrInvalidSchedule, field, kind)
		}
	}
	return nil
}

// TotalRate is the combined share of gross for one side.
func (r Rates) TotalRate() float64 {
	total := 0.0
	for _, kind := range ContributionKinds {
		total += r[kind]
	}
	return total
}

func (k ContributionKind) valid() bool {
	for _, kind := range ContributionKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Tax applies the progressive brackets to base. Each bracket taxes only the
// slice above its floor; a base at or below the first floor yields zero.
func (s Schedule) Tax(base float64) float64 {
	tax := 0.0
	for i, b := range s.Brackets {
		if base <= b.Floor {
			break
		}
		upper := base
		if i+1 < len(s.Brackets) && s.Brackets[i+1].Floor < base {
			upper = s.Brackets[i+1].Floor
		}
		tax += (upper - b.Floor) * b.Rate
	}
	return tax
}

func LoadSchedule(r io.Reader) (Schedule, error) {
	var s Schedule
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Schedule{}, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	if err := s.Validate(); err != nil {
		return Schedule{}, err
	}
	return s, nil
}

func LoadScheduleFile(path string) (Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return Schedule{}, err
	}
	defer f.Close()
	s, err := LoadSchedule(f)
	if err != nil {
		return Schedule{}, fmt.Errorf("schedule %s: %w", path, err)
	}
	return s, nil
}
