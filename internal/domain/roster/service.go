package roster

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"paie/internal/domain/payroll"
)

type Service struct {
	Store   StoreAPI
	Engine  *payroll.Engine
	workers int
	now     func() time.Time
}

func NewService(store StoreAPI, engine *payroll.Engine, workers int) *Service {
	if workers <= 0 {
		workers = 1
	}
	return &Service{Store: store, Engine: engine, workers: workers, now: time.Now}
}

// Validate applies the roster admission rules on top of the engine
// precondition: both names are required and gross salary must be positive.
func (in Input) Validate() error {
	var errs []error
	if strings.TrimSpace(in.LastName) == "" {
		errs = append(errs, ErrMissingLastName)
	}
	if strings.TrimSpace(in.FirstName) == "" {
		errs = append(errs, ErrMissingFirstName)
	}
	if in.GrossSalary <= 0 {
		errs = append(errs, ErrNonPositiveSalary)
	}
	if err := in.Employee.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Service) Register(ctx context.Context, in Input) (Record, error) {
	in.Employee = in.Employee.Normalize()
	if err := in.Validate(); err != nil {
		return Record{}, err
	}
	rec := Record{
		ID:        uuid.NewString(),
		LastName:  strings.TrimSpace(in.LastName),
		FirstName: strings.TrimSpace(in.FirstName),
		Employee:  in.Employee,
		CreatedAt: s.now().UTC(),
	}
	if err := s.Store.Add(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	return s.Store.Remove(ctx, id)
}

func (s *Service) Payroll(ctx context.Context, id string) (Entry, error) {
	rec, err := s.Store.Get(ctx, id)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Record: rec, Result: s.Engine.Compute(rec.Employee)}, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.Store.Count(ctx)
}

// Listing returns one page of entries in roster order and the roster size.
func (s *Service) Listing(ctx context.Context, limit, offset int) ([]Entry, int, error) {
	records, err := s.Store.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := len(records)
	if offset >= total {
		return []Entry{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	entries, err := s.compute(ctx, records[offset:end])
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// Entries computes every record, in roster order.
func (s *Service) Entries(ctx context.Context) ([]Entry, error) {
	records, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.compute(ctx, records)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(entries), nil
}

func (s *Service) compute(ctx context.Context, records []Record) ([]Entry, error) {
	entries := make([]Entry, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[i] = Entry{Record: rec, Result: s.Engine.Compute(rec.Employee)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Summarize folds entries in slice order so repeated runs over the same
// roster produce identical totals. An empty slice yields zero totals.
func Summarize(entries []Entry) Summary {
	var sum Summary
	for _, e := range entries {
		sum.EmployeeCount++
		sum.TotalGross += e.Result.GrossSalary
		sum.TotalEmployeeContributions += e.Result.EmployeeContributions.Total
		sum.TotalIncomeTax += e.Result.IncomeTax
		sum.TotalNet += e.Result.NetPay
		sum.TotalEmployerContributions += e.Result.EmployerContributions.Total
		sum.TotalEmployerCost += e.Result.TotalEmployerCost
	}
	return sum
}
