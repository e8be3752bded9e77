// Command payrun computes a roster read from CSV and writes the payroll
// register.
//
//	payrun -in roster.csv [-out register.csv] [-schedule sheet.json] [-summary]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"paie/internal/domain/export"
	"paie/internal/domain/payroll"
	"paie/internal/domain/roster"
	"paie/internal/platform/logger"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "payrun: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	in          string
	out         string
	schedule    string
	summary     bool
	skipInvalid bool
	workers     int
	logLevel    string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("payrun", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.in, "in", "", "roster CSV to read, - for stdin")
	fs.StringVar(&opts.out, "out", "-", "register CSV to write, - for stdout")
	fs.StringVar(&opts.schedule, "schedule", "", "JSON rate sheet replacing the built-in one")
	fs.BoolVar(&opts.summary, "summary", false, "log roster totals")
	fs.BoolVar(&opts.skipInvalid, "skip-invalid", false, "skip invalid rows instead of failing")
	fs.IntVar(&opts.workers, "workers", 4, "parallel computations")
	fs.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.in == "" {
		return options{}, errors.New("-in is required")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log := logger.NewWithWriter(opts.logLevel, "plain", stderr)

	schedule := payroll.DefaultSchedule()
	if opts.schedule != "" {
		if schedule, err = payroll.LoadScheduleFile(opts.schedule); err != nil {
			return err
		}
	}

	inputs, err := readInputs(opts.in, stdin)
	if err != nil {
		return err
	}

	svc := roster.NewService(roster.NewStore(), payroll.NewEngine(schedule), opts.workers)
	invalid := 0
	for i, in := range inputs {
		// header is line 1
		line := i + 2
		if _, err := svc.Register(ctx, in); err != nil {
			invalid++
			log.Warn("invalid roster row", "line", line, "err", err)
		}
	}
	if invalid > 0 && !opts.skipInvalid {
		return fmt.Errorf("%d invalid row(s), rerun with -skip-invalid to ignore them", invalid)
	}

	entries, err := svc.Entries(ctx)
	if err != nil {
		return err
	}
	if err := writeRegister(opts.out, stdout, entries); err != nil {
		return err
	}
	log.Debug("register written", "rows", len(entries), "skipped", invalid, "schedule", schedule.Name)

	if opts.summary {
		s := roster.Summarize(entries)
		log.Info("roster summary",
			slog.Int("employees", s.EmployeeCount),
			slog.String("gross", export.Money(s.TotalGross)),
			slog.String("contributions", export.Money(s.TotalEmployeeContributions)),
			slog.String("irg", export.Money(s.TotalIncomeTax)),
			slog.String("net", export.Money(s.TotalNet)),
			slog.String("employerContributions", export.Money(s.TotalEmployerContributions)),
			slog.String("employerCost", export.Money(s.TotalEmployerCost)),
		)
	}
	return nil
}

func readInputs(path string, stdin io.Reader) ([]roster.Input, error) {
	if path == "-" {
		return export.ReadRoster(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return export.ReadRoster(f)
}

func writeRegister(path string, stdout io.Writer, entries []roster.Entry) error {
	if path == "-" {
		return export.WriteRegister(stdout, entries)
	}
	if len(entries) == 0 {
		return export.ErrNothingToExport
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteRegister(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
