// Package batch processes many application forms concurrently.
//
// Each job is isolated: an unreadable workbook or a failed render is
// recorded in that job's Result and never stops the others.
package batch

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bennofs/mintec/pkg/mintec"
	"github.com/bennofs/mintec/pkg/mintec/models"
)

// ErrUnsupportedFormat is returned for legacy .xls workbooks.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Job is one form to process.
type Job struct {
	ID     int
	Input  string
	Output string
}

// Result is the outcome of a job.
type Result struct {
	ID       int
	Input    string
	Output   string
	Status   models.Status
	Problems models.Problems
	// Skipped is true if the output already existed and SkipExisting was set.
	Skipped bool
	// Rendered is true if a certificate was written to Output.
	Rendered bool
	// Err is an I/O or rendering error. A non-nil Err always means FAIL.
	Err error
}

// Message formats the result for display: the I/O error first, then the
// form problems.
func (r Result) Message() string {
	var parts []string
	if r.Err != nil {
		parts = append(parts, "I/O error: "+r.Err.Error())
	}
	if msg := r.Problems.Message(); msg != "" {
		parts = append(parts, msg)
	}
	return strings.Join(parts, "\n")
}

// Config controls a batch run.
type Config struct {
	// Workers is the number of forms processed in parallel. Values below 1
	// mean one.
	Workers int
	// SkipExisting leaves jobs alone whose output file already exists.
	SkipExisting bool
}

// Run processes jobs with up to cfg.Workers goroutines and returns one
// result per job, ordered by job ID. Once ctx is done no further jobs are
// started; those jobs report ctx.Err().
func Run(ctx context.Context, jobs []Job, template []byte, opts mintec.Options, cfg Config, logger *zap.Logger) []Result {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	logger = logger.With(zap.String("run_id", uuid.New().String()))
	logger.Info("batch started", zap.Int("jobs", len(jobs)), zap.Int("workers", workers))

	results := make(chan Result, len(jobs))
	var g errgroup.Group
	g.SetLimit(workers)
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			results <- failed(job, err)
			continue
		}
		g.Go(func() error {
			results <- runJob(ctx, job, template, opts, cfg, logger)
			return nil
		})
	}
	_ = g.Wait()
	close(results)

	out := make([]Result, 0, len(jobs))
	for r := range results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	logger.Info("batch finished", zap.Int("jobs", len(out)))
	return out
}

func failed(job Job, err error) Result {
	return Result{
		ID:     job.ID,
		Input:  job.Input,
		Output: job.Output,
		Status: models.StatusFail,
		Err:    err,
	}
}

func runJob(ctx context.Context, job Job, template []byte, opts mintec.Options, cfg Config, logger *zap.Logger) Result {
	log := logger.With(zap.Int("job", job.ID), zap.String("input", job.Input))
	if err := ctx.Err(); err != nil {
		return failed(job, err)
	}

	if cfg.SkipExisting {
		if _, err := os.Stat(job.Output); err == nil {
			log.Info("output exists, skipping", zap.String("output", job.Output))
			return Result{ID: job.ID, Input: job.Input, Output: job.Output, Skipped: true}
		}
	}

	log.Debug("processing form")
	res := process(job, template, opts)
	if res.Err != nil {
		log.Error("form failed", zap.Error(res.Err))
		return res
	}
	log.Info("form processed",
		zap.String("status", string(res.Status)),
		zap.Int("fatal", len(res.Problems.Fatal())),
		zap.Int("warnings", len(res.Problems.Warnings())),
		zap.Bool("rendered", res.Rendered),
	)
	return res
}

func process(job Job, template []byte, opts mintec.Options) Result {
	if strings.EqualFold(filepath.Ext(job.Input), ".xls") {
		return failed(job, ErrUnsupportedFormat)
	}

	f, err := os.Open(job.Input)
	if err != nil {
		return failed(job, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	outcome, err := mintec.Process(f, template, &buf, opts)
	if err != nil {
		res := failed(job, err)
		if outcome != nil {
			res.Problems = outcome.Problems
		}
		return res
	}

	res := Result{
		ID:       job.ID,
		Input:    job.Input,
		Output:   job.Output,
		Status:   outcome.Status,
		Problems: outcome.Problems,
	}
	if outcome.Rendered {
		if err := os.WriteFile(job.Output, buf.Bytes(), 0644); err != nil {
			res.Status = models.StatusFail
			res.Err = err
			return res
		}
		res.Rendered = true
	}
	return res
}
