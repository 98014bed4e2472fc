// Package batch applies metadata patches to a list of IDL files.
package batch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/entangle-labs/idlmeta/config/network"
	"github.com/entangle-labs/idlmeta/config/target"
	"github.com/entangle-labs/idlmeta/pkg/logger"
)

// Patcher writes an address into the IDL file at path.
type Patcher interface {
	Patch(path, address string) error
}

// PatcherFunc adapts a function to the Patcher interface.
type PatcherFunc func(path, address string) error

// Patch calls f(path, address).
func (f PatcherFunc) Patch(path, address string) error { return f(path, address) }

// Report describes one batch run.
type Report struct {
	// RunID uniquely identifies the run in logs and written reports.
	RunID string `json:"run_id"`
	// Network is the network the addresses were resolved for.
	Network network.Network `json:"network"`
	// Patched lists the jobs that completed, in execution order.
	Patched []target.PatchJob `json:"patched"`
}

// Runner applies patch jobs sequentially.
type Runner struct {
	lggr    logger.Logger
	patcher Patcher
}

// NewRunner creates a Runner.
func NewRunner(lggr logger.Logger, patcher Patcher) *Runner {
	return &Runner{
		lggr:    lggr,
		patcher: patcher,
	}
}

// Run applies each job in order and stops at the first failure. Jobs that completed before the
// failure stay applied and are listed in the returned report, which is never nil.
func (r *Runner) Run(ctx context.Context, n network.Network, jobs []target.PatchJob) (*Report, error) {
	report := &Report{
		RunID:   uuid.NewString(),
		Network: n,
		Patched: make([]target.PatchJob, 0, len(jobs)),
	}

	r.lggr.Debugw("Starting metadata patch run", "run_id", report.RunID, "network", n, "jobs", len(jobs))

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("run cancelled before %s (%d of %d): %w", job.Name, i+1, len(jobs), err)
		}

		if err := r.patcher.Patch(job.Path, job.Address); err != nil {
			r.lggr.Errorw("Failed to patch IDL metadata",
				"run_id", report.RunID, "target", job.Name, "path", job.Path, "error", err,
			)

			return report, fmt.Errorf("failed to patch %s: %w", job.Name, err)
		}

		r.lggr.Infow("Patched IDL metadata",
			"run_id", report.RunID, "network", n, "target", job.Name, "path", job.Path, "address", job.Address,
		)
		report.Patched = append(report.Patched, job)
	}

	return report, nil
}
