package commands

import (
	"os"

	"github.com/entangle-labs/idlmeta/batch"
	"github.com/entangle-labs/idlmeta/idl"
	"github.com/entangle-labs/idlmeta/internal/jsonutils"
)

// NewPatcherFunc builds the patcher used by the patch and apply commands.
type NewPatcherFunc func(opts ...idl.Option) batch.Patcher

// DescribeFunc reads an IDL summary.
type DescribeFunc func(path string) (idl.Info, error)

// WorkingDirFunc returns the directory project root discovery starts from.
type WorkingDirFunc func() (string, error)

// ReportWriterFunc persists a batch report.
type ReportWriterFunc func(path string, report *batch.Report) error

// defaultNewPatcher is the production implementation returning an idl.Patcher.
func defaultNewPatcher(opts ...idl.Option) batch.Patcher {
	return idl.NewPatcher(opts...)
}

// defaultReportWriter writes the report as indented JSON.
func defaultReportWriter(path string, report *batch.Report) error {
	return jsonutils.WriteFile(path, report)
}

// Deps holds the injectable dependencies for the commands.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// NewPatcher builds the IDL patcher.
	// Default: idl.NewPatcher
	NewPatcher NewPatcherFunc

	// Describe reads an IDL summary for the show command.
	// Default: idl.Describe
	Describe DescribeFunc

	// WorkingDir is where project root discovery starts.
	// Default: os.Getwd
	WorkingDir WorkingDirFunc

	// ReportWriter writes the apply report when --out is set.
	// Default: jsonutils.WriteFile
	ReportWriter ReportWriterFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.NewPatcher == nil {
		d.NewPatcher = defaultNewPatcher
	}
	if d.Describe == nil {
		d.Describe = idl.Describe
	}
	if d.WorkingDir == nil {
		d.WorkingDir = os.Getwd
	}
	if d.ReportWriter == nil {
		d.ReportWriter = defaultReportWriter
	}
}
