package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmatt/pysqlsync/pkg/api"
	"github.com/vmatt/pysqlsync/pkg/steps"
)

// StepRecord captures the outcome of one executed pipeline step.
type StepRecord struct {
	Step     string
	Variant  string // set for matrix entries
	Duration time.Duration
	Err      error
}

// Report summarizes a pipeline run: the ordered log of executed steps
// and, on failure, which step and variant the pipeline stopped at.
type Report struct {
	Steps         []StepRecord
	FailedStep    string
	FailedVariant string
}

// Failed reports whether the run stopped at a failing step.
func (r *Report) Failed() bool { return r.FailedStep != "" }

// Run executes the release pipeline against cfg: workspace cleanup,
// then the artifact build, then one image build per variant in declared
// order. Execution is strictly sequential and stops at the first
// failure; later steps and variants are never attempted. The returned
// Report is valid in both outcomes.
func Run(ctx context.Context, cfg *api.Config) (*Report, error) {
	report := &Report{}

	clean := steps.NewCleanStep(cfg.Clean)
	if err := runStep(ctx, report, clean, steps.StepContext{Workspace: cfg.Workspace}); err != nil {
		return report, fmt.Errorf("%w: %w", ErrCleanup, err)
	}

	build := steps.NewBuildStep(cfg.Build.Command)
	if err := runStep(ctx, report, build, steps.StepContext{Workspace: cfg.Workspace}); err != nil {
		return report, fmt.Errorf("%w: %w", ErrArtifactBuild, err)
	}

	image := steps.NewImageStep(cfg.Image.Command)
	for _, variant := range cfg.Variants {
		sctx := steps.StepContext{Workspace: cfg.Workspace, Variant: variant}
		if err := runStep(ctx, report, image, sctx); err != nil {
			report.FailedVariant = variant
			return report, fmt.Errorf("%w: variant %q: %w", ErrVariantBuild, variant, err)
		}
	}

	return report, nil
}

func runStep(ctx context.Context, report *Report, step steps.Step, sctx steps.StepContext) error {
	slog.Info("running step", "step", step.Name(), "variant", sctx.Variant)

	start := time.Now()
	err := step.Run(ctx, sctx)

	report.Steps = append(report.Steps, StepRecord{
		Step:     step.Name(),
		Variant:  sctx.Variant,
		Duration: time.Since(start),
		Err:      err,
	})

	if err != nil {
		report.FailedStep = step.Name()
		return err
	}

	slog.Info("step succeeded", "step", step.Name(), "variant", sctx.Variant)
	return nil
}
