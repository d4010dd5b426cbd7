package steps

import "context"

// StepContext provides the runtime context for a step.
type StepContext struct {
	Workspace string
	Variant   string // runtime-version identifier, set for matrix entries only
}

// Step is the interface all pipeline steps implement. Run blocks until
// the step finishes; cancelling ctx kills any in-flight collaborator.
type Step interface {
	Name() string
	Run(ctx context.Context, sctx StepContext) error
}
