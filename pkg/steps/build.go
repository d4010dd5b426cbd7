package steps

import (
	"context"
	"log/slog"
)

type buildStep struct {
	command []string
}

// NewBuildStep creates the artifact build step. The command is invoked
// exactly once against the workspace; its exit status is the only thing
// inspected, artifact contents are the collaborator's responsibility.
func NewBuildStep(command []string) Step {
	return &buildStep{command: command}
}

func (s *buildStep) Name() string { return "build" }

func (s *buildStep) Run(ctx context.Context, sctx StepContext) error {
	slog.Info("building release artifact", "command", s.command)
	return runCommand(ctx, sctx.Workspace, s.command)
}
