package steps

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

type cleanStep struct {
	patterns []string
}

// NewCleanStep creates the workspace cleaner. Each pattern is a glob
// resolved against the workspace; paths that do not exist are a no-op.
func NewCleanStep(patterns []string) Step {
	return &cleanStep{patterns: patterns}
}

func (s *cleanStep) Name() string { return "clean" }

func (s *cleanStep) Run(_ context.Context, sctx StepContext) error {
	for _, pattern := range s.patterns {
		matches, err := doublestar.Glob(os.DirFS(sctx.Workspace), pattern)
		if err != nil {
			return fmt.Errorf("glob %q: %w", pattern, err)
		}

		for _, match := range matches {
			path := filepath.Join(sctx.Workspace, match)
			slog.Info("removing stale build output", "path", path)
			if err := os.RemoveAll(path); err != nil {
				return fmt.Errorf("removing %s: %w", path, err)
			}
		}
	}
	return nil
}
