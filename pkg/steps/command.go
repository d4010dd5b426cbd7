package steps

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
)

// runCommand invokes an external collaborator and blocks until it
// terminates. A non-zero exit becomes an error carrying the command's
// captured stderr verbatim.
func runCommand(ctx context.Context, workDir string, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("command is empty")
	}

	if _, err := exec.LookPath(argv[0]); err != nil {
		return fmt.Errorf("%s binary not found in PATH: %w", argv[0], err)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w\nstderr: %s", argv[0], err, stderr.String())
	}

	slog.Debug("command finished", "command", argv[0], "stdoutBytes", stdout.Len())
	return nil
}
