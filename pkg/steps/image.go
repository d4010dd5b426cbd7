package steps

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

type imageStep struct {
	command []string
}

// NewImageStep creates the image build step for one matrix entry. Each
// argv element is a template with {{ .Variant }} and {{ .Workspace }}
// available, so the variant reaches the collaborator as a named build
// parameter (and, typically, as part of the image tag).
func NewImageStep(command []string) Step {
	return &imageStep{command: command}
}

func (s *imageStep) Name() string { return "image" }

func (s *imageStep) Run(ctx context.Context, sctx StepContext) error {
	argv, err := renderCommand(s.command, sctx)
	if err != nil {
		return err
	}

	slog.Info("building variant image", "variant", sctx.Variant, "command", argv)
	return runCommand(ctx, sctx.Workspace, argv)
}

func renderCommand(command []string, sctx StepContext) ([]string, error) {
	data := struct {
		Variant   string
		Workspace string
	}{
		Variant:   sctx.Variant,
		Workspace: sctx.Workspace,
	}

	argv := make([]string, len(command))
	for i, arg := range command {
		tmpl, err := template.New("arg").Funcs(sprig.FuncMap()).Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("parsing command argument %q: %w", arg, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("rendering command argument %q: %w", arg, err)
		}
		argv[i] = buf.String()
	}
	return argv, nil
}
