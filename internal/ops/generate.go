package ops

import (
	"context"
	"fmt"
	"strings"
	"time"

	"opsagent/internal/fault"
	"opsagent/pkg/exec"
)

// Generator is the external data-generation collaborator. The
// production implementation spawns the datagen binary; tests inject a
// fake.
type Generator interface {
	Generate(ctx context.Context, email string) (string, error)
}

// ExecGenerator runs the generator as a guarded subprocess.
type ExecGenerator struct {
	Command   string
	Timeout   time.Duration
	MaxOutput int
	Blocklist []string
}

// Generate invokes the configured command with the email as its only
// argument. Exit code zero yields the trimmed stdout; anything else is
// an error carrying stderr.
func (g *ExecGenerator) Generate(ctx context.Context, email string) (string, error) {
	runner := &exec.SafeExecutor{
		Timeout:   g.Timeout,
		MaxOutput: g.MaxOutput,
		Blocklist: g.Blocklist,
	}
	res, err := runner.Run(ctx, g.Command, email)
	if err != nil {
		return "", fmt.Errorf("spawn %s: %w", g.Command, err)
	}
	if res.Code != 0 {
		return "", fmt.Errorf("%s exited with code %d: %s", g.Command, res.Code, strings.TrimSpace(res.Stderr))
	}
	return strings.TrimSpace(res.Stdout), nil
}

// GenerateData asks the external generator to seed the sandbox.
func (l *Library) GenerateData(ctx context.Context, email string) (string, error) {
	if l.gen == nil {
		return "", fault.New(fault.GeneratorFailure, "no generator configured")
	}
	out, err := l.gen.Generate(ctx, email)
	if err != nil {
		return "", fault.Wrap(fault.GeneratorFailure, err, "datagen error")
	}
	return "Data generated successfully: " + out, nil
}
