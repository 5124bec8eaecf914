// Package exec runs external programs under guardrails: a timeout, an
// output cap, and a command blocklist.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Result captures the observable outcome of a completed command.
type Result struct {
	Stdout string
	Stderr string
	Code   int
}

// OutputTruncatedError reports that stdout or stderr exceeded the
// configured cap. The accompanying Result holds the truncated output.
type OutputTruncatedError struct {
	Limit int
}

func (e OutputTruncatedError) Error() string {
	return fmt.Sprintf("output truncated at %d bytes", e.Limit)
}

// SafeExecutor runs commands with guardrails applied. The zero value
// runs unbounded, which is only appropriate in tests.
type SafeExecutor struct {
	Timeout   time.Duration
	MaxOutput int
	Blocklist []string
}

// Run executes cmd with args, honoring the executor's timeout and
// output cap. A non-zero exit is not an error here; callers inspect
// Result.Code. Spawn failures and truncation are errors.
func (e *SafeExecutor) Run(ctx context.Context, cmd string, args ...string) (*Result, error) {
	if cmd == "" {
		return nil, errors.New("command is required")
	}
	if e.isBlocked(cmd) {
		return nil, fmt.Errorf("command blocked: %s", cmd)
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	command := exec.CommandContext(ctx, cmd, args...)

	stdoutBuf := &limitedBuffer{limit: e.MaxOutput}
	stderrBuf := &limitedBuffer{limit: e.MaxOutput}
	command.Stdout = stdoutBuf
	command.Stderr = stderrBuf

	err := command.Run()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			return nil, err
		}
	}

	res := &Result{Stdout: stdoutBuf.String(), Stderr: stderrBuf.String(), Code: exitCode}
	if stdoutBuf.truncated || stderrBuf.truncated {
		return res, OutputTruncatedError{Limit: e.MaxOutput}
	}
	return res, nil
}

func (e *SafeExecutor) isBlocked(cmd string) bool {
	if len(e.Blocklist) == 0 {
		return false
	}
	base := filepath.Base(cmd)
	for _, blocked := range e.Blocklist {
		if strings.EqualFold(blocked, cmd) || strings.EqualFold(blocked, base) {
			return true
		}
	}
	return false
}

type limitedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func (l *limitedBuffer) Write(p []byte) (int, error) {
	if l.limit <= 0 {
		return l.buf.Write(p)
	}
	remaining := l.limit - l.buf.Len()
	if remaining <= 0 {
		l.truncated = true
		return len(p), nil
	}
	if len(p) > remaining {
		l.truncated = true
		_, _ = l.buf.Write(p[:remaining])
		return len(p), nil
	}
	return l.buf.Write(p)
}

func (l *limitedBuffer) String() string {
	return l.buf.String()
}

var _ io.Writer = (*limitedBuffer)(nil)
