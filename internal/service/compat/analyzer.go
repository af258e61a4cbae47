package compat

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"log/slog"
)

// Analyzer produces a JSON compatibility verdict for a staged resume file and
// a job description. Implementations are treated as opaque: callers only see
// the raw payload or an error.
type Analyzer interface {
	Analyze(ctx context.Context, resumePath, jobDescription string) ([]byte, error)
}

// ScriptAnalyzer runs an external analysis script with the resume path and
// job description as positional arguments. The script must print a single
// JSON document to stdout and exit non-zero on failure.
type ScriptAnalyzer struct {
	command string
	script  string
	timeout time.Duration
	logger  *slog.Logger
}

// NewScriptAnalyzer constructs a ScriptAnalyzer.
func NewScriptAnalyzer(command, script string, timeout time.Duration, logger *slog.Logger) *ScriptAnalyzer {
	return &ScriptAnalyzer{command: command, script: script, timeout: timeout, logger: logger}
}

// Analyze invokes the script once and captures stdout and stderr separately.
// Stderr is diagnostic output and does not by itself constitute failure.
func (a *ScriptAnalyzer) Analyze(ctx context.Context, resumePath, jobDescription string) ([]byte, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	// Arguments are passed as discrete argv entries, so the description needs
	// no shell quoting.
	cmd := exec.CommandContext(ctx, a.command, a.script, resumePath, jobDescription)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if stderr.Len() > 0 {
		a.logger.Warn("analyzer stderr", "script", a.script, "output", stderr.String())
	}
	if err != nil {
		return nil, fmt.Errorf("analyzer script failed: %w", err)
	}
	return stdout.Bytes(), nil
}
