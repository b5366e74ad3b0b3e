// Package pip bootstraps the package manager into an assembled distribution
// and installs declared dependencies with it.
package pip

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/pyembed/pyembed/internal/messages"
)

var execCommandContext = exec.CommandContext

// ExecError reports a child process that failed to spawn or exited non-zero.
type ExecError struct {
	Tool   string
	Output []byte
	Err    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf(messages.PipToolExitFmt, e.Tool, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// Bootstrap runs the target directory's interpreter against the downloaded
// get-pip script with the override env applied. Captured stdout and stderr
// are echoed to out regardless of outcome so operator diagnostics survive.
func Bootstrap(ctx context.Context, targetDir string, scriptPath string, env []string, out io.Writer) error {
	return runTool(ctx, messages.PipBootstrapLabel, env, out,
		PythonPath(targetDir), scriptPath, "--no-warn-script-location")
}

// InstallRequirements runs the bootstrapped pip against a dependency manifest
// with the override env applied. The manifest is passed through unparsed and
// unvalidated; a missing file is pip's own failure to report.
func InstallRequirements(ctx context.Context, targetDir string, manifest string, env []string, out io.Writer) error {
	return runTool(ctx, messages.PipInstallLabel, env, out,
		PipPath(targetDir), "install", "-r", manifest)
}

func runTool(ctx context.Context, label string, env []string, out io.Writer, name string, args ...string) error {
	cmd := execCommandContext(ctx, name, args...)
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	_, _ = fmt.Fprintf(out, messages.PipToolStdoutFmt, label, stdout.String())
	_, _ = fmt.Fprintf(out, messages.PipToolStderrFmt, label, stderr.String())

	if err != nil {
		output := append(stdout.Bytes(), stderr.Bytes()...)
		return &ExecError{Tool: label, Output: output, Err: err}
	}
	return nil
}
