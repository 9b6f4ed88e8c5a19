// Package exec runs external scanner binaries and resolves them on $PATH.
// Scan modules depend on the Executor interface so tests can substitute a double.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/sirupsen/logrus"
)

// Command is an external command line.
type Command struct {
	Name string
	Args []string
	// Path is the resolved executable. Name is executed if Path is empty.
	Path string
}

// String renders the command line as a shell would read it, using Name rather than Path.
// Arguments which need no quoting are rendered verbatim. Arguments with spaces or shell
// metacharacters are single-quoted, e.g. '/work/my app/report.xml'.
// The arguments passed to the process are never quoted.
func (c *Command) String() string {
	return shellescape.QuoteCommand(append([]string{c.Name}, c.Args...))
}

// Result is the captured output of a finished process.
// A non-zero exit code is not an error.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
}

type Executor interface {
	// CommandExists reports whether name is found on $PATH.
	CommandExists(name string) bool
	// LookPath returns the absolute path of name on $PATH.
	LookPath(name string) (string, error)
	// Run executes cmd and waits for it.
	// The returned error is set only when the process could not be started or waited for.
	// Result is still returned with whatever output was captured.
	Run(ctx context.Context, cmd *Command) (*Result, error)
}

type OSExecutor struct {
	logE    *logrus.Entry
	timeout time.Duration
}

// New returns an Executor backed by os/exec.
// A zero timeout leaves the deadline to ctx.
func New(logE *logrus.Entry, timeout time.Duration) *OSExecutor {
	return &OSExecutor{
		logE:    logE,
		timeout: timeout,
	}
}

func (e *OSExecutor) CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (e *OSExecutor) LookPath(name string) (string, error) {
	p, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("look for a command in $PATH: %w", err)
	}
	return p, nil
}

func (e *OSExecutor) Run(ctx context.Context, c *Command) (*Result, error) {
	if c.Name == "" {
		return nil, errors.New("command name is required")
	}
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	name := c.Name
	if c.Path != "" {
		name = c.Path
	}
	cmd := exec.CommandContext(ctx, name, c.Args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.logE.WithField("command", c.String()).Debug("execute a command")
	start := time.Now()
	err := cmd.Run()
	result := &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(start),
	}
	if err == nil {
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		return result, fmt.Errorf("execute a command: %w", ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	result.ExitCode = -1
	return result, fmt.Errorf("execute a command: %w", err)
}
