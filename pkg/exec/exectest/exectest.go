// Package exectest provides an exec.Executor double for tests.
package exectest

import (
	"context"
	"errors"
	"sync"

	"github.com/roselmamendestw/hawkeye/pkg/exec"
)

// Executor answers $PATH lookups from Commands and delegates Run to RunFunc.
// Every executed command is recorded.
type Executor struct {
	// Commands maps a command name to its absolute path. A missing name is not installed.
	Commands map[string]string
	// RunFunc is called by Run. If nil, Run returns an empty result.
	RunFunc func(ctx context.Context, cmd *exec.Command) (*exec.Result, error)

	mutex    sync.Mutex
	executed []string
}

func (e *Executor) CommandExists(name string) bool {
	_, ok := e.Commands[name]
	return ok
}

func (e *Executor) LookPath(name string) (string, error) {
	p, ok := e.Commands[name]
	if !ok {
		return "", errors.New("executable file not found in $PATH")
	}
	return p, nil
}

func (e *Executor) Run(ctx context.Context, cmd *exec.Command) (*exec.Result, error) {
	e.mutex.Lock()
	e.executed = append(e.executed, cmd.String())
	e.mutex.Unlock()
	if e.RunFunc == nil {
		return &exec.Result{}, nil
	}
	return e.RunFunc(ctx, cmd)
}

// Executed returns the command lines passed to Run, in call order.
func (e *Executor) Executed() []string {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return append([]string(nil), e.executed...)
}
