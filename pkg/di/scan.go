// Package di wires the dependencies of 'hawkeye scan'.
package di

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/roselmamendestw/hawkeye/pkg/config"
	"github.com/roselmamendestw/hawkeye/pkg/controller/scan"
	"github.com/roselmamendestw/hawkeye/pkg/exec"
	"github.com/roselmamendestw/hawkeye/pkg/log"
	"github.com/roselmamendestw/hawkeye/pkg/module/registry"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Scan configures logging, wires the scan controller, and runs it.
func Scan(ctx context.Context, logE *logrus.Entry, flags *Flags) error {
	if flags.IsGitHubActions {
		color.NoColor = false
	}
	log.SetLevel(flags.LogLevel, logE)

	fs := afero.NewOsFs()
	executor := exec.New(logE, flags.Timeout)
	param := buildParam(flags, os.Stdout, os.Stderr)
	ctrl := scan.New(fs, registry.New(executor, logE), config.NewFinder(fs), config.NewReader(fs), param)
	return ctrl.Run(ctx, logE.WithField("target", param.Target)) //nolint:wrapcheck
}

func resolveTarget(target, cwd string) string {
	if target == "" {
		return cwd
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(cwd, target)
}

func buildParam(flags *Flags, stdout, stderr io.Writer) *scan.ParamRun {
	param := &scan.ParamRun{
		Target:  resolveTarget(flags.Target, flags.CWD),
		Modules: flags.Modules,
		FailOn:  flags.FailOn,
		Format:  flags.Format,
		Version: flags.Version,
		Stdout:  stdout,
		Stderr:  stderr,
	}
	if flags.GlobalFlags != nil {
		param.ConfigFilePath = flags.Config
	}
	return param
}
