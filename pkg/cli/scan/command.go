// Package scan implements the 'hawkeye scan' command.
package scan

import (
	"context"
	"fmt"
	"os"

	"github.com/roselmamendestw/hawkeye/pkg/cli/flag"
	"github.com/roselmamendestw/hawkeye/pkg/controller/scan"
	"github.com/roselmamendestw/hawkeye/pkg/di"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE    *logrus.Entry
	version string
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, version string) *cli.Command {
	r := &runner{
		logE:    logE,
		version: version,
	}
	return r.Command(globalFlags)
}

func (r *runner) Command(globalFlags *flag.GlobalFlags) *cli.Command {
	flags := &di.Flags{
		GlobalFlags: globalFlags,
	}
	return &cli.Command{
		Name:  "scan",
		Usage: "Scan a directory with the applicable scan modules",
		Description: `Scan a directory with every scan module which handles it.

$ hawkeye scan

By default, the current directory is scanned.
Findings are written to stdout as JSON, and a summary is written to stderr.
hawkeye exits with 1 if a finding at or above --fail-on is found.

$ hawkeye scan --target ./api --module findSecBugs --fail-on high --format sarif
`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return r.action(ctx, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "target",
				Aliases:     []string{"t"},
				Usage:       "Directory to scan",
				Sources:     cli.EnvVars("HAWKEYE_TARGET"),
				Destination: &flags.Target,
			},
			&cli.StringSliceFlag{
				Name:        "module",
				Aliases:     []string{"m"},
				Usage:       "Scan module to run. This overrides modules in the configuration file",
				Destination: &flags.Modules,
			},
			&cli.StringFlag{
				Name:        "fail-on",
				Usage:       "Exit with a non-zero status code if a finding at or above this level is found (low, medium, high, critical)",
				Sources:     cli.EnvVars("HAWKEYE_FAIL_ON"),
				Destination: &flags.FailOn,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format (json, sarif)",
				Value:       scan.FormatJSON,
				Destination: &flags.Format,
			},
			&cli.DurationFlag{
				Name:        "timeout",
				Usage:       "Timeout of each scanner process. 0 means no timeout",
				Sources:     cli.EnvVars("HAWKEYE_TIMEOUT"),
				Destination: &flags.Timeout,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, flags *di.Flags) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}
	flags.CWD = cwd
	flags.Version = r.version
	di.SetEnv(flags, os.Getenv)
	return di.Scan(ctx, r.logE, flags) //nolint:wrapcheck
}
