// Package cli builds the hawkeye command line interface.
package cli

import (
	"context"

	"github.com/roselmamendestw/hawkeye/pkg/cli/flag"
	"github.com/roselmamendestw/hawkeye/pkg/cli/initcmd"
	"github.com/roselmamendestw/hawkeye/pkg/cli/modules"
	"github.com/roselmamendestw/hawkeye/pkg/cli/scan"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, logE *logrus.Entry, ldFlags *stdutil.LDFlags, args ...string) error {
	return New(logE, ldFlags).Run(ctx, args) //nolint:wrapcheck
}

func New(logE *logrus.Entry, ldFlags *stdutil.LDFlags) *cli.Command {
	gf := &flag.GlobalFlags{}
	return &cli.Command{
		Name:                  "hawkeye",
		Usage:                 "Scan projects for security issues with language specific scanners. https://github.com/roselmamendestw/hawkeye",
		Version:               version(ldFlags),
		Flags:                 gf.Flags(),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			scan.New(logE, gf, ldFlags.Version),
			modules.New(logE, gf),
			initcmd.New(logE, gf),
			newVersionCommand(),
		},
	}
}

func version(ldFlags *stdutil.LDFlags) string {
	if ldFlags.Commit == "" {
		return ldFlags.Version
	}
	return ldFlags.Version + " (" + ldFlags.Commit + ")"
}
