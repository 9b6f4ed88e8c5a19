// Package initcmd implements the 'hawkeye init' command.
package initcmd

import (
	"context"

	"github.com/roselmamendestw/hawkeye/pkg/cli/flag"
	"github.com/roselmamendestw/hawkeye/pkg/controller/initcmd"
	"github.com/roselmamendestw/hawkeye/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE *logrus.Entry
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{logE: logE}
	return r.Command(globalFlags)
}

func (r *runner) Command(globalFlags *flag.GlobalFlags) *cli.Command {
	var args []string
	return &cli.Command{
		Name:  "init",
		Usage: "Create .hawkeye.yaml if it doesn't exist",
		Description: `Create .hawkeye.yaml if it doesn't exist

$ hawkeye init

You can also pass configuration file path.

e.g.

$ hawkeye init .hawkeye/config.yaml
`,
		Action: func(_ context.Context, _ *cli.Command) error {
			return r.action(globalFlags, args)
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "path",
				Max:         1,
				Destination: &args,
			},
		},
	}
}

func (r *runner) action(globalFlags *flag.GlobalFlags, args []string) error {
	log.SetLevel(globalFlags.LogLevel, r.logE)
	configFilePath := ""
	if len(args) > 0 {
		configFilePath = args[0]
	}
	if configFilePath == "" {
		configFilePath = globalFlags.Config
	}
	if configFilePath == "" {
		configFilePath = ".hawkeye.yaml"
	}
	return initcmd.New(afero.NewOsFs()).Init(configFilePath) //nolint:wrapcheck
}
