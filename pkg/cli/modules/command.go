// Package modules implements the 'hawkeye modules' command.
package modules

import (
	"context"
	"os"

	"github.com/roselmamendestw/hawkeye/pkg/cli/flag"
	"github.com/roselmamendestw/hawkeye/pkg/controller/modules"
	"github.com/roselmamendestw/hawkeye/pkg/exec"
	"github.com/roselmamendestw/hawkeye/pkg/log"
	"github.com/roselmamendestw/hawkeye/pkg/module/registry"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type Flags struct {
	LineTemplate string
}

type runner struct {
	logE *logrus.Entry
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{logE: logE}
	return r.Command(globalFlags)
}

func (r *runner) Command(globalFlags *flag.GlobalFlags) *cli.Command {
	flags := &Flags{}
	return &cli.Command{
		Name:  "modules",
		Usage: "List scan modules",
		Description: `List scan modules and whether their scanners are installed.

$ hawkeye modules

Output format (default CSV):
<Name>,<Ecosystem>,<Command>,<Installed>

Custom output format using Go template:
$ hawkeye modules --line-template "{{.Name}} {{.InstallURL}}"

Available template fields:
  Name       - Module name (e.g., findSecBugs)
  Title      - Display name (e.g., FindSecBugs)
  Ecosystem  - Language the module scans (e.g., java)
  Command    - Scanner command (e.g., findsecbugs)
  Artifact   - Build output the scanner needs (e.g., jar)
  InstallURL - Installation instructions
  Installed  - true if Command is found in $PATH
`,
		Action: func(_ context.Context, _ *cli.Command) error {
			return r.action(globalFlags, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "line-template",
				Usage:       "Go text/template format for each line",
				Destination: &flags.LineTemplate,
			},
		},
	}
}

func (r *runner) action(globalFlags *flag.GlobalFlags, flags *Flags) error {
	log.SetLevel(globalFlags.LogLevel, r.logE)
	executor := exec.New(r.logE, 0)
	ctrl := modules.New(registry.New(executor, r.logE), executor, &modules.Param{
		LineTemplate: flags.LineTemplate,
	}, os.Stdout)
	return ctrl.List() //nolint:wrapcheck
}
