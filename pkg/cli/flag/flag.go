// Package flag defines the global flags shared by every subcommand.
package flag

import "github.com/urfave/cli/v3"

type GlobalFlags struct {
	LogLevel string
	Config   string
}

func (gf *GlobalFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level",
			Sources:     cli.EnvVars("HAWKEYE_LOG_LEVEL"),
			Destination: &gf.LogLevel,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "configuration file path. By default, .hawkeye.yaml, .hawkeye.yml, or .hawkeye/config.yaml in the target directory",
			Sources:     cli.EnvVars("HAWKEYE_CONFIG"),
			Destination: &gf.Config,
		},
	}
}
