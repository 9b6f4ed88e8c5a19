package di

import (
	"time"

	"github.com/roselmamendestw/hawkeye/pkg/cli/flag"
)

// Flags holds all command-line flags for the scan command.
type Flags struct {
	*flag.GlobalFlags

	Target  string
	Modules []string
	FailOn  string
	Format  string
	Timeout time.Duration
	Version string

	IsGitHubActions bool

	CWD string
}
