package scan

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/roselmamendestw/hawkeye/pkg/results"
)

type colorFunc func(a ...any) string

// Summary prints the number of findings per level.
type Summary struct {
	stderr io.Writer
	red    colorFunc
	yellow colorFunc
	cyan   colorFunc
}

func NewSummary(stderr io.Writer) *Summary {
	return &Summary{
		stderr: stderr,
		red:    color.New(color.FgRed, color.Bold).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		cyan:   color.New(color.FgCyan).SprintFunc(),
	}
}

func (s *Summary) colorize(sev results.Severity) string {
	switch sev {
	case results.Critical, results.High:
		return s.red(sev.String())
	case results.Medium:
		return s.yellow(sev.String())
	default:
		return s.cyan(sev.String())
	}
}

func (s *Summary) Output(count map[results.Severity]int) {
	if s.stderr == nil {
		return
	}
	total := 0
	for _, n := range count {
		total += n
	}
	if total == 0 {
		fmt.Fprintln(s.stderr, "hawkeye found no issues")
		return
	}
	fmt.Fprintf(s.stderr, "hawkeye found %d issue(s)\n", total)
	for _, sev := range results.Severities {
		if n := count[sev]; n > 0 {
			fmt.Fprintf(s.stderr, "  %s: %d\n", s.colorize(sev), n)
		}
	}
}
