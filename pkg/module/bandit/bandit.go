// Package bandit scans Python projects with bandit.
package bandit

import (
	"context"

	"github.com/roselmamendestw/hawkeye/pkg/exec"
	"github.com/roselmamendestw/hawkeye/pkg/module"
	"github.com/roselmamendestw/hawkeye/pkg/results"
	"github.com/roselmamendestw/hawkeye/pkg/target"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const reportFile = "banditReport.json"

var info = &module.Info{ //nolint:gochecknoglobals
	Name:       "bandit",
	Title:      "Bandit",
	Ecosystem:  "python",
	Command:    "bandit",
	InstallURL: "https://bandit.readthedocs.io/en/latest/start.html#installation",
	ReportFile: reportFile,
}

type Module struct {
	executor exec.Executor
	logE     *logrus.Entry
}

// New returns the module. logE may be nil.
func New(executor exec.Executor, logE *logrus.Entry) *Module {
	if logE == nil {
		logE = module.NullEntry()
	}
	return &Module{
		executor: executor,
		logE:     logE.WithField("module", info.Name),
	}
}

func (m *Module) Info() *module.Info {
	return info
}

func (m *Module) Handles(tgt *target.Target) bool {
	hasPython, err := tgt.HasExtension(".py")
	if err != nil {
		logerr.WithError(m.logE, err).Debug("search python files")
		return false
	}
	if !hasPython {
		return false
	}
	if !m.executor.CommandExists(info.Command) {
		info.WarnNotInstalled(m.logE)
		return false
	}
	return true
}

func command(tgt *target.Target) *exec.Command {
	return &exec.Command{
		Name: info.Command,
		Args: []string{"-r", "-q", "-f", "json", "-o", tgt.Path(reportFile), tgt.Root()},
	}
}

func (m *Module) Run(ctx context.Context, tgt *target.Target, recorder results.Recorder, done func()) {
	defer done()
	logE := m.logE.WithField("target", tgt.Root())

	report, ok := module.RunForReport(ctx, logE, m.executor, info, tgt, command(tgt))
	if !ok {
		return
	}
	candidates, err := parseReport(report, tgt.Root())
	if err != nil {
		module.ParseFailed(logE, info, err)
		return
	}
	for _, c := range candidates {
		sev, known := classify(c.Severity)
		if !known {
			logE.WithFields(logrus.Fields{
				"issue_severity": c.Severity,
				"code":           c.Finding.Code,
			}).Debug("unknown issue severity is classified as low")
		}
		results.Record(recorder, sev, c.Finding)
	}
}
