// Package findsecbugs scans compiled Java projects with the FindSecBugs CLI.
package findsecbugs

import (
	"context"
	"strings"

	"github.com/roselmamendestw/hawkeye/pkg/exec"
	"github.com/roselmamendestw/hawkeye/pkg/module"
	"github.com/roselmamendestw/hawkeye/pkg/results"
	"github.com/roselmamendestw/hawkeye/pkg/target"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const reportFile = "findSecBugsReport.xml"

var info = &module.Info{ //nolint:gochecknoglobals
	Name:       "findSecBugs",
	Title:      "FindSecBugs",
	Ecosystem:  "java",
	Command:    "findsecbugs",
	Artifact:   "jar",
	InstallURL: "https://github.com/Stono/hawkeye/blob/master/lib/modules/findsecbugs/README.md",
	ReportFile: reportFile,
}

// flags precede -output on every invocation.
var flags = []string{ //nolint:gochecknoglobals
	"-nested:false",
	"-progress",
	"-effort:max",
	"-exitcode",
	"-xml:withMessages",
}

// artifacts are the packaged jars looked for, in order, relative to the project root.
var artifacts = []string{ //nolint:gochecknoglobals
	"target/main.jar",
	"build/libs/main.jar",
}

var artifactPatterns = []string{ //nolint:gochecknoglobals
	"target/*.jar",
	"build/libs/*.jar",
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
	hasJava, err := tgt.HasExtension(".java")
	if err != nil {
		logerr.WithError(m.logE, err).Debug("search java files")
		return false
	}
	if !hasJava {
		return false
	}
	if !m.executor.CommandExists(info.Command) {
		info.WarnNotInstalled(m.logE)
		return false
	}
	if m.artifact(tgt) == "" {
		info.WarnNoArtifact(m.logE)
		return false
	}
	return true
}

// artifact returns the jar to scan relative to the project root, or "" if the project
// hasn't been packaged.
func (m *Module) artifact(tgt *target.Target) string {
	for _, a := range artifacts {
		if tgt.Exists(a) {
			return a
		}
	}
	for _, pattern := range artifactPatterns {
		matches, err := tgt.Glob(pattern)
		if err != nil {
			logerr.WithError(m.logE, err).WithField("pattern", pattern).Debug("search jar files")
			continue
		}
		for _, match := range matches {
			if strings.HasSuffix(match, "-sources.jar") || strings.HasSuffix(match, "-javadoc.jar") {
				continue
			}
			return match
		}
	}
	return ""
}

func command(tgt *target.Target, artifact string) *exec.Command {
	args := make([]string, 0, len(flags)+3) //nolint:mnd
	args = append(args, flags...)
	args = append(args, "-output", tgt.Path(reportFile), tgt.Path(artifact))
	return &exec.Command{
		Name: info.Command,
		Args: args,
	}
}

func (m *Module) Run(ctx context.Context, tgt *target.Target, recorder results.Recorder, done func()) {
	defer done()
	logE := m.logE.WithField("target", tgt.Root())

	artifact := m.artifact(tgt)
	if artifact == "" {
		info.WarnNoArtifact(logE)
		return
	}
	report, ok := module.RunForReport(ctx, logE, m.executor, info, tgt, command(tgt, artifact))
	if !ok {
		return
	}
	candidates, err := parseReport(report)
	if err != nil {
		module.ParseFailed(logE, info, err)
		return
	}
	for _, c := range candidates {
		sev, known := classify(c.Priority)
		if !known {
			logE.WithFields(logrus.Fields{
				"priority": c.Priority,
				"code":     c.Finding.Code,
			}).Debug("unknown priority is classified as low")
		}
		results.Record(recorder, sev, c.Finding)
	}
}
