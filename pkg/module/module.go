// Package module defines the contract every scanner integration implements and the
// behavior they share: availability warnings and the report-after-run policy.
//
// A Module is stateless. Handles decides applicability without spawning processes;
// Run executes the tool once, records classified findings, and always calls done.
package module

import (
	"context"
	"io"

	"github.com/roselmamendestw/hawkeye/pkg/results"
	"github.com/roselmamendestw/hawkeye/pkg/target"
	"github.com/sirupsen/logrus"
)

type Module interface {
	Info() *Info
	Handles(tgt *target.Target) bool
	Run(ctx context.Context, tgt *target.Target, recorder results.Recorder, done func())
}

// Info is the static description of a module, used for log messages.
type Info struct {
	// Name identifies the module in configuration and output, e.g. "findSecBugs".
	Name string
	// Title is the display name used in execution errors, e.g. "FindSecBugs".
	Title string
	// Ecosystem is the language whose files make the module relevant, e.g. "java".
	Ecosystem string
	// Command is the scanner binary, e.g. "findsecbugs".
	Command string
	// Artifact is the kind of build output the scanner needs, e.g. "jar". Empty if none.
	Artifact string
	// InstallURL points at installation instructions.
	InstallURL string
	// ReportFile is the report path relative to the target root.
	ReportFile string
}

// WarnNotInstalled logs the messages emitted when the scanner binary is not on $PATH.
func (i *Info) WarnNotInstalled(logE *logrus.Entry) {
	logE.Warn(i.Ecosystem + " files found but " + i.Name + " was not found in $PATH")
	logE.Warn(i.Name + " scan will not run unless you install " + i.Name + " CLI")
	logE.Warn("Installation instructions: " + i.InstallURL)
}

// WarnNoArtifact logs the messages emitted when the project has not been built.
func (i *Info) WarnNoArtifact(logE *logrus.Entry) {
	logE.Warn(i.Ecosystem + " files were found but no " + i.Artifact + " files")
	logE.Warn(i.Name + " scan will not run unless you build the project before")
}

// NullEntry returns a logger entry which discards everything.
func NullEntry() *logrus.Entry {
	logger := logrus.New()
	logger.Out = io.Discard
	return logrus.NewEntry(logger)
}
