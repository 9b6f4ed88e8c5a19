package module

import (
	"context"
	"strings"

	"github.com/roselmamendestw/hawkeye/pkg/exec"
	"github.com/roselmamendestw/hawkeye/pkg/target"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// RunForReport executes cmd and returns the report the scanner wrote.
//
// The scanner's exit status does not matter: as long as the report exists it is returned,
// and any failure is logged as a warning. When the report is missing, a single error is
// logged with the scanner's diagnostic output and ok is false.
func RunForReport(ctx context.Context, logE *logrus.Entry, executor exec.Executor, info *Info, tgt *target.Target, cmd *exec.Command) (report []byte, ok bool) {
	resolve(logE, executor, cmd)
	res, err := executor.Run(ctx, cmd)
	stderr := ""
	if res != nil {
		stderr = strings.TrimSpace(string(res.Stderr))
		logE = logE.WithField("exit_code", res.ExitCode)
	}
	if err != nil {
		logE = logerr.WithError(logE, err)
	}
	if !tgt.Exists(info.ReportFile) {
		diag := stderr
		if diag == "" && err != nil {
			diag = err.Error()
		}
		logE.Error("There was an error while executing " + info.Title + ` and the report was not created: "` + diag + `"`)
		return nil, false
	}
	switch {
	case stderr != "":
		logE.Warn("There was an error while executing " + info.Title + ": " + stderr)
	case err != nil:
		logE.Warn("There was an error while executing " + info.Title + ": " + err.Error())
	}
	b, err := tgt.ReadFile(info.ReportFile)
	if err != nil {
		logerr.WithError(logE, err).Error("There was an error while reading the " + info.Title + " report")
		return nil, false
	}
	return b, true
}

// resolve sets the absolute path of the scanner binary to cmd.
// cmd.Name is executed as is if it isn't found.
func resolve(logE *logrus.Entry, executor exec.Executor, cmd *exec.Command) {
	p, err := executor.LookPath(cmd.Name)
	if err != nil {
		logerr.WithError(logE, err).WithField("command", cmd.Name).Debug("resolve the scanner binary")
		return
	}
	cmd.Path = p
}

// ParseFailed logs a report which exists but cannot be parsed.
// It is handled like a report which was never created: no findings are recorded.
func ParseFailed(logE *logrus.Entry, info *Info, err error) {
	logerr.WithError(logE, err).Error("There was an error while parsing the " + info.Title + " report")
}
