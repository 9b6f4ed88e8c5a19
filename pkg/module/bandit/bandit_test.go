package bandit_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/roselmamendestw/hawkeye/pkg/exec"
	"github.com/roselmamendestw/hawkeye/pkg/exec/exectest"
	"github.com/roselmamendestw/hawkeye/pkg/module/bandit"
	"github.com/roselmamendestw/hawkeye/pkg/results"
	"github.com/roselmamendestw/hawkeye/pkg/target"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
)

const root = "/work/app"

func newTarget(t *testing.T, files ...string) (afero.Fs, *target.Target) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		if err := afero.WriteFile(fs, root+"/"+f, []byte(""), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return fs, target.New(fs, root)
}

func TestModule_Handles(t *testing.T) {
	t.Parallel()
	data := []struct {
		name     string
		files    []string
		commands map[string]string
		exp      bool
		warnings []string
	}{
		{
			name:     "python project",
			files:    []string{"app/run.py"},
			commands: map[string]string{"bandit": "/usr/local/bin/bandit"},
			exp:      true,
		},
		{
			name:     "no python files",
			files:    []string{"src/main/java/App.java"},
			commands: map[string]string{"bandit": "/usr/local/bin/bandit"},
			exp:      false,
		},
		{
			name:  "bandit is not installed",
			files: []string{"app/run.py"},
			exp:   false,
			warnings: []string{
				"python files found but bandit was not found in $PATH",
				"bandit scan will not run unless you install bandit CLI",
				"Installation instructions: https://bandit.readthedocs.io/en/latest/start.html#installation",
			},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			_, tgt := newTarget(t, d.files...)
			logger, hook := test.NewNullLogger()
			m := bandit.New(&exectest.Executor{Commands: d.commands}, logrus.NewEntry(logger))
			if got := m.Handles(tgt); got != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, got)
			}
			var warnings []string
			for _, e := range hook.AllEntries() {
				warnings = append(warnings, e.Message)
			}
			if diff := cmp.Diff(d.warnings, warnings); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestModule_Run(t *testing.T) { //nolint:funlen
	t.Parallel()
	fs, tgt := newTarget(t, "app/run.py", "app/load.py")
	report, err := os.ReadFile("testdata/banditReport.json")
	if err != nil {
		t.Fatal(err)
	}
	executor := &exectest.Executor{
		Commands: map[string]string{"bandit": "/usr/local/bin/bandit"},
		RunFunc: func(_ context.Context, _ *exec.Command) (*exec.Result, error) {
			if err := afero.WriteFile(fs, root+"/banditReport.json", report, 0o644); err != nil {
				t.Fatal(err)
			}
			return &exec.Result{ExitCode: 1}, nil
		},
	}
	coll := results.NewCollection()
	done := false
	bandit.New(executor, nil).Run(context.Background(), tgt, coll.For("bandit"), func() {
		done = true
	})
	if !done {
		t.Fatal("done must be called")
	}
	if diff := cmp.Diff([]string{"bandit -r -q -f json -o /work/app/banditReport.json /work/app"}, executor.Executed()); diff != "" {
		t.Fatal(diff)
	}
	exp := []*results.Entry{
		{
			Module:   "bandit",
			Severity: results.High,
			Finding: results.Finding{
				Code:        "B602",
				Offender:    "app/run.py",
				Description: "subprocess call with shell=True identified, security issue.",
				Mitigation:  "Check line(s) 20",
			},
		},
		{
			Module:   "bandit",
			Severity: results.Medium,
			Finding: results.Finding{
				Code:        "B301",
				Offender:    "app/load.py",
				Description: "Pickle and modules that wrap it can be unsafe when used to deserialize untrusted data, possible security issue.",
				Mitigation:  "Check line(s) [12-13]",
			},
		},
		{
			Module:   "bandit",
			Severity: results.Low,
			Finding: results.Finding{
				Code:        "B404",
				Offender:    "app/run.py",
				Description: "Consider possible security implications associated with the subprocess module.",
				Mitigation:  "Check line(s) 1",
			},
		},
	}
	if diff := cmp.Diff(exp, coll.Entries()); diff != "" {
		t.Fatal(diff)
	}
}

func TestModule_Run_reportNotCreated(t *testing.T) {
	t.Parallel()
	_, tgt := newTarget(t, "app/run.py")
	executor := &exectest.Executor{
		Commands: map[string]string{"bandit": "/usr/local/bin/bandit"},
		RunFunc: func(_ context.Context, _ *exec.Command) (*exec.Result, error) {
			return &exec.Result{Stderr: []byte("ERROR: no such option: -q"), ExitCode: 2}, nil
		},
	}
	logger, hook := test.NewNullLogger()
	coll := results.NewCollection()
	bandit.New(executor, logrus.NewEntry(logger)).Run(context.Background(), tgt, coll.For("bandit"), func() {})

	entries := hook.AllEntries()
	if len(entries) != 1 {
		t.Fatalf("wanted 1 log, got %d", len(entries))
	}
	if entries[0].Level != logrus.ErrorLevel {
		t.Fatalf("wanted an error, got %s", entries[0].Level)
	}
	if exp := `There was an error while executing Bandit and the report was not created: "ERROR: no such option: -q"`; entries[0].Message != exp {
		t.Fatalf("wanted %q, got %q", exp, entries[0].Message)
	}
	if n := len(coll.Entries()); n != 0 {
		t.Fatalf("wanted no findings, got %d", n)
	}
}
