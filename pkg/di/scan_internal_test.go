package di

import (
	"bytes"
	"testing"

	"github.com/roselmamendestw/hawkeye/pkg/cli/flag"
)

func Test_resolveTarget(t *testing.T) {
	t.Parallel()
	data := []struct {
		name     string
		target   string
		expected string
	}{
		{name: "empty", target: "", expected: "/work"},
		{name: "relative", target: "app", expected: "/work/app"},
		{name: "relative with dot", target: "./app/../lib", expected: "/work/lib"},
		{name: "absolute", target: "/src/app/", expected: "/src/app"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if got := resolveTarget(d.target, "/work"); got != d.expected {
				t.Errorf("wanted %s, got %s", d.expected, got)
			}
		})
	}
}

func Test_buildParam(t *testing.T) {
	t.Parallel()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	flags := &Flags{
		GlobalFlags: &flag.GlobalFlags{Config: "/etc/hawkeye.yaml"},
		Target:      "app",
		Modules:     []string{"bandit"},
		FailOn:      "high",
		Format:      "sarif",
		Version:     "v1.0.0",
		CWD:         "/work",
	}
	got := buildParam(flags, stdout, stderr)
	if got.Target != "/work/app" {
		t.Errorf("Target: wanted /work/app, got %s", got.Target)
	}
	if got.ConfigFilePath != "/etc/hawkeye.yaml" {
		t.Errorf("ConfigFilePath: wanted /etc/hawkeye.yaml, got %s", got.ConfigFilePath)
	}
	if len(got.Modules) != 1 || got.Modules[0] != "bandit" {
		t.Errorf("Modules: wanted [bandit], got %v", got.Modules)
	}
	if got.FailOn != "high" || got.Format != "sarif" || got.Version != "v1.0.0" {
		t.Errorf("unexpected param: %+v", got)
	}
	if got.Stdout != stdout || got.Stderr != stderr {
		t.Error("writers aren't set")
	}
}

func TestSetEnv(t *testing.T) {
	t.Parallel()
	data := []struct {
		name     string
		env      map[string]string
		expected bool
	}{
		{name: "empty", env: map[string]string{}},
		{name: "github actions", env: map[string]string{"GITHUB_ACTIONS": "true"}, expected: true},
		{name: "not true", env: map[string]string{"GITHUB_ACTIONS": "1"}},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			flags := &Flags{}
			SetEnv(flags, func(k string) string { return d.env[k] })
			if flags.IsGitHubActions != d.expected {
				t.Errorf("wanted %v, got %v", d.expected, flags.IsGitHubActions)
			}
		})
	}
}
