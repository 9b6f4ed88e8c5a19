package config_test

import (
	"testing"

	"github.com/roselmamendestw/hawkeye/pkg/config"
	"github.com/roselmamendestw/hawkeye/pkg/results"
	"github.com/spf13/afero"
)

func TestExclude_Match(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name     string
		exclude  *config.Exclude
		module   string
		code     string
		expected bool
	}{
		{
			name:     "match by code",
			exclude:  &config.Exclude{Code: "PREDICTABLE_RANDOM"},
			module:   "findSecBugs",
			code:     "PREDICTABLE_RANDOM",
			expected: true,
		},
		{
			name:     "code doesn't match",
			exclude:  &config.Exclude{Code: "PREDICTABLE_RANDOM"},
			module:   "findSecBugs",
			code:     "XML_DECODER",
			expected: false,
		},
		{
			name:     "match by code and module",
			exclude:  &config.Exclude{Code: "B101", Module: "bandit"},
			module:   "bandit",
			code:     "B101",
			expected: true,
		},
		{
			name:     "module doesn't match",
			exclude:  &config.Exclude{Code: "B101", Module: "bandit"},
			module:   "findSecBugs",
			code:     "B101",
			expected: false,
		},
		{
			name:     "glob",
			exclude:  &config.Exclude{Code: "CRLF_*", CodeFormat: "glob"},
			module:   "findSecBugs",
			code:     "CRLF_INJECTION_LOGS",
			expected: true,
		},
		{
			name:     "regexp",
			exclude:  &config.Exclude{Code: `^B[0-9]{2}1$`, CodeFormat: "regexp"},
			module:   "bandit",
			code:     "B101",
			expected: true,
		},
		{
			name:     "regexp doesn't match",
			exclude:  &config.Exclude{Code: `^B[0-9]{2}1$`, CodeFormat: "regexp"},
			module:   "bandit",
			code:     "B602",
			expected: false,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if err := d.exclude.Init(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			matched, err := d.exclude.Match(d.module, d.code)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if matched != d.expected {
				t.Errorf("wanted %v, got %v", d.expected, matched)
			}
		})
	}
}

func TestReader_Read(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name      string
		content   string
		path      string
		modules   []string
		excludes  int
		threshold results.Severity
		wantErr   bool
	}{
		{
			name:      "no configuration file",
			threshold: results.Low,
		},
		{
			name:      "empty file",
			path:      "/work/app/.hawkeye.yaml",
			content:   "",
			threshold: results.Low,
		},
		{
			name: "full",
			path: "/work/app/.hawkeye.yaml",
			content: `modules:
  - findSecBugs
exclude:
  - code: PREDICTABLE_RANDOM
  - code: "B*"
    code_format: glob
    module: bandit
fail_on: high
`,
			modules:   []string{"findSecBugs"},
			excludes:  2,
			threshold: results.High,
		},
		{
			name:    "invalid fail_on",
			path:    "/work/app/.hawkeye.yaml",
			content: "fail_on: urgent\n",
			wantErr: true,
		},
		{
			name:    "invalid code format",
			path:    "/work/app/.hawkeye.yaml",
			content: "exclude:\n  - code: foo\n    code_format: prefix\n",
			wantErr: true,
		},
		{
			name:    "invalid regexp",
			path:    "/work/app/.hawkeye.yaml",
			content: "exclude:\n  - code: \"(\"\n    code_format: regexp\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			path:    "/work/app/.hawkeye.yaml",
			content: "modules: [\n",
			wantErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if d.path != "" {
				if err := afero.WriteFile(fs, d.path, []byte(d.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			cfg := &config.Config{}
			err := config.NewReader(fs).Read(cfg, d.path)
			if d.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(cfg.Modules) != len(d.modules) {
				t.Errorf("wanted modules %v, got %v", d.modules, cfg.Modules)
			}
			if len(cfg.Exclude) != d.excludes {
				t.Errorf("wanted %d excludes, got %d", d.excludes, len(cfg.Exclude))
			}
			if cfg.Threshold != d.threshold {
				t.Errorf("wanted threshold %s, got %s", d.threshold, cfg.Threshold)
			}
		})
	}
}

func TestConfig_Matchers(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{
		Exclude: []*config.Exclude{
			{Code: "A"},
			{Code: "B", Module: "bandit"},
			{Code: "C", Module: "findSecBugs"},
		},
	}
	if err := cfg.Init(); err != nil {
		t.Fatal(err)
	}
	if n := len(cfg.Matchers("bandit")); n != 2 {
		t.Errorf("wanted 2 matchers, got %d", n)
	}
	if n := len(cfg.Matchers("unknown")); n != 1 {
		t.Errorf("wanted 1 matcher, got %d", n)
	}
}
