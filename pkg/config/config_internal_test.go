package config

import (
	"testing"

	"github.com/spf13/afero"
)

func Test_initFormat(t *testing.T) {
	t.Parallel()
	data := []struct {
		name       string
		value      string
		format     string
		wantRegexp bool
		wantErr    bool
	}{
		{name: "fixed string", value: "XML_DECODER", format: "fixed_string"},
		{name: "glob", value: "CRLF_*", format: "glob"},
		{name: "invalid glob", value: "[invalid", format: "glob", wantErr: true},
		{name: "regexp", value: "^B1", format: "regexp", wantRegexp: true},
		{name: "invalid regexp", value: "(", format: "regexp", wantErr: true},
		{name: "unknown format", value: "foo", format: "prefix", wantErr: true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			r, err := initFormat(d.value, d.format)
			if d.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (r != nil) != d.wantRegexp {
				t.Errorf("wanted regexp: %v, got %v", d.wantRegexp, r)
			}
		})
	}
}

func TestExclude_Init(t *testing.T) {
	t.Parallel()
	e := &Exclude{Code: "XML_DECODER"}
	if err := e.Init(); err != nil {
		t.Fatal(err)
	}
	if e.CodeFormat != formatFixedString {
		t.Errorf("code_format should default to %s, got %s", formatFixedString, e.CodeFormat)
	}
	if err := (&Exclude{}).Init(); err == nil {
		t.Error("code is required")
	}
}

func TestFinder_Find(t *testing.T) {
	t.Parallel()
	data := []struct {
		name     string
		files    []string
		flag     string
		expected string
	}{
		{name: "flag", files: []string{"/work/app/.hawkeye.yaml"}, flag: "/etc/hawkeye.yaml", expected: "/etc/hawkeye.yaml"},
		{name: "yaml", files: []string{"/work/app/.hawkeye.yaml", "/work/app/.hawkeye.yml"}, expected: "/work/app/.hawkeye.yaml"},
		{name: "yml", files: []string{"/work/app/.hawkeye.yml"}, expected: "/work/app/.hawkeye.yml"},
		{name: "directory", files: []string{"/work/app/.hawkeye/config.yaml"}, expected: "/work/app/.hawkeye/config.yaml"},
		{name: "not found", files: []string{"/work/.hawkeye.yaml"}, expected: ""},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for _, f := range d.files {
				if err := afero.WriteFile(fs, f, []byte("{}\n"), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			p, err := NewFinder(fs).Find("/work/app", d.flag)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p != d.expected {
				t.Errorf("wanted %q, got %q", d.expected, p)
			}
		})
	}
}
