package initcmd_test

import (
	"testing"

	"github.com/roselmamendestw/hawkeye/pkg/config"
	"github.com/roselmamendestw/hawkeye/pkg/controller/initcmd"
	"github.com/roselmamendestw/hawkeye/pkg/results"
	"github.com/spf13/afero"
)

func TestController_Init(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	ctrl := initcmd.New(fs)
	p := "/work/app/.hawkeye/config.yaml"
	if err := ctrl.Init(p); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{}
	if err := config.NewReader(fs).Read(cfg, p); err != nil {
		t.Fatalf("the template should be a valid configuration: %v", err)
	}
	if cfg.Threshold != results.Low {
		t.Errorf("wanted low, got %s", cfg.Threshold)
	}
}

func TestController_Init_exist(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	p := "/work/app/.hawkeye.yaml"
	content := "fail_on: high\n"
	if err := afero.WriteFile(fs, p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := initcmd.New(fs).Init(p); err != nil {
		t.Fatal(err)
	}
	b, err := afero.ReadFile(fs, p)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != content {
		t.Errorf("the existing file shouldn't be changed: %s", string(b))
	}
}
