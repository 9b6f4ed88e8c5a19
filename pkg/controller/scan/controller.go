// Package scan runs the applicable scan modules against a target directory and reports
// what they found. Every module decides on its own whether it applies; the applicable ones
// run concurrently and record into a shared collection, which is written once all of them
// have finished.
package scan

import (
	"io"

	"github.com/roselmamendestw/hawkeye/pkg/config"
	"github.com/roselmamendestw/hawkeye/pkg/module"
	"github.com/spf13/afero"
)

type Controller struct {
	fs        afero.Fs
	modules   ModuleSelector
	cfgFinder ConfigFinder
	cfgReader ConfigReader
	param     *ParamRun
	summary   *Summary
}

type ModuleSelector interface {
	Select(names []string) ([]module.Module, error)
}

type ConfigFinder interface {
	Find(root, configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

type ParamRun struct {
	Target         string
	ConfigFilePath string
	// Modules overrides modules in the configuration file.
	Modules []string
	// FailOn overrides fail_on in the configuration file.
	FailOn  string
	Format  string
	Version string
	Stdout  io.Writer
	Stderr  io.Writer
}

func New(fs afero.Fs, modules ModuleSelector, cfgFinder ConfigFinder, cfgReader ConfigReader, param *ParamRun) *Controller {
	return &Controller{
		fs:        fs,
		modules:   modules,
		cfgFinder: cfgFinder,
		cfgReader: cfgReader,
		param:     param,
		summary:   NewSummary(param.Stderr),
	}
}
