// Package modules implements the 'hawkeye modules' command.
// It prints the scan modules hawkeye knows and whether their scanners are installed.
package modules

import (
	"io"

	"github.com/roselmamendestw/hawkeye/pkg/module"
)

type Lister interface {
	All() []module.Module
}

type CommandChecker interface {
	CommandExists(name string) bool
}

// ModuleInfo is passed to the line template.
type ModuleInfo struct {
	Name       string // e.g. findSecBugs
	Title      string // e.g. FindSecBugs
	Ecosystem  string // e.g. java
	Command    string // scanner binary
	Artifact   string // build output the scanner needs. Empty if none
	InstallURL string
	Installed  bool // true if Command is found in $PATH
}

type Param struct {
	LineTemplate string
}

type Controller struct {
	modules Lister
	checker CommandChecker
	param   *Param
	stdout  io.Writer
}

func New(modules Lister, checker CommandChecker, param *Param, stdout io.Writer) *Controller {
	return &Controller{
		modules: modules,
		checker: checker,
		param:   param,
		stdout:  stdout,
	}
}
