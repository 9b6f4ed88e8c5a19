// Package registry knows every scan module hawkeye ships.
package registry

import (
	"errors"

	"github.com/roselmamendestw/hawkeye/pkg/exec"
	"github.com/roselmamendestw/hawkeye/pkg/module"
	"github.com/roselmamendestw/hawkeye/pkg/module/bandit"
	"github.com/roselmamendestw/hawkeye/pkg/module/findsecbugs"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

type Registry struct {
	modules []module.Module
}

func New(executor exec.Executor, logE *logrus.Entry) *Registry {
	return &Registry{
		modules: []module.Module{
			findsecbugs.New(executor, logE),
			bandit.New(executor, logE),
		},
	}
}

// NewWith returns a registry of the given modules. The order is kept.
func NewWith(modules ...module.Module) *Registry {
	return &Registry{modules: modules}
}

func (r *Registry) All() []module.Module {
	return append([]module.Module(nil), r.modules...)
}

// Select returns the modules with the names in the registry order.
// All modules are returned if names is empty.
func (r *Registry) Select(names []string) ([]module.Module, error) {
	if len(names) == 0 {
		return r.All(), nil
	}
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		if r.find(name) == nil {
			return nil, logerr.WithFields(errors.New("unknown module"), logrus.Fields{ //nolint:wrapcheck
				"module": name,
			})
		}
		wanted[name] = struct{}{}
	}
	selected := make([]module.Module, 0, len(wanted))
	for _, m := range r.modules {
		if _, ok := wanted[m.Info().Name]; ok {
			selected = append(selected, m)
		}
	}
	return selected, nil
}

func (r *Registry) find(name string) module.Module {
	for _, m := range r.modules {
		if m.Info().Name == name {
			return m
		}
	}
	return nil
}
