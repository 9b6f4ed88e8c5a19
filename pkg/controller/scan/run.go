package scan

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/roselmamendestw/hawkeye/pkg/config"
	"github.com/roselmamendestw/hawkeye/pkg/module"
	"github.com/roselmamendestw/hawkeye/pkg/results"
	"github.com/roselmamendestw/hawkeye/pkg/target"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var ErrFindingsAboveThreshold = errors.New("findings at or above the threshold were found")

const (
	FormatJSON  = "json"
	FormatSARIF = "sarif"
)

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	if err := validateFormat(c.param.Format); err != nil {
		return err
	}
	tgt := target.New(c.fs, c.param.Target)
	cfg, err := c.readConfig(tgt.Root())
	if err != nil {
		return err
	}
	threshold, err := c.threshold(cfg)
	if err != nil {
		return err
	}
	names := cfg.Modules
	if len(c.param.Modules) > 0 {
		names = c.param.Modules
	}
	modules, err := c.modules.Select(names)
	if err != nil {
		return fmt.Errorf("select scan modules: %w", err)
	}

	coll := results.NewCollection()
	c.scan(ctx, logE, tgt, cfg, modules, coll)

	if err := c.output(coll.Entries()); err != nil {
		return err
	}
	c.summary.Output(coll.Count())
	if highest, ok := coll.Highest(); ok && highest.AtLeast(threshold) {
		logE.WithFields(logrus.Fields{
			"highest":   highest.String(),
			"threshold": threshold.String(),
		}).Debug("findings at or above the threshold were found")
		return ErrFindingsAboveThreshold
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case "", FormatJSON, FormatSARIF:
		return nil
	default:
		return logerr.WithFields(errors.New("format must be json or sarif"), logrus.Fields{ //nolint:wrapcheck
			"format": format,
		})
	}
}

func (c *Controller) readConfig(root string) (*config.Config, error) {
	p, err := c.cfgFinder.Find(root, c.param.ConfigFilePath)
	if err != nil {
		return nil, fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, p); err != nil {
		return nil, fmt.Errorf("read a configuration file: %w", err)
	}
	return cfg, nil
}

func (c *Controller) threshold(cfg *config.Config) (results.Severity, error) {
	if c.param.FailOn == "" {
		return cfg.Threshold, nil
	}
	sev, err := results.ParseSeverity(c.param.FailOn)
	if err != nil {
		return 0, fmt.Errorf("parse --fail-on: %w", err)
	}
	return sev, nil
}

// scan returns after every applicable module has called done.
func (c *Controller) scan(ctx context.Context, logE *logrus.Entry, tgt *target.Target, cfg *config.Config, modules []module.Module, coll *results.Collection) {
	var wg sync.WaitGroup
	for _, m := range modules {
		name := m.Info().Name
		logE := logE.WithField("module", name)
		if !m.Handles(tgt) {
			logE.Debug("the module doesn't handle the target")
			continue
		}
		logE.Info("running the scan module")
		recorder := results.NewFilter(coll.For(name), name, cfg.Matchers(name), func(err error) {
			logerr.WithError(logE, err).Warn("match a finding with exclusions")
		})
		wg.Add(1)
		go m.Run(ctx, tgt, recorder, wg.Done)
	}
	wg.Wait()
}
