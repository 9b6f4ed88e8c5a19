package config

import (
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"regexp"

	"github.com/roselmamendestw/hawkeye/pkg/results"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Modules []string   `json:"modules,omitempty" jsonschema:"description=Names of scan modules to run. If this is empty, every module runs"`
	Exclude []*Exclude `json:"exclude,omitempty" jsonschema:"description=Findings that hawkeye drops before reporting"`
	FailOn  string     `json:"fail_on,omitempty" yaml:"fail_on" jsonschema:"description=hawkeye exits with a non-zero status code if a finding at or above this level is found. The default is low,enum=low,enum=medium,enum=high,enum=critical"`
	// Threshold is parsed from FailOn.
	Threshold results.Severity `json:"-" yaml:"-"`
}

type Exclude struct {
	Code       string `json:"code" jsonschema:"description=Finding code such as a FindSecBugs bug pattern or a bandit test id"`
	CodeFormat string `json:"code_format,omitempty" yaml:"code_format" jsonschema:"description=The default is fixed_string,enum=fixed_string,enum=glob,enum=regexp"`
	Module     string `json:"module,omitempty" jsonschema:"description=Scan module name. If this is empty, findings of every module are excluded"`
	codeRegexp *regexp.Regexp
}

const (
	formatFixedString = "fixed_string"
	formatGlob        = "glob"
	formatRegexp      = "regexp"
)

func initFormat(value, format string) (*regexp.Regexp, error) {
	switch format {
	case formatFixedString:
		return nil, nil //nolint:nilnil
	case formatGlob:
		if _, err := path.Match(value, "a"); err != nil {
			return nil, fmt.Errorf("parse as a glob: %w", err)
		}
		return nil, nil //nolint:nilnil
	case formatRegexp:
		r, err := regexp.Compile(value)
		if err != nil {
			return nil, fmt.Errorf("compile as a regular expression: %w", err)
		}
		return r, nil
	default:
		return nil, errors.New("code_format must be fixed_string, glob, or regexp")
	}
}

func (e *Exclude) Init() error {
	if e.Code == "" {
		return errors.New("code is required")
	}
	if e.CodeFormat == "" {
		e.CodeFormat = formatFixedString
	}
	var err error
	e.codeRegexp, err = initFormat(e.Code, e.CodeFormat)
	return err
}

func match(value, pattern, format string, r *regexp.Regexp) (bool, error) {
	switch format {
	case formatFixedString:
		return value == pattern, nil
	case formatGlob:
		f, err := path.Match(pattern, value)
		if err != nil {
			return false, fmt.Errorf("match as a glob: %w", err)
		}
		return f, nil
	case formatRegexp:
		if r == nil {
			return false, errors.New("the exclusion isn't initialized")
		}
		return r.MatchString(value), nil
	default:
		return false, errors.New("unexpected format: " + format)
	}
}

// Match reports whether a finding of the module with the code is excluded.
func (e *Exclude) Match(module, code string) (bool, error) {
	if e.Module != "" && e.Module != module {
		return false, nil
	}
	f, err := match(code, e.Code, e.CodeFormat, e.codeRegexp)
	if err != nil {
		return false, fmt.Errorf("match code: %w", err)
	}
	return f, nil
}

// Matchers returns the exclusions of the module.
func (c *Config) Matchers(module string) []results.Matcher {
	var matchers []results.Matcher
	for _, e := range c.Exclude {
		if e.Module == "" || e.Module == module {
			matchers = append(matchers, e)
		}
	}
	return matchers
}

func getConfigPath(fs afero.Fs, root string) (string, error) {
	for _, p := range []string{".hawkeye.yaml", ".hawkeye.yml", filepath.Join(".hawkeye", "config.yaml")} {
		p = filepath.Join(root, p)
		f, err := afero.Exists(fs, p)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", p, err)
		}
		if f {
			return p, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns configFilePath if it isn't empty.
// Otherwise it searches a configuration file in root, and returns an empty string if nothing is found.
func (f *Finder) Find(root, configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return getConfigPath(f.fs, root)
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath != "" {
		if err := r.decode(cfg, configFilePath); err != nil {
			return err
		}
	}
	return cfg.Init()
}

func (r *Reader) decode(cfg *Config, configFilePath string) error {
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	return nil
}

func (c *Config) Init() error {
	for _, name := range c.Modules {
		if name == "" {
			return errors.New("module name must not be empty")
		}
	}
	for _, e := range c.Exclude {
		if err := e.Init(); err != nil {
			return fmt.Errorf("initialize exclude: %w", err)
		}
	}
	if c.FailOn == "" {
		c.Threshold = results.Low
		return nil
	}
	sev, err := results.ParseSeverity(c.FailOn)
	if err != nil {
		return fmt.Errorf("parse fail_on: %w", err)
	}
	c.Threshold = sev
	return nil
}
