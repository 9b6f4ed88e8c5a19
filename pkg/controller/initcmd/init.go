package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/roselmamendestw/hawkeye/refs/heads/main/json-schema/hawkeye.json
# hawkeye - https://github.com/roselmamendestw/hawkeye
# modules:
#   - findSecBugs
#   - bandit

# hawkeye exits with a non-zero status code if a finding at or above fail_on is found.
fail_on: low

exclude:
# - code: PREDICTABLE_RANDOM
# - code: CRLF_.*
#   code_format: regexp
#   module: findSecBugs
# - code: "B1*"
#   code_format: glob
#   module: bandit
`
	filePermission os.FileMode = 0o644
	dirPermission  os.FileMode = 0o755
)

// Init creates a configuration file if it doesn't exist.
// An existing file is left untouched.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := c.fs.MkdirAll(filepath.Dir(configFilePath), dirPermission); err != nil {
		return fmt.Errorf("create a directory for the configuration file: %w", err)
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
