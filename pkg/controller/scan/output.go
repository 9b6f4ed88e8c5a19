package scan

import (
	"encoding/json"
	"fmt"

	"github.com/roselmamendestw/hawkeye/pkg/results"
	"github.com/roselmamendestw/hawkeye/pkg/sarif"
)

func (c *Controller) output(entries []*results.Entry) error {
	if c.param.Format == FormatSARIF {
		return c.outputSARIF(entries)
	}
	return c.outputJSON(entries)
}

func (c *Controller) outputJSON(entries []*results.Entry) error {
	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("encode findings as JSON: %w", err)
	}
	return nil
}

// outputSARIF outputs findings in SARIF format to stdout.
func (c *Controller) outputSARIF(entries []*results.Entry) error {
	log := sarif.Log{
		Schema:  sarif.Schema,
		Version: sarif.Version,
		Runs: []sarif.Run{
			{
				Tool: sarif.Tool{
					Driver: sarif.Driver{
						Name:           "hawkeye",
						InformationURI: "https://github.com/roselmamendestw/hawkeye",
						Version:        c.param.Version,
						Rules:          buildSARIFRules(entries),
					},
				},
				Results: buildSARIFResults(entries),
			},
		},
	}

	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func ruleID(e *results.Entry) string {
	return e.Module + "/" + e.Code
}

func buildSARIFRules(entries []*results.Entry) []sarif.Rule {
	seen := map[string]struct{}{}
	rules := []sarif.Rule{}
	for _, e := range entries {
		id := ruleID(e)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rules = append(rules, sarif.Rule{
			ID:               id,
			ShortDescription: sarif.Message{Text: e.Description},
		})
	}
	return rules
}

func sarifLevel(sev results.Severity) string {
	switch sev {
	case results.Critical, results.High:
		return "error"
	case results.Medium:
		return "warning"
	default:
		return "note"
	}
}

func buildSARIFResults(entries []*results.Entry) []sarif.Result {
	ret := make([]sarif.Result, 0, len(entries))
	for _, e := range entries {
		msg := e.Description
		if e.Offender != "" {
			msg += " (" + e.Offender + ")"
		}
		ret = append(ret, sarif.Result{
			RuleID:  ruleID(e),
			Level:   sarifLevel(e.Severity),
			Message: sarif.Message{Text: msg},
			Properties: &sarif.Properties{
				Module:     e.Module,
				Severity:   e.Severity.String(),
				Offender:   e.Offender,
				Mitigation: e.Mitigation,
			},
		})
	}
	return ret
}
