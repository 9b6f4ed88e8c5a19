package bandit

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/roselmamendestw/hawkeye/pkg/module"
	"github.com/roselmamendestw/hawkeye/pkg/results"
)

type report struct {
	Results []*issue `json:"results"`
}

type issue struct {
	TestID        string `json:"test_id"`
	Filename      string `json:"filename"`
	IssueText     string `json:"issue_text"`
	IssueSeverity string `json:"issue_severity"`
	LineNumber    int    `json:"line_number"`
	LineRange     []int  `json:"line_range"`
}

type candidate struct {
	Severity string
	Finding  results.Finding
}

func parseReport(b []byte, root string) ([]*candidate, error) {
	if len(strings.TrimSpace(string(b))) == 0 {
		return nil, errors.New("the report is empty")
	}
	r := &report{}
	if err := json.Unmarshal(b, r); err != nil {
		return nil, fmt.Errorf("decode a report as JSON: %w", err)
	}
	candidates := make([]*candidate, 0, len(r.Results))
	for _, i := range r.Results {
		candidates = append(candidates, &candidate{
			Severity: i.IssueSeverity,
			Finding: results.Finding{
				Code:        i.TestID,
				Offender:    relPath(root, i.Filename),
				Description: strings.TrimSpace(i.IssueText),
				Mitigation:  module.Mitigation(i.lineRanges()),
			},
		})
	}
	return candidates, nil
}

func (i *issue) lineRanges() []module.LineRange {
	if len(i.LineRange) == 0 {
		return []module.LineRange{{Start: i.LineNumber, End: i.LineNumber}}
	}
	start, end := i.LineRange[0], i.LineRange[0]
	for _, l := range i.LineRange[1:] {
		start = min(start, l)
		end = max(end, l)
	}
	return []module.LineRange{{Start: start, End: end}}
}

func relPath(root, p string) string {
	if !filepath.IsAbs(p) {
		return filepath.ToSlash(filepath.Clean(p))
	}
	rel, err := filepath.Rel(root, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

func classify(issueSeverity string) (sev results.Severity, known bool) {
	switch strings.ToUpper(strings.TrimSpace(issueSeverity)) {
	case "HIGH":
		return results.High, true
	case "MEDIUM":
		return results.Medium, true
	case "LOW":
		return results.Low, true
	default:
		return results.Low, false
	}
}
