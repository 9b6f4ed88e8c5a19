package results

import (
	"fmt"
	"strings"
)

// Severity is the canonical classification every tool-specific priority is mapped onto.
type Severity int

const (
	Low Severity = iota + 1
	Medium
	High
	Critical
)

// Severities lists every severity from the most to the least severe.
var Severities = []Severity{Critical, High, Medium, Low} //nolint:gochecknoglobals

func (s Severity) String() string {
	switch s {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	case Critical:
		return "critical"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

func (s Severity) Valid() bool {
	return s >= Low && s <= Critical
}

// AtLeast reports whether s is as severe as or more severe than threshold.
func (s Severity) AtLeast(threshold Severity) bool {
	return s >= threshold
}

func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	case "critical":
		return Critical, nil
	default:
		return 0, fmt.Errorf("severity must be low, medium, high, or critical: %q", s)
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid severity: %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(b []byte) error {
	v, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
