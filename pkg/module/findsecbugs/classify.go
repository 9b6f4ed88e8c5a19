package findsecbugs

import "github.com/roselmamendestw/hawkeye/pkg/results"

// classify maps a FindBugs priority onto a severity.
// Priorities outside 1-3 are reported as low with known set to false.
func classify(priority int) (sev results.Severity, known bool) {
	switch priority {
	case 1:
		return results.High, true
	case 2: //nolint:mnd
		return results.Medium, true
	case 3: //nolint:mnd
		return results.Low, true
	default:
		return results.Low, false
	}
}
