package module

import (
	"sort"
	"strconv"
	"strings"
)

// LineRange is a span of source lines reported for one finding. End is inclusive;
// an End which is not after Start denotes a single line.
type LineRange struct {
	Start int
	End   int
}

func (r LineRange) normalize() LineRange {
	if r.End <= r.Start {
		r.End = r.Start
	}
	return r
}

func (r LineRange) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return "[" + strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End) + "]"
}

const unspecifiedLines = "unspecified"

// Mitigation renders the source lines of a finding as "Check line(s) 30" or
// "Check line(s) [47-48], 50, 55". Duplicates are dropped and the remaining ranges are
// sorted by start, then end. Without any usable line it renders "Check line(s) unspecified".
func Mitigation(ranges []LineRange) string {
	seen := make(map[LineRange]struct{}, len(ranges))
	uniq := make([]LineRange, 0, len(ranges))
	for _, r := range ranges {
		if r.Start <= 0 {
			continue
		}
		r = r.normalize()
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		uniq = append(uniq, r)
	}
	if len(uniq) == 0 {
		return "Check line(s) " + unspecifiedLines
	}
	sort.SliceStable(uniq, func(i, j int) bool {
		if uniq[i].Start != uniq[j].Start {
			return uniq[i].Start < uniq[j].Start
		}
		return uniq[i].End < uniq[j].End
	})
	parts := make([]string, len(uniq))
	for i, r := range uniq {
		parts[i] = r.String()
	}
	return "Check line(s) " + strings.Join(parts, ", ")
}
