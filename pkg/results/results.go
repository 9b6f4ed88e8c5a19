// Package results holds the canonical finding model and the sink scan modules record into.
// A Collection is the single shared mutable resource of a scan: modules run concurrently
// and record through it, so every append is serialized.
package results

import (
	"sort"
	"sync"
)

// Finding is one normalized tool-reported issue.
type Finding struct {
	Code        string `json:"code"`
	Offender    string `json:"offender"`
	Description string `json:"description"`
	Mitigation  string `json:"mitigation"`
}

// Recorder receives classified findings, one method per severity.
type Recorder interface {
	Low(f Finding)
	Medium(f Finding)
	High(f Finding)
	Critical(f Finding)
}

// Record dispatches f to the recorder method matching sev.
// Severities outside the known range are recorded as low.
func Record(r Recorder, sev Severity, f Finding) {
	switch sev {
	case Critical:
		r.Critical(f)
	case High:
		r.High(f)
	case Medium:
		r.Medium(f)
	default:
		r.Low(f)
	}
}

// Entry is a recorded finding with the module that reported it.
type Entry struct {
	Module   string   `json:"module"`
	Severity Severity `json:"level"`
	Finding
}

type Collection struct {
	mutex   sync.Mutex
	entries []*Entry
}

func NewCollection() *Collection {
	return &Collection{}
}

func (c *Collection) add(module string, sev Severity, f Finding) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = append(c.entries, &Entry{
		Module:   module,
		Severity: sev,
		Finding:  f,
	})
}

// For returns a Recorder which tags every finding with the module name.
func (c *Collection) For(module string) Recorder {
	return &moduleRecorder{collection: c, module: module}
}

// Entries returns a copy of the recorded entries sorted by severity (most severe first),
// then module, code, and offender. Findings with equal keys keep their recording order.
func (c *Collection) Entries() []*Entry {
	c.mutex.Lock()
	entries := make([]*Entry, len(c.entries))
	copy(entries, c.entries)
	c.mutex.Unlock()
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Severity != b.Severity {
			return a.Severity > b.Severity
		}
		if a.Module != b.Module {
			return a.Module < b.Module
		}
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		return a.Offender < b.Offender
	})
	return entries
}

// Count returns the number of findings recorded per severity.
func (c *Collection) Count() map[Severity]int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	m := make(map[Severity]int, len(Severities))
	for _, e := range c.entries {
		m[e.Severity]++
	}
	return m
}

// Highest returns the most severe recorded severity, or false if nothing was recorded.
func (c *Collection) Highest() (Severity, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	var highest Severity
	for _, e := range c.entries {
		if e.Severity > highest {
			highest = e.Severity
		}
	}
	return highest, highest != 0
}

type moduleRecorder struct {
	collection *Collection
	module     string
}

func (r *moduleRecorder) Low(f Finding)      { r.collection.add(r.module, Low, f) }
func (r *moduleRecorder) Medium(f Finding)   { r.collection.add(r.module, Medium, f) }
func (r *moduleRecorder) High(f Finding)     { r.collection.add(r.module, High, f) }
func (r *moduleRecorder) Critical(f Finding) { r.collection.add(r.module, Critical, f) }
