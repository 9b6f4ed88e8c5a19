package results

// Matcher decides whether a finding reported by module should be dropped.
type Matcher interface {
	Match(module, code string) (bool, error)
}

// Filter wraps a Recorder and drops findings matched by any of the matchers.
// A finding is kept if a matcher returns an error.
type Filter struct {
	next     Recorder
	module   string
	matchers []Matcher
	onError  func(err error)
}

func NewFilter(next Recorder, module string, matchers []Matcher, onError func(err error)) *Filter {
	return &Filter{
		next:     next,
		module:   module,
		matchers: matchers,
		onError:  onError,
	}
}

func (f *Filter) excluded(finding Finding) bool {
	for _, m := range f.matchers {
		matched, err := m.Match(f.module, finding.Code)
		if err != nil {
			if f.onError != nil {
				f.onError(err)
			}
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

func (f *Filter) Low(finding Finding) {
	if !f.excluded(finding) {
		f.next.Low(finding)
	}
}

func (f *Filter) Medium(finding Finding) {
	if !f.excluded(finding) {
		f.next.Medium(finding)
	}
}

func (f *Filter) High(finding Finding) {
	if !f.excluded(finding) {
		f.next.High(finding)
	}
}

func (f *Filter) Critical(finding Finding) {
	if !f.excluded(finding) {
		f.next.Critical(finding)
	}
}
