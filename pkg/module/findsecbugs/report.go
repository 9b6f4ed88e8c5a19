package findsecbugs

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/roselmamendestw/hawkeye/pkg/module"
	"github.com/roselmamendestw/hawkeye/pkg/results"
)

// bugCollection is the subset of the FindBugs XML report (-xml:withMessages) we read.
type bugCollection struct {
	XMLName      xml.Name       `xml:"BugCollection"`
	BugInstances []*bugInstance `xml:"BugInstance"`
}

type bugInstance struct {
	Type         string        `xml:"type,attr"`
	Priority     string        `xml:"priority,attr"`
	ShortMessage string        `xml:"ShortMessage"`
	Classes      []*class      `xml:"Class"`
	Methods      []*method     `xml:"Method"`
	SourceLines  []*sourceLine `xml:"SourceLine"`
}

type class struct {
	ClassName string `xml:"classname,attr"`
	Primary   bool   `xml:"primary,attr"`
}

type method struct {
	ClassName string `xml:"classname,attr"`
	Name      string `xml:"name,attr"`
	Signature string `xml:"signature,attr"`
	Primary   bool   `xml:"primary,attr"`
	Message   string `xml:"Message"`
}

// sourceLine is a line reference directly under BugInstance, primary or not.
// Lines nested in Class or Method describe their whole body and are not collected.
type sourceLine struct {
	Start string `xml:"start,attr"`
	End   string `xml:"end,attr"`
}

// candidate is a finding which has not been classified yet.
type candidate struct {
	Priority int
	Finding  results.Finding
}

func parseReport(b []byte) ([]*candidate, error) {
	if len(strings.TrimSpace(string(b))) == 0 {
		return nil, errors.New("the report is empty")
	}
	coll := &bugCollection{}
	if err := xml.Unmarshal(b, coll); err != nil {
		return nil, fmt.Errorf("decode a report as XML: %w", err)
	}
	candidates := make([]*candidate, 0, len(coll.BugInstances))
	for _, bug := range coll.BugInstances {
		candidates = append(candidates, bug.candidate())
	}
	return candidates, nil
}

func (b *bugInstance) candidate() *candidate {
	priority, err := strconv.Atoi(strings.TrimSpace(b.Priority))
	if err != nil {
		priority = 0
	}
	return &candidate{
		Priority: priority,
		Finding: results.Finding{
			Code:        b.Type,
			Offender:    b.offender(),
			Description: strings.TrimSpace(b.ShortMessage),
			Mitigation:  module.Mitigation(b.lineRanges()),
		},
	}
}

func (b *bugInstance) offender() string {
	if m := b.primaryMethod(); m != nil {
		if msg := strings.TrimSpace(m.Message); strings.HasPrefix(msg, "In method ") {
			return msg
		}
		return "In method " + m.fullName()
	}
	if c := b.primaryClass(); c != nil {
		return "In class " + c.ClassName
	}
	return ""
}

// fullName renders the method the way FindBugs messages do.
// Constructors become "new C(...)" and static initializers "C.<static initializer for C>()".
func (m *method) fullName() string {
	var name string
	switch m.Name {
	case "<init>":
		name = "new " + m.ClassName
	case "<clinit>":
		name = m.ClassName + ".<static initializer for " + simpleClassName(m.ClassName) + ">"
	default:
		name = m.ClassName + "." + m.Name
	}
	params, err := parameterTypes(m.Signature)
	if err != nil {
		return name
	}
	return name + "(" + strings.Join(params, ", ") + ")"
}

func (b *bugInstance) primaryMethod() *method {
	for _, m := range b.Methods {
		if m.Primary {
			return m
		}
	}
	if len(b.Methods) > 0 {
		return b.Methods[0]
	}
	return nil
}

func (b *bugInstance) primaryClass() *class {
	for _, c := range b.Classes {
		if c.Primary {
			return c
		}
	}
	if len(b.Classes) > 0 {
		return b.Classes[0]
	}
	return nil
}

func (b *bugInstance) lineRanges() []module.LineRange {
	ranges := make([]module.LineRange, 0, len(b.SourceLines))
	for _, l := range b.SourceLines {
		start, err := strconv.Atoi(l.Start)
		if err != nil {
			continue
		}
		end, err := strconv.Atoi(l.End)
		if err != nil {
			end = start
		}
		ranges = append(ranges, module.LineRange{Start: start, End: end})
	}
	return ranges
}

var primitiveTypes = map[byte]string{ //nolint:gochecknoglobals
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
	'V': "void",
}

// parameterTypes converts the parameters of a JVM method descriptor into simple type names.
// e.g. "(ILcom/example/Cmd;[Ljava/lang/String;)V" returns ["int", "Cmd", "String[]"].
func parameterTypes(descriptor string) ([]string, error) {
	if !strings.HasPrefix(descriptor, "(") {
		return nil, fmt.Errorf("method descriptor must start with '(': %q", descriptor)
	}
	end := strings.IndexByte(descriptor, ')')
	if end < 0 {
		return nil, fmt.Errorf("method descriptor must contain ')': %q", descriptor)
	}
	s := descriptor[1:end]
	params := []string{}
	for len(s) > 0 {
		dims := 0
		for len(s) > 0 && s[0] == '[' {
			dims++
			s = s[1:]
		}
		if len(s) == 0 {
			return nil, fmt.Errorf("array without an element type: %q", descriptor)
		}
		var name string
		if s[0] == 'L' {
			semi := strings.IndexByte(s, ';')
			if semi < 0 {
				return nil, fmt.Errorf("class type without ';': %q", descriptor)
			}
			name = simpleName(s[1:semi])
			s = s[semi+1:]
		} else {
			p, ok := primitiveTypes[s[0]]
			if !ok {
				return nil, fmt.Errorf("unknown type %q in method descriptor %q", s[0], descriptor)
			}
			name = p
			s = s[1:]
		}
		params = append(params, name+strings.Repeat("[]", dims))
	}
	return params, nil
}

func simpleName(internalName string) string {
	if i := strings.LastIndexByte(internalName, '/'); i >= 0 {
		return internalName[i+1:]
	}
	return internalName
}

func simpleClassName(className string) string {
	if i := strings.LastIndexByte(className, '.'); i >= 0 {
		return className[i+1:]
	}
	return className
}
