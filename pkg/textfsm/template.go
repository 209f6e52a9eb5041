// Package textfsm extracts records from semi-structured text,
// e.g. output of CLI commands of network devices.
//
// A template declares values and a state machine of rules:
//
//	Value Filldown Interface (\S+)
//	Value Ipv4address (\S+)
//
//	Start
//	  ^interface ${Interface}
//	  ^\s+ip address ${Ipv4address} -> Record
//	  ^! -> Clearall
//
// A template is loaded once by Load and may then be used concurrently
// by any number of calls to Parse.
package textfsm

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const (
	startState = "Start"
	// Transition to End stops processing of input.
	endState = "End"
)

// state has a name and an ordered list of rules.
type state struct {
	Name  string
	Rules []*Rule
	Line  int
}

// Template is immutable after Load.
type Template struct {
	values   []*ValueDefinition
	valueIdx map[string]int
	states   map[string]*state
	order    []string
}

// LoadFile reads template from file.
func LoadFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Can't %w", err)
	}
	t, err := Load(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadFS reads template from file name of fsys.
func LoadFS(fsys fs.FS, name string) (*Template, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("Can't %w", err)
	}
	t, err := Load(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// Load parses template source.
// Returned error is of type *LoadError.
func Load(src string) (*Template, error) {
	t := &Template{
		valueIdx: make(map[string]int),
		states:   make(map[string]*state),
	}
	var cur *state
	lineNo := 0
	toParse := src
	for toParse != "" {
		line, rest, _ := strings.Cut(toParse, "\n")
		toParse = rest
		lineNo++
		line = strings.TrimRight(line, " \t\r")
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || trimmed[0] == '#' {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			// Rule of current state.
			if cur == nil {
				return nil, loadErr(ErrSyntax, lineNo, line,
					"Rule outside of state")
			}
			r, err := parseRule(trimmed)
			if err != nil {
				return nil, loadErr(ErrSyntax, lineNo, line, "%v", err)
			}
			r.Line = lineNo
			r.text = line
			cur.Rules = append(cur.Rules, r)
			continue
		}
		if strings.HasPrefix(line, "Value ") || strings.HasPrefix(line, "Value\t") {
			if cur != nil {
				return nil, loadErr(ErrSyntax, lineNo, line,
					"Value must be declared before first state")
			}
			if err := t.addValue(line, lineNo); err != nil {
				return nil, err
			}
			continue
		}
		// Start of new state.
		name := line
		if err := checkName(name); err != nil {
			return nil, loadErr(ErrSyntax, lineNo, line, "%v", err)
		}
		if _, found := t.states[name]; found {
			return nil, loadErr(ErrSyntax, lineNo, line,
				"Duplicate state '%s'", name)
		}
		cur = &state{Name: name, Line: lineNo}
		t.states[name] = cur
		t.order = append(t.order, name)
	}
	if err := t.compile(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Template) addValue(line string, lineNo int) error {
	v, err := parseValue(line)
	if err != nil {
		return loadErr(ErrSyntax, lineNo, line, "%v", err)
	}
	if _, found := t.valueIdx[v.Name]; found {
		return loadErr(ErrSyntax, lineNo, line, "Duplicate Value '%s'", v.Name)
	}
	v.group, err = compileValuePattern(v.Name, v.Pattern)
	if err != nil {
		return loadErr(ErrPattern, lineNo, line, "%v", err)
	}
	t.valueIdx[v.Name] = len(t.values)
	t.values = append(t.values, v)
	return nil
}

// Expand and compile patterns of rules and check references to states.
func (t *Template) compile() error {
	if _, found := t.states[startState]; !found {
		return loadErr(ErrMissingStart, 0, "",
			"Missing state '%s' in template", startState)
	}
	if s := t.states[endState]; s != nil && len(s.Rules) > 0 {
		return loadErr(ErrSyntax, s.Line, s.Name,
			"State '%s' must not have rules", endState)
	}
	groups := make(map[string]string, len(t.values))
	for _, v := range t.values {
		groups[v.Name] = v.group
	}
	for _, name := range t.order {
		for _, r := range t.states[name].Rules {
			text := r.text
			expanded, used, err := expandPlaceholders(r.Pattern, groups)
			if e, ok := err.(*expandError); ok {
				return loadErr(e.kind, r.Line, text,
					"%s in rule of state '%s'", e.msg, name)
			}
			m, err := compileRule(expanded)
			if err != nil {
				return loadErr(ErrPattern, r.Line, text,
					"Invalid rule pattern in state '%s': %v", name, err)
			}
			r.m = m
			r.Captures = used
			if next := r.NextState; next != "" && next != endState {
				if _, found := t.states[next]; !found {
					return loadErr(ErrUndefinedState, r.Line, text,
						"Undefined state '%s' referenced in state '%s'",
						next, name)
				}
			}
		}
	}
	return nil
}

// Header returns names of values in order of declaration.
func (t *Template) Header() []string {
	result := make([]string, len(t.values))
	for i, v := range t.values {
		result[i] = v.Name
	}
	return result
}

// KeyNames returns names of values with option Key.
func (t *Template) KeyNames() []string {
	var result []string
	for _, v := range t.values {
		if v.Has(Key) {
			result = append(result, v.Name)
		}
	}
	return result
}

// Values returns value definitions in order of declaration.
func (t *Template) Values() []ValueDefinition {
	result := make([]ValueDefinition, len(t.values))
	for i, v := range t.values {
		result[i] = *v
	}
	return result
}

// Value returns definition of named value.
func (t *Template) Value(name string) (ValueDefinition, bool) {
	i, found := t.valueIdx[name]
	if !found {
		return ValueDefinition{}, false
	}
	return *t.values[i], true
}

// States returns names of states in order of declaration.
func (t *Template) States() []string {
	return append([]string(nil), t.order...)
}

// Rules returns the rules of named state or nil.
func (t *Template) Rules(state string) []Rule {
	s := t.states[state]
	if s == nil {
		return nil
	}
	result := make([]Rule, len(s.Rules))
	for i, r := range s.Rules {
		result[i] = *r
	}
	return result
}
