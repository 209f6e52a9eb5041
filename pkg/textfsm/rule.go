package textfsm

import (
	"fmt"
	"strings"
)

// Action is a set of directives executed, when a rule matches.
type Action uint8

const (
	ActionContinue Action = 1 << iota
	ActionRecord
	ActionClear
	ActionClearall
	ActionError
)

var actionNames = []struct {
	act  Action
	name string
}{
	{ActionContinue, "Continue"},
	{ActionRecord, "Record"},
	{ActionClear, "Clear"},
	{ActionClearall, "Clearall"},
	{ActionError, "Error"},
}

func (a Action) String() string {
	var l []string
	for _, an := range actionNames {
		if a&an.act != 0 {
			l = append(l, an.name)
		}
	}
	return strings.Join(l, ",")
}

// Rule of a state.
type Rule struct {
	// Pattern as written in template, e.g. "^interface ${Interface}".
	Pattern   string
	Actions   Action
	NextState string
	// Message of Error action.
	ErrorMsg string
	// Line number in template source.
	Line int
	// Names of values captured by this rule.
	Captures []string

	text string
	m    *matcher
}

func (r *Rule) Has(a Action) bool { return r.Actions&a != 0 }

// Split rule line into pattern and list of actions.
// Line must already be stripped of leading whitespace.
//
// Syntax of actions:
//
//	-> [LineAction[.RecordAction]] [NextState]
//	-> Error ["message"]
//
// Actions may also be separated by space or comma.
func parseRule(line string) (*Rule, error) {
	if line == "" || line[0] != '^' {
		return nil, fmt.Errorf("Rule must start with '^'")
	}
	pattern, acts, found := cutArrow(line)
	r := &Rule{Pattern: strings.TrimRight(pattern, " \t")}
	if !found {
		return r, nil
	}
	acts = strings.TrimSpace(acts)
	if acts == "" {
		return nil, fmt.Errorf("Missing action after '->'")
	}
	// Message of Error action may contain any character.
	acts, r.ErrorMsg = cutErrorMsg(acts)
	words := strings.FieldsFunc(acts, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '.'
	})
	for _, w := range words {
		switch w {
		case "Next", "NoRecord":
			continue
		case "Continue":
			r.Actions |= ActionContinue
		case "Record":
			r.Actions |= ActionRecord
		case "Clear":
			r.Actions |= ActionClear
		case "Clearall":
			r.Actions |= ActionClearall
		case "Error":
			r.Actions |= ActionError
		default:
			if err := checkName(w); err != nil {
				return nil, fmt.Errorf("Unknown action '%s'", w)
			}
			if r.NextState != "" {
				return nil, fmt.Errorf("Multiple next states '%s' and '%s'",
					r.NextState, w)
			}
			r.NextState = w
		}
	}
	if r.NextState != "" {
		if r.Has(ActionContinue) {
			return nil, fmt.Errorf("Must not change state with 'Continue'")
		}
		if r.Has(ActionError) {
			return nil, fmt.Errorf("Must not change state with 'Error'")
		}
	}
	return r, nil
}

// Find last "->" that is preceded by whitespace.
// Pattern itself may contain "->".
// Quoted message of action Error is skipped.
func cutArrow(line string) (string, string, bool) {
	for i := quotedMsgStart(line) - 2; i > 0; i-- {
		if line[i] == '-' && line[i+1] == '>' {
			if c := line[i-1]; c == ' ' || c == '\t' {
				return line[:i], line[i+2:], true
			}
		}
	}
	return line, "", false
}

// Returns position of opening quote of message in
// "... Error "message"" or length of line if there is none.
func quotedMsgStart(line string) int {
	s := strings.TrimRight(line, " \t")
	if len(s) < 2 || s[len(s)-1] != '"' {
		return len(line)
	}
	for i := 0; i < len(s)-1; i++ {
		if s[i] != '"' {
			continue
		}
		before := strings.TrimRight(s[:i], " \t")
		if len(before) < i && strings.HasSuffix(before, "Error") {
			return i
		}
	}
	return len(line)
}

// Separate message from action "Error message".
func cutErrorMsg(acts string) (string, string) {
	isSep := func(c byte) bool {
		return c == ' ' || c == '\t' || c == ',' || c == '.'
	}
	for i := 0; i+5 <= len(acts); i++ {
		if acts[i:i+5] != "Error" || i > 0 && !isSep(acts[i-1]) {
			continue
		}
		end := i + 5
		if end == len(acts) {
			break
		}
		if c := acts[end]; c == ' ' || c == '\t' {
			msg := strings.TrimSpace(acts[end:])
			return acts[:end], strings.Trim(msg, `"`)
		}
	}
	return acts, ""
}
