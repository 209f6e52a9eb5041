package textfsm

import (
	"strings"
)

// session is a single run of template against input.
// Each call of Parse creates a fresh session,
// hence a Template can be shared by concurrent callers.
type session struct {
	t     *Template
	state *state
	b     *bindings
	out   emitter
}

// Parse splits text into lines and returns the extracted records.
// If an Error action is triggered, records emitted up to then are
// returned together with a *ParseError.
func (t *Template) Parse(text string) ([]Record, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return t.ParseLines(nil)
	}
	return t.ParseLines(strings.Split(text, "\n"))
}

// ParseLines is like Parse, but takes input already split into lines.
func (t *Template) ParseLines(lines []string) ([]Record, error) {
	s := &session{
		t:     t,
		state: t.states[startState],
		b:     newBindings(t.values),
	}
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		stop, err := s.processLine(line, i+1)
		if err != nil {
			return s.out.records, err
		}
		if stop {
			break
		}
	}
	// Unterminated record is dropped. Only Record action emits records.
	return s.out.records, nil
}

// Match line against rules of current state and apply actions of
// matching rules. Returns true if state End was reached.
func (s *session) processLine(line string, lineNo int) (bool, error) {
	rules := s.state.Rules
	for i := 0; i < len(rules); i++ {
		j, captured := matchLine(rules[i:], line)
		if j == -1 {
			return false, nil
		}
		i += j
		r := rules[i]
		if !s.apply(r, captured) {
			return false, &ParseError{
				Kind:  ErrTemplateAbort,
				State: s.state.Name,
				Line:  lineNo,
				Text:  line,
				Msg:   r.ErrorMsg,
			}
		}
		if !r.Has(ActionContinue) {
			return s.transition(r, lineNo, line)
		}
	}
	return false, nil
}

// matchLine returns index of first rule matching line together with
// captured values or -1 if no rule matches.
func matchLine(rules []*Rule, line string) (int, map[string]string) {
	for i, r := range rules {
		if captured := r.m.match(line); captured != nil {
			return i, captured
		}
	}
	return -1, nil
}

// Assign captured values and execute row actions.
// Returns false on action Error.
func (s *session) apply(r *Rule, captured map[string]string) bool {
	for _, name := range r.Captures {
		if val, found := captured[name]; found {
			s.b.assign(s.t.valueIdx[name], val)
		}
	}
	if r.Has(ActionError) {
		return false
	}
	if r.Has(ActionRecord) {
		if rec, ok := s.b.snapshot(); ok {
			s.out.emit(rec)
		}
	}
	switch {
	case r.Has(ActionClearall):
		s.b.clearAll()
	case r.Has(ActionClear) || r.Has(ActionRecord):
		s.b.clear()
	}
	return true
}

func (s *session) transition(r *Rule, lineNo int, line string) (bool, error) {
	next := r.NextState
	switch next {
	case "":
		return false, nil
	case endState:
		return true, nil
	}
	st := s.t.states[next]
	if st == nil {
		return false, &ParseError{
			Kind:  ErrInternal,
			State: s.state.Name,
			Line:  lineNo,
			Text:  line,
			Msg:   "Transition to unknown state '" + next + "'",
		}
	}
	s.state = st
	return false, nil
}
