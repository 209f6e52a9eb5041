package textfsm

import (
	"fmt"
	"strings"
)

// Option modifies handling of a value.
type Option uint8

const (
	// Filldown values survive Record and Clear.
	Filldown Option = 1 << iota
	// Record is discarded if a Required value hasn't been filled.
	Required
	// List values collect all matches of a record.
	List
	// Key is informational only.
	Key
)

var optionNames = []struct {
	opt  Option
	name string
}{
	{Filldown, "Filldown"},
	{Required, "Required"},
	{List, "List"},
	{Key, "Key"},
}

func (o Option) String() string {
	var l []string
	for _, on := range optionNames {
		if o&on.opt != 0 {
			l = append(l, on.name)
		}
	}
	return strings.Join(l, ",")
}

const maxNameLen = 48

// ValueDefinition is declared by a line
// "Value [Option[,Option...]] Name (regex)".
type ValueDefinition struct {
	Name    string
	Options Option
	// Pattern as written in template.
	Pattern string
	// Pattern converted into named capturing group.
	group string
}

func (v *ValueDefinition) Has(o Option) bool { return v.Options&o != 0 }

// Parse line with "Value" declaration.
// Options are separated by comma or space.
func parseValue(line string) (*ValueDefinition, error) {
	rest := strings.TrimPrefix(line, "Value")
	if rest == line || rest == "" || rest[0] != ' ' && rest[0] != '\t' {
		return nil, fmt.Errorf("Expected 'Value'")
	}
	rest = strings.TrimSpace(rest)
	// Pattern starts at first "(" that isn't part of option list or name.
	i := strings.IndexByte(rest, '(')
	if i == -1 {
		return nil, fmt.Errorf("Missing pattern of Value")
	}
	head := rest[:i]
	pattern := strings.TrimSpace(rest[i:])
	words := strings.FieldsFunc(head, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(words) == 0 {
		return nil, fmt.Errorf("Missing name of Value")
	}
	v := &ValueDefinition{
		Name:    words[len(words)-1],
		Pattern: pattern,
	}
	if err := checkName(v.Name); err != nil {
		return nil, err
	}
OPT:
	for _, w := range words[:len(words)-1] {
		for _, on := range optionNames {
			if w == on.name {
				if v.Options&on.opt != 0 {
					return nil, fmt.Errorf("Duplicate option '%s'", w)
				}
				v.Options |= on.opt
				continue OPT
			}
		}
		return nil, fmt.Errorf("Unknown option '%s'", w)
	}
	return v, nil
}

func checkName(name string) error {
	if len(name) > maxNameLen {
		return fmt.Errorf("Name '%s' is longer than %d characters",
			name, maxNameLen)
	}
	for i := 0; i < len(name); i++ {
		if !isWordChar(name[i]) {
			return fmt.Errorf("Invalid name '%s'", name)
		}
	}
	return nil
}
