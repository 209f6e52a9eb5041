package textfsm

import (
	"fmt"
	"regexp"
	"strings"
)

// Compile value pattern, which must be surrounded by a single pair of
// parentheses, into named capturing group.
func compileValuePattern(name, pattern string) (string, error) {
	if len(pattern) < 2 || pattern[0] != '(' || pattern[len(pattern)-1] != ')' {
		return "", fmt.Errorf("Value '%s' pattern must be enclosed in parentheses",
			name)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("Invalid pattern of Value '%s': %v", name, err)
	}
	if n := re.NumSubexp(); n != 1 {
		return "", fmt.Errorf(
			"Value '%s' pattern must have exactly one capturing group, found %d",
			name, n)
	}
	// Pattern starting with "(?" is some special group, e.g. "(?i)(\S+)",
	// that can't be turned into a named group.
	if strings.HasPrefix(pattern, "(?") {
		return "", fmt.Errorf(
			"Value '%s' pattern must start with capturing group", name)
	}
	return "(?P<" + name + ">" + pattern[1:], nil
}

type expandError struct {
	kind error
	msg  string
}

func (e *expandError) Error() string { return e.msg }

// Expand placeholders in rule pattern.
//   - ${Name} and $Name are replaced by named group of value.
//   - $$ is replaced by $.
//   - $ not followed by "{" or a name is left unchanged, e.g. "$1".
//
// Returns expanded pattern and list of referenced names.
func expandPlaceholders(pattern string, lookup map[string]string) (
	string, []string, error) {

	var b strings.Builder
	var used []string
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '$' || i+1 == len(pattern) {
			b.WriteByte(c)
			continue
		}
		next := pattern[i+1]
		var name string
		switch {
		case next == '$':
			b.WriteByte('$')
			i++
			continue
		case next == '{':
			end := strings.IndexByte(pattern[i+2:], '}')
			if end == -1 {
				return "", nil, &expandError{ErrSyntax,
					fmt.Sprintf("Unterminated placeholder '%s'", pattern[i:])}
			}
			name = pattern[i+2 : i+2+end]
			if name == "" {
				return "", nil, &expandError{ErrUndefinedValue,
					"Empty placeholder '${}'"}
			}
			i += 2 + end
		case isWordChar(next) && !isDigit(next):
			j := i + 1
			for j < len(pattern) && isWordChar(pattern[j]) {
				j++
			}
			name = pattern[i+1 : j]
			i = j - 1
		default:
			b.WriteByte(c)
			continue
		}
		re, found := lookup[name]
		if !found {
			return "", nil, &expandError{ErrUndefinedValue,
				fmt.Sprintf("Undefined Value '%s'", name)}
		}
		b.WriteString(re)
		used = append(used, name)
	}
	return b.String(), used, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isWordChar(c byte) bool {
	return c == '_' || isDigit(c) || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// matcher holds compiled rule pattern and index of capturing group
// for each value name.
type matcher struct {
	re     *regexp.Regexp
	groups map[string]int
}

// Pattern is anchored at start of line as a whole,
// hence "^a|b" doesn't match "xb".
func compileRule(pattern string) (*matcher, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, err
	}
	m := &matcher{re: re, groups: make(map[string]int)}
	for i, name := range re.SubexpNames() {
		if name != "" {
			m.groups[name] = i
		}
	}
	return m, nil
}

// match returns nil if line doesn't match.
// Otherwise returns captured text for each value name,
// where the group took part in the match.
func (m *matcher) match(line string) map[string]string {
	idx := m.re.FindStringSubmatchIndex(line)
	if idx == nil {
		return nil
	}
	result := make(map[string]string, len(m.groups))
	for name, i := range m.groups {
		start, end := idx[2*i], idx[2*i+1]
		if start < 0 {
			continue
		}
		result[name] = line[start:end]
	}
	return result
}
