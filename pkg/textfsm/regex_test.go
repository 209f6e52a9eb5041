package textfsm

import (
	"testing"
)

func TestValuePatternGroups(t *testing.T) {
	tests := []struct {
		pattern  string
		expanded string
		err      string
	}{
		{pattern: `(\S+)`, expanded: `(?P<V>\S+)`},
		{pattern: `(a|b(?:c|d))`, expanded: `(?P<V>a|b(?:c|d))`},
		{pattern: `((a)|b)`,
			err: "Value 'V' pattern must have exactly one capturing group, found 2"},
		{pattern: `(a)(b)`,
			err: "Value 'V' pattern must have exactly one capturing group, found 2"},
		{pattern: `(?:a)`,
			err: "Value 'V' pattern must have exactly one capturing group, found 0"},
		{pattern: `(?i)(\S+)`,
			err: "Value 'V' pattern must start with capturing group"},
		{pattern: `\S+`,
			err: "Value 'V' pattern must be enclosed in parentheses"},
	}
	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			got, err := compileValuePattern("V", tc.pattern)
			if tc.err != "" {
				if err == nil {
					t.Fatal("Unexpected success")
				}
				eq(t, tc.err, err.Error())
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			eq(t, tc.expanded, got)
		})
	}
}

func TestExpandPlaceholders(t *testing.T) {
	lookup := map[string]string{
		"A": `(?P<A>\S+)`,
		"B": `(?P<B>\d+)`,
	}
	tests := []struct {
		pattern  string
		expanded string
		used     []string
		err      string
	}{
		{pattern: `^a ${A} b $B`, expanded: `^a (?P<A>\S+) b (?P<B>\d+)`,
			used: []string{"A", "B"}},
		{pattern: `^${A}${A}`, expanded: `^(?P<A>\S+)(?P<A>\S+)`,
			used: []string{"A", "A"}},
		{pattern: `^x$$`, expanded: `^x$`},
		{pattern: `^x$`, expanded: `^x$`},
		{pattern: `^x $1`, expanded: `^x $1`},
		{pattern: `^x ${}`, err: "Empty placeholder '${}'"},
		{pattern: `^x ${A`, err: "Unterminated placeholder '${A'"},
		{pattern: `^x ${C}`, err: "Undefined Value 'C'"},
		{pattern: `^x $A_1`, err: "Undefined Value 'A_1'"},
	}
	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			got, used, err := expandPlaceholders(tc.pattern, lookup)
			if tc.err != "" {
				if err == nil {
					t.Fatal("Unexpected success")
				}
				eq(t, tc.err, err.Error())
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			eq(t, tc.expanded, got)
			eq(t, tc.used, used)
		})
	}
}

func TestRuleCaptures(t *testing.T) {
	tests := []struct {
		title    string
		template string
		input    string
		output   []Record
	}{
		{
			title: "greedy group gives back trailing literal",
			template: `Value V (\S+)

Start
  ^VRF ${V}, -> Record
`,
			input:  "VRF red, default RD 1:1\n",
			output: []Record{{"V": "red"}},
		},
		{
			title: "lazy group leaves trailing blanks",
			template: `Value D (.+?)

Start
  ^desc ${D}\s*$$ -> Record
`,
			input:  "desc hello world   \n",
			output: []Record{{"D": "hello world"}},
		},
		{
			title: "adjacent groups don't overlap",
			template: `Value D (.+?)
Value R (.*)

Start
  ^pair ${D} ${R} -> Record
`,
			input:  "pair x y z\n",
			output: []Record{{"D": "x", "R": "y z"}},
		},
		{
			title: "optional group not taking part",
			template: `Value A (\d+)
Value B (\w+)

Start
  ^a ${A}(?: ${B})? -> Record
`,
			input:  "a 1\na 2 x\n",
			output: []Record{{"A": "1", "B": ""}, {"A": "2", "B": "x"}},
		},
		{
			title: "alternation anchored at start of line",
			template: `Value V (\w+)

Start
  ^x|y ${V} -> Record
`,
			input:  "z y 1\ny 2\nx\n",
			output: []Record{{"V": "2"}},
		},
		{
			title: "value pattern with alternation",
			template: `Value State (up|down|admin down)

Start
  ^port \S+ is ${State}$$ -> Record
`,
			input: "port 1/1 is admin down\nport 1/2 is up\n",
			output: []Record{{"State": "admin down"}, {"State": "up"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.title, func(t *testing.T) {
			tmpl, err := Load(tc.template)
			if err != nil {
				t.Fatal(err)
			}
			records, err := tmpl.Parse(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			eq(t, tc.output, records)
		})
	}
}
