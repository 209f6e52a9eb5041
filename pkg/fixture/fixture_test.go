package fixture

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hknutzen/textfsm/pkg/textfsm"
)

func TestCheck(t *testing.T) {
	tmpl, err := textfsm.Load(`
Value Name (\S+)
Value Vlan (\d+)

Start
  ^${Name} ${Vlan} -> Record
`)
	if err != nil {
		t.Fatal(err)
	}
	raw := "a 10\nb 20\nc 30\n"
	tests := []struct {
		title    string
		expected []map[string]any
		report   string
	}{
		{
			title: "equal, unquoted number",
			expected: []map[string]any{
				{"name": "a", "vlan": 10},
				{"name": "b", "vlan": "20"},
				{"Name": "c", "Vlan": "30"},
			},
			report: "",
		},
		{
			title: "changed and missing",
			expected: []map[string]any{
				{"name": "a", "vlan": "10"},
				{"name": "b", "vlan": "21"},
				{"name": "c", "vlan": "30"},
				{"name": "d", "vlan": "40"},
			},
			report: `T: C
- {name: "b", vlan: "21"}
- {name: "d", vlan: "40"}
+ {name: "b", vlan: "20"}
`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.title, func(t *testing.T) {
			r := Check(tmpl, raw, tc.expected)
			if tc.report == "" {
				if !r.OK() {
					t.Error(r.Report())
				}
				return
			}
			if r.OK() {
				t.Fatal("Unexpected success")
			}
			r.Template, r.Case = "T", "C"
			eq(t, tc.report, r.Report())
		})
	}
}

func TestCheckDir(t *testing.T) {
	results, err := CheckDir("testdata/templates", "testdata/samples")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	byCase := make(map[string]*Result)
	for _, r := range results {
		byCase[r.Case] = r
	}
	if r := byCase["basic"]; !r.OK() {
		t.Error(r.Report())
	}
	eq(t, `show_ip_route_static: wrong
- {nexthop: "10.11.22.34", prefix: "10.0.0.0/8", tags: []}
+ {nexthop: "10.11.22.33", prefix: "10.0.0.0/8", tags: []}
`, byCase["wrong"].Report())
	missing := byCase["missing"]
	if missing.OK() || !errors.Is(missing.Err, fs.ErrNotExist) {
		t.Errorf("Expected missing template, got %v", missing.Err)
	}
}

func TestReadExpectedErrors(t *testing.T) {
	if _, err := ReadExpected("testdata/none.yml"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func eq(t *testing.T, expected, got any) {
	t.Helper()
	if d := cmp.Diff(expected, got); d != "" {
		t.Error(d)
	}
}
