// Package fixture checks templates against samples of command output.
//
// A sample consists of file CASE.raw with command output and
// file CASE.yml with the expected records:
//
//	---
//	parsed_sample:
//	  - interface: "ethernet"
//	    ipv4address: "10.3.21.67/24"
//
// Names of values are compared in lower case.
package fixture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hknutzen/textfsm/pkg/extract"
	"github.com/hknutzen/textfsm/pkg/textfsm"
	"github.com/pkg/diff/myers"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Parsed []map[string]any `yaml:"parsed_sample"`
}

// Result of checking one sample.
type Result struct {
	Template string
	Case     string
	// Expected records that weren't found.
	Missing []string
	// Found records that weren't expected.
	Unexpected []string
	Err        error
}

func (r *Result) OK() bool {
	return r.Err == nil && len(r.Missing) == 0 && len(r.Unexpected) == 0
}

// Report describes differences, one record per line.
// Missing records are marked by "-", unexpected by "+".
func (r *Result) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", r.Template, r.Case)
	if r.Err != nil {
		fmt.Fprintf(&b, "Error: %v\n", r.Err)
	}
	for _, s := range r.Missing {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	for _, s := range r.Unexpected {
		fmt.Fprintf(&b, "+ %s\n", s)
	}
	return b.String()
}

// ReadExpected reads records from YAML file.
func ReadExpected(file string) ([]map[string]any, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("Can't %v", err)
	}
	var s sample
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("Invalid YAML in %s: %v", file, err)
	}
	return s.Parsed, nil
}

// Check parses raw with template and compares with expected records
// in order.
func Check(t *textfsm.Template, raw string, expected []map[string]any) *Result {
	records, err := t.Parse(raw)
	got := make([]map[string]any, len(records))
	for i, r := range records {
		got[i] = r.Lower()
	}
	r := compare(expected, got)
	r.Err = err
	return r
}

type recordsPair struct {
	a, b []string
}

func (ab *recordsPair) LenA() int { return len(ab.a) }
func (ab *recordsPair) LenB() int { return len(ab.b) }

func (ab *recordsPair) Equal(ai, bi int) bool {
	return ab.a[ai] == ab.b[bi]
}

func compare(expected, got []map[string]any) *Result {
	ab := &recordsPair{a: canonical(expected), b: canonical(got)}
	result := &Result{}
	for _, r := range myers.Diff(context.Background(), ab).Ranges {
		if r.IsDelete() {
			result.Missing = append(result.Missing, ab.a[r.LowA:r.HighA]...)
		} else if r.IsInsert() {
			result.Unexpected = append(result.Unexpected, ab.b[r.LowB:r.HighB]...)
		}
	}
	return result
}

// Convert each record into single line with sorted keys.
// Values are compared as strings, hence unquoted numbers in YAML file
// match.
func canonical(l []map[string]any) []string {
	result := make([]string, len(l))
	for i, m := range l {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, strings.ToLower(k))
		}
		slices.Sort(keys)
		lower := make(map[string]any, len(m))
		for k, v := range m {
			lower[strings.ToLower(k)] = v
		}
		var parts []string
		for _, k := range keys {
			parts = append(parts, k+": "+valueString(lower[k]))
		}
		result[i] = "{" + strings.Join(parts, ", ") + "}"
	}
	return result
}

func valueString(v any) string {
	var l []string
	switch x := v.(type) {
	case nil:
		return `""`
	case []string:
		l = x
	case []any:
		for _, e := range x {
			l = append(l, fmt.Sprint(e))
		}
	default:
		return fmt.Sprintf("%q", fmt.Sprint(x))
	}
	quoted := make([]string, len(l))
	for i, s := range l {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// CheckDir checks all samples in sampleDir.
// Samples of template NAME are found in subdirectory NAME.
// Template is read from templateDir/NAME.tpl.
func CheckDir(templateDir, sampleDir string) ([]*Result, error) {
	ext := extract.New(os.DirFS(templateDir))
	var results []*Result
	err := filepath.WalkDir(sampleDir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".raw" {
			return nil
		}
		name := filepath.Base(filepath.Dir(p))
		base := strings.TrimSuffix(p, ".raw")
		result := &Result{Template: name, Case: filepath.Base(base)}
		results = append(results, result)
		t, err := ext.Template(name)
		if err != nil {
			result.Err = err
			return nil
		}
		raw, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		expected, err := ReadExpected(base + ".yml")
		if err != nil {
			result.Err = err
			return nil
		}
		r := Check(t, string(raw), expected)
		r.Template = result.Template
		r.Case = result.Case
		*result = *r
		return nil
	})
	return results, err
}
