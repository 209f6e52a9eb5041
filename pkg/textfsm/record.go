package textfsm

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Record maps name of value to string or,
// for values with option List, to []string.
type Record map[string]any

// Get returns scalar value or list joined by space.
func (r Record) Get(name string) string {
	switch x := r[name].(type) {
	case string:
		return x
	case []string:
		return strings.Join(x, " ")
	}
	return ""
}

// List returns list value or scalar value as list with single element.
// Empty scalar value gives empty list.
func (r Record) List(name string) []string {
	switch x := r[name].(type) {
	case string:
		if x == "" {
			return nil
		}
		return []string{x}
	case []string:
		return x
	}
	return nil
}

// Clone returns deep copy of record.
func (r Record) Clone() Record {
	c := maps.Clone(r)
	for k, v := range c {
		if l, ok := v.([]string); ok {
			c[k] = slices.Clone(l)
		}
	}
	return c
}

// Strings returns values in order of header.
func (r Record) Strings(header []string) []string {
	result := make([]string, len(header))
	for i, name := range header {
		result[i] = r.Get(name)
	}
	return result
}

// Lower returns copy of record with lower case names.
func (r Record) Lower() map[string]any {
	result := make(map[string]any, len(r))
	for k, v := range r.Clone() {
		result[strings.ToLower(k)] = v
	}
	return result
}

// emitter collects records of a parse session in order of emission.
type emitter struct {
	records []Record
}

func (e *emitter) emit(r Record) {
	e.records = append(e.records, r)
}
