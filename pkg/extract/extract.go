// Package extract parses command output with named templates.
package extract

import (
	"io/fs"
	"sync"

	"github.com/hknutzen/textfsm/pkg/textfsm"
)

// Extractor loads templates NAME.tpl from a file system.
// Loaded templates are cached and shared by concurrent callers.
type Extractor struct {
	fsys  fs.FS
	mu    sync.Mutex
	cache map[string]*textfsm.Template
}

func New(fsys fs.FS) *Extractor {
	return &Extractor{fsys: fsys, cache: make(map[string]*textfsm.Template)}
}

// Template returns loaded template with given name.
func (e *Extractor) Template(name string) (*textfsm.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if t := e.cache[name]; t != nil {
		return t, nil
	}
	t, err := textfsm.LoadFS(e.fsys, name+".tpl")
	if err != nil {
		return nil, err
	}
	e.cache[name] = t
	return t, nil
}

// Records parses text with named template.
func (e *Extractor) Records(name, text string) ([]textfsm.Record, error) {
	t, err := e.Template(name)
	if err != nil {
		return nil, err
	}
	return t.Parse(text)
}

// Extract parses text with named template and returns one map per
// record with names of values in lower case.
func (e *Extractor) Extract(name, text string) ([]map[string]any, error) {
	records, err := e.Records(name, text)
	result := make([]map[string]any, len(records))
	for i, r := range records {
		result[i] = r.Lower()
	}
	return result, err
}
