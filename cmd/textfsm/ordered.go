package main

import (
	"bytes"
	"encoding/json"

	"github.com/hknutzen/textfsm/pkg/textfsm"
	"gopkg.in/yaml.v3"
)

type fileRecords struct {
	File    string          `json:"file" yaml:"file"`
	Records []orderedRecord `json:"records" yaml:"records"`
}

// orderedRecord is marshaled with keys in order of header.
type orderedRecord struct {
	header []string
	rec    textfsm.Record
}

func ordered(header []string, records []textfsm.Record) []orderedRecord {
	result := make([]orderedRecord, len(records))
	for i, r := range records {
		result[i] = orderedRecord{header: header, rec: r}
	}
	return result
}

func (o orderedRecord) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range o.header {
		if i > 0 {
			b.WriteByte(',')
		}
		key, _ := json.Marshal(k)
		val, err := json.Marshal(o.rec[k])
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (o orderedRecord) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range o.header {
		var val yaml.Node
		if err := val.Encode(o.rec[k]); err != nil {
			return nil, err
		}
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, &val)
	}
	return n, nil
}
