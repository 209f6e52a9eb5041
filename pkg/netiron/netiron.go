// Package netiron converts output of commands of Brocade/Extreme
// NetIron devices into structured data.
//
// Output must be retrieved by the caller, e.g. from a SSH session.
package netiron

import (
	"embed"
	"io/fs"

	"github.com/hknutzen/textfsm/pkg/extract"
)

//go:embed templates/*.tpl
var templateFiles embed.FS

// Templates holds the builtin templates as files NAME.tpl.
var Templates fs.FS

// Extractor parses output with builtin templates.
var Extractor *extract.Extractor

func init() {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic(err)
	}
	Templates = sub
	Extractor = extract.New(sub)
}
