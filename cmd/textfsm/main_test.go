package main

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hknutzen/textfsm/test/capture"
)

type descr struct {
	Title   string
	Config  string
	Files   map[string]string
	Options string
	Stdin   string
	Output  string
	Error   string
	Status  int
}

const ifTemplate = `Value Name (\S+)
Value List Addr (\S+)

Start
  ^name ${Name}
  ^addr ${Addr}
  ^end -> Record
`

const ifInput = `name a
addr 1
addr 2
end
name b
addr 3
end
`

var tests = []descr{
	{
		Title:   "YAML output",
		Files:   map[string]string{"t.tpl": ifTemplate, "in": "name a\nend\n"},
		Options: "-q t.tpl in",
		Output: `- Name: a
  Addr: []
`,
	},
	{
		Title:   "JSON output keeps order of values",
		Files:   map[string]string{"t.tpl": ifTemplate, "in": ifInput},
		Options: "-q -o json t.tpl in",
		Output: `[
 {
  "Name": "a",
  "Addr": [
   "1",
   "2"
  ]
 },
 {
  "Name": "b",
  "Addr": [
   "3"
  ]
 }
]
`,
	},
	{
		Title:   "Table output, lowercase names",
		Files:   map[string]string{"t.tpl": ifTemplate, "in": ifInput},
		Options: "-q --output=table -l t.tpl in",
		Output: `name  addr
a     1 2
b     3
`,
	},
	{
		Title: "Multiple files from config",
		Config: `
output = table
workers = 1
`,
		Files: map[string]string{
			"t.tpl": ifTemplate,
			"a":     "name x\naddr 1\nend\n",
			"b":     "name y\naddr 2\nend\n",
		},
		Options: "t.tpl a b",
		Output: `==> a <==
Name  Addr
x     1
==> b <==
Name  Addr
y     2
`,
		Error: `Parsed 1 records from a
Parsed 1 records from b
`,
	},
	{
		Title: "Multiple files as JSON",
		Files: map[string]string{
			"t.tpl": "Value A (\\w)\n\nStart\n  ^${A} -> Record\n",
			"a":     "x\n",
			"b":     "y\n",
		},
		Options: "-q -o json t.tpl a b",
		Output: `[
 {
  "file": "a",
  "records": [
   {
    "A": "x"
   }
  ]
 },
 {
  "file": "b",
  "records": [
   {
    "A": "y"
   }
  ]
 }
]
`,
	},
	{
		Title:   "Read from stdin",
		Files:   map[string]string{"t.tpl": ifTemplate},
		Stdin:   "name s\naddr 9\nend\n",
		Options: "-q -o table t.tpl -",
		Output: `Name  Addr
s     9
`,
	},
	{
		Title:  "Named template from template_dir",
		Config: "template_dir = tpl\n",
		Files: map[string]string{
			"tpl/show_if.tpl": ifTemplate,
			"in":              ifInput,
		},
		Options: "-q -o table -n show_if in",
		Output: `Name  Addr
a     1 2
b     3
`,
	},
	{
		Title: "Builtin template without template_dir",
		Files: map[string]string{
			"in": "VRF NIBBLE, default RD 65000:16, Table ID 1\n",
		},
		Options: "-q -o table -n show_vrf_detail in",
		Output: `Name    Rd
NIBBLE  65000:16
`,
	},
	{
		Title:   "Unknown builtin template",
		Files:   map[string]string{"in": ifInput},
		Options: "-n show_if in",
		Error:   "Error: Can't open show_if.tpl: file does not exist\n",
		Status:  1,
	},
	{
		Title: "Partial records on Error action",
		Files: map[string]string{
			"t.tpl": `Value A (\d+)

Start
  ^${A} -> Record
  ^. -> Error "bad line"
`,
			"in": "1\n2\nx\n3\n",
		},
		Options: "-q -o table t.tpl in",
		Output: `A
1
2
`,
		Error: `Error: in: bad line in state 'Start', line 3:
>>x<<
`,
		Status: 1,
	},
	{
		Title:   "Missing input file",
		Files:   map[string]string{"t.tpl": ifTemplate},
		Options: "-q -o table t.tpl nothere",
		Output:  "Name  Addr\n",
		Error: "Error: nothere: Can't open nothere:" +
			" no such file or directory\n",
		Status: 1,
	},
	{
		Title:   "Invalid template",
		Files:   map[string]string{"t.tpl": "Value X (a)\n\nState\n  ^${Y}\n"},
		Options: "t.tpl in",
		Error:   "Error: t.tpl: Missing state 'Start' in template\n",
		Status:  1,
	},
	{
		Title:   "Missing template",
		Options: "t.tpl in",
		Error:   "Error: Can't open t.tpl: no such file or directory\n",
		Status:  1,
	},
	{
		Title:   "Bad output format in config",
		Config:  "output = xml\n",
		Options: "t.tpl in",
		Error: "Error: Expected one of [yaml json table] for 'output'" +
			" in .textfsm: xml\n",
		Status: 1,
	},
	{
		Title:   "Bad workers option",
		Options: "--workers=0 t.tpl in",
		Error:   "Error: --workers must be positive\n",
		Status:  1,
	},
	{
		Title:   "Missing argument",
		Files:   map[string]string{"t.tpl": ifTemplate},
		Options: "t.tpl",
		Error: `Usage: PROGRAM [options] TEMPLATE FILE ...
     : PROGRAM [options] -n NAME FILE ...
  -l, --lowercase       Show names of values in lower case
  -n, --name string     Template NAME.tpl from 'template_dir' of config or builtin template
  -o, --output string   Output format: yaml, json, table
  -q, --quiet           No info messages
  -v, --version         Show version
  -w, --workers int     Number of files parsed in parallel
`,
		Status: 1,
	},
}

func TestMain(t *testing.T) {
	for _, d := range tests {
		t.Run(d.Title, func(t *testing.T) {
			runTest(t, d)
		})
	}
}

func runTest(t *testing.T, d descr) {
	workDir := t.TempDir()
	prevDir, _ := os.Getwd()
	defer func() { os.Chdir(prevDir) }()
	os.Chdir(workDir)

	for name, content := range d.Files {
		if i := strings.LastIndex(name, "/"); i != -1 {
			if err := os.MkdirAll(name[:i], 0755); err != nil {
				t.Fatal(err)
			}
		}
		if err := os.WriteFile(name, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(".textfsm", []byte(d.Config), 0644); err != nil {
		t.Fatal(err)
	}
	// Set HOME directory, because config file is searched there.
	t.Setenv("HOME", workDir)

	if d.Stdin != "" {
		if err := os.WriteFile("stdin", []byte(d.Stdin), 0644); err != nil {
			t.Fatal(err)
		}
		f, err := os.Open("stdin")
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		orig := os.Stdin
		os.Stdin = f
		defer func() { os.Stdin = orig }()
	}

	os.Args = append([]string{"PROGRAM"}, strings.Fields(d.Options)...)

	var status int
	var stdout string
	stderr := capture.Capture(&os.Stderr, func() {
		stdout = capture.Capture(&os.Stdout, func() {
			status = capture.CatchPanic(func() int {
				return Main()
			})
		})
	})
	stderr = strings.ReplaceAll(stderr, workDir+"/", "")

	if status != d.Status {
		t.Errorf("Expected status %d, got %d", d.Status, status)
	}
	eq(t, d.Output, stdout)
	eq(t, d.Error, stderr)
}

func eq(t *testing.T, expected, got string) {
	t.Helper()
	if d := cmp.Diff(expected, got); d != "" {
		t.Error(d)
	}
}
