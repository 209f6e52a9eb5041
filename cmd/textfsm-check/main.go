package main

/*
textfsm-check -- Check templates against sample files.

Usage: textfsm-check [-q] [TEMPLATE_DIR] SAMPLE_DIR

Each file SAMPLE_DIR/NAME/CASE.raw is parsed by template
TEMPLATE_DIR/NAME.tpl and compared with records in attribute
'parsed_sample' of SAMPLE_DIR/NAME/CASE.yml.
If TEMPLATE_DIR is omitted, 'template_dir' of config is used.
*/

import (
	"fmt"
	"os"
	"path"

	"github.com/hknutzen/textfsm/pkg/errlog"
	"github.com/hknutzen/textfsm/pkg/fixture"
	"github.com/hknutzen/textfsm/pkg/program"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr,
			"Usage: %s [-q] [TEMPLATE_DIR] SAMPLE_DIR\n", path.Base(os.Args[0]))
		fs.PrintDefaults()
	}
	quiet := fs.BoolP("quiet", "q", false, "Only show failing samples")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fs.Usage()
		return 1
	}
	args := fs.Args()
	if len(args) < 1 || len(args) > 2 {
		fs.Usage()
		return 1
	}
	errlog.Quiet = *quiet
	return errlog.HandleAbort(func() int { return check(args) })
}

func check(args []string) int {
	var tplDir, sampleDir string
	if len(args) == 2 {
		tplDir, sampleDir = args[0], args[1]
	} else {
		cfg, err := program.LoadConfig()
		if err != nil {
			errlog.Abort("%v", err)
		}
		if cfg.TemplateDir == "" {
			errlog.Abort("Missing 'template_dir' in config")
		}
		tplDir, sampleDir = cfg.TemplateDir, args[0]
	}
	results, err := fixture.CheckDir(tplDir, sampleDir)
	if err != nil {
		errlog.Abort("%v", err)
	}
	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
			fmt.Print(r.Report())
		}
	}
	errlog.Info("Checked %d samples, %d failed", len(results), failed)
	if failed > 0 {
		return 1
	}
	return 0
}
