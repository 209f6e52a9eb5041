package main

/*
textfsm -- Extract records from command output using a template.

Usage: textfsm [options] TEMPLATE FILE ...
     : textfsm [options] -n NAME FILE ...

FILE "-" reads from standard input.
*/

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"text/tabwriter"

	"github.com/hknutzen/textfsm/pkg/errlog"
	"github.com/hknutzen/textfsm/pkg/netiron"
	"github.com/hknutzen/textfsm/pkg/program"
	"github.com/hknutzen/textfsm/pkg/textfsm"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var version = "devel"

func main() {
	os.Exit(Main())
}

type result struct {
	file    string
	records []textfsm.Record
	err     error
}

func Main() int {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)

	// Setup custom usage function.
	fs.Usage = func() {
		prog := path.Base(os.Args[0])
		fmt.Fprintf(os.Stderr,
			"Usage: %s [options] TEMPLATE FILE ...\n"+
				"     : %s [options] -n NAME FILE ...\n", prog, prog)
		fs.PrintDefaults()
	}

	// Command line flags
	name := fs.StringP("name", "n", "",
		"Template NAME.tpl from 'template_dir' of config or builtin template")
	output := fs.StringP("output", "o", "", "Output format: yaml, json, table")
	workers := fs.IntP("workers", "w", 0, "Number of files parsed in parallel")
	lower := fs.BoolP("lowercase", "l", false, "Show names of values in lower case")
	quiet := fs.BoolP("quiet", "q", false, "No info messages")
	showVer := fs.BoolP("version", "v", false, "Show version")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fs.Usage()
		return 1
	}
	if *showVer {
		fmt.Fprintf(os.Stderr, "version %s\n", version)
		return 0
	}
	errlog.Quiet = *quiet

	cfg, err := program.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if fs.Changed("output") {
		cfg.Output = *output
	}
	if fs.Changed("workers") {
		if *workers < 1 {
			fmt.Fprintf(os.Stderr, "Error: --workers must be positive\n")
			return 1
		}
		cfg.Workers = *workers
	}
	if fs.Changed("lowercase") {
		cfg.Lowercase = *lower
	}

	// Argument processing
	args := fs.Args()
	tplFile := ""
	if *name == "" && len(args) > 0 {
		tplFile, args = args[0], args[1:]
	}
	if *name == "" && tplFile == "" || len(args) == 0 {
		fs.Usage()
		return 1
	}
	var tmpl *textfsm.Template
	if tplFile != "" {
		tmpl, err = textfsm.LoadFile(tplFile)
	} else {
		tmpl, err = loadNamed(cfg, *name)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	results := parseFiles(tmpl, args, cfg.Workers)
	header := tmpl.Header()
	if cfg.Lowercase {
		for i, h := range header {
			header[i] = strings.ToLower(h)
		}
		for _, r := range results {
			for i, rec := range r.records {
				r.records[i] = rec.Lower()
			}
		}
	}
	if err := printResults(os.Stdout, cfg.Output, header, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	status := 0
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", r.file, r.err)
			status = 1
		} else {
			errlog.Info("Parsed %d records from %s", len(r.records), r.file)
		}
	}
	return status
}

// Named template is read from 'template_dir' of config.
// Without 'template_dir' the builtin NetIron templates are used.
func loadNamed(cfg *program.Config, name string) (*textfsm.Template, error) {
	if cfg.TemplateDir == "" {
		return textfsm.LoadFS(netiron.Templates, name+".tpl")
	}
	file, err := cfg.TemplatePath(name)
	if err != nil {
		return nil, err
	}
	return textfsm.LoadFile(file)
}

// Parse files in parallel, each by a separate session of tmpl.
func parseFiles(tmpl *textfsm.Template, files []string, workers int) []*result {
	results := make([]*result, len(files))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, file := range files {
		file := file
		r := &result{file: file}
		results[i] = r
		g.Go(func() error {
			data, err := readInput(file)
			if err != nil {
				r.err = err
				return nil
			}
			r.records, r.err = tmpl.Parse(string(data))
			return nil
		})
	}
	g.Wait()
	return results
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("Can't %v", err)
	}
	return data, nil
}

func printResults(w io.Writer, format string, header []string,
	results []*result) error {

	switch format {
	case "table":
		for _, r := range results {
			if len(results) > 1 {
				fmt.Fprintf(w, "==> %s <==\n", r.file)
			}
			printTable(w, header, r.records)
		}
		return nil
	case "json", "yaml":
	default:
		return fmt.Errorf("Unknown output format %q", format)
	}
	var data any
	if len(results) == 1 {
		data = ordered(header, results[0].records)
	} else {
		var l []fileRecords
		for _, r := range results {
			l = append(l, fileRecords{
				File:    r.file,
				Records: ordered(header, r.records),
			})
		}
		data = l
	}
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", " ")
		return enc.Encode(data)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}

func printTable(w io.Writer, header []string, records []textfsm.Record) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, rec := range records {
		fmt.Fprintln(tw, strings.Join(rec.Strings(header), "\t"))
	}
	tw.Flush()
}
