package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/snmpmib/gomib"
)

// Document is the generated per-module record dumped by this command.
type Document = gomib.Document

const dumpUsage = `gomib dump - Output modules as JSON

Usage:
  gomib dump [options] MODULE...

Emits each requested module's generated document: an ordered,
JSON-shaped record of every symbol the module defines, keyed by name.

Options:
  --compact         Emit compact JSON (default: indented)
  --diagnostics     Include parser/resolver diagnostics in the output
  -h, --help        Show help

Examples:
  gomib dump IF-MIB
  gomib dump --compact IF-MIB SNMPv2-MIB
  gomib dump --diagnostics IF-MIB
`

func (c *cli) cmdDump(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, dumpUsage) }

	compact := fs.Bool("compact", false, "emit compact JSON")
	withDiags := fs.Bool("diagnostics", false, "include diagnostics in the output")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, dumpUsage)
		return 0
	}

	modules := fs.Args()
	if len(modules) == 0 {
		printError("no modules specified")
		fmt.Fprint(os.Stderr, dumpUsage)
		return 1
	}

	m, err := c.loadMib(modules)
	if err != nil {
		printError("failed to load: %v", err)
		return exitError
	}

	out := buildDumpOutput(m, modules, *withDiags)

	data, err := marshalJSON(out, !*compact)
	if err != nil {
		printError("marshaling output: %v", err)
		return exitError
	}
	fmt.Println(string(data))
	return 0
}

// buildDumpOutput collects the requested modules' documents (all loaded
// modules if requested is empty) plus optional diagnostics.
func buildDumpOutput(m *gomib.Mib, requested []string, withDiags bool) DumpOutput {
	names := requested
	if len(names) == 0 {
		names = m.Modules()
	}
	sort.Strings(names)

	out := DumpOutput{Modules: make(map[string]*Document, len(names))}
	for _, name := range names {
		if doc := m.Module(name); doc != nil {
			out.Modules[name] = doc
		}
	}

	if withDiags {
		for _, d := range m.Diagnostics() {
			out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
				Severity: d.Severity.String(),
				Code:     d.Code,
				Module:   d.Module,
				Line:     d.Line,
				Message:  d.Message,
			})
		}
	}
	return out
}
