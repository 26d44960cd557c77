package main

import (
	"flag"
	"fmt"
	"os"
)

const traceUsage = `gomib trace - Trace symbol resolution for debugging

Usage:
  gomib trace [options] SYMBOL

Reports every loaded module that defines SYMBOL, its resolved OID and
class, and (for modules that don't define it) what their import table
resolves it to. Useful for debugging duplicate definitions or a symbol
resolving from an unexpected module.

Options:
  -m, --module MODULE   Module to load (repeatable)
  --all                 Load all MIBs from search path
  -h, --help            Show help

Examples:
  gomib trace -m IF-MIB ifIndex
  gomib trace --all ifEntry
  gomib trace --all -p testdata/corpus/primary ifEntry
`

func (c *cli) cmdTrace(args []string) int {
	fs := flag.NewFlagSet("trace", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, traceUsage) }

	var modules moduleList
	fs.Var(&modules, "m", "module to load")
	fs.Var(&modules, "module", "module to load")
	loadAll := fs.Bool("all", false, "load all MIBs from search path")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, traceUsage)
		return 0
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		printError("no symbol specified")
		fmt.Fprint(os.Stderr, traceUsage)
		return 1
	}
	symbol := remaining[0]

	var loadModules []string
	if !*loadAll {
		loadModules = modules
	}
	m, err := c.loadMib(loadModules)
	if err != nil {
		printError("failed to load: %v", err)
		return exitError
	}

	found := 0
	for _, modName := range m.Modules() {
		doc := m.Module(modName)

		if rec, ok := doc.Get(symbol); ok {
			found++
			recGet, _ := rec.(interface{ Get(string) (any, bool) })
			var oid, class any
			if recGet != nil {
				oid, _ = recGet.Get("oid")
				class, _ = recGet.Get("class")
			}
			fmt.Printf("%s: defines %s  oid=%v  class=%v\n", modName, symbol, oid, class)
			continue
		}

		imports, _ := doc.Get("imports")
		importMap, _ := imports.(map[string]string)
		if owner, ok := importMap[symbol]; ok {
			fmt.Printf("%s: imports %s from %s\n", modName, symbol, owner)
		}
	}

	if found == 0 {
		printError("not found in any loaded module: %s", symbol)
		return 1
	}
	return 0
}
