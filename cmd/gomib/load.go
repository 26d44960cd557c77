package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/snmpmib/gomib"
)

const loadUsage = `gomib load - Load and resolve MIB modules

Usage:
  gomib load [options] MODULE...

Options:
  --strict      Use strict RFC compliance mode
  --permissive  Use permissive mode for vendor MIBs
  --level N     Set strictness level (0-6, lower is stricter)
  --stats       Show detailed statistics
  -h, --help    Show help

Strictness Levels:
  0 (strict)     - RFC compliance checking
  3 (normal)     - Default, balanced
  5 (permissive) - Accept most real-world MIBs
  6 (silent)     - Maximum compatibility

Examples:
  gomib load IF-MIB
  gomib load IF-MIB SNMPv2-MIB
  gomib load -v IF-MIB                 # Debug logging
  gomib load -vv IF-MIB                # Trace logging
  gomib load --strict IF-MIB           # RFC compliance mode
  gomib load --permissive IF-MIB       # Vendor MIB mode
  gomib load --stats IF-MIB            # Show detailed stats
`

func (c *cli) cmdLoad(args []string) int {
	fs := flag.NewFlagSet("load", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, loadUsage) }

	strict := fs.Bool("strict", false, "use strict RFC compliance mode")
	permissive := fs.Bool("permissive", false, "use permissive mode for vendor MIBs")
	level := fs.Int("level", -1, "set strictness level (0-6)")
	stats := fs.Bool("stats", false, "show detailed statistics")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, loadUsage)
		return 0
	}

	modules := fs.Args()
	if len(modules) == 0 {
		printError("no modules specified")
		fmt.Fprint(os.Stderr, loadUsage)
		return 1
	}

	var opts []gomib.LoadOption
	if *strict {
		opts = append(opts, gomib.WithStrictness(gomib.StrictnessStrict))
	} else if *permissive {
		opts = append(opts, gomib.WithStrictness(gomib.StrictnessPermissive))
	} else if *level >= 0 {
		opts = append(opts, gomib.WithStrictness(gomib.StrictnessLevel(*level)))
	}

	m, loadErr := c.loadMibWithOpts(modules, opts...)
	if loadErr != nil && m == nil {
		printError("failed to load: %v", loadErr)
		return 1
	}

	if *stats {
		printDetailedStats(m)
	} else {
		fmt.Printf("Loaded %d modules (%d symbols)\n", len(m.Modules()), symbolCount(m))
	}

	diags := m.Diagnostics()
	hasSevere := false
	hasErrors := false
	for _, d := range diags {
		if d.Severity.AtLeast(gomib.SeveritySevere) {
			hasSevere = true
		}
		if d.Severity.AtLeast(gomib.SeverityError) {
			hasErrors = true
		}
	}

	if len(diags) > 0 {
		fmt.Println()
		fmt.Println("Diagnostics:")
		for _, d := range diags {
			printDiagnostic(d)
		}
	}

	if loadErr != nil {
		printError("%v", loadErr)
		return 1
	}
	if hasSevere {
		return 1
	}
	if *strict && hasErrors {
		return 2
	}
	return 0
}

func printDiagnostic(d gomib.Diagnostic) {
	prefix := "  " + d.Severity.String() + ": "
	if d.Code != "" {
		prefix += "[" + d.Code + "] "
	}
	if d.Module != "" {
		if d.Line > 0 {
			fmt.Printf("%s%s:%d: %s\n", prefix, d.Module, d.Line, d.Message)
		} else {
			fmt.Printf("%s%s: %s\n", prefix, d.Module, d.Message)
		}
	} else {
		fmt.Printf("%s%s\n", prefix, d.Message)
	}
}

// reservedDocKeys are the Document fields that aren't symbol records.
var reservedDocKeys = map[string]struct{}{
	"module": {}, "imports": {}, "meta": {}, "_symtable_order": {},
}

// symbolCount sums the admitted symbol count across every loaded module.
func symbolCount(m *gomib.Mib) int {
	total := 0
	for _, name := range m.Modules() {
		doc := m.Module(name)
		for _, key := range doc.Keys() {
			if _, reserved := reservedDocKeys[key]; !reserved {
				total++
			}
		}
	}
	return total
}

// classCounts tallies symbol records by their "class" field across
// every loaded module.
func classCounts(m *gomib.Mib) map[string]int {
	counts := make(map[string]int)
	for _, name := range m.Modules() {
		doc := m.Module(name)
		for _, key := range doc.Keys() {
			if _, reserved := reservedDocKeys[key]; reserved {
				continue
			}
			rec, ok := doc.Get(key)
			if !ok {
				continue
			}
			class, _ := rec.(interface{ Get(string) (any, bool) }).Get("class")
			if s, ok := class.(string); ok {
				counts[s]++
			}
		}
	}
	return counts
}

func printDetailedStats(m *gomib.Mib) {
	fmt.Println("Statistics:")
	fmt.Printf("  Modules:        %d\n", len(m.Modules()))
	fmt.Printf("  Symbols:        %d\n", symbolCount(m))
	fmt.Printf("  Diagnostics:    %d\n", len(m.Diagnostics()))

	counts := classCounts(m)
	classes := make([]string, 0, len(counts))
	for class := range counts {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	fmt.Println()
	fmt.Println("Symbols by class:")
	for _, class := range classes {
		fmt.Printf("  %-20s %d\n", class+":", counts[class])
	}
}
