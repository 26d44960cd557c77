package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const findUsage = `gomib find - Search for names across loaded MIBs

Usage:
  gomib find [options] PATTERN

Searches symbol names using glob-style patterns (*, ?).
Requires either -m MODULE or --all.

Options:
  -m, --module MODULE   Module to load (repeatable)
  --all                 Load all MIBs from search path
  --class CLASS         Filter by symbol class (objecttype, notificationtype,
                         objectidentity, moduleidentity, type, ...)
  --type TYPE           Filter by declared syntax type name (Integer32,
                         OctetString, Counter32, etc.)
  --count               Print only the match count
  -h, --help            Show help

Examples:
  gomib find --all -p testdata/corpus/primary 'if*'
  gomib find --all -p testdata/corpus/primary --class objecttype '*'
  gomib find --all -p testdata/corpus/primary --type Counter32 '*'
  gomib find -m IF-MIB -p testdata/corpus/primary 'if*'
`

func (c *cli) cmdFind(args []string) int {
	fs := flag.NewFlagSet("find", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, findUsage) }

	var modules moduleList
	fs.Var(&modules, "m", "module to load")
	fs.Var(&modules, "module", "module to load")
	loadAll := fs.Bool("all", false, "load all MIBs from search path")
	classFilter := fs.String("class", "", "filter by symbol class")
	typeFilter := fs.String("type", "", "filter by declared syntax type name")
	count := fs.Bool("count", false, "print only match count")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, findUsage)
		return 0
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		printError("no pattern specified")
		fmt.Fprint(os.Stderr, findUsage)
		return 1
	}
	pattern := strings.ToLower(remaining[0])

	if !*loadAll && len(modules) == 0 {
		printError("specify -m MODULE or --all")
		fmt.Fprint(os.Stderr, findUsage)
		return 1
	}

	var loadModules []string
	if !*loadAll {
		loadModules = modules
	}
	m, err := c.loadMib(loadModules)
	if err != nil {
		printError("failed to load: %v", err)
		return exitError
	}

	classLower := strings.ToLower(*classFilter)
	typeLower := strings.ToLower(*typeFilter)
	matches := 0

	for _, modName := range m.Modules() {
		doc := m.Module(modName)
		for _, key := range doc.Keys() {
			if _, reserved := reservedDocKeys[key]; reserved {
				continue
			}
			if !matchNameGlob(pattern, strings.ToLower(key)) {
				continue
			}
			rec, ok := doc.Get(key)
			if !ok {
				continue
			}
			recGet, ok := rec.(interface{ Get(string) (any, bool) })
			if !ok {
				continue
			}

			if classLower != "" {
				class, _ := recGet.Get("class")
				if s, _ := class.(string); strings.ToLower(s) != classLower {
					continue
				}
			}
			if typeLower != "" && !matchSyntaxType(recGet, typeLower) {
				continue
			}

			matches++
			if !*count {
				oid, _ := recGet.Get("oid")
				class, _ := recGet.Get("class")
				fmt.Printf("%s::%s  %v  %v\n", modName, key, oid, class)
			}
		}
	}

	if *count {
		fmt.Println(matches)
	}
	return 0
}

func matchNameGlob(pattern, name string) bool {
	ok, _ := filepath.Match(pattern, name)
	return ok
}

func matchSyntaxType(rec interface{ Get(string) (any, bool) }, typeLower string) bool {
	syn, ok := rec.Get("syntax")
	if !ok {
		return false
	}
	synGet, ok := syn.(interface{ Get(string) (any, bool) })
	if !ok {
		return false
	}
	t, _ := synGet.Get("type")
	s, _ := t.(string)
	return strings.ToLower(s) == typeLower
}
