package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/snmpmib/gomib"
)

const getUsage = `gomib get - Query OID or name lookups

Usage:
  gomib get [options] -m MODULE QUERY
  gomib get [options] MODULE... -- QUERY

Query formats:
  Name:            ifIndex
  Qualified:       IF-MIB::ifIndex
  Numeric OID:     1.3.6.1.2.1.2.2.1.1

Options:
  -m, --module MODULE   Module to load (repeatable)
  -h, --help            Show help

Examples:
  gomib get -m IF-MIB ifIndex
  gomib get -m IF-MIB 1.3.6.1.2.1.2.2.1.1
  gomib get IF-MIB SNMPv2-MIB -- sysDescr
`

type moduleList []string

func (m *moduleList) String() string { return fmt.Sprintf("%v", *m) }
func (m *moduleList) Set(value string) error {
	*m = append(*m, value)
	return nil
}

func (c *cli) cmdGet(args []string) int {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, getUsage) }

	var modules moduleList
	fs.Var(&modules, "m", "module to load")
	fs.Var(&modules, "module", "module to load")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, getUsage)
		return 0
	}

	remaining := fs.Args()

	// Parse MODULE... -- QUERY format
	var query string
	dashIdx := -1
	for i, arg := range remaining {
		if arg == "--" {
			dashIdx = i
			break
		}
	}

	if dashIdx >= 0 {
		modules = append(modules, remaining[:dashIdx]...)
		if dashIdx+1 < len(remaining) {
			query = remaining[dashIdx+1]
		}
	} else if len(remaining) > 0 {
		query = remaining[len(remaining)-1]
		if len(modules) == 0 && len(remaining) > 1 {
			modules = remaining[:len(remaining)-1]
		}
	}

	if len(modules) == 0 {
		printError("no modules specified")
		fmt.Fprint(os.Stderr, getUsage)
		return 1
	}
	if query == "" {
		printError("no query specified")
		fmt.Fprint(os.Stderr, getUsage)
		return 1
	}

	m, err := c.loadMib(modules)
	if err != nil {
		printError("failed to load: %v", err)
		return 2
	}

	modName, name, oid := parseQuery(query)
	rec, foundModule, ok := lookupQuery(m, modName, name, oid)
	if !ok {
		printError("not found: %s", query)
		return 1
	}

	printRecord(foundModule, name, rec)
	return 0
}

// parseQuery splits a query into its qualified-name parts: an explicit
// "MODULE::name" form, a bare name, or a dotted numeric OID.
func parseQuery(query string) (module, name, oid string) {
	if i := strings.Index(query, "::"); i >= 0 {
		return query[:i], query[i+2:], ""
	}
	if strings.ContainsAny(query, "0123456789") && strings.Contains(query, ".") && !strings.ContainsAny(query, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return "", "", strings.TrimPrefix(query, ".")
	}
	return "", query, ""
}

// lookupQuery resolves a query against every loaded module, a single
// explicitly-named module, or by scanning each record's resolved "oid"
// field when the query is numeric.
func lookupQuery(m *gomib.Mib, modName, name, oid string) (rec any, foundModule string, ok bool) {
	candidates := m.Modules()
	if modName != "" {
		candidates = []string{modName}
	}
	for _, mn := range candidates {
		doc := m.Module(mn)
		if doc == nil {
			continue
		}
		if name != "" {
			if v, ok := doc.Get(name); ok {
				return v, mn, true
			}
			continue
		}
		for _, key := range doc.Keys() {
			if _, reserved := reservedDocKeys[key]; reserved {
				continue
			}
			v, ok := doc.Get(key)
			if !ok {
				continue
			}
			recGet, ok := v.(interface{ Get(string) (any, bool) })
			if !ok {
				continue
			}
			if o, _ := recGet.Get("oid"); o == oid {
				return v, mn, true
			}
		}
	}
	return nil, "", false
}

// printRecord renders a symbol record's generated fields in a fixed,
// human-scannable order.
func printRecord(module, name string, rec any) {
	recGet, ok := rec.(interface{ Get(string) (any, bool) })
	if !ok {
		fmt.Printf("%s\n", name)
		return
	}

	oid, _ := recGet.Get("oid")
	class, _ := recGet.Get("class")
	fmt.Printf("%s  %s::%s  %v\n", name, module, name, oid)
	fmt.Printf("  class:  %v\n", class)

	if syn, ok := recGet.Get("syntax"); ok {
		if synGet, ok := syn.(interface{ Get(string) (any, bool) }); ok {
			t, _ := synGet.Get("type")
			fmt.Printf("  type:   %v\n", t)
		}
	}
	if v, ok := recGet.Get("maxaccess"); ok {
		fmt.Printf("  access: %v\n", v)
	}
	if v, ok := recGet.Get("indices"); ok {
		fmt.Printf("  index:  %v\n", v)
	}
	if v, ok := recGet.Get("augmention"); ok {
		fmt.Printf("  augments: %v\n", v)
	}
	if v, ok := recGet.Get("default"); ok {
		fmt.Printf("  default: %v\n", v)
	}
	if v, ok := recGet.Get("units"); ok {
		fmt.Printf("  units:  %v\n", v)
	}
	if v, ok := recGet.Get("description"); ok {
		if s, _ := v.(string); s != "" {
			fmt.Printf("  descr:  %s\n", normalizeDescription(s, 200))
		}
	}
}

// normalizeDescription truncates and normalizes a description for display.
func normalizeDescription(s string, maxLen int) string {
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}
