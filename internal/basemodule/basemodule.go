// Package basemodule builds the symbol tables for the well-known base
// modules (SNMPv2-SMI, SNMPv2-TC, SNMPv2-CONF, and the legacy RFC
// 1155/1065/1212/1215 modules) that every loaded MIB implicitly
// depends on, whether or not it names them in an IMPORTS clause.
package basemodule

import (
	"fmt"
	"sync"

	"github.com/snmpmib/gomib/internal/importtable"
	"github.com/snmpmib/gomib/internal/parser"
	"github.com/snmpmib/gomib/mib"
	"github.com/snmpmib/gomib/symtable"
)

var sources = map[string]string{
	"SNMPv2-SMI":  textSNMPv2SMI,
	"SNMPv2-TC":   textSNMPv2TC,
	"SNMPv2-CONF": textSNMPv2CONF,
	"RFC1155-SMI": textRFC1155SMI,
	"RFC1065-SMI": textRFC1065SMI,
	"RFC-1212":    textRFC1212,
	"RFC-1215":    textRFC1215,
}

var (
	once   sync.Once
	tables map[string]*symtable.SymbolTable
	buildErr error
)

// Tables returns the shared, built-once symbol tables for every base
// module, keyed by module name. Callers must not mutate the result.
func Tables() (map[string]*symtable.SymbolTable, error) {
	once.Do(func() {
		tables, buildErr = buildAll()
	})
	return tables, buildErr
}

func buildAll() (map[string]*symtable.SymbolTable, error) {
	rewrites := importtable.DefaultTable()
	built := make(map[string]*symtable.SymbolTable, len(sources))

	// SNMPv2-SMI has no dependency on the others, so it builds first;
	// the rest only ever reference their own OID tree in this trimmed
	// form, so the build order between them does not matter.
	for _, name := range importtable.BaseModuleNames() {
		src, ok := sources[name]
		if !ok {
			return nil, fmt.Errorf("basemodule: no source registered for %s", name)
		}

		p := parser.New([]byte(src), nil, mib.StrictConfig())
		mod := p.ParseModule()
		if mod == nil {
			return nil, fmt.Errorf("basemodule: %s failed to parse", name)
		}
		if mod.HasErrors() {
			return nil, fmt.Errorf("basemodule: %s has parse diagnostics: %v", name, mod.Diagnostics)
		}

		b := symtable.NewBuilder(name, built, rewrites, nil)
		table, err := b.Build(mod)
		if err != nil {
			return nil, fmt.Errorf("basemodule: %s: %w", name, err)
		}
		built[name] = table
	}

	return built, nil
}
