package gomib

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/snmpmib/gomib/docgen"
	"github.com/snmpmib/gomib/internal/ast"
	"github.com/snmpmib/gomib/internal/basemodule"
	"github.com/snmpmib/gomib/internal/graph"
	"github.com/snmpmib/gomib/internal/importtable"
	"github.com/snmpmib/gomib/internal/oidresolve"
	"github.com/snmpmib/gomib/internal/parser"
	"github.com/snmpmib/gomib/internal/types"
	"github.com/snmpmib/gomib/mib"
	"github.com/snmpmib/gomib/symtable"
)

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}

// parsedModule is a heuristic-accepted, successfully parsed MIB source
// file, kept alongside its raw bytes for line/column reporting and
// leading-comment extraction.
type parsedModule struct {
	Ast     *ast.Module
	Content []byte
}

// loadAllModules loads every MIB file found across sources in parallel.
func loadAllModules(ctx context.Context, sources []Source, cfg loadConfig) (*Mib, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	logger := cfg.logger

	type sourceFile struct {
		source Source
		name   string
	}

	var files []sourceFile
	for _, src := range sources {
		paths, err := src.ListFiles()
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			files = append(files, sourceFile{source: src, name: moduleNameFromPath(p)})
		}
	}

	if len(files) == 0 {
		return buildResult(nil, nil, cfg, nil)
	}

	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(ctx, slog.LevelInfo, "parallel loading",
			slog.Int("files", len(files)))
	}

	heuristic := defaultHeuristic()

	type parseResult struct {
		name string
		mod  *parsedModule
	}
	results := make(chan parseResult, len(files))

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())

	for _, sf := range files {
		wg.Add(1)
		go func(sf sourceFile) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case sem <- struct{}{}:
			}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}

			result, err := sf.source.Find(sf.name)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					if logEnabled(logger, slog.LevelDebug) {
						logger.LogAttrs(ctx, slog.LevelDebug, "module not found",
							slog.String("module", sf.name),
							slog.String("error", err.Error()))
					}
				} else if logEnabled(logger, slog.LevelWarn) {
					logger.LogAttrs(ctx, slog.LevelWarn, "module read error",
						slog.String("module", sf.name),
						slog.String("error", err.Error()))
				}
				return
			}
			content, err := io.ReadAll(result.Reader)
			_ = result.Reader.Close()
			if err != nil {
				if logEnabled(logger, slog.LevelWarn) {
					logger.LogAttrs(ctx, slog.LevelWarn, "module read error",
						slog.String("module", sf.name),
						slog.String("error", err.Error()))
				}
				return
			}

			astMod := parseModuleSource(content, sf.name, heuristic, logger, cfg)
			if astMod != nil {
				results <- parseResult{name: astMod.Name.Name, mod: &parsedModule{Ast: astMod, Content: content}}
			}
		}(sf)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	modules := make(map[string]*parsedModule)
	for r := range results {
		if _, exists := modules[r.name]; !exists {
			modules[r.name] = r.mod
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(ctx, slog.LevelInfo, "parallel loading complete",
			slog.Int("modules", len(modules)))
	}

	return buildResult(modules, nil, cfg, nil)
}

// loadModulesByName loads the named modules and everything they
// (transitively) import from the given sources.
func loadModulesByName(ctx context.Context, sources []Source, names []string, cfg loadConfig) (*Mib, error) {
	logger := cfg.logger
	heuristic := defaultHeuristic()

	modules := make(map[string]*parsedModule) // keyed by the module's own name
	aliases := make(map[string]string)        // requested name -> actual module name
	loading := make(map[string]struct{})

	var loadOne func(requested string) error
	loadOne = func(requested string) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if importtable.IsBaseModule(requested) {
			return nil // seeded separately from internal/basemodule
		}
		name := requested
		if real, ok := aliases[requested]; ok {
			name = real
		}
		if _, ok := modules[name]; ok {
			return nil
		}
		if _, inProgress := loading[name]; inProgress {
			return nil
		}
		loading[name] = struct{}{}
		defer delete(loading, name)

		content, err := findModuleContent(sources, name)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if logEnabled(logger, slog.LevelDebug) {
				logger.LogAttrs(ctx, slog.LevelDebug, "module not found",
					slog.String("module", name))
			}
			return nil // skip missing modules
		}

		astMod := parseModuleSource(content, name, heuristic, logger, cfg)
		if astMod == nil {
			return nil
		}

		actual := astMod.Name.Name
		modules[actual] = &parsedModule{Ast: astMod, Content: content}
		if actual != name {
			aliases[name] = actual
		}

		for _, imp := range astMod.Imports {
			if err := loadOne(imp.FromModule.Name); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range names {
		if err := loadOne(name); err != nil {
			return nil, err
		}
	}

	return buildResult(modules, aliases, cfg, names)
}

func findModuleContent(sources []Source, name string) ([]byte, error) {
	for _, src := range sources {
		result, err := src.Find(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		content, err := io.ReadAll(result.Reader)
		_ = result.Reader.Close()
		if err != nil {
			return nil, err
		}
		return content, nil
	}
	return nil, fs.ErrNotExist
}

// parseModuleSource runs the heuristic/parse pipeline on raw MIB
// content, returning nil if the content is rejected or fails to parse.
func parseModuleSource(content []byte, name string, heuristic heuristicConfig, logger *slog.Logger, cfg loadConfig) *ast.Module {
	if !heuristic.looksLikeMIBContent(content) {
		if logEnabled(logger, slog.LevelDebug) {
			logger.LogAttrs(context.Background(), slog.LevelDebug, "content rejected by heuristic",
				slog.String("module", name))
		}
		return nil
	}

	p := parser.New(content, componentLogger(logger, "parser"), cfg.diagConfig)
	astMod := p.ParseModule()
	if astMod == nil {
		if logEnabled(logger, slog.LevelDebug) {
			logger.LogAttrs(context.Background(), slog.LevelDebug, "parse failed",
				slog.String("module", name))
		}
	}
	return astMod
}

// buildResult runs the symbol-table and document-generation passes over
// every parsed module and assembles the final Mib.
//
// requestedModules (and aliases, when loading by name) are used only to
// check for missing modules after the fact; every parsed module is
// still built regardless of whether it was explicitly requested, since
// it may be a transitive dependency needed to resolve another module's
// imports.
func buildResult(modules map[string]*parsedModule, aliases map[string]string, cfg loadConfig, requestedModules []string) (*Mib, error) {
	baseTables, err := basemodule.Tables()
	if err != nil {
		return nil, err
	}

	tables := make(oidresolve.Tables, len(baseTables)+len(modules))
	maps.Copy(tables, baseTables)

	var diagnostics []mib.Diagnostic

	order, cycles := moduleBuildOrder(modules)
	if len(cycles) > 0 {
		diagnostics = append(diagnostics, mib.Diagnostic{
			Severity: mib.SeverityWarning,
			Code:     "module-import-cycle",
			Message:  "circular module imports: " + strings.Join(cycles, ", "),
		})
	}

	rewrites := cfg.importTable
	if rewrites == nil {
		rewrites = importtable.DefaultTable()
	}
	symLogger := &types.Logger{L: componentLogger(cfg.logger, "symtable")}

	for _, name := range order {
		pm := modules[name]
		b := symtable.NewBuilder(name, tables, rewrites, symLogger)
		table, err := b.Build(pm.Ast)
		if err != nil {
			diagnostics = append(diagnostics, mib.Diagnostic{
				Severity: mib.SeverityFatal,
				Code:     "symtable-build-error",
				Message:  err.Error(),
				Module:   name,
			})
			continue
		}
		tables[name] = table
	}

	docOpts := docgen.Options{
		GenTexts: cfg.genTexts,
		Strict:   cfg.diagConfig.IsStrict(),
	}

	docs := make(map[string]*docgen.Document, len(modules))
	var built []string
	for _, name := range order {
		if _, ok := tables[name]; !ok {
			continue // failed symtable build
		}
		pm := modules[name]
		opts := docOpts
		opts.Comments = leadingComments(pm.Content)

		doc, err := docgen.Build(pm.Ast, tables, opts)
		if err != nil {
			diagnostics = append(diagnostics, mib.Diagnostic{
				Severity: mib.SeverityError,
				Code:     "docgen-build-error",
				Message:  err.Error(),
				Module:   name,
			})
			continue
		}
		docs[name] = doc
		built = append(built, name)
	}

	for _, name := range order {
		pm := modules[name]
		diagnostics = append(diagnostics, convertDiagnostics(pm.Ast, pm.Content)...)
	}

	m := &Mib{documents: docs, order: built, diagnostics: diagnostics}
	return m, checkLoadResult(m, cfg, requestedModules, aliases)
}

// moduleBuildOrder computes a dependency-ordered build sequence over
// the loaded modules using a per-module node in internal/graph, with
// edges from each module to the modules it imports from. Cyclic
// imports don't block building ((*symtable.Builder).Build never needs another
// module's table to already exist), but are still worth surfacing as
// a diagnostic, so cyclic names are appended to the order rather than
// dropped.
func moduleBuildOrder(modules map[string]*parsedModule) (order []string, cyclicNames []string) {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)

	g := graph.New()
	sym := func(name string) graph.Symbol { return graph.Symbol{Module: name} }
	for _, name := range names {
		g.AddNode(sym(name), graph.NodeKindOID)
	}
	for _, name := range names {
		for _, imp := range modules[name].Ast.Imports {
			dep := imp.FromModule.Name
			if _, ok := modules[dep]; !ok || dep == name {
				continue
			}
			g.AddEdge(sym(name), sym(dep))
		}
	}

	resolved, cyclic := g.ResolutionOrder()
	order = make([]string, 0, len(names))
	for _, s := range resolved {
		order = append(order, s.Module)
	}
	cyclicNames = make([]string, 0, len(cyclic))
	for _, s := range cyclic {
		cyclicNames = append(cyclicNames, s.Module)
	}
	sort.Strings(cyclicNames)
	order = append(order, cyclicNames...)
	return order, cyclicNames
}

// convertDiagnostics turns a module's parser-level diagnostics into
// mib.Diagnostic values, resolving byte offsets to line/column.
func convertDiagnostics(mod *ast.Module, content []byte) []mib.Diagnostic {
	if len(mod.Diagnostics) == 0 {
		return nil
	}
	out := make([]mib.Diagnostic, 0, len(mod.Diagnostics))
	for _, d := range mod.Diagnostics {
		line, col := spanToLineCol(content, d.Span.Start)
		out = append(out, mib.Diagnostic{
			Severity: d.Severity,
			Code:     d.Code,
			Message:  d.Message,
			Module:   mod.Name.Name,
			Line:     line,
			Column:   col,
		})
	}
	return out
}

// spanToLineCol converts a byte offset to 1-based line and column numbers.
// Returns (0, 0) if the source is nil or the offset is out of range.
func spanToLineCol(source []byte, offset types.ByteOffset) (line, col int) {
	if source == nil || int(offset) > len(source) {
		return 0, 0
	}
	line = 1
	lastNewline := -1
	for i := 0; i < int(offset); i++ {
		if source[i] == '\n' {
			line++
			lastNewline = i
		}
	}
	col = int(offset) - lastNewline
	return line, col
}

// leadingComments extracts a MIB file's leading "--" comment block, one
// entry per line with the marker and surrounding whitespace stripped.
// Blank lines before the block are skipped; the first blank or
// non-comment line after it ends the block.
func leadingComments(content []byte) []string {
	var comments []string
	started := false
	for _, raw := range bytes.Split(content, []byte("\n")) {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 {
			if started {
				break
			}
			continue
		}
		if !bytes.HasPrefix(trimmed, []byte("--")) {
			break
		}
		started = true
		comments = append(comments, strings.TrimSpace(strings.TrimPrefix(string(trimmed), "--")))
	}
	return comments
}

var (
	sigDefinitions = []byte("DEFINITIONS")
	sigAssign      = []byte("::=")
)

type heuristicConfig struct {
	enabled         bool
	binaryCheckSize int
	maxProbeSize    int
}

func defaultHeuristic() heuristicConfig {
	return heuristicConfig{
		enabled:         true,
		binaryCheckSize: 1024,
		maxProbeSize:    128 * 1024,
	}
}

func (h *heuristicConfig) looksLikeMIBContent(content []byte) bool {
	if !h.enabled {
		return true
	}
	if len(content) == 0 {
		return false
	}

	checkLen := h.binaryCheckSize
	if checkLen > len(content) {
		checkLen = len(content)
	}
	for _, b := range content[:checkLen] {
		if b == 0 {
			return false
		}
	}

	probeLen := h.maxProbeSize
	if probeLen > len(content) {
		probeLen = len(content)
	}
	probe := content[:probeLen]

	if bytes.IndexByte(probe, 0) >= 0 {
		return false
	}

	return bytes.Contains(probe, sigDefinitions) && bytes.Contains(probe, sigAssign)
}
