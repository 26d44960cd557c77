// Package gomib loads and resolves SNMP MIB modules.
//
// Call [Load] with one or more [Source] values to parse MIB files,
// build each module's symbol table, and generate a read-only
// [Document] for every module that resolves cleanly. The result is
// returned as a [Mib]: a lookup by module name plus every diagnostic
// collected along the way.
package gomib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/snmpmib/gomib/docgen"
	"github.com/snmpmib/gomib/internal/importtable"
	"github.com/snmpmib/gomib/internal/types"
	"github.com/snmpmib/gomib/mib"
)

// ErrNoSources is returned when Load is called with no sources.
var ErrNoSources = errors.New("no MIB sources provided")

// ErrMissingModules is returned when WithModules names are not found in any source.
// The Mib is still returned with whatever modules could be loaded.
var ErrMissingModules = errors.New("requested modules not found")

// ErrDiagnosticThreshold is returned when diagnostics exceed the configured FailAt severity.
// The Mib is still returned with all resolved data.
var ErrDiagnosticThreshold = errors.New("diagnostic threshold exceeded")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (tokens, OID nodes, imports).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// Mib is the merged result of a Load call: the generated [Document]
// for every module that resolved cleanly, plus every diagnostic
// collected while parsing, building symbol tables, and generating
// documents.
type Mib struct {
	documents   map[string]*docgen.Document
	order       []string
	diagnostics []mib.Diagnostic
}

// Module returns the generated document for name, or nil if it wasn't
// loaded or failed to resolve.
func (m *Mib) Module(name string) *docgen.Document {
	if m == nil {
		return nil
	}
	return m.documents[name]
}

// Modules returns the names of every successfully resolved module, in
// the order they were built.
func (m *Mib) Modules() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.order...)
}

// Diagnostics returns every diagnostic collected while loading.
func (m *Mib) Diagnostics() []mib.Diagnostic {
	if m == nil {
		return nil
	}
	return m.diagnostics
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger      *slog.Logger
	systemPaths bool
	diagConfig  mib.DiagnosticConfig
	sources     []Source
	modules     []string
	hasModules  bool // true when WithModules was called (even with empty list)
	genTexts    bool
	importTable *importtable.Table
	importTableErr error
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) { c.logger = logger }
}

// WithDiagnosticConfig sets the diagnostic configuration for strictness control.
// If not set, defaults to Normal strictness (report Minor and above, fail on Severe).
func WithDiagnosticConfig(cfg mib.DiagnosticConfig) LoadOption {
	return func(c *loadConfig) { c.diagConfig = cfg }
}

// WithStrictness sets the strictness level using a preset configuration.
// Convenience wrapper for WithDiagnosticConfig with preset configs.
func WithStrictness(level mib.StrictnessLevel) LoadOption {
	return func(c *loadConfig) {
		switch level {
		case mib.StrictnessStrict:
			c.diagConfig = mib.StrictConfig()
		case mib.StrictnessNormal:
			c.diagConfig = mib.DefaultConfig()
		case mib.StrictnessPermissive:
			c.diagConfig = mib.PermissiveConfig()
		case mib.StrictnessSilent:
			c.diagConfig = mib.DiagnosticConfig{
				Level:  mib.StrictnessSilent,
				FailAt: mib.SeverityFatal,
			}
		default:
			c.diagConfig = mib.DefaultConfig()
		}
	}
}

// WithSource appends one or more MIB sources to the load configuration.
// Sources are searched in the order they are added.
func WithSource(src ...Source) LoadOption {
	return func(c *loadConfig) { c.sources = append(c.sources, src...) }
}

// WithModules restricts loading to the named modules and their dependencies.
// Omit to load all modules from the configured sources.
func WithModules(names ...string) LoadOption {
	return func(c *loadConfig) {
		c.modules = append(c.modules, names...)
		c.hasModules = true
	}
}

// WithGenTexts controls whether generated documents include DESCRIPTION
// and UNITS text and the MODULE-IDENTITY LAST-UPDATED/ORGANIZATION/
// CONTACT-INFO fields; REFERENCE text is included either way. Enabled by
// default; pass false for space-constrained callers that only need
// structure.
func WithGenTexts(enabled bool) LoadOption {
	return func(c *loadConfig) { c.genTexts = enabled }
}

// WithImportTable reads a YAML document of SMIv1->SMIv2 rewrite rules
// and constant-import additions from r and merges it onto the built-in
// table, for sites tracking a private MIB corpus with its own SMIv1
// stragglers or vendor-local constant symbols. A read or parse error is
// returned immediately and aborts Load before any source is touched.
func WithImportTable(r io.Reader) LoadOption {
	return func(c *loadConfig) {
		table, err := importtable.LoadYAML(r, importtable.DefaultTable())
		if err != nil {
			c.importTableErr = err
			return
		}
		c.importTable = table
	}
}

// Load loads MIB modules from configured sources and generates a
// document for each one that resolves cleanly.
//
// Example:
//
//	m, err := gomib.Load(ctx,
//	    gomib.WithSource(gomib.MustDirTree("/usr/share/snmp/mibs")),
//	    gomib.WithModules("IF-MIB", "IP-MIB"),
//	)
//
//	m, err := gomib.Load(ctx, gomib.WithSystemPaths())
func Load(ctx context.Context, opts ...LoadOption) (*Mib, error) {
	cfg := loadConfig{
		diagConfig: mib.DefaultConfig(),
		genTexts:   true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.importTableErr != nil {
		return nil, cfg.importTableErr
	}

	sources := cfg.sources
	if cfg.systemPaths {
		sources = append(sources, discoverSystemSources(types.Logger{L: cfg.logger})...)
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	if cfg.hasModules {
		return loadModulesByName(ctx, sources, cfg.modules, cfg)
	}
	return loadAllModules(ctx, sources, cfg)
}

// LoadModules is a convenience wrapper for loading a fixed set of named
// modules from a single source.
func LoadModules(ctx context.Context, names []string, src Source, opts ...LoadOption) (*Mib, error) {
	all := append([]LoadOption{WithSource(src), WithModules(names...)}, opts...)
	return Load(ctx, all...)
}

// checkLoadResult checks the built Mib for diagnostic threshold violations
// and missing requested modules. Returns nil if no issues found.
func checkLoadResult(m *Mib, cfg loadConfig, requestedModules []string, aliases map[string]string) error {
	var errs []error

	if len(requestedModules) > 0 {
		var missing []string
		for _, name := range requestedModules {
			resolved := name
			if real, ok := aliases[name]; ok {
				resolved = real
			}
			if m.Module(resolved) == nil {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingModules, strings.Join(missing, ", ")))
		}
	}

	for _, d := range m.Diagnostics() {
		if cfg.diagConfig.ShouldFail(d.Severity) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDiagnosticThreshold, d))
			break
		}
	}

	return errors.Join(errs...)
}

func logEnabled(logger *slog.Logger, level slog.Level) bool {
	return logger != nil && logger.Enabled(context.Background(), level)
}
