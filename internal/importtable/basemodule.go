package importtable

// BaseModule identifies a well-known SMI base module whose symbols are
// always available without an explicit IMPORTS clause.
//
// Ported from the module-lowering layer's base module registry and
// narrowed to the name/classification surface the import table needs;
// the synthetic full-module construction that registry also offered is
// superseded here by ConstImports (§4.2), which only needs the symbol
// names, not synthetic ASTs.
type BaseModule int

const (
	BaseModuleSNMPv2SMI BaseModule = iota
	BaseModuleSNMPv2TC
	BaseModuleSNMPv2CONF
	BaseModuleRFC1155SMI
	BaseModuleRFC1065SMI
	BaseModuleRFC1212
	BaseModuleRFC1215
)

var baseModuleNames = [...]string{
	"SNMPv2-SMI",
	"SNMPv2-TC",
	"SNMPv2-CONF",
	"RFC1155-SMI",
	"RFC1065-SMI",
	"RFC-1212",
	"RFC-1215",
}

// Name returns the canonical module name.
func (m BaseModule) Name() string {
	if int(m) >= 0 && int(m) < len(baseModuleNames) {
		return baseModuleNames[m]
	}
	return ""
}

// IsSMIv2 reports whether this is an SMIv2 base module.
func (m BaseModule) IsSMIv2() bool {
	switch m {
	case BaseModuleSNMPv2SMI, BaseModuleSNMPv2TC, BaseModuleSNMPv2CONF:
		return true
	default:
		return false
	}
}

// IsSMIv1 reports whether this is an SMIv1 base module.
func (m BaseModule) IsSMIv1() bool {
	switch m {
	case BaseModuleRFC1155SMI, BaseModuleRFC1065SMI, BaseModuleRFC1212, BaseModuleRFC1215:
		return true
	default:
		return false
	}
}

var baseModuleByName = func() map[string]BaseModule {
	m := make(map[string]BaseModule, len(baseModuleNames))
	for i, name := range baseModuleNames {
		m[name] = BaseModule(i)
	}
	return m
}()

// BaseModuleFromName returns the BaseModule for name, if any.
func BaseModuleFromName(name string) (BaseModule, bool) {
	m, ok := baseModuleByName[name]
	return m, ok
}

// IsBaseModule reports whether name is a recognized base module.
func IsBaseModule(name string) bool {
	_, ok := baseModuleByName[name]
	return ok
}

// BaseModuleNames returns the canonical names of all base modules.
func BaseModuleNames() []string {
	return baseModuleNames[:]
}
