// Package gomib provides MIB parsing and document generation for SNMP
// management.
package gomib

import (
	"github.com/snmpmib/gomib/docgen"
	"github.com/snmpmib/gomib/mib"
)

// Document is a single module's generated MIB document: an ordered
// JSON-shaped record of every symbol the module defines.
type Document = docgen.Document

// CodegenError is returned when a module's document cannot be built,
// e.g. a reference that doesn't resolve within the loaded closure.
type CodegenError = docgen.CodegenError

// OID is a sequence of arc values representing an SNMP Object Identifier.
type OID = mib.Oid

// Access represents the access level of an OBJECT-TYPE definition.
type Access = mib.Access

// Status represents the lifecycle status of a MIB definition.
type Status = mib.Status

// Language identifies the SMI version of a module.
type Language = mib.Language

// BaseType identifies the fundamental SMI type.
type BaseType = mib.BaseType

// Severity represents how critical a diagnostic is.
type Severity = mib.Severity

// Diagnostic represents an issue found during parsing, symbol table
// construction, or document generation.
type Diagnostic = mib.Diagnostic

const (
	AccessNotAccessible       = mib.AccessNotAccessible
	AccessAccessibleForNotify = mib.AccessAccessibleForNotify
	AccessReadOnly            = mib.AccessReadOnly
	AccessReadWrite           = mib.AccessReadWrite
	AccessReadCreate          = mib.AccessReadCreate
	AccessWriteOnly           = mib.AccessWriteOnly
	AccessInstall             = mib.AccessInstall
	AccessInstallNotify       = mib.AccessInstallNotify
	AccessReportOnly          = mib.AccessReportOnly
	AccessNotImplemented      = mib.AccessNotImplemented
)

const (
	StatusCurrent    = mib.StatusCurrent
	StatusDeprecated = mib.StatusDeprecated
	StatusObsolete   = mib.StatusObsolete
	StatusMandatory  = mib.StatusMandatory
	StatusOptional   = mib.StatusOptional
)

const (
	LanguageUnknown = mib.LanguageUnknown
	LanguageSMIv1   = mib.LanguageSMIv1
	LanguageSMIv2   = mib.LanguageSMIv2
	LanguageSPPI    = mib.LanguageSPPI
)

const (
	BaseUnknown          = mib.BaseUnknown
	BaseInteger32        = mib.BaseInteger32
	BaseUnsigned32       = mib.BaseUnsigned32
	BaseCounter32        = mib.BaseCounter32
	BaseCounter64        = mib.BaseCounter64
	BaseGauge32          = mib.BaseGauge32
	BaseTimeTicks        = mib.BaseTimeTicks
	BaseIpAddress        = mib.BaseIpAddress
	BaseOctetString      = mib.BaseOctetString
	BaseObjectIdentifier = mib.BaseObjectIdentifier
	BaseBits             = mib.BaseBits
	BaseOpaque           = mib.BaseOpaque
	BaseSequence         = mib.BaseSequence
)

// Severity constants (libsmi-compatible, lower = more severe).
const (
	SeverityFatal   = mib.SeverityFatal   // 0: Cannot continue parsing
	SeveritySevere  = mib.SeveritySevere  // 1: Semantics changed to continue
	SeverityError   = mib.SeverityError   // 2: Should correct
	SeverityMinor   = mib.SeverityMinor   // 3: Minor issue
	SeverityStyle   = mib.SeverityStyle   // 4: Style recommendation
	SeverityWarning = mib.SeverityWarning // 5: Might be correct
	SeverityInfo    = mib.SeverityInfo    // 6: Informational
)

// StrictnessLevel defines preset strictness configurations.
type StrictnessLevel = mib.StrictnessLevel

const (
	StrictnessStrict     = mib.StrictnessStrict
	StrictnessNormal     = mib.StrictnessNormal
	StrictnessPermissive = mib.StrictnessPermissive
	StrictnessSilent     = mib.StrictnessSilent
)

// DiagnosticConfig controls strictness and diagnostic filtering.
type DiagnosticConfig = mib.DiagnosticConfig

// Preset diagnostic configuration constructors.
var (
	DefaultConfig    = mib.DefaultConfig
	StrictConfig     = mib.StrictConfig
	PermissiveConfig = mib.PermissiveConfig
)

// ParseOID parses an OID from a dotted string (e.g., "1.3.6.1.2.1").
var ParseOID = mib.ParseOID
