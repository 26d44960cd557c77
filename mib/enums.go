// Package mib provides the public result types for MIB compilation:
// diagnostics, OIDs, and the enumerations shared by the compiler phases
// and their callers.
package mib

import "fmt"

// Access levels for OBJECT-TYPE/compliance clauses (RFC 2578 §7.4,
// RFC 2580 MODULE-COMPLIANCE MIN-ACCESS).
type Access int

const (
	AccessNotAccessible Access = iota
	AccessAccessibleForNotify
	AccessReadOnly
	AccessReadWrite
	AccessReadCreate
	AccessWriteOnly
	// AccessInstall, AccessInstallNotify, AccessReportOnly and
	// AccessNotImplemented are the SPPI (RFC 3159) PIB access values.
	AccessInstall
	AccessInstallNotify
	AccessReportOnly
	AccessNotImplemented
)

func (a Access) String() string {
	switch a {
	case AccessNotAccessible:
		return "not-accessible"
	case AccessAccessibleForNotify:
		return "accessible-for-notify"
	case AccessReadOnly:
		return "read-only"
	case AccessReadWrite:
		return "read-write"
	case AccessReadCreate:
		return "read-create"
	case AccessWriteOnly:
		return "write-only"
	case AccessInstall:
		return "install"
	case AccessInstallNotify:
		return "install-notify"
	case AccessReportOnly:
		return "report-only"
	case AccessNotImplemented:
		return "not-implemented"
	default:
		return fmt.Sprintf("Access(%d)", a)
	}
}

// Status values for MIB definitions (RFC 2578 §7.5), plus the two
// legacy SMIv1 spellings a compliant reader must still accept.
type Status int

const (
	StatusCurrent Status = iota
	StatusDeprecated
	StatusObsolete
	StatusMandatory
	StatusOptional
)

func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusDeprecated:
		return "deprecated"
	case StatusObsolete:
		return "obsolete"
	case StatusMandatory:
		return "mandatory"
	case StatusOptional:
		return "optional"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// IsSMIv1 reports whether s is one of the two legacy SMIv1 spellings
// (MANDATORY/OPTIONAL) rather than an SMIv2 STATUS value.
func (s Status) IsSMIv1() bool {
	return s == StatusMandatory || s == StatusOptional
}

// Language identifies the SMI/PIB dialect a module was written in.
type Language int

const (
	LanguageUnknown Language = iota
	LanguageSMIv1
	LanguageSMIv2
	LanguageSPPI
)

func (l Language) String() string {
	switch l {
	case LanguageUnknown:
		return "unknown"
	case LanguageSMIv1:
		return "SMIv1"
	case LanguageSMIv2:
		return "SMIv2"
	case LanguageSPPI:
		return "SPPI"
	default:
		return fmt.Sprintf("Language(%d)", l)
	}
}

// BaseType identifies the fundamental SMI type a syntax chain resolves
// to after following every TEXTUAL-CONVENTION/type-assignment link.
type BaseType int

const (
	BaseUnknown BaseType = iota
	BaseInteger32
	BaseUnsigned32
	BaseCounter32
	BaseCounter64
	BaseGauge32
	BaseTimeTicks
	BaseIpAddress
	BaseOctetString
	BaseObjectIdentifier
	BaseBits
	BaseOpaque
	// BaseSequence marks a SEQUENCE (conceptual row) type, which has no
	// further base type of its own.
	BaseSequence
)

func (b BaseType) String() string {
	switch b {
	case BaseUnknown:
		return "unknown"
	case BaseInteger32:
		return "Integer32"
	case BaseUnsigned32:
		return "Unsigned32"
	case BaseCounter32:
		return "Counter32"
	case BaseCounter64:
		return "Counter64"
	case BaseGauge32:
		return "Gauge32"
	case BaseTimeTicks:
		return "TimeTicks"
	case BaseIpAddress:
		return "IpAddress"
	case BaseOctetString:
		return "OCTET STRING"
	case BaseObjectIdentifier:
		return "OBJECT IDENTIFIER"
	case BaseBits:
		return "BITS"
	case BaseOpaque:
		return "Opaque"
	case BaseSequence:
		return "SEQUENCE"
	default:
		return fmt.Sprintf("BaseType(%d)", b)
	}
}

// Severity grades a Diagnostic. Lower values are more severe: Fatal=0
// aborts compilation outright, Info=6 is advisory only.
type Severity int

const (
	SeverityFatal Severity = iota
	SeveritySevere
	SeverityError
	SeverityMinor
	SeverityStyle
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	case SeveritySevere:
		return "severe"
	case SeverityError:
		return "error"
	case SeverityMinor:
		return "minor"
	case SeverityStyle:
		return "style"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

// StrictnessLevel selects how tolerant a Load is of diagnostics before
// treating the module as a hard failure (§9 Open Question (a)). Its
// values sit on Severity's scale: at level N every diagnostic whose
// Severity is <= N is reported, except that StrictnessStrict (0) reports
// every diagnostic and StrictnessSilent (7) reports none.
type StrictnessLevel int

const (
	// StrictnessStrict reports every diagnostic, Info and above.
	StrictnessStrict StrictnessLevel = StrictnessLevel(SeverityFatal)
	// StrictnessNormal reports Minor and above; the default.
	StrictnessNormal StrictnessLevel = StrictnessLevel(SeverityMinor)
	// StrictnessPermissive reports Warning and above. The level alone
	// suppresses no code; PermissiveConfig pairs it with an Ignore list
	// for the common vendor-MIB style violations.
	StrictnessPermissive StrictnessLevel = StrictnessLevel(SeverityWarning)
	// StrictnessSilent reports nothing.
	StrictnessSilent StrictnessLevel = StrictnessLevel(SeverityInfo) + 1
)

func (l StrictnessLevel) String() string {
	switch l {
	case StrictnessStrict:
		return "strict"
	case StrictnessNormal:
		return "normal"
	case StrictnessPermissive:
		return "permissive"
	case StrictnessSilent:
		return "silent"
	default:
		return fmt.Sprintf("StrictnessLevel(%d)", l)
	}
}
