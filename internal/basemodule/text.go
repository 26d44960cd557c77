package basemodule

// Source text for the well-known base modules: the handful of RFC
// 2578/2579/2580 (and legacy RFC 1155/1212/1215) definitions every
// MIB implicitly depends on, trimmed to the OID tree and textual
// conventions actually consulted during resolution. MACRO-keyword
// symbols (OBJECT-TYPE, MODULE-IDENTITY, TEXTUAL-CONVENTION, ...) need
// no entry here: the parser recognizes them as fixed grammar keywords
// rather than resolving them through a module's symbol table, and the
// SMIv1->SMIv2 rewrite table (importtable.DefaultTable) redirects
// nearly everything else imported from the legacy modules to its
// SNMPv2-SMI/SNMPv2-TC/SNMPv2-CONF equivalent before a lookup ever
// reaches these tables.
const (
	textSNMPv2SMI = `SNMPv2-SMI DEFINITIONS ::= BEGIN

org OBJECT IDENTIFIER ::= { iso 3 }
dod OBJECT IDENTIFIER ::= { org 6 }
internet OBJECT IDENTIFIER ::= { dod 1 }

directory OBJECT IDENTIFIER ::= { internet 1 }
mgmt OBJECT IDENTIFIER ::= { internet 2 }
mib-2 OBJECT IDENTIFIER ::= { mgmt 1 }
transmission OBJECT IDENTIFIER ::= { mib-2 10 }
experimental OBJECT IDENTIFIER ::= { internet 3 }
private OBJECT IDENTIFIER ::= { internet 4 }
enterprises OBJECT IDENTIFIER ::= { private 1 }
security OBJECT IDENTIFIER ::= { internet 5 }
snmpV2 OBJECT IDENTIFIER ::= { internet 6 }

snmpDomains OBJECT IDENTIFIER ::= { snmpV2 1 }
snmpProxys OBJECT IDENTIFIER ::= { snmpV2 2 }
snmpModules OBJECT IDENTIFIER ::= { snmpV2 3 }
snmpProducts OBJECT IDENTIFIER ::= { snmpV2 4 }

snmp OBJECT IDENTIFIER ::= { mib-2 11 }

END
`

	textSNMPv2TC = `SNMPv2-TC DEFINITIONS ::= BEGIN

DisplayString ::= TEXTUAL-CONVENTION
    DISPLAY-HINT "255a"
    STATUS current
    DESCRIPTION
        "Represents textual information taken from the NVT ASCII
        character set."
    SYNTAX OCTET STRING (SIZE (0..255))

PhysAddress ::= TEXTUAL-CONVENTION
    DISPLAY-HINT "1x:"
    STATUS current
    DESCRIPTION
        "Represents media- or physical-level addresses."
    SYNTAX OCTET STRING

MacAddress ::= TEXTUAL-CONVENTION
    DISPLAY-HINT "1x:"
    STATUS current
    DESCRIPTION
        "Represents an 802 MAC address represented in canonical
        order."
    SYNTAX OCTET STRING (SIZE (6))

TruthValue ::= TEXTUAL-CONVENTION
    STATUS current
    DESCRIPTION
        "Represents a boolean value."
    SYNTAX INTEGER { true(1), false(2) }

TestAndIncr ::= TEXTUAL-CONVENTION
    STATUS current
    DESCRIPTION
        "Represents integer-valued information used for atomic
        test-and-increment operations."
    SYNTAX INTEGER (0..2147483647)

AutonomousType ::= TEXTUAL-CONVENTION
    STATUS current
    DESCRIPTION
        "Represents an independently extensible identifier which
        values are assigned by an authoritative registration
        procedure."
    SYNTAX OBJECT IDENTIFIER

RowStatus ::= TEXTUAL-CONVENTION
    STATUS current
    DESCRIPTION
        "Represents the status of a conceptual row."
    SYNTAX INTEGER {
        active(1),
        notInService(2),
        notReady(3),
        createAndGo(4),
        createAndWait(5),
        destroy(6)
    }

TimeStamp ::= TEXTUAL-CONVENTION
    STATUS current
    DESCRIPTION
        "Represents the value of sysUpTime at which a specific
        occurrence happened."
    SYNTAX TimeTicks

TimeInterval ::= TEXTUAL-CONVENTION
    STATUS current
    DESCRIPTION
        "Represents a period of time, measured in hundredths of a
        second."
    SYNTAX INTEGER (0..2147483647)

DateAndTime ::= TEXTUAL-CONVENTION
    DISPLAY-HINT "2d-1d-1d,1d:1d:1d.1d,1a1d:1d"
    STATUS current
    DESCRIPTION
        "A date-time specification."
    SYNTAX OCTET STRING (SIZE (8 | 11))

StorageType ::= TEXTUAL-CONVENTION
    STATUS current
    DESCRIPTION
        "Describes the memory realization of a conceptual row."
    SYNTAX INTEGER {
        other(1),
        volatile(2),
        nonVolatile(3),
        permanent(4),
        readOnly(5)
    }

TDomain ::= TEXTUAL-CONVENTION
    STATUS current
    DESCRIPTION
        "Denotes a kind of transport service."
    SYNTAX OBJECT IDENTIFIER

TAddress ::= TEXTUAL-CONVENTION
    STATUS current
    DESCRIPTION
        "Denotes a transport service address."
    SYNTAX OCTET STRING (SIZE (1..255))

END
`

	textSNMPv2CONF = `SNMPv2-CONF DEFINITIONS ::= BEGIN

-- MODULE-COMPLIANCE, OBJECT-GROUP, NOTIFICATION-GROUP and
-- AGENT-CAPABILITIES are grammar-level macro keywords; this module
-- contributes no OID-bearing symbols of its own.

END
`

	textRFC1155SMI = `RFC1155-SMI DEFINITIONS ::= BEGIN

org OBJECT IDENTIFIER ::= { iso 3 }
dod OBJECT IDENTIFIER ::= { org 6 }
internet OBJECT IDENTIFIER ::= { dod 1 }

directory OBJECT IDENTIFIER ::= { internet 1 }
mgmt OBJECT IDENTIFIER ::= { internet 2 }
mib-2 OBJECT IDENTIFIER ::= { mgmt 1 }
experimental OBJECT IDENTIFIER ::= { internet 3 }
private OBJECT IDENTIFIER ::= { internet 4 }
enterprises OBJECT IDENTIFIER ::= { private 1 }

END
`

	textRFC1065SMI = `RFC1065-SMI DEFINITIONS ::= BEGIN

org OBJECT IDENTIFIER ::= { iso 3 }
dod OBJECT IDENTIFIER ::= { org 6 }
internet OBJECT IDENTIFIER ::= { dod 1 }

directory OBJECT IDENTIFIER ::= { internet 1 }
mgmt OBJECT IDENTIFIER ::= { internet 2 }
experimental OBJECT IDENTIFIER ::= { internet 3 }
private OBJECT IDENTIFIER ::= { internet 4 }

END
`

	textRFC1212 = `RFC-1212 DEFINITIONS ::= BEGIN

-- OBJECT-TYPE is a grammar-level macro keyword; this module
-- contributes no OID-bearing symbols of its own.

END
`

	textRFC1215 = `RFC-1215 DEFINITIONS ::= BEGIN

-- TRAP-TYPE is a grammar-level macro keyword; this module
-- contributes no OID-bearing symbols of its own.

END
`
)
