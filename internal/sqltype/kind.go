package sqltype

import "strings"

// Kind identifies a builtin SQL type.
type Kind int

const (
	Boolean Kind = iota + 1
	Tinyint
	Smallint
	Integer
	Bigint
	Decimal
	Float
	Real
	Double
	Date
	Time
	Timestamp
	Char
	Varchar
	Binary
	Varbinary
)

// Family groups kinds that share storage and comparison semantics.
type Family int

const (
	FamilyBoolean Family = iota + 1
	FamilyNumeric
	FamilyDatetime
	FamilyCharacter
	FamilyBinary
)

func (f Family) String() string {
	switch f {
	case FamilyBoolean:
		return "boolean"
	case FamilyNumeric:
		return "numeric"
	case FamilyDatetime:
		return "datetime"
	case FamilyCharacter:
		return "character"
	case FamilyBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// arity flags, one bit per accepted argument shape
const (
	noArgs = 1 << iota
	precOnly
	precScale
)

type kindInfo struct {
	name   string
	family Family
	arity  int
}

var kindTable = map[Kind]kindInfo{
	Boolean:   {"BOOLEAN", FamilyBoolean, noArgs},
	Tinyint:   {"TINYINT", FamilyNumeric, noArgs},
	Smallint:  {"SMALLINT", FamilyNumeric, noArgs},
	Integer:   {"INTEGER", FamilyNumeric, noArgs},
	Bigint:    {"BIGINT", FamilyNumeric, noArgs},
	Decimal:   {"DECIMAL", FamilyNumeric, noArgs | precOnly | precScale},
	Float:     {"FLOAT", FamilyNumeric, noArgs | precOnly},
	Real:      {"REAL", FamilyNumeric, noArgs},
	Double:    {"DOUBLE", FamilyNumeric, noArgs},
	Date:      {"DATE", FamilyDatetime, noArgs},
	Time:      {"TIME", FamilyDatetime, noArgs | precOnly},
	Timestamp: {"TIMESTAMP", FamilyDatetime, noArgs | precOnly},
	Char:      {"CHAR", FamilyCharacter, noArgs | precOnly},
	Varchar:   {"VARCHAR", FamilyCharacter, noArgs | precOnly},
	Binary:    {"BINARY", FamilyBinary, noArgs | precOnly},
	Varbinary: {"VARBINARY", FamilyBinary, noArgs | precOnly},
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindTable))
	for k, info := range kindTable {
		m[info.name] = k
	}
	return m
}()

// LookupKind returns the builtin kind named by name. Matching is
// case-insensitive. An unknown name is not an error: the caller decides
// whether it denotes a user-defined type.
func LookupKind(name string) (Kind, bool) {
	k, ok := kindsByName[strings.ToUpper(strings.TrimSpace(name))]
	return k, ok
}

// ContainsName reports whether name denotes a builtin kind.
func ContainsName(name string) bool {
	_, ok := LookupKind(name)
	return ok
}

// Kinds returns every builtin kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindTable))
	for k := Boolean; k <= Varbinary; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k Kind) String() string {
	if info, ok := kindTable[k]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// Valid reports whether k is one of the builtin kinds.
func (k Kind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

func (k Kind) Family() Family {
	return kindTable[k].family
}

// InCharFamily reports whether values of k are character strings and can
// carry a charset and collation.
func (k Kind) InCharFamily() bool {
	return k.Family() == FamilyCharacter
}

func (k Kind) AllowsPrecisionAndScale() bool {
	return kindTable[k].arity&precScale != 0
}

func (k Kind) AllowsPrecisionOnly() bool {
	return kindTable[k].arity&precOnly != 0
}

func (k Kind) AllowsNeitherPrecisionNorScale() bool {
	return kindTable[k].arity&noArgs != 0
}
