package ast

import (
	"strconv"

	"github.com/pgschema/typespec/internal/sqltype"
)

// NoPrecision marks an absent precision or scale. Any value <= 0 is treated
// as absent.
const NoPrecision = sqltype.NoPrecision

// DataTypeSpec is one occurrence of a type reference in SQL text, such as
// DECIMAL(10, 2), VARCHAR(50) CHARACTER SET latin1 or a user-defined type
// name. It holds the syntax only and is immutable; resolving it to a
// descriptor is the validator's job.
//
// Full type expressions (ROW(...), collections) are not represented.
type DataTypeSpec struct {
	typeName    *Identifier
	precision   int
	scale       int
	charSetName string
	pos         Pos
}

// NewDataTypeSpec creates a type specification. Pass NoPrecision for an
// absent precision or scale and "" for an absent character set.
func NewDataTypeSpec(typeName *Identifier, precision, scale int, charSetName string, pos Pos) *DataTypeSpec {
	return &DataTypeSpec{
		typeName:    typeName,
		precision:   normalizeArg(precision),
		scale:       normalizeArg(scale),
		charSetName: charSetName,
		pos:         pos,
	}
}

func normalizeArg(n int) int {
	if n <= 0 {
		return NoPrecision
	}
	return n
}

func (s *DataTypeSpec) TypeName() *Identifier { return s.typeName }
func (s *DataTypeSpec) Precision() int        { return s.precision }
func (s *DataTypeSpec) Scale() int            { return s.scale }
func (s *DataTypeSpec) CharSetName() string   { return s.charSetName }

func (s *DataTypeSpec) HasPrecision() bool   { return s.precision > 0 }
func (s *DataTypeSpec) HasScale() bool       { return s.scale > 0 }
func (s *DataTypeSpec) HasCharSetName() bool { return s.charSetName != "" }

// IsBuiltin reports whether the type name is an unqualified builtin kind
// name. Qualified names always denote user-defined types.
func (s *DataTypeSpec) IsBuiltin() bool {
	return s.typeName != nil && s.typeName.IsSimple() && sqltype.ContainsName(s.typeName.Simple())
}

func (s *DataTypeSpec) Kind() NodeKind { return KindDataTypeSpec }
func (s *DataTypeSpec) Position() Pos  { return s.pos }
func (*DataTypeSpec) node()            {}

// Unparse writes the specification exactly as it was given: precision, scale
// and character set come from the syntax, never from a resolved type.
// User-defined type names are written by the identifier alone.
func (s *DataTypeSpec) Unparse(w *Writer, leftPrec, rightPrec int) {
	if !s.IsBuiltin() {
		if s.typeName != nil {
			s.typeName.Unparse(w, leftPrec, rightPrec)
		}
		return
	}

	w.Print(s.typeName.Simple())
	if s.HasPrecision() {
		w.Print("(" + strconv.Itoa(s.precision))
		if s.HasScale() {
			w.Print(", " + strconv.Itoa(s.scale))
		}
		w.Print(")")
	}
	if s.HasCharSetName() {
		w.Keyword("CHARACTER SET")
		w.Print(" ")
		// Quoted when needed so the rendered text parses back to the same name.
		w.Identifier(s.charSetName)
	}
}

func (s *DataTypeSpec) Accept(v Visitor) {
	v.VisitDataTypeSpec(s)
}

// Validate hands the specification to the validator's data type hook.
func (s *DataTypeSpec) Validate(v Validator) error {
	return v.ValidateDataType(s)
}

// EqualsDeep reports whether other is a type specification with the same
// name, precision, scale and character set.
func (s *DataTypeSpec) EqualsDeep(other Node) bool {
	return EqualsDeep(s, other)
}

func (s *DataTypeSpec) equalsDeep(that *DataTypeSpec) bool {
	return EqualsDeep(s.typeName, that.typeName) &&
		s.precision == that.precision &&
		s.scale == that.scale &&
		s.charSetName == that.charSetName
}

func (s *DataTypeSpec) String() string {
	return String(s)
}
