package sqltype

import (
	"fmt"
	"strings"
)

// NoPrecision marks an absent precision or scale.
const NoPrecision = -1

// Descriptor is a fully resolved SQL type. Descriptors are values: two are
// equal iff every field matches.
type Descriptor struct {
	Kind      Kind
	Precision int
	Scale     int
	Charset   Charset
	Collation Collation
}

// Equal reports whether d and other describe the same type.
func (d Descriptor) Equal(other Descriptor) bool {
	return d == other
}

// HasPrecision reports whether a precision was given.
func (d Descriptor) HasPrecision() bool {
	return d.Precision > 0
}

// HasScale reports whether a scale was given.
func (d Descriptor) HasScale() bool {
	return d.Scale > 0
}

// String renders d as SQL, including any attached charset and collation.
func (d Descriptor) String() string {
	var sb strings.Builder
	sb.WriteString(d.Kind.String())
	if d.HasPrecision() {
		fmt.Fprintf(&sb, "(%d", d.Precision)
		if d.HasScale() {
			fmt.Fprintf(&sb, ", %d", d.Scale)
		}
		sb.WriteString(")")
	}
	if !d.Charset.IsZero() {
		sb.WriteString(" CHARACTER SET ")
		sb.WriteString(d.Charset.Name)
	}
	if !d.Collation.IsZero() {
		fmt.Fprintf(&sb, " COLLATE %q", d.Collation.Name)
	}
	return sb.String()
}
