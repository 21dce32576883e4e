package ast

import "strings"

// Identifier is a possibly qualified name such as mytype or schema.mytype.
type Identifier struct {
	names []string
	pos   Pos
}

// NewIdentifier creates an identifier from its name parts, outermost first.
func NewIdentifier(names []string, pos Pos) *Identifier {
	return &Identifier{names: append([]string(nil), names...), pos: pos}
}

// NewSimpleIdentifier creates an unqualified identifier.
func NewSimpleIdentifier(name string, pos Pos) *Identifier {
	return NewIdentifier([]string{name}, pos)
}

// Names returns a copy of the name parts.
func (id *Identifier) Names() []string {
	return append([]string(nil), id.names...)
}

// IsSimple reports whether the identifier has exactly one part.
func (id *Identifier) IsSimple() bool {
	return len(id.names) == 1
}

// Simple returns the last name part.
func (id *Identifier) Simple() string {
	if len(id.names) == 0 {
		return ""
	}
	return id.names[len(id.names)-1]
}

// Qualified returns the name parts joined with dots, unquoted.
func (id *Identifier) Qualified() string {
	return strings.Join(id.names, ".")
}

func (id *Identifier) Kind() NodeKind { return KindIdentifier }
func (id *Identifier) Position() Pos  { return id.pos }
func (*Identifier) node()             {}

// Unparse writes each part, quoted where necessary, separated by dots.
// Identifiers bind tighter than any operator, so the precedence context is
// not consulted.
func (id *Identifier) Unparse(w *Writer, leftPrec, rightPrec int) {
	for i, name := range id.names {
		if i > 0 {
			w.Print(".")
		}
		w.Identifier(name)
	}
}

func (id *Identifier) Accept(v Visitor) {
	v.VisitIdentifier(id)
}

// Validate is a no-op; identifier scoping belongs to the enclosing
// statement.
func (id *Identifier) Validate(Validator) error {
	return nil
}

// EqualsDeep reports whether other is an identifier with the same parts.
func (id *Identifier) EqualsDeep(other Node) bool {
	return EqualsDeep(id, other)
}

func (id *Identifier) equalsDeep(that *Identifier) bool {
	if len(id.names) != len(that.names) {
		return false
	}
	for i := range id.names {
		if id.names[i] != that.names[i] {
			return false
		}
	}
	return true
}
