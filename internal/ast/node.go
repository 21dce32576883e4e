// Package ast holds the parse-tree nodes for SQL type references together
// with their rendering, visiting and structural comparison.
package ast

import "fmt"

// Pos is the source position of a node. It is provenance only and never
// takes part in comparisons.
type Pos struct {
	Offset int
	Line   int
	Column int
}

// IsValid reports whether p points into some source text.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// NodeKind tags the concrete variant of a Node.
type NodeKind int

const (
	KindIdentifier NodeKind = iota + 1
	KindDataTypeSpec
)

func (k NodeKind) String() string {
	switch k {
	case KindIdentifier:
		return "Identifier"
	case KindDataTypeSpec:
		return "DataTypeSpec"
	default:
		return "Unknown"
	}
}

// Node is a parse-tree node. The set of implementations is closed to this
// package.
type Node interface {
	Kind() NodeKind
	Position() Pos
	// Unparse writes the node as SQL. leftPrec and rightPrec are the
	// precedences of the neighbouring operators in the enclosing expression.
	Unparse(w *Writer, leftPrec, rightPrec int)
	Accept(v Visitor)
	Validate(v Validator) error
	node()
}

// Visitor receives one callback per concrete node kind.
type Visitor interface {
	VisitIdentifier(id *Identifier)
	VisitDataTypeSpec(spec *DataTypeSpec)
}

// Validator is the hook a semantic validator supplies to nodes that need
// validation.
type Validator interface {
	ValidateDataType(spec *DataTypeSpec) error
}

// EqualsDeep reports whether a and b are structurally equal. Nodes of
// different kinds are never equal. Positions are ignored.
func EqualsDeep(a, b Node) bool {
	if isNilNode(a) || isNilNode(b) {
		return isNilNode(a) && isNilNode(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindIdentifier:
		return a.(*Identifier).equalsDeep(b.(*Identifier))
	case KindDataTypeSpec:
		return a.(*DataTypeSpec).equalsDeep(b.(*DataTypeSpec))
	default:
		return false
	}
}

func isNilNode(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Identifier:
		return v == nil
	case *DataTypeSpec:
		return v == nil
	default:
		return false
	}
}

// String renders n as SQL with no surrounding precedence context.
func String(n Node) string {
	w := NewWriter()
	n.Unparse(w, 0, 0)
	return w.String()
}
