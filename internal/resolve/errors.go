package resolve

import (
	"errors"
	"fmt"

	"github.com/pgschema/typespec/internal/ast"
)

// Code classifies a resolution failure.
type Code int

const (
	// UnknownTypeName: the name is not a builtin type.
	UnknownTypeName Code = iota + 1
	// ArityViolation: the precision/scale combination is not accepted by
	// the type.
	ArityViolation
	// UnsupportedCharset: the named character set is not known.
	UnsupportedCharset
)

var (
	ErrUnknownTypeName    = errors.New("unknown data type name")
	ErrArityViolation     = errors.New("invalid precision or scale")
	ErrUnsupportedCharset = errors.New("unsupported character set")
)

func (c Code) String() string {
	switch c {
	case UnknownTypeName:
		return "UnknownTypeName"
	case ArityViolation:
		return "ArityViolation"
	case UnsupportedCharset:
		return "UnsupportedCharset"
	default:
		return "Unknown"
	}
}

func (c Code) sentinel() error {
	switch c {
	case UnknownTypeName:
		return ErrUnknownTypeName
	case ArityViolation:
		return ErrArityViolation
	case UnsupportedCharset:
		return ErrUnsupportedCharset
	default:
		return nil
	}
}

// Error is a validation diagnostic raised while resolving a type
// specification. It matches the sentinel for its Code with errors.Is and
// exposes the underlying cause, if any, to errors.As.
type Error struct {
	Code Code
	// Name is the offending type or character set name.
	Name string
	Pos  ast.Pos
	Err  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s '%s'", e.Code.sentinel(), e.Name)
	if e.Code == ArityViolation && e.Err != nil {
		msg = fmt.Sprintf("%s for '%s': %v", e.Code.sentinel(), e.Name, e.Err)
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, msg)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	errs := []error{e.Code.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
