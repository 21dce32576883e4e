package sqltype

import "fmt"

// Arity describes which of precision and scale were supplied.
type Arity int

const (
	ArityNone Arity = iota
	ArityPrecision
	ArityPrecisionScale
	ArityScaleOnly
)

func (a Arity) String() string {
	switch a {
	case ArityNone:
		return "no precision or scale"
	case ArityPrecision:
		return "precision"
	case ArityPrecisionScale:
		return "precision and scale"
	case ArityScaleOnly:
		return "scale without precision"
	default:
		return "unknown arity"
	}
}

// ArityError reports a precision/scale combination the kind does not accept.
type ArityError struct {
	Kind      Kind
	Arity     Arity
	Precision int
	Scale     int
	Reason    string
}

func (e *ArityError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("type %s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("type %s does not accept %s", e.Kind, e.Arity)
}

// UnsupportedCharsetError reports a charset name the charset registry does
// not know.
type UnsupportedCharsetError struct {
	Name string
}

func (e *UnsupportedCharsetError) Error() string {
	return fmt.Sprintf("unsupported character set %q", e.Name)
}

// FamilyError reports an operation applied to a kind outside the family it
// requires.
type FamilyError struct {
	Kind Kind
	Want Family
}

func (e *FamilyError) Error() string {
	return fmt.Sprintf("type %s is not in the %s family", e.Kind, e.Want)
}
