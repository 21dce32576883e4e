package sqltype

import (
	"fmt"

	"golang.org/x/text/language"
)

// DefaultLocale is used for collation names when no locale is configured.
const DefaultLocale = "en-US"

// Coercibility orders how strongly a collation holds in a mixed expression.
type Coercibility int

const (
	Explicit Coercibility = iota + 1
	Implicit
	Coercible
	NoCollation
)

func (c Coercibility) String() string {
	switch c {
	case Explicit:
		return "EXPLICIT"
	case Implicit:
		return "IMPLICIT"
	case Coercible:
		return "COERCIBLE"
	case NoCollation:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// Collation names a collating sequence. Name has the form
// "<charset>$<locale>".
type Collation struct {
	Name         string
	Coercibility Coercibility
}

func (c Collation) IsZero() bool {
	return c == Collation{}
}

func (c Collation) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Coercibility)
}

// NewCollation builds the default collation of charset in the given locale.
func NewCollation(charset Charset, locale string, coercibility Coercibility) (Collation, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Collation{}, fmt.Errorf("invalid collation locale %q: %w", locale, err)
	}
	cs := charset.Canonical
	if cs == "" {
		cs = charset.Name
	}
	return Collation{
		Name:         cs + "$" + tag.String(),
		Coercibility: coercibility,
	}, nil
}
