package sqltype

import "fmt"

// DefaultMaxNumericPrecision bounds DECIMAL precision.
const DefaultMaxNumericPrecision = 19

// Factory builds descriptors, enforcing each kind's arity rules. The zero
// value is not usable; call NewFactory. A Factory is immutable and safe for
// concurrent use.
type Factory struct {
	maxNumericPrecision int
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithMaxNumericPrecision overrides the DECIMAL precision limit.
func WithMaxNumericPrecision(n int) FactoryOption {
	return func(f *Factory) {
		if n > 0 {
			f.maxNumericPrecision = n
		}
	}
}

// NewFactory creates a descriptor factory.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{maxNumericPrecision: DefaultMaxNumericPrecision}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// MaxNumericPrecision returns the DECIMAL precision limit.
func (f *Factory) MaxNumericPrecision() int {
	return f.maxNumericPrecision
}

// CreateType builds a descriptor for a kind that takes no arguments.
func (f *Factory) CreateType(kind Kind) (Descriptor, error) {
	if err := checkKind(kind); err != nil {
		return Descriptor{}, err
	}
	if !kind.AllowsNeitherPrecisionNorScale() {
		return Descriptor{}, &ArityError{Kind: kind, Arity: ArityNone, Precision: NoPrecision, Scale: NoPrecision}
	}
	return Descriptor{Kind: kind, Precision: NoPrecision, Scale: NoPrecision}, nil
}

// CreateTypeWithPrecision builds a descriptor with a precision and no scale.
func (f *Factory) CreateTypeWithPrecision(kind Kind, precision int) (Descriptor, error) {
	if err := checkKind(kind); err != nil {
		return Descriptor{}, err
	}
	if !kind.AllowsPrecisionOnly() || precision <= 0 {
		return Descriptor{}, &ArityError{Kind: kind, Arity: ArityPrecision, Precision: precision, Scale: NoPrecision}
	}
	if err := f.checkPrecision(kind, precision, NoPrecision, ArityPrecision); err != nil {
		return Descriptor{}, err
	}
	return Descriptor{Kind: kind, Precision: precision, Scale: NoPrecision}, nil
}

// CreateTypeWithPrecisionScale builds a descriptor with precision and scale.
func (f *Factory) CreateTypeWithPrecisionScale(kind Kind, precision, scale int) (Descriptor, error) {
	if err := checkKind(kind); err != nil {
		return Descriptor{}, err
	}
	if !kind.AllowsPrecisionAndScale() || precision <= 0 || scale <= 0 {
		return Descriptor{}, &ArityError{Kind: kind, Arity: ArityPrecisionScale, Precision: precision, Scale: scale}
	}
	if err := f.checkPrecision(kind, precision, scale, ArityPrecisionScale); err != nil {
		return Descriptor{}, err
	}
	return Descriptor{Kind: kind, Precision: precision, Scale: scale}, nil
}

// AttachCharset returns a copy of d carrying charset and collation. Only
// character-family descriptors accept a charset.
func (f *Factory) AttachCharset(d Descriptor, charset Charset, collation Collation) (Descriptor, error) {
	if !d.Kind.InCharFamily() {
		return Descriptor{}, &FamilyError{Kind: d.Kind, Want: FamilyCharacter}
	}
	if charset.IsZero() {
		return Descriptor{}, &UnsupportedCharsetError{Name: ""}
	}
	d.Charset = charset
	d.Collation = collation
	return d, nil
}

func (f *Factory) checkPrecision(kind Kind, precision, scale int, arity Arity) error {
	if kind != Decimal {
		return nil
	}
	if precision > f.maxNumericPrecision {
		return &ArityError{
			Kind:      kind,
			Arity:     arity,
			Precision: precision,
			Scale:     scale,
			Reason:    fmt.Sprintf("precision %d exceeds maximum %d", precision, f.maxNumericPrecision),
		}
	}
	if scale > precision {
		return &ArityError{
			Kind:      kind,
			Arity:     arity,
			Precision: precision,
			Scale:     scale,
			Reason:    fmt.Sprintf("scale %d exceeds precision %d", scale, precision),
		}
	}
	return nil
}

func checkKind(kind Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("invalid type kind %d", int(kind))
	}
	return nil
}
