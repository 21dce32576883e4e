// Package resolve turns type specifications into validated descriptors.
//
// Resolution is a pure function of the specification and an Env; the
// Validator keeps the set-once association between a node and its
// descriptor so that parse-tree nodes stay immutable.
package resolve

import (
	"errors"

	"github.com/pgschema/typespec/internal/ast"
	"github.com/pgschema/typespec/internal/logger"
	"github.com/pgschema/typespec/internal/sqltype"
)

// Env carries the catalog collaborators resolution depends on. An Env is
// read-only and can be shared between goroutines.
type Env struct {
	Factory *sqltype.Factory
	// DefaultCharset supplies the charset of character types that name
	// none.
	DefaultCharset func() sqltype.Charset
	// Locale names the collation locale, e.g. "en-US".
	Locale string
}

// DefaultEnv uses a default factory and the process-wide default charset.
func DefaultEnv() Env {
	return Env{
		Factory:        sqltype.NewFactory(),
		DefaultCharset: sqltype.DefaultCharset,
		Locale:         sqltype.DefaultLocale,
	}
}

func (env Env) withDefaults() Env {
	if env.Factory == nil {
		env.Factory = sqltype.NewFactory()
	}
	if env.DefaultCharset == nil {
		env.DefaultCharset = sqltype.DefaultCharset
	}
	if env.Locale == "" {
		env.Locale = sqltype.DefaultLocale
	}
	return env
}

// Resolve derives the descriptor named by spec. Only builtin types can be
// resolved; any other name fails with UnknownTypeName. Resolving the same
// specification against the same Env always yields an equal descriptor.
func Resolve(spec *ast.DataTypeSpec, env Env) (sqltype.Descriptor, error) {
	env = env.withDefaults()

	name := spec.TypeName().Qualified()
	kind, ok := sqltype.Kind(0), false
	if spec.TypeName().IsSimple() {
		kind, ok = sqltype.LookupKind(spec.TypeName().Simple())
	}
	if !ok {
		return sqltype.Descriptor{}, &Error{Code: UnknownTypeName, Name: name, Pos: spec.Position()}
	}

	var (
		desc sqltype.Descriptor
		err  error
	)
	switch {
	case spec.HasPrecision() && spec.HasScale():
		desc, err = env.Factory.CreateTypeWithPrecisionScale(kind, spec.Precision(), spec.Scale())
	case spec.HasPrecision():
		desc, err = env.Factory.CreateTypeWithPrecision(kind, spec.Precision())
	case spec.HasScale():
		err = &sqltype.ArityError{Kind: kind, Arity: sqltype.ArityScaleOnly, Precision: spec.Precision(), Scale: spec.Scale()}
	default:
		desc, err = env.Factory.CreateType(kind)
	}
	if err != nil {
		var arityErr *sqltype.ArityError
		if errors.As(err, &arityErr) {
			return sqltype.Descriptor{}, &Error{Code: ArityViolation, Name: name, Pos: spec.Position(), Err: err}
		}
		return sqltype.Descriptor{}, err
	}

	if kind.InCharFamily() {
		desc, err = attachCharset(spec, desc, env)
		if err != nil {
			return sqltype.Descriptor{}, err
		}
	}

	if logger.IsDebug() {
		logger.Get().Debug("Resolved data type", "spec", ast.String(spec), "type", desc.String())
	}
	return desc, nil
}

// attachCharset gives a character type the named or default charset and
// that charset's default collation with Coercible coercibility.
func attachCharset(spec *ast.DataTypeSpec, desc sqltype.Descriptor, env Env) (sqltype.Descriptor, error) {
	charset := env.DefaultCharset()
	if spec.HasCharSetName() {
		cs, err := sqltype.LookupCharset(spec.CharSetName())
		if err != nil {
			return sqltype.Descriptor{}, &Error{Code: UnsupportedCharset, Name: spec.CharSetName(), Pos: spec.Position(), Err: err}
		}
		charset = cs
	}
	collation, err := sqltype.NewCollation(charset, env.Locale, sqltype.Coercible)
	if err != nil {
		return sqltype.Descriptor{}, err
	}
	return env.Factory.AttachCharset(desc, charset, collation)
}
