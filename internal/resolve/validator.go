package resolve

import (
	"errors"
	"sync"

	"github.com/pgschema/typespec/internal/ast"
	"github.com/pgschema/typespec/internal/logger"
	"github.com/pgschema/typespec/internal/sqltype"
)

// Validator resolves the type specifications of a parse tree and remembers
// each node's outcome. A node's descriptor or failure is recorded once and
// never replaced.
type Validator struct {
	env Env

	mu          sync.Mutex
	types       map[*ast.DataTypeSpec]sqltype.Descriptor
	failed      map[*ast.DataTypeSpec]error
	diagnostics []*Error
}

var _ ast.Validator = (*Validator)(nil)

// NewValidator creates a validator resolving against env.
func NewValidator(env Env) *Validator {
	return &Validator{
		env:   env.withDefaults(),
		types:  make(map[*ast.DataTypeSpec]sqltype.Descriptor),
		failed: make(map[*ast.DataTypeSpec]error),
	}
}

// ValidateDataType resolves spec and records its descriptor. Failures are
// recorded as diagnostics and returned. A node is resolved at most once;
// later calls return the recorded outcome.
func (v *Validator) ValidateDataType(spec *ast.DataTypeSpec) error {
	if done, err := v.recorded(spec); done {
		return err
	}

	desc, err := Resolve(spec, v.env)

	v.mu.Lock()
	defer v.mu.Unlock()
	if _, done := v.types[spec]; done {
		return nil
	}
	if prev, done := v.failed[spec]; done {
		return prev
	}
	if err != nil {
		v.failed[spec] = err
		var diag *Error
		if errors.As(err, &diag) {
			v.diagnostics = append(v.diagnostics, diag)
		}
		logger.Get().Debug("Data type validation failed", "spec", ast.String(spec), "error", err)
		return err
	}
	v.types[spec] = desc
	return nil
}

// recorded reports whether spec was already validated, and its error.
func (v *Validator) recorded(spec *ast.DataTypeSpec) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.types[spec]; ok {
		return true, nil
	}
	if err, ok := v.failed[spec]; ok {
		return true, err
	}
	return false, nil
}

// DeriveType validates spec if needed and returns its descriptor.
func (v *Validator) DeriveType(spec *ast.DataTypeSpec) (sqltype.Descriptor, error) {
	if err := spec.Validate(v); err != nil {
		return sqltype.Descriptor{}, err
	}
	desc, _ := v.TypeOf(spec)
	return desc, nil
}

// TypeOf returns the descriptor recorded for spec.
func (v *Validator) TypeOf(spec *ast.DataTypeSpec) (sqltype.Descriptor, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	desc, ok := v.types[spec]
	return desc, ok
}

// Diagnostics returns the failures recorded so far, in order.
func (v *Validator) Diagnostics() []*Error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]*Error(nil), v.diagnostics...)
}
