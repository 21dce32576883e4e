// Package postgres reads column type specifications out of PostgreSQL DDL
// and live PostgreSQL catalogs.
package postgres

import (
	"errors"
	"fmt"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v6"

	"github.com/pgschema/typespec/internal/ast"
)

// ErrUnsupportedType marks column types outside the type specification
// model, such as arrays.
var ErrUnsupportedType = errors.New("unsupported column type")

// Column is a table column together with its type specification. Spec is
// nil when Err is set.
type Column struct {
	Schema string
	Table  string
	Name   string
	Spec   *ast.DataTypeSpec
	Err    error
}

// QualifiedName returns schema.table.column, omitting an empty schema.
func (c Column) QualifiedName() string {
	if c.Schema == "" {
		return c.Table + "." + c.Name
	}
	return c.Schema + "." + c.Table + "." + c.Name
}

// ParseColumns parses SQL and returns the columns of every CREATE TABLE
// statement in statement order. Other statements are ignored.
func ParseColumns(sql string) ([]Column, error) {
	result, err := pg_query.Parse(sql)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SQL: %w", err)
	}

	var columns []Column
	for _, raw := range result.Stmts {
		createStmt := raw.Stmt.GetCreateStmt()
		if createStmt == nil || createStmt.Relation == nil {
			continue
		}
		schema := createStmt.Relation.Schemaname
		table := createStmt.Relation.Relname

		for _, elt := range createStmt.TableElts {
			colDef := elt.GetColumnDef()
			if colDef == nil || colDef.TypeName == nil {
				continue
			}
			spec, err := specFromTypeName(colDef.TypeName, sql)
			columns = append(columns, Column{
				Schema: schema,
				Table:  table,
				Name:   colDef.Colname,
				Spec:   spec,
				Err:    err,
			})
		}
	}
	return columns, nil
}

// specFromTypeName converts a parsed PostgreSQL type name into a type
// specification. Builtin names are mapped to registry names; anything else
// stays a (possibly qualified) user-defined name.
func specFromTypeName(typeName *pg_query.TypeName, sql string) (*ast.DataTypeSpec, error) {
	var parts []string
	for _, name := range typeName.Names {
		if str := name.GetString_(); str != nil {
			parts = append(parts, str.Sval)
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty type name", ErrUnsupportedType)
	}
	if len(typeName.ArrayBounds) > 0 {
		return nil, fmt.Errorf("%w: array of %s", ErrUnsupportedType, strings.Join(parts, "."))
	}

	mods := extractTypeModifiers(typeName.Typmods)
	if len(mods) > 2 {
		return nil, fmt.Errorf("%w: %s has %d type modifiers", ErrUnsupportedType, strings.Join(parts, "."), len(mods))
	}

	pos := posAt(sql, int(typeName.Location))
	var id *ast.Identifier
	kind, builtin := kindName(strings.Join(parts, "."))
	if builtin {
		id = ast.NewSimpleIdentifier(kind, pos)
	} else {
		id = ast.NewIdentifier(parts, pos)
	}

	precision, scale := ast.NoPrecision, ast.NoPrecision
	if len(mods) > 0 {
		precision = mods[0]
		if builtin {
			precision = normalizePrecision(kind, precision)
		}
	}
	if len(mods) > 1 {
		scale = mods[1]
	}
	return ast.NewDataTypeSpec(id, precision, scale, "", pos), nil
}

// extractTypeModifiers extracts numeric values from type modifiers (e.g., numeric(10,2) -> [10, 2])
func extractTypeModifiers(typmods []*pg_query.Node) []int {
	var mods []int
	for _, mod := range typmods {
		if aConst := mod.GetAConst(); aConst != nil {
			if intVal := aConst.GetIval(); intVal != nil {
				mods = append(mods, int(intVal.Ival))
			}
		}
	}
	return mods
}

// posAt converts a byte offset in sql into a line/column position. A
// negative offset means the parser recorded no location.
func posAt(sql string, offset int) ast.Pos {
	if offset < 0 || offset > len(sql) {
		return ast.Pos{}
	}
	line, col := 1, 1
	for _, r := range sql[:offset] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return ast.Pos{Offset: offset, Line: line, Column: col}
}
