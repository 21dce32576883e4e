package postgres

import (
	"strings"

	"github.com/pgschema/typespec/internal/ast"
	"github.com/pgschema/typespec/internal/sqltype"
)

// builtinNames maps PostgreSQL type names, both the internal names produced
// by the parser and the names reported by information_schema, to registry
// kind names.
var builtinNames = map[string]string{
	// Numeric types
	"int2":             sqltype.Smallint.String(),
	"smallint":         sqltype.Smallint.String(),
	"int4":             sqltype.Integer.String(),
	"integer":          sqltype.Integer.String(),
	"int8":             sqltype.Bigint.String(),
	"bigint":           sqltype.Bigint.String(),
	"numeric":          sqltype.Decimal.String(),
	"decimal":          sqltype.Decimal.String(),
	"float4":           sqltype.Real.String(),
	"real":             sqltype.Real.String(),
	"float8":           sqltype.Double.String(),
	"double precision": sqltype.Double.String(),
	"bool":             sqltype.Boolean.String(),
	"boolean":          sqltype.Boolean.String(),

	// Character types
	"bpchar":            sqltype.Char.String(),
	"character":         sqltype.Char.String(),
	"varchar":           sqltype.Varchar.String(),
	"character varying": sqltype.Varchar.String(),

	// Date/time types
	"date":                        sqltype.Date.String(),
	"time":                        sqltype.Time.String(),
	"time without time zone":      sqltype.Time.String(),
	"timestamp":                   sqltype.Timestamp.String(),
	"timestamp without time zone": sqltype.Timestamp.String(),

	// Binary types
	"bytea": sqltype.Varbinary.String(),
}

// kindName returns the registry name for a PostgreSQL type name, with or
// without a pg_catalog prefix.
func kindName(pgName string) (string, bool) {
	name := strings.ToLower(strings.TrimPrefix(pgName, "pg_catalog."))
	kind, ok := builtinNames[name]
	return kind, ok
}

// defaultDatetimePrecision is the fractional seconds precision PostgreSQL
// gives time and timestamp columns declared without one.
const defaultDatetimePrecision = 6

// normalizePrecision maps PostgreSQL's implicit time/timestamp precision to
// an absent precision, so `timestamp` and `timestamp(6)` read from DDL and
// from the catalog yield the same specification.
func normalizePrecision(kindName string, precision int) int {
	kind, ok := sqltype.LookupKind(kindName)
	if !ok {
		return precision
	}
	if (kind == sqltype.Time || kind == sqltype.Timestamp) && precision == defaultDatetimePrecision {
		return ast.NoPrecision
	}
	return precision
}
