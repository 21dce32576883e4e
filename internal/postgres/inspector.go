package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pgschema/typespec/internal/ast"
	"github.com/pgschema/typespec/internal/logger"
	"github.com/pgschema/typespec/internal/sqltype"
)

const columnsQuery = `
SELECT
    c.table_schema,
    c.table_name,
    c.column_name,
    c.data_type,
    c.udt_schema,
    c.udt_name,
    c.character_maximum_length,
    c.numeric_precision,
    c.numeric_scale,
    c.datetime_precision,
    c.character_set_name
FROM information_schema.columns c
JOIN information_schema.tables t
    ON t.table_schema = c.table_schema AND t.table_name = c.table_name
WHERE c.table_schema = $1
    AND t.table_type = 'BASE TABLE'
ORDER BY c.table_name, c.ordinal_position`

// Inspector reads column type specifications from a live database.
type Inspector struct {
	db *sql.DB
}

// NewInspector creates an inspector over db.
func NewInspector(db *sql.DB) *Inspector {
	return &Inspector{db: db}
}

// columnRow is one row of information_schema.columns.
type columnRow struct {
	schema, table, column string
	dataType              string
	udtSchema, udtName    string
	charMaxLength         sql.NullInt64
	numericPrecision      sql.NullInt64
	numericScale          sql.NullInt64
	datetimePrecision     sql.NullInt64
	charsetName           sql.NullString
}

// Columns returns the columns of every base table in schema.
func (i *Inspector) Columns(ctx context.Context, schema string) ([]Column, error) {
	log := logger.Get()
	log.Debug("Inspecting columns", "schema", schema)

	rows, err := i.db.QueryContext(ctx, columnsQuery, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var r columnRow
		if err := rows.Scan(
			&r.schema, &r.table, &r.column,
			&r.dataType, &r.udtSchema, &r.udtName,
			&r.charMaxLength, &r.numericPrecision, &r.numericScale,
			&r.datetimePrecision, &r.charsetName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		spec, err := r.spec()
		columns = append(columns, Column{
			Schema: r.schema,
			Table:  r.table,
			Name:   r.column,
			Spec:   spec,
			Err:    err,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	log.Debug("Inspected columns", "schema", schema, "count", len(columns))
	return columns, nil
}

// spec builds the type specification a column would have been declared
// with. Only the precision-like attribute relevant to the type's kind is
// used; information_schema reports bit widths for integer types.
func (r columnRow) spec() (*ast.DataTypeSpec, error) {
	switch r.dataType {
	case "ARRAY":
		return nil, fmt.Errorf("%w: array %s", ErrUnsupportedType, r.udtName)
	case "USER-DEFINED":
		id := ast.NewIdentifier([]string{r.udtSchema, r.udtName}, ast.Pos{})
		return ast.NewDataTypeSpec(id, ast.NoPrecision, ast.NoPrecision, "", ast.Pos{}), nil
	}

	name, ok := kindName(r.dataType)
	if !ok {
		id := ast.NewSimpleIdentifier(r.udtName, ast.Pos{})
		return ast.NewDataTypeSpec(id, ast.NoPrecision, ast.NoPrecision, "", ast.Pos{}), nil
	}
	kind, _ := sqltype.LookupKind(name)

	precision, scale := ast.NoPrecision, ast.NoPrecision
	switch kind {
	case sqltype.Decimal:
		precision = intOr(r.numericPrecision, ast.NoPrecision)
		scale = intOr(r.numericScale, ast.NoPrecision)
	case sqltype.Char, sqltype.Varchar:
		precision = intOr(r.charMaxLength, ast.NoPrecision)
	case sqltype.Time, sqltype.Timestamp:
		precision = normalizePrecision(name, intOr(r.datetimePrecision, ast.NoPrecision))
	}

	charset := ""
	if kind.InCharFamily() && r.charsetName.Valid {
		charset = r.charsetName.String
	}
	return ast.NewDataTypeSpec(ast.NewSimpleIdentifier(name, ast.Pos{}), precision, scale, charset, ast.Pos{}), nil
}

func intOr(v sql.NullInt64, def int) int {
	if !v.Valid {
		return def
	}
	return int(v.Int64)
}
