package util

import (
	"context"
	"fmt"
	"io"

	"github.com/pgschema/typespec/internal/ast"
	"github.com/pgschema/typespec/internal/fingerprint"
	"github.com/pgschema/typespec/internal/postgres"
	"github.com/pgschema/typespec/internal/resolve"
	"github.com/pgschema/typespec/internal/sqltype"
)

// ResolveColumns resolves the type of every column and returns one row per
// column, labelled with its qualified name. Columns whose type could not be
// turned into a specification keep their error.
func ResolveColumns(ctx context.Context, columns []postgres.Column, env resolve.Env, limit int) ([]ResolvedRow, error) {
	rows := make([]ResolvedRow, len(columns))
	var (
		specs   []*ast.DataTypeSpec
		indexes []int
	)
	for i, col := range columns {
		if col.Err != nil {
			rows[i] = NewResolvedRow(col.QualifiedName(), nil, sqltype.Descriptor{}, col.Err)
			continue
		}
		specs = append(specs, col.Spec)
		indexes = append(indexes, i)
	}

	results, err := resolve.ResolveAll(ctx, specs, env, limit)
	if err != nil {
		return nil, fmt.Errorf("resolution interrupted: %w", err)
	}
	for j, r := range results {
		i := indexes[j]
		rows[i] = NewResolvedRow(columns[i].QualifiedName(), r.Spec, r.Type, r.Err)
	}
	return rows, nil
}

// WriteFingerprint prints the type fingerprint of rows. When expected is
// set, the fingerprint must match it.
func WriteFingerprint(w io.Writer, rows []ResolvedRow, expected string) error {
	types := make([]fingerprint.ColumnType, len(rows))
	for i, row := range rows {
		types[i] = fingerprint.ColumnType{Column: row.Source}
		if row.Error != nil {
			types[i].Type = row.Error.Code
		} else {
			types[i].Type = row.Type.SQL
		}
	}

	fp, err := fingerprint.Compute(types)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, fp.String())

	if expected == "" {
		return nil
	}
	return fingerprint.Compare(expected, fp)
}
