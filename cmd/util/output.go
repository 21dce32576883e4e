package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pgschema/typespec/internal/ast"
	"github.com/pgschema/typespec/internal/color"
	"github.com/pgschema/typespec/internal/parser"
	"github.com/pgschema/typespec/internal/postgres"
	"github.com/pgschema/typespec/internal/resolve"
	"github.com/pgschema/typespec/internal/sqltype"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ResolvedRow is one line of resolve, columns or inspect output.
type ResolvedRow struct {
	Source    string          `json:"source"`
	Canonical string          `json:"canonical,omitempty"`
	Type      *TypeJSON       `json:"type,omitempty"`
	Error     *DiagnosticJSON `json:"error,omitempty"`
}

// TypeJSON is the JSON form of a resolved type.
type TypeJSON struct {
	Kind         string `json:"kind"`
	Precision    *int   `json:"precision,omitempty"`
	Scale        *int   `json:"scale,omitempty"`
	Charset      string `json:"charset,omitempty"`
	Collation    string `json:"collation,omitempty"`
	Coercibility string `json:"coercibility,omitempty"`
	SQL          string `json:"sql"`
}

// DiagnosticJSON is the JSON form of a resolution failure.
type DiagnosticJSON struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Position string `json:"position,omitempty"`
}

func newTypeJSON(d sqltype.Descriptor) *TypeJSON {
	t := &TypeJSON{Kind: d.Kind.String(), SQL: d.String()}
	if d.HasPrecision() {
		p := d.Precision
		t.Precision = &p
	}
	if d.HasScale() {
		s := d.Scale
		t.Scale = &s
	}
	if !d.Charset.IsZero() {
		t.Charset = d.Charset.Canonical
		t.Collation = d.Collation.Name
		t.Coercibility = d.Collation.Coercibility.String()
	}
	return t
}

func newDiagnosticJSON(err error) *DiagnosticJSON {
	d := &DiagnosticJSON{Code: "Error", Message: err.Error()}
	var (
		rerr *resolve.Error
		serr *parser.SyntaxError
	)
	switch {
	case errors.As(err, &rerr):
		d.Code = rerr.Code.String()
		if rerr.Pos.IsValid() {
			d.Position = rerr.Pos.String()
		}
	case errors.As(err, &serr):
		d.Code = "SyntaxError"
		if serr.Pos.IsValid() {
			d.Position = serr.Pos.String()
		}
	case errors.Is(err, postgres.ErrUnsupportedType):
		d.Code = "UnsupportedType"
	}
	return d
}

// NewResolvedRow describes the outcome of resolving spec. spec may be nil
// when the source text did not parse.
func NewResolvedRow(source string, spec *ast.DataTypeSpec, desc sqltype.Descriptor, err error) ResolvedRow {
	row := ResolvedRow{Source: source}
	if spec != nil {
		row.Canonical = ast.String(spec)
	}
	if err != nil {
		row.Error = newDiagnosticJSON(err)
		return row
	}
	row.Type = newTypeJSON(desc)
	return row
}

// ErrResolveFailed is returned by commands whose output contains
// diagnostics, so that the process exits non-zero.
var ErrResolveFailed = errors.New("one or more type specifications failed to resolve")

// WriteRows prints rows in the requested format. It returns
// ErrResolveFailed when any row carries a diagnostic.
func WriteRows(w io.Writer, rows []ResolvedRow, format string, noColor bool) error {
	failed := 0
	for _, row := range rows {
		if row.Error != nil {
			failed++
		}
	}

	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	case OutputText:
		c := colorizer(w, noColor)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, row := range rows {
			if row.Error != nil {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Source, c.Error(row.Error.Code), row.Error.Message)
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Source, c.OK(row.Type.Kind), row.Type.SQL)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w, c.FormatSummaryLine(len(rows)-failed, failed))
	default:
		return fmt.Errorf("unsupported output format %q (use %s or %s)", format, OutputText, OutputJSON)
	}

	if failed > 0 {
		return ErrResolveFailed
	}
	return nil
}

func colorizer(w io.Writer, noColor bool) *color.Color {
	f, ok := w.(*os.File)
	if !ok {
		return color.Plain()
	}
	return color.New(!noColor, f)
}
