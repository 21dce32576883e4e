package columns

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pgschema/typespec/cmd/util"
	"github.com/pgschema/typespec/internal/resolve"
)

const invoiceDDL = `--
-- pgschema database dump
--

-- Dumped from schema: billing

CREATE TABLE invoice (
    id integer NOT NULL,
    amount numeric(10,2),
    memo varchar(200),
    tags text[]
);

CREATE INDEX invoice_amount_idx ON invoice (amount);
`

func runColumnsCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	columnsFile = ""
	columnsSchema = ""
	columnsOutput = util.OutputText
	columnsConcurrency = resolve.DefaultConcurrency
	columnsNoColor = false
	columnsFingerprint = false
	columnsExpect = ""

	var out bytes.Buffer
	ColumnsCmd.SetOut(&out)
	ColumnsCmd.SetErr(&bytes.Buffer{})
	ColumnsCmd.SetArgs(append([]string{}, args...))
	err := ColumnsCmd.Execute()
	return out.String(), err
}

func writeDDL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.sql")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write DDL file: %v", err)
	}
	return path
}

func TestColumnsCommand(t *testing.T) {
	path := writeDDL(t, invoiceDDL)

	out, err := runColumnsCommand(t, "--file", path)
	if !errors.Is(err, util.ErrResolveFailed) {
		t.Fatalf("expected ErrResolveFailed for the array column, got %v\n%s", err, out)
	}

	for _, want := range []string{
		"billing.invoice.id",
		"INTEGER",
		"DECIMAL(10, 2)",
		"VARCHAR(200)",
		"billing.invoice.tags",
		"UnsupportedType",
		"3 resolved, 1 failed.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestColumnsCommandSchemaFlag(t *testing.T) {
	path := writeDDL(t, "CREATE TABLE t (flag boolean, ts timestamp(3));\n")

	out, err := runColumnsCommand(t, "--file", path, "--schema", "audit", "--output", "json")
	if err != nil {
		t.Fatalf("columns failed: %v\n%s", err, out)
	}

	var rows []util.ResolvedRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	var got []string
	for _, row := range rows {
		got = append(got, row.Source+" "+row.Type.SQL)
	}
	want := []string{
		"audit.t.flag BOOLEAN",
		"audit.t.ts TIMESTAMP(3)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnsCommandRequiresFile(t *testing.T) {
	if _, err := runColumnsCommand(t); err == nil {
		t.Error("expected error when --file is missing")
	}
}

func TestColumnsCommandInvalidSQL(t *testing.T) {
	path := writeDDL(t, "CREATE TABLE (;\n")
	if _, err := runColumnsCommand(t, "--file", path); err == nil {
		t.Error("expected parse error")
	}
}

func TestColumnsCommandFingerprint(t *testing.T) {
	path := writeDDL(t, invoiceDDL)

	out, err := runColumnsCommand(t, "--file", path, "--fingerprint")
	if err != nil {
		t.Fatalf("fingerprint failed: %v", err)
	}
	line := strings.TrimSpace(out)
	if !strings.HasPrefix(line, "Type fingerprint: ") {
		t.Fatalf("unexpected output %q", out)
	}
	hash := strings.TrimPrefix(line, "Type fingerprint: ")

	// the same columns under a different schema name hash differently
	out, err = runColumnsCommand(t, "--file", path, "--schema", "other", "--fingerprint")
	if err != nil {
		t.Fatalf("fingerprint failed: %v", err)
	}
	if strings.Contains(out, hash) {
		t.Errorf("expected a different fingerprint for schema other, got %q", out)
	}

	if _, err := runColumnsCommand(t, "--file", path, "--expect-fingerprint", hash); err != nil {
		t.Errorf("expected matching fingerprint, got %v", err)
	}
	_, err = runColumnsCommand(t, "--file", path, "--schema", "other", "--expect-fingerprint", hash)
	if err == nil || !strings.Contains(err.Error(), "mismatch") {
		t.Errorf("expected fingerprint mismatch, got %v", err)
	}
}
