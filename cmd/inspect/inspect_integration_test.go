package inspect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/pgschema/typespec/cmd/util"
	"github.com/pgschema/typespec/internal/postgres"
	"github.com/pgschema/typespec/testutil"
)

const ledgerDDL = `
CREATE SCHEMA ledger;
CREATE TABLE ledger.entry (
    id bigint PRIMARY KEY,
    amount numeric(12,4) NOT NULL,
    currency char(3) NOT NULL,
    posted_at timestamp(0),
    recorded_at timestamp
);
`

func TestInspectCommand(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	container := testutil.SetupPostgresContainer(ctx, t)

	if err := util.ExecScript(ctx, container.Conn, ledgerDDL, "create ledger schema"); err != nil {
		t.Fatalf("Failed to seed schema: %v", err)
	}

	var out bytes.Buffer
	InspectCmd.SetOut(&out)
	InspectCmd.SetErr(&bytes.Buffer{})
	InspectCmd.SetContext(ctx)
	connArgs := []string{
		"--host", container.Host,
		"--port", strconv.Itoa(container.Port),
		"--db", "testdb",
		"--user", "testuser",
		"--password", "testpass",
		"--sslmode", "disable",
		"--schema", "ledger",
	}
	InspectCmd.SetArgs(append(append([]string{}, connArgs...), "--output", "json"))

	if err := InspectCmd.Execute(); err != nil {
		if errors.Is(err, util.ErrResolveFailed) {
			t.Fatalf("unexpected diagnostics:\n%s", out.String())
		}
		t.Fatalf("inspect failed: %v", err)
	}

	var rows []util.ResolvedRow
	if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out.String())
	}

	expected := map[string]string{
		"ledger.entry.id":          "BIGINT",
		"ledger.entry.amount":      "DECIMAL(12, 4)",
		"ledger.entry.currency":    `CHAR(3) CHARACTER SET ISO-8859-1 COLLATE "ISO-8859-1$en-US"`,
		"ledger.entry.posted_at":   "TIMESTAMP",
		"ledger.entry.recorded_at": "TIMESTAMP",
	}
	if len(rows) != len(expected) {
		t.Fatalf("got %d rows, want %d:\n%s", len(rows), len(expected), out.String())
	}
	for _, row := range rows {
		if row.Type == nil {
			t.Errorf("%s: no type", row.Source)
			continue
		}
		if want := expected[row.Source]; row.Type.SQL != want {
			t.Errorf("%s: SQL = %q, want %q", row.Source, row.Type.SQL, want)
		}
	}

	// the DDL that created the schema carries the same type fingerprint
	cols, err := postgres.ParseColumns(ledgerDDL)
	if err != nil {
		t.Fatalf("ParseColumns failed: %v", err)
	}
	ddlRows, err := util.ResolveColumns(ctx, cols, util.TypeEnv(), 0)
	if err != nil {
		t.Fatalf("ResolveColumns failed: %v", err)
	}
	var fp bytes.Buffer
	if err := util.WriteFingerprint(&fp, ddlRows, ""); err != nil {
		t.Fatalf("WriteFingerprint failed: %v", err)
	}
	hash := strings.TrimPrefix(strings.TrimSpace(fp.String()), "Type fingerprint: ")

	out.Reset()
	InspectCmd.SetArgs(append(connArgs, "--expect-fingerprint", hash))
	if err := InspectCmd.Execute(); err != nil {
		t.Errorf("live schema does not match its DDL: %v\n%s", err, out.String())
	}
}
