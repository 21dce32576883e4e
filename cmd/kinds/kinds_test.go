package kinds

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pgschema/typespec/internal/sqltype"
)

func TestForms(t *testing.T) {
	tests := []struct {
		kind sqltype.Kind
		want []string
	}{
		{sqltype.Integer, []string{"INTEGER"}},
		{sqltype.Decimal, []string{"DECIMAL", "DECIMAL(p)", "DECIMAL(p, s)"}},
		{sqltype.Varchar, []string{"VARCHAR", "VARCHAR(p)"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, forms(tt.kind)); diff != "" {
			t.Errorf("forms(%s) mismatch (-want +got):\n%s", tt.kind, diff)
		}
	}
}

func TestKindsCommand(t *testing.T) {
	var out bytes.Buffer
	KindsCmd.SetOut(&out)
	KindsCmd.SetArgs([]string{})
	if err := KindsCmd.Execute(); err != nil {
		t.Fatalf("kinds failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != len(sqltype.Kinds())+1 {
		t.Fatalf("expected header plus %d rows, got %d lines:\n%s", len(sqltype.Kinds()), len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "NAME") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "BOOLEAN") {
		t.Errorf("expected BOOLEAN first, got %q", lines[1])
	}
	if !strings.Contains(out.String(), "DECIMAL(p, s)") {
		t.Errorf("missing DECIMAL forms:\n%s", out.String())
	}
}
