package sqltype

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFactoryCreateType(t *testing.T) {
	f := NewFactory()

	tests := []struct {
		name      string
		create    func() (Descriptor, error)
		expected  Descriptor
		wantArity bool
	}{
		{
			name:     "boolean without arguments",
			create:   func() (Descriptor, error) { return f.CreateType(Boolean) },
			expected: Descriptor{Kind: Boolean, Precision: NoPrecision, Scale: NoPrecision},
		},
		{
			name:     "decimal with precision and scale",
			create:   func() (Descriptor, error) { return f.CreateTypeWithPrecisionScale(Decimal, 10, 2) },
			expected: Descriptor{Kind: Decimal, Precision: 10, Scale: 2},
		},
		{
			name:     "varchar with precision",
			create:   func() (Descriptor, error) { return f.CreateTypeWithPrecision(Varchar, 50) },
			expected: Descriptor{Kind: Varchar, Precision: 50, Scale: NoPrecision},
		},
		{
			name:      "integer rejects precision",
			create:    func() (Descriptor, error) { return f.CreateTypeWithPrecision(Integer, 10) },
			wantArity: true,
		},
		{
			name:      "varchar rejects scale",
			create:    func() (Descriptor, error) { return f.CreateTypeWithPrecisionScale(Varchar, 10, 2) },
			wantArity: true,
		},
		{
			name:      "decimal scale above precision",
			create:    func() (Descriptor, error) { return f.CreateTypeWithPrecisionScale(Decimal, 2, 5) },
			wantArity: true,
		},
		{
			name:      "decimal precision above maximum",
			create:    func() (Descriptor, error) { return f.CreateTypeWithPrecision(Decimal, 40) },
			wantArity: true,
		},
		{
			name:      "non-positive precision",
			create:    func() (Descriptor, error) { return f.CreateTypeWithPrecision(Char, 0) },
			wantArity: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.create()
			if tt.wantArity {
				var arityErr *ArityError
				if !errors.As(err, &arityErr) {
					t.Fatalf("expected *ArityError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("descriptor mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFactoryRejectsInvalidKind(t *testing.T) {
	f := NewFactory()
	if _, err := f.CreateType(Kind(0)); err == nil {
		t.Fatal("expected error for the zero kind")
	}
}

func TestFactoryMaxNumericPrecisionOption(t *testing.T) {
	f := NewFactory(WithMaxNumericPrecision(38))
	if f.MaxNumericPrecision() != 38 {
		t.Fatalf("MaxNumericPrecision() = %d; want 38", f.MaxNumericPrecision())
	}
	if _, err := f.CreateTypeWithPrecisionScale(Decimal, 38, 10); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAttachCharset(t *testing.T) {
	f := NewFactory()
	latin1, err := LookupCharset("latin1")
	if err != nil {
		t.Fatalf("LookupCharset: %v", err)
	}
	coll, err := NewCollation(latin1, "en-US", Coercible)
	if err != nil {
		t.Fatalf("NewCollation: %v", err)
	}

	base, err := f.CreateTypeWithPrecision(Varchar, 50)
	if err != nil {
		t.Fatalf("CreateTypeWithPrecision: %v", err)
	}
	got, err := f.AttachCharset(base, latin1, coll)
	if err != nil {
		t.Fatalf("AttachCharset: %v", err)
	}
	want := Descriptor{Kind: Varchar, Precision: 50, Scale: NoPrecision, Charset: latin1, Collation: coll}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("descriptor mismatch (-want +got):\n%s", diff)
	}
	if base.Charset != (Charset{}) {
		t.Error("AttachCharset modified its input")
	}

	num, _ := f.CreateType(Integer)
	var famErr *FamilyError
	if _, err := f.AttachCharset(num, latin1, coll); !errors.As(err, &famErr) {
		t.Errorf("expected *FamilyError for INTEGER, got %v", err)
	}
}

func TestDescriptorString(t *testing.T) {
	tests := []struct {
		name     string
		desc     Descriptor
		expected string
	}{
		{"plain", Descriptor{Kind: Boolean, Precision: NoPrecision, Scale: NoPrecision}, "BOOLEAN"},
		{"precision", Descriptor{Kind: Char, Precision: 3, Scale: NoPrecision}, "CHAR(3)"},
		{"precision and scale", Descriptor{Kind: Decimal, Precision: 10, Scale: 2}, "DECIMAL(10, 2)"},
		{
			"charset and collation",
			Descriptor{
				Kind:      Varchar,
				Precision: 5,
				Scale:     NoPrecision,
				Charset:   Charset{Name: "latin1", Canonical: "ISO-8859-1"},
				Collation: Collation{Name: "ISO-8859-1$en-US", Coercibility: Coercible},
			},
			`VARCHAR(5) CHARACTER SET latin1 COLLATE "ISO-8859-1$en-US"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.desc.String(); got != tt.expected {
				t.Errorf("String() = %q; want %q", got, tt.expected)
			}
		})
	}
}
