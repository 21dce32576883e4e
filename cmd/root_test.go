package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pgschema/typespec/cmd/util"
	"github.com/pgschema/typespec/internal/sqltype"
)

func TestRootCommand(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs([]string{"--help"})

	err := RootCmd.Execute()
	if err != nil {
		t.Errorf("root command with --help failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "typespec resolves SQL type specifications") {
		t.Errorf("expected help output to contain description, got: %s", output)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	commands := RootCmd.Commands()

	expectedCommands := []string{"version", "resolve", "format", "kinds", "columns", "inspect"}
	commandNames := make([]string, len(commands))
	for i, cmd := range commands {
		commandNames[i] = cmd.Name()
	}

	for _, expected := range expectedCommands {
		found := false
		for _, actual := range commandNames {
			if actual == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand %s not found in: %v", expected, commandNames)
		}
	}
}

func TestRootCommandTypeConfig(t *testing.T) {
	orig := sqltype.DefaultCharset()
	t.Cleanup(func() {
		_ = sqltype.SetDefaultCharset(orig.Name)
		typeConfig = util.DefaultTypeConfig()
	})

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs([]string{"--charset", "UTF-8", "--max-numeric-precision", "38", "resolve", "DECIMAL(30, 2)", "VARCHAR(10)"})

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("resolve failed: %v\n%s", err, buf.String())
	}

	output := buf.String()
	for _, want := range []string{"DECIMAL(30, 2)", `VARCHAR(10) CHARACTER SET UTF-8 COLLATE "UTF-8$en-US"`} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if got := util.TypeEnv().Factory.MaxNumericPrecision(); got != 38 {
		t.Errorf("MaxNumericPrecision = %d, want 38", got)
	}
}

func TestRootCommandInvalidCharset(t *testing.T) {
	t.Cleanup(func() { typeConfig = util.DefaultTypeConfig() })

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs([]string{"--charset", "klingon", "kinds"})

	err := RootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid default character set") {
		t.Errorf("expected invalid default character set error, got %v", err)
	}
}
