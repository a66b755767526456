package main

import (
	"bytes"
	"testing"
)

func TestRootCommand(t *testing.T) {
	cmd := rootCmd

	if cmd == nil {
		t.Fatal("Expected root command to be created")
	}
	if cmd.Use != "retireplan" {
		t.Errorf("Expected root command use to be 'retireplan', got %s", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("Expected root command to have a short description")
	}
}

func TestRootCommand_Help(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.Execute(); err != nil {
		t.Errorf("Expected no error for help command, got %v", err)
	}

	if buf.String() == "" {
		t.Error("Expected help command to show help text")
	}
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{"simulate", "validate", "checklist", "anomaly", "extract", "version"}

	cmds := rootCmd.Commands()
	for _, name := range expected {
		found := false
		for _, c := range cmds {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected command %q to be registered with root command", name)
		}
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"invalid-command"})

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error for invalid command")
	}
}
