package main

import (
	"testing"

	"github.com/nao1215/favbooks/internal/config"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "favbooks" {
			t.Errorf("expected use 'favbooks', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("runs reports without subcommand", func(t *testing.T) {
		t.Parallel()
		if cmd.RunE == nil {
			t.Error("expected root command to be runnable")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has log-format flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("log-format")
		if flag == nil {
			t.Fatal("expected log-format flag")
		}
		if flag.DefValue != "text" {
			t.Errorf("expected default 'text', got %q", flag.DefValue)
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		expected := map[string]bool{"init": false, "version": false}
		for _, sub := range cmd.Commands() {
			if _, ok := expected[sub.Name()]; ok {
				expected[sub.Name()] = true
			}
		}
		for name, found := range expected {
			if !found {
				t.Errorf("expected subcommand %q", name)
			}
		}
	})
}

// TestRootCmdFlags tests the report flags and their defaults.
func TestRootCmdFlags(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: config.FlagInput, shorthand: "i", defValue: "resources/books.json"},
		{name: config.FlagAuthor, shorthand: "a", defValue: "Jane Austen"},
		{name: config.FlagFormat, shorthand: "f", defValue: "text"},
		{name: config.FlagOrder, shorthand: "", defValue: "title"},
		{name: "json", shorthand: "j", defValue: "false"},
		{name: "markdown", shorthand: "m", defValue: "false"},
		{name: "output", shorthand: "o", defValue: ""},
		{name: "config", shorthand: "c", defValue: ""},
		{name: "tee", shorthand: "", defValue: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("expected %s flag", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("expected shorthand %q, got %q", tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("expected default %q, got %q", tt.defValue, flag.DefValue)
			}
		})
	}
}
