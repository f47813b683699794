// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "describe"},
		{Name: "suggest"},
		{Name: "convert"},
		{Name: "version"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"convrt", "convert"},
		{"descirbe", "describe"},
		{"sugest", "suggest"},
		{"verison", "version"},
		{"zzzzzzzz", ""},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := suggestCommand(test.input, commands); got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	newFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flagSet.String("type", "integer", "")
		flagSet.String("choices", "", "")
		flagSet.Bool("wildcard", false, "")
		flagSet.Bool("x", false, "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"long typo", []string{"--chioces", "a"}, "--choices"},
		{"with value", []string{"--tpye=boolean"}, "--type"},
		{"defined flag skipped", []string{"--type", "choice", "--wildcrd"}, "--wildcard"},
		{"single letter", []string{"-y"}, "-x"},
		{"distant", []string{"--zzzzzzzzzz"}, ""},
		{"positional only", []string{"value"}, ""},
		{"after terminator", []string{"--", "--chioces"}, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := suggestFlag(test.args, newFlagSet()); got != test.want {
				t.Errorf("suggestFlag(%q) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
