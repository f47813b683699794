// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Type     string   `flag:"type" desc:"converter type"`
		List     bool     `flag:"list,l" desc:"accept a list"`
		Limit    int      `flag:"limit" desc:"advertised maximum"`
		Choices  []string `flag:"choices" desc:"accepted keywords"`
		Untagged string   // no flag tag, skipped
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--type", "choice",
		"-l",
		"--limit", "5",
		"--choices", "a,b,c",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Type != "choice" {
		t.Errorf("Type = %q, want %q", p.Type, "choice")
	}
	if !p.List {
		t.Error("List = false, want true")
	}
	if p.Limit != 5 {
		t.Errorf("Limit = %d, want 5", p.Limit)
	}
	if len(p.Choices) != 3 || p.Choices[0] != "a" || p.Choices[1] != "b" || p.Choices[2] != "c" {
		t.Errorf("Choices = %v, want [a b c]", p.Choices)
	}
	if p.Untagged != "" {
		t.Errorf("Untagged = %q, want empty (should be skipped)", p.Untagged)
	}
	if flagSet.Lookup("untagged") != nil {
		t.Error("untagged field registered a flag")
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Type    string   `flag:"type" desc:"converter type" default:"integer"`
		Limit   int      `flag:"limit" desc:"limit" default:"-1"`
		Debug   bool     `flag:"debug" desc:"debug mode" default:"true"`
		Choices []string `flag:"choices" desc:"choices" default:"x,y"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Type != "integer" {
		t.Errorf("Type = %q, want %q", p.Type, "integer")
	}
	if p.Limit != -1 {
		t.Errorf("Limit = %d, want -1", p.Limit)
	}
	if !p.Debug {
		t.Error("Debug = false, want true")
	}
	if len(p.Choices) != 2 || p.Choices[0] != "x" || p.Choices[1] != "y" {
		t.Errorf("Choices = %v, want [x y]", p.Choices)
	}
}

func TestBindFlags_EmbeddedStruct(t *testing.T) {
	type params struct {
		JSONOutput
		Type string `flag:"type" desc:"converter type"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--json", "--type", "boolean"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !p.OutputJSON {
		t.Error("OutputJSON = false, want true")
	}
	if p.Type != "boolean" {
		t.Errorf("Type = %q, want %q", p.Type, "boolean")
	}
}

func TestBindFlags_Shorthand(t *testing.T) {
	type params struct {
		Type string `flag:"type,t" desc:"converter type"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	flag := flagSet.Lookup("type")
	if flag == nil {
		t.Fatal("flag --type not registered")
	}
	if flag.Shorthand != "t" {
		t.Errorf("Shorthand = %q, want %q", flag.Shorthand, "t")
	}
	if flag.Usage != "converter type" {
		t.Errorf("Usage = %q, want %q", flag.Usage, "converter type")
	}
}

func TestBindFlags_NotPointer(t *testing.T) {
	type params struct {
		Type string `flag:"type"`
	}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(params{}, flagSet)
	if err == nil {
		t.Fatal("BindFlags(non-pointer) succeeded, want error")
	}
	if !strings.Contains(err.Error(), "pointer to a struct") {
		t.Errorf("error = %q, want mention of pointer to a struct", err)
	}
}

func TestBindFlags_UnsupportedType(t *testing.T) {
	type params struct {
		Ratio float32 `flag:"ratio"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(&p, flagSet)
	if err == nil {
		t.Fatal("BindFlags(float32 field) succeeded, want error")
	}
	if !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("error = %q, want unsupported type", err)
	}
}

func TestBindFlags_BadDefault(t *testing.T) {
	type params struct {
		Limit int `flag:"limit" default:"many"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(&p, flagSet)
	if err == nil {
		t.Fatal("BindFlags(bad int default) succeeded, want error")
	}
	if !strings.Contains(err.Error(), "--limit") {
		t.Errorf("error = %q, want it to name --limit", err)
	}
}

func TestFlagsFromParams_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FlagsFromParams(non-pointer) did not panic")
		}
	}()
	FlagsFromParams("test", struct{}{})
}
