// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"strconv"
	"strings"

	"github.com/enginehub/argconv/cmd/argconv/cli"
	"github.com/enginehub/argconv/lib/actor"
	"github.com/enginehub/argconv/lib/converter"
	"github.com/enginehub/argconv/lib/fuzzy"
)

var converterTypes = []string{"integer", "boolean", "choice"}

// converterParams are the flags shared by every converter command.
type converterParams struct {
	cli.JSONOutput
	Type       string   `flag:"type,t" desc:"converter type: integer, boolean, or choice" default:"integer"`
	Min        string   `flag:"min" desc:"smallest accepted integer"`
	Max        string   `flag:"max" desc:"largest accepted integer"`
	Choices    []string `flag:"choices" desc:"accepted keywords for --type choice"`
	Wildcard   string   `flag:"wildcard" desc:"token that expands to every choice"`
	List       bool     `flag:"list,l" desc:"accept a comma separated list"`
	Limit      int      `flag:"limit" desc:"advertised maximum list size; implies --list (-1 for unbounded)" default:"-1"`
	Permission string   `flag:"permission" desc:"permission the issuing actor must hold"`
	Deny       []string `flag:"deny" desc:"permissions to withhold from the console actor"`
	ConfigPath string   `flag:"config" desc:"path to argconv.yaml (default: $ARGCONV_CONFIG)"`
	NoColor    bool     `flag:"no-color" desc:"disable console styling"`
	Verbose    bool     `flag:"verbose,v" desc:"log debug output"`
}

// build assembles the converter the flags describe. The permission
// gate wraps the whole argument so it is checked once per conversion.
func (p *converterParams) build() (converter.Converter[any], error) {
	base, err := p.buildBase()
	if err != nil {
		return nil, err
	}

	if p.List || p.Limit != converter.Unbounded {
		base, err = wrapList(base, p.Limit)
		if err != nil {
			return nil, err
		}
	}

	if p.Permission != "" {
		base = actor.RequirePermission(base, p.Permission)
	}
	return base, nil
}

func (p *converterParams) buildBase() (converter.Converter[any], error) {
	switch strings.ToLower(p.Type) {
	case "integer":
		integer, err := p.integer()
		if err != nil {
			return nil, err
		}
		return converter.Erase[int](integer), nil

	case "boolean":
		return converter.Erase[bool](converter.Boolean{}), nil

	case "choice":
		if len(p.Choices) == 0 {
			return nil, cli.Validation("--type choice requires --choices")
		}
		choice, err := converter.NewChoice(p.Choices...)
		if err != nil {
			return nil, cli.Validation("--choices: %w", err)
		}
		if p.Wildcard != "" {
			choice, err = choice.WithWildcard(p.Wildcard)
			if err != nil {
				return nil, cli.Validation("--wildcard: %w", err)
			}
		}
		return converter.Erase[string](choice), nil
	}

	toolError := cli.Validation("unknown converter type %q", p.Type)
	if suggestion := fuzzy.ClosestFold(p.Type, converterTypes, fuzzy.DefaultThreshold); suggestion != "" {
		return nil, toolError.WithHint("Did you mean --type " + suggestion + "?")
	}
	return nil, toolError.WithHint("Use one of: " + strings.Join(converterTypes, ", ") + ".")
}

func (p *converterParams) integer() (converter.Integer, error) {
	var integer converter.Integer
	if p.Min != "" {
		low, err := strconv.Atoi(p.Min)
		if err != nil {
			return integer, cli.Validation("--min %q is not an integer", p.Min)
		}
		integer.Min = &low
	}
	if p.Max != "" {
		high, err := strconv.Atoi(p.Max)
		if err != nil {
			return integer, cli.Validation("--max %q is not an integer", p.Max)
		}
		integer.Max = &high
	}
	if integer.Min != nil && integer.Max != nil && *integer.Min > *integer.Max {
		return integer, cli.Validation("--min %d is greater than --max %d", *integer.Min, *integer.Max)
	}
	return integer, nil
}

func wrapList(delegate converter.Converter[any], limit int) (converter.Converter[any], error) {
	list, err := converter.WrapAndLimit(delegate, limit)
	if err != nil {
		return nil, cli.Validation("--limit: %w", err).WithHint("Pass -1 for an unbounded list, or a value of at least 2.")
	}
	return list, nil
}
