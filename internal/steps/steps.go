// Package steps parses the command-line check pipeline ("that:a,b",
// "required", "type:string,int", ...) and applies it to a Checker.
package steps

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Fish-Fur/optionoids"
)

// ErrUnknownStep is returned for a step name that is not registered.
var ErrUnknownStep = errors.New("unknown step")

// Step is one parsed pipeline element.
type Step struct {
	Name  string
	Keys  []string
	Types []optionoids.Type
	Vals  []any
}

type argKind int

const (
	argNone argKind = iota
	argKeys
	argKeysOptional
	argTypes
	argValues
)

type def struct {
	args  argKind
	apply func(c *optionoids.Checker, s Step)
}

var registry = map[string]def{
	"all":         {argNone, func(c *optionoids.Checker, _ Step) { c.All() }},
	"that":        {argKeys, func(c *optionoids.Checker, s Step) { c.That(s.Keys...) }},
	"plus":        {argKeys, func(c *optionoids.Checker, s Step) { c.Plus(s.Keys...) }},
	"minus":       {argKeys, func(c *optionoids.Checker, s Step) { c.Minus(s.Keys...) }},
	"only":        {argKeysOptional, func(c *optionoids.Checker, s Step) { c.OnlyThese(s.Keys...) }},
	"exist":       {argNone, func(c *optionoids.Checker, _ Step) { c.Exist() }},
	"required":    {argNone, func(c *optionoids.Checker, _ Step) { c.Required() }},
	"populated":   {argNone, func(c *optionoids.Checker, _ Step) { c.Populated() }},
	"blank":       {argNone, func(c *optionoids.Checker, _ Step) { c.Blank() }},
	"nil":         {argNone, func(c *optionoids.Checker, _ Step) { c.NilValues() }},
	"not-nil":     {argNone, func(c *optionoids.Checker, _ Step) { c.NotNilValues() }},
	"one-or-none": {argNone, func(c *optionoids.Checker, _ Step) { c.OneOrNone() }},
	"just-one":    {argNone, func(c *optionoids.Checker, _ Step) { c.JustOne() }},
	"one-or-more": {argNone, func(c *optionoids.Checker, _ Step) { c.OneOrMore() }},
	"type":        {argTypes, func(c *optionoids.Checker, s Step) { c.OfTypes(s.Types...) }},
	"values":      {argValues, func(c *optionoids.Checker, s Step) { c.PossibleValues(s.Vals...) }},
	"identifier":  {argNone, func(c *optionoids.Checker, _ Step) { c.Identifier() }},
	"flag":        {argNone, func(c *optionoids.Checker, _ Step) { c.Flag() }},
}

// Names lists the registered step names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Parse parses a single "name[:arg,arg...]" token.
func Parse(token string) (Step, error) {
	name, rest, hasArgs := strings.Cut(strings.TrimSpace(token), ":")
	name = strings.ToLower(name)
	d, ok := registry[name]
	if !ok {
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownStep, name)
	}
	args := splitCSV(rest)
	s := Step{Name: name}
	switch d.args {
	case argNone:
		if hasArgs && len(args) > 0 {
			return Step{}, fmt.Errorf("step %q takes no arguments", name)
		}
	case argKeys, argKeysOptional:
		if len(args) == 0 && d.args == argKeys {
			return Step{}, fmt.Errorf("step %q needs at least one key", name)
		}
		s.Keys = args
	case argTypes:
		if len(args) == 0 {
			return Step{}, fmt.Errorf("step %q needs at least one type", name)
		}
		for _, a := range args {
			t, ok := optionoids.LookupType(a)
			if !ok {
				return Step{}, fmt.Errorf("step %q: unknown type %q", name, a)
			}
			s.Types = append(s.Types, t)
		}
	case argValues:
		if len(args) == 0 {
			return Step{}, fmt.Errorf("step %q needs at least one value", name)
		}
		for _, a := range args {
			s.Vals = append(s.Vals, variants(a)...)
		}
	}
	return s, nil
}

// ParseAll parses every token, stopping at the first invalid one.
func ParseAll(tokens []string) ([]Step, error) {
	out := make([]Step, 0, len(tokens))
	for _, t := range tokens {
		s, err := Parse(t)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Apply runs the steps in order against c and returns it.
func Apply(c *optionoids.Checker, steps []Step) *optionoids.Checker {
	for _, s := range steps {
		registry[s.Name].apply(c, s)
	}
	return c
}

// variants returns the literal plus its typed reading, so "1" matches both a
// string loaded from .env and a number loaded from JSON or YAML.
func variants(a string) []any {
	out := []any{a}
	if i, err := strconv.ParseInt(a, 10, 64); err == nil {
		return append(out, i)
	}
	if f, err := strconv.ParseFloat(a, 64); err == nil {
		return append(out, f)
	}
	switch a {
	case "true":
		return append(out, true)
	case "false":
		return append(out, false)
	}
	return out
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
