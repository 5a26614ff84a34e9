// This file is part of go-cmdparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdparse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/DavidGamba/go-cmdparse/internal/option"
)

// Occurrence - the values collected for one option.
//
// Options that take no value never hold values.
// Single valued options hold exactly one value.
// Repeatable value taking options hold one value per occurrence in the order
// they were passed.
type Occurrence struct {
	Spec   OptionSpec
	Values []string
	Count  int // Number of times the option was passed
}

// Result - output of Parse.
type Result struct {
	options     map[string]*Occurrence // map[spec key]occurrence
	names       map[string]string      // map[long or short name]spec key
	order       []string               // spec keys in the order they were first passed
	positionals []string
	command     string
	sub         *Result // Result of command
}

func newResult() *Result {
	return &Result{
		options:     map[string]*Occurrence{},
		names:       map[string]string{},
		order:       []string{},
		positionals: []string{},
	}
}

func (r *Result) get(name string) (*Occurrence, bool) {
	key, ok := r.names[name]
	if !ok {
		return nil, false
	}
	occ, ok := r.options[key]
	return occ, ok
}

// ValueOf - returns the value of a value taking option given its long or short name.
// For repeatable options it returns the last value.
// Returns false if the option wasn't passed or takes no value.
func (r *Result) ValueOf(name string) (string, bool) {
	occ, ok := r.get(name)
	if !ok || len(occ.Values) == 0 {
		return "", false
	}
	return occ.Values[len(occ.Values)-1], true
}

// ValuesOf - returns all the values passed to an option in encounter order.
// Returns an empty slice if the option wasn't passed.
func (r *Result) ValuesOf(name string) []string {
	occ, ok := r.get(name)
	if !ok {
		return []string{}
	}
	values := make([]string, len(occ.Values))
	copy(values, occ.Values)
	return values
}

// IsPresent - Indicates if the option was passed on the command line.
func (r *Result) IsPresent(name string) bool {
	_, ok := r.get(name)
	return ok
}

// Count - number of times the option was passed, for example 3 for `-vvv`.
func (r *Result) Count(name string) int {
	occ, ok := r.get(name)
	if !ok {
		return 0
	}
	return occ.Count
}

// Occurrence - returns a copy of everything collected for the option.
func (r *Result) Occurrence(name string) (Occurrence, bool) {
	occ, ok := r.get(name)
	if !ok {
		return Occurrence{}, false
	}
	c := *occ
	c.Values = make([]string, len(occ.Values))
	copy(c.Values, occ.Values)
	return c, true
}

// Options - keys of the options that were passed, in the order they were first seen.
// The key is the long name when set, otherwise the short name.
func (r *Result) Options() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Positionals - arguments that were not consumed as options or option values, in order.
func (r *Result) Positionals() []string {
	p := make([]string, len(r.positionals))
	copy(p, r.positionals)
	return p
}

// Command - name of the command that was called, empty if none.
func (r *Result) Command() string {
	return r.command
}

// CommandResult - options and positionals of the command that was called.
// Returns nil if no command was called.
//
// For example, with a `commit` command, `-v commit -m msg file` leaves `-v`
// in r and `-m msg` and `file` in the command's Result.
func (r *Result) CommandResult() *Result {
	return r.sub
}

// String - print a nice looking representation of the result.
func (r *Result) String() string {
	keys := make([]string, 0, len(r.options))
	for k := range r.options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := []string{}
	for _, k := range keys {
		occ := r.options[k]
		out = append(out, fmt.Sprintf("%s: %v (%d)", k, occ.Values, occ.Count))
	}
	str := fmt.Sprintf("options: {%s}, positionals: %v", strings.Join(out, ", "), r.positionals)
	if r.sub != nil {
		str += fmt.Sprintf(", command: %s {%s}", r.command, r.sub)
	}
	return str
}

// assembler - folds occurrences into a Result.
type assembler struct {
	result *Result
	policy DuplicatePolicy // Registry wide default
}

func newAssembler(policy DuplicatePolicy) *assembler {
	return &assembler{result: newResult(), policy: policy}
}

// add - records one occurrence of spec.
// usedName is the name as given on the command line, used for error reporting.
func (a *assembler) add(spec *option.Spec, usedName, raw, value string) error {
	key := spec.Key()
	occ, seen := a.result.options[key]
	if !seen {
		occ = &Occurrence{Spec: *spec, Values: []string{}}
		a.result.options[key] = occ
		a.result.order = append(a.result.order, key)
		for _, n := range spec.Names() {
			a.result.names[n] = key
		}
	}

	switch {
	case !seen || spec.Repeatable:
	case spec.Policy(a.policy) == option.FailOnDuplicate:
		return &ParseError{Kind: DuplicateOption, Option: usedName, Token: raw}
	default:
		Logger.Printf("option '%s' passed again, last value wins", key)
		occ.Values = occ.Values[:0]
	}

	occ.Count++
	if spec.TakesValue {
		occ.Values = append(occ.Values, value)
	}
	Logger.Printf("save %s: %v (%d)", key, occ.Values, occ.Count)
	return nil
}

func (a *assembler) positional(s string) {
	a.result.positionals = append(a.result.positionals, s)
}
