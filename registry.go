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

	"github.com/DavidGamba/go-cmdparse/internal/option"
	"github.com/DavidGamba/go-cmdparse/text"
)

// OptionSpec - definition of a recognized option.
// See the field documentation in the option package.
type OptionSpec = option.Spec

// DuplicatePolicy - Action taken when a non repeatable option is passed more than once.
type DuplicatePolicy = option.DuplicatePolicy

// Duplicate policies
const (
	Inherit         = option.Inherit
	LastWins        = option.LastWins
	FailOnDuplicate = option.FailOnDuplicate
)

// Registry - ordered collection of option definitions.
//
// A Registry is built once and then used read only by Parse.
// Parse can be called concurrently on the same Registry as long as no
// definitions or settings are changed while parsing.
//
// Commands are Registries too, see NewCommand.
type Registry struct {
	specs        []option.Spec
	long         map[string]int // map[long name]index in specs
	short        map[rune]int   // map[short name]index in specs
	policy       DuplicatePolicy
	requireOrder bool

	name        string
	description string
	commands    map[string]*Registry
	cmdOrder    []string
}

// New returns an empty Registry.
// This is the starting point when using go-cmdparse.
// For example:
//
//	reg := cmdparse.New()
func New() *Registry {
	return &Registry{
		long:     map[string]int{},
		short:    map[rune]int{},
		policy:   LastWins,
		commands: map[string]*Registry{},
	}
}

// SetDuplicatePolicy - Determines what happens when a non repeatable option is passed more than once.
//
// • LastWins (default) keeps the value of the last occurrence.
//
// • FailOnDuplicate makes Parse return an ErrorDuplicateOption error.
//
// Options can override it with OptionSpec.OnDuplicate.
// Passing Inherit resets the policy to LastWins.
func (r *Registry) SetDuplicatePolicy(policy DuplicatePolicy) *Registry {
	if policy == Inherit {
		policy = LastWins
	}
	r.policy = policy
	return r
}

// DuplicatePolicy - returns the registry wide duplicate policy.
func (r *Registry) DuplicatePolicy() DuplicatePolicy {
	return r.policy
}

// SetRequireOrder - Stop parsing options when the first positional argument is found.
// The positional argument and every argument after it are returned as positionals.
//
// For example:
//
//	command --opt arg subcommand --subopt subarg
//
// With `--opt` taking a value, `subcommand` is the first positional so the
// positionals are `['subcommand', '--subopt', 'subarg']` and can be passed
// directly to the subcommand's Registry.
// Commands declared with NewCommand are still recognized.
func (r *Registry) SetRequireOrder() *Registry {
	r.requireOrder = true
	return r
}

// Register - adds an option definition.
// It fails with ErrorInvalidSpec when the definition has no names or reserved
// names, and with ErrorDuplicateName when one of its names is already taken.
//
// Result accessors take either name, so a one letter long name and a short
// name share the same namespace: `--x` can't be registered when another
// option already uses `-x`, and the other way around.
//
// On failure the Registry is left unchanged.
func (r *Registry) Register(spec OptionSpec) error {
	Logger.Printf("register %s", spec.Synopsis())
	if err := spec.Validate(); err != nil {
		return &DefinitionError{Name: spec.Key(), err: err}
	}
	if spec.Long != "" {
		if i, ok := r.long[spec.Long]; ok {
			return &DefinitionError{Name: spec.Long, Existing: r.specs[i].Key(), err: ErrorDuplicateName}
		}
	}
	if spec.Short != 0 {
		if i, ok := r.short[spec.Short]; ok {
			return &DefinitionError{Name: string(spec.Short), Existing: r.specs[i].Key(), err: ErrorDuplicateName}
		}
	}
	// Results are looked up by either name so a one letter long name can't
	// match a short name.
	if spec.Long != "" && len([]rune(spec.Long)) == 1 {
		if i, ok := r.short[[]rune(spec.Long)[0]]; ok {
			return &DefinitionError{Name: spec.Long, Existing: r.specs[i].Key(), err: ErrorDuplicateName}
		}
	}
	if spec.Short != 0 {
		if i, ok := r.long[string(spec.Short)]; ok {
			return &DefinitionError{Name: string(spec.Short), Existing: r.specs[i].Key(), err: ErrorDuplicateName}
		}
	}

	idx := len(r.specs)
	r.specs = append(r.specs, spec)
	if spec.Long != "" {
		r.long[spec.Long] = idx
	}
	if spec.Short != 0 {
		r.short[spec.Short] = idx
	}
	return nil
}

// MustRegister - same as Register but panics on error.
// Definition errors have to be fixed by the programmer.
func (r *Registry) MustRegister(spec OptionSpec) *Registry {
	if err := r.Register(spec); err != nil {
		panic(fmt.Sprintf("definition error: %s", err))
	}
	return r
}

// Flag - registers an option that takes no value.
// Use an empty long name or a 0 short name to leave either unset.
func (r *Registry) Flag(long string, short rune) error {
	return r.Register(OptionSpec{Long: long, Short: short})
}

// Value - registers an option that takes exactly one value.
func (r *Registry) Value(long string, short rune) error {
	return r.Register(OptionSpec{Long: long, Short: short, TakesValue: true})
}

// List - registers a repeatable option that takes one value per occurrence.
// For example, when called with `-I a -I b`, the values are `[]string{"a", "b"}`.
func (r *Registry) List(long string, short rune) error {
	return r.Register(OptionSpec{Long: long, Short: short, TakesValue: true, Repeatable: true})
}

// Counter - registers a repeatable option that takes no value.
// Use Result.Count to read how many times it was passed, for example `-vvv`.
func (r *Registry) Counter(long string, short rune) error {
	return r.Register(OptionSpec{Long: long, Short: short, Repeatable: true})
}

// Lookup - returns the definition for the given long or short name.
func (r *Registry) Lookup(name string) (OptionSpec, bool) {
	i, ok := r.index(name)
	if !ok {
		return OptionSpec{}, false
	}
	return r.specs[i], true
}

// Specs - returns a copy of the definitions in registration order.
func (r *Registry) Specs() []OptionSpec {
	specs := make([]OptionSpec, len(r.specs))
	copy(specs, r.specs)
	return specs
}

// Len - number of registered options.
func (r *Registry) Len() int {
	return len(r.specs)
}

// NewCommand - Returns a new Registry for the options of the command name.
//
// When Parse finds name as a positional argument of r, matching switches to
// the command's Registry: the args after it are matched against the command's
// options only and its own duplicate policy and require order settings apply.
// The command must come before any positional argument of r.
// Result.Command and Result.CommandResult report it.
//
// Definition errors have to be fixed by the programmer so NewCommand panics
// when name is empty, looks like an option or is already a command of r.
func (r *Registry) NewCommand(name, description string) *Registry {
	if name == "" || IsOptionLike(name) {
		panic(fmt.Sprintf("definition error: %s", fmt.Sprintf(text.ErrorInvalidCommand, name)))
	}
	if _, ok := r.commands[name]; ok {
		panic(fmt.Sprintf("definition error: %s", fmt.Sprintf(text.ErrorDuplicateCommand, name)))
	}
	Logger.Printf("register command %s", name)
	cmd := New()
	cmd.name = name
	cmd.description = description
	r.commands[name] = cmd
	r.cmdOrder = append(r.cmdOrder, name)
	return cmd
}

// Name - command name, empty for a Registry created with New.
func (r *Registry) Name() string {
	return r.name
}

// Description - command description given to NewCommand.
func (r *Registry) Description() string {
	return r.description
}

// Commands - names of the commands of r in declaration order.
func (r *Registry) Commands() []string {
	names := make([]string, len(r.cmdOrder))
	copy(names, r.cmdOrder)
	return names
}

// Command - returns the Registry of the command name.
func (r *Registry) Command(name string) (*Registry, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Parse - Call the parse method when done describing.
// Same as cmdparse.Parse(r, args).
func (r *Registry) Parse(args []string) (*Result, error) {
	return Parse(r, args)
}

func (r *Registry) index(name string) (int, bool) {
	if i, ok := r.long[name]; ok {
		return i, true
	}
	if rs := []rune(name); len(rs) == 1 {
		if i, ok := r.short[rs[0]]; ok {
			return i, true
		}
	}
	return 0, false
}

func (r *Registry) lookupLong(name string) (*option.Spec, bool) {
	i, ok := r.long[name]
	if !ok {
		return nil, false
	}
	return &r.specs[i], true
}

func (r *Registry) lookupShort(c rune) (*option.Spec, bool) {
	i, ok := r.short[c]
	if !ok {
		return nil, false
	}
	return &r.specs[i], true
}
