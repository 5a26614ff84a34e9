// This file is part of go-cmdparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdparse

import (
	"unicode/utf8"

	"github.com/DavidGamba/go-cmdparse/internal/option"
)

type matcher struct {
	reg    *Registry // Registry of the innermost command found so far
	lex    *lexer
	asm    *assembler
	called map[string]bool // Commands already found
}

// Parse - Matches the given cli args against the registered options.
//
// The args are expected to be os.Args[1:] or any other []string without the
// program name.
//
// Parsing stops at the first error and no partial Result is returned.
// The returned error is a *ParseError, use errors.Is with the Error* kind
// sentinels to tell them apart.
func Parse(reg *Registry, args []string) (*Result, error) {
	Logger.Printf("Parse args: %v(%d)", args, len(args))
	m := &matcher{
		reg:    reg,
		lex:    newLexer(args),
		asm:    newAssembler(reg.policy),
		called: map[string]bool{},
	}
	result := m.asm.result
	err := m.run()
	if err != nil {
		Logger.Printf("return %v", err)
		return nil, err
	}
	Logger.Printf("return %s", result)
	return result, nil
}

func (m *matcher) run() error {
	for m.lex.Next() {
		u := m.lex.Unit()
		idx, size := m.lex.Position()
		Logger.Printf("Parse input arg %d/%d: %s, %s", idx+1, size, u.Raw, u.Kind)
		switch u.Kind {
		case unitTerminator:
			Logger.Printf("Parse -- found")
		case unitPositional:
			if !m.lex.terminated {
				if cmd, ok := m.reg.commands[u.Name]; ok {
					if err := m.enter(cmd, u); err != nil {
						return err
					}
					break
				}
				if m.called[u.Name] {
					return &ParseError{Kind: UnexpectedCommand, Token: u.Raw, Command: u.Name}
				}
			}
			m.asm.positional(u.Name)
			if m.reg.requireOrder {
				for _, arg := range m.lex.Rest() {
					m.asm.positional(arg)
				}
				return nil
			}
		case unitLong:
			if err := m.matchLong(u); err != nil {
				return err
			}
		case unitShortCluster:
			if err := m.matchCluster(u); err != nil {
				return err
			}
		}
	}
	return nil
}

// enter - switches matching to the options of cmd.
func (m *matcher) enter(cmd *Registry, u unit) error {
	if p := m.asm.result.positionals; len(p) > 0 {
		return &ParseError{Kind: UnexpectedArgument, Token: p[0], Command: u.Name}
	}
	Logger.Printf("Parse command found: %s", u.Name)
	sub := newAssembler(cmd.policy)
	m.asm.result.command = u.Name
	m.asm.result.sub = sub.result
	m.called[u.Name] = true
	m.reg, m.asm = cmd, sub
	return nil
}

func (m *matcher) matchLong(u unit) error {
	spec, ok := m.reg.lookupLong(u.Name)
	if !ok {
		return &ParseError{Kind: UnknownOption, Option: u.Name, Token: u.Raw}
	}
	if !spec.TakesValue {
		if u.HasValue {
			return &ParseError{Kind: UnexpectedValue, Option: u.Name, Token: u.Raw, Value: u.Value}
		}
		return m.asm.add(spec, u.Name, u.Raw, "")
	}
	if u.HasValue {
		return m.asm.add(spec, u.Name, u.Raw, u.Value)
	}
	return m.awaitValue(spec, u.Name, u.Raw)
}

// matchCluster - handles a group of short options, for example `-abc`.
//
// Options that take no value are saved and matching continues with the next
// character.
// A value taking option ends the group:
//
//   - When last, its value is the inline `=value` or the next cli arg.
//   - Otherwise the rest of the group is its value, `-ofile` is `-o file`,
//     unless every remaining character is itself a short option, in which case
//     the group could equally be read as separate options and is rejected.
func (m *matcher) matchCluster(u unit) error {
	if u.Name == "" {
		// -=value
		return &ParseError{Kind: UnknownOption, Option: u.Name, Token: u.Raw}
	}
	// i is the byte offset of c, pos its rune index.
	pos := 0
	for i, c := range u.Name {
		// An invalid byte decodes as utf8.RuneError with size 1.
		_, size := utf8.DecodeRuneInString(u.Name[i:])
		name := u.Name[i : i+size]
		spec, ok := m.reg.lookupShort(c)
		if !ok || c == utf8.RuneError {
			return &ParseError{Kind: UnknownOption, Option: name, Token: u.Raw}
		}
		rest := u.Name[i+size:]
		last := rest == ""

		if !spec.TakesValue {
			if last && u.HasValue {
				return &ParseError{Kind: UnexpectedValue, Option: name, Token: u.Raw, Value: u.Value}
			}
			if err := m.asm.add(spec, name, u.Raw, ""); err != nil {
				return err
			}
			pos++
			continue
		}

		if last {
			if u.HasValue {
				return m.asm.add(spec, name, u.Raw, u.Value)
			}
			return m.awaitValue(spec, name, u.Raw)
		}

		if m.allShortOptions(rest) {
			return &ParseError{Kind: AmbiguousGrouping, Option: name, Token: u.Raw, Cluster: u.Name, Position: pos}
		}
		// The group is sliced, not decoded, so bytes that are not valid UTF-8
		// reach the value unchanged.
		value := rest
		if u.HasValue {
			value += "=" + u.Value
		}
		return m.asm.add(spec, name, u.Raw, value)
	}
	return nil
}

// awaitValue - takes the next cli arg as the value for spec.
func (m *matcher) awaitValue(spec *option.Spec, name, raw string) error {
	value, optionLike, ok := m.lex.TakeValue()
	if !ok {
		return &ParseError{Kind: MissingValue, Option: name, Token: raw, OptionLike: optionLike}
	}
	Logger.Printf("option '%s' value from next arg: %s", name, value)
	return m.asm.add(spec, name, raw, value)
}

func (m *matcher) allShortOptions(s string) bool {
	for _, c := range s {
		if c == utf8.RuneError {
			return false
		}
		if _, ok := m.reg.lookupShort(c); !ok {
			return false
		}
	}
	return true
}
