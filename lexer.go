// This file is part of go-cmdparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdparse

import (
	"strings"

	"github.com/DavidGamba/go-cmdparse/internal/sliceiterator"
)

type unitKind int

const (
	unitPositional   unitKind = iota // Regular cli argument, `-` or anything after `--`
	unitLong                         // --name or --name=value
	unitShortCluster                 // -abc or -abc=value
	unitTerminator                   // --
)

func (k unitKind) String() string {
	switch k {
	case unitLong:
		return "long"
	case unitShortCluster:
		return "short"
	case unitTerminator:
		return "terminator"
	default:
		return "positional"
	}
}

// unit - classified form of one raw cli arg.
type unit struct {
	Kind unitKind
	// Name is the long option name, the group of short options or the
	// positional text.
	Name     string
	Value    string // Inline value, the text after the first '='
	HasValue bool   // Distinguishes `--opt=` from `--opt`
	Raw      string
}

/*
classify - Check if the given string is an option (starts with - or --).

	|===
	|arg          |kind        |name  |value
	|--           |terminator  |      |
	|--opt        |long        |opt   |
	|--opt=a=b    |long        |opt   |a=b
	|-abc         |short       |abc   |
	|-abc=arg     |short       |abc   |arg
	|-, arg, ""   |positional  |arg   |
	|===

Only the first '=' splits, everything after it is the value verbatim.
The decision is made on syntax alone, the registry is never consulted.
*/
func classify(s string) unit {
	switch {
	case s == "--":
		return unit{Kind: unitTerminator, Raw: s}
	case strings.HasPrefix(s, "--"):
		name, value, found := strings.Cut(s[2:], "=")
		return unit{Kind: unitLong, Name: name, Value: value, HasValue: found, Raw: s}
	case len(s) > 1 && s[0] == '-':
		name, value, found := strings.Cut(s[1:], "=")
		return unit{Kind: unitShortCluster, Name: name, Value: value, HasValue: found, Raw: s}
	default:
		return unit{Kind: unitPositional, Name: s, Raw: s}
	}
}

// IsOptionLike - indicates if the given cli arg would be read as an option or
// as the `--` terminator rather than as a positional argument.
// A value taking option never consumes an option like arg as its value.
func IsOptionLike(s string) bool {
	return classify(s).Kind != unitPositional
}

// lexer - lazy classification of raw cli args, one unit per arg.
//
// After the `--` terminator every remaining arg is returned as a positional.
// The lexer owns the cursor over the raw args so the caller can consume the
// next raw arg as a value with TakeValue.
type lexer struct {
	it         *sliceiterator.Iterator
	current    unit
	terminated bool
}

// newLexer - builds a lexer over args. The args slice is not modified.
func newLexer(args []string) *lexer {
	return &lexer{it: sliceiterator.New(args)}
}

// Next - moves to the next raw arg and classifies it.
// Returns false when there are no more args.
func (l *lexer) Next() bool {
	if !l.it.Next() {
		l.current = unit{}
		return false
	}
	raw := l.it.Value()
	if l.terminated {
		l.current = unit{Kind: unitPositional, Name: raw, Raw: raw}
		return true
	}
	l.current = classify(raw)
	if l.current.Kind == unitTerminator {
		l.terminated = true
	}
	return true
}

// Unit - the current classified unit.
func (l *lexer) Unit() unit {
	return l.current
}

// TakeValue - consumes the next raw arg as a value.
// It fails when there is no next arg or when the next arg is option like, in
// which case the cursor is not moved and optionLike is true.
func (l *lexer) TakeValue() (value string, optionLike bool, ok bool) {
	next, exists := l.it.Peek()
	if !exists {
		return "", false, false
	}
	if IsOptionLike(next) {
		return "", true, false
	}
	value, _ = l.it.Take()
	return value, false, true
}

// Position - index of the current raw arg and the total number of raw args.
// The index is -1 before the first call to Next.
func (l *lexer) Position() (int, int) {
	return l.it.Index(), l.it.Size()
}

// Rest - raw args after the current one, unclassified.
func (l *lexer) Rest() []string {
	return l.it.Rest()
}

// Reset - restarts the lexer from the first arg.
func (l *lexer) Reset() {
	l.it.Reset()
	l.current = unit{}
	l.terminated = false
}
