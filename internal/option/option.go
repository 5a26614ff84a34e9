// This file is part of go-cmdparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option definition and validation.
package option

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrorInvalidSpec - the definition can't be used for matching.
var ErrorInvalidSpec = errors.New("invalid option definition")

// DuplicatePolicy - Action taken when a non repeatable option is passed more than once.
type DuplicatePolicy int

// Duplicate policies
const (
	Inherit         DuplicatePolicy = iota // Use the registry wide policy
	LastWins                               // The last value overwrites the previous ones
	FailOnDuplicate                        // Passing the option twice is a parse error
)

func (p DuplicatePolicy) String() string {
	switch p {
	case LastWins:
		return "last-wins"
	case FailOnDuplicate:
		return "fail-on-duplicate"
	default:
		return "inherit"
	}
}

// Spec - option definition.
//
// At least one of Long or Short has to be set.
type Spec struct {
	Long        string          // Long name without leading dashes, e.g. "verbose"
	Short       rune            // Short name, 0 when unset
	TakesValue  bool            // Indicates if the option requires a value
	Repeatable  bool            // Values accumulate instead of being overwritten
	OnDuplicate DuplicatePolicy // Overrides the registry duplicate policy for this option
	Description string          // Optional description used for help, ignored by the parser
	ArgName     string          // Optional arg name used for help
}

// Key - the identity used to store results for the option.
// The long name when set, otherwise the short name.
func (s Spec) Key() string {
	if s.Long != "" {
		return s.Long
	}
	return string(s.Short)
}

// Names - all the names the option can be referred by.
func (s Spec) Names() []string {
	names := []string{}
	if s.Long != "" {
		names = append(names, s.Long)
	}
	if s.Short != 0 {
		names = append(names, string(s.Short))
	}
	return names
}

// Validate - checks that the names can be produced by the tokenizer.
func (s Spec) Validate() error {
	if s.Long == "" && s.Short == 0 {
		return fmt.Errorf("%w: option needs a long or a short name", ErrorInvalidSpec)
	}
	if s.Long != "" {
		if strings.HasPrefix(s.Long, "-") {
			return fmt.Errorf("%w: long name '%s' can't start with '-'", ErrorInvalidSpec, s.Long)
		}
		if strings.ContainsRune(s.Long, '=') {
			return fmt.Errorf("%w: long name '%s' can't contain '='", ErrorInvalidSpec, s.Long)
		}
		if strings.IndexFunc(s.Long, unicode.IsSpace) >= 0 {
			return fmt.Errorf("%w: long name '%s' can't contain spaces", ErrorInvalidSpec, s.Long)
		}
	}
	if s.Short != 0 {
		if s.Short == '-' || s.Short == '=' || unicode.IsSpace(s.Short) {
			return fmt.Errorf("%w: short name '%c' is reserved", ErrorInvalidSpec, s.Short)
		}
	}
	if s.OnDuplicate < Inherit || s.OnDuplicate > FailOnDuplicate {
		return fmt.Errorf("%w: unknown duplicate policy %d", ErrorInvalidSpec, s.OnDuplicate)
	}
	return nil
}

// Policy - resolves the effective duplicate policy given the registry default.
func (s Spec) Policy(def DuplicatePolicy) DuplicatePolicy {
	if s.OnDuplicate != Inherit {
		return s.OnDuplicate
	}
	if def == Inherit {
		return LastWins
	}
	return def
}

// Synopsis - help representation of the option, for example `-o|--output <file>...`.
func (s Spec) Synopsis() string {
	names := []string{}
	if s.Short != 0 {
		names = append(names, "-"+string(s.Short))
	}
	if s.Long != "" {
		names = append(names, "--"+s.Long)
	}
	out := strings.Join(names, "|")
	if s.TakesValue {
		argName := s.ArgName
		if argName == "" {
			argName = "value"
		}
		out += fmt.Sprintf(" <%s>", argName)
	}
	if s.Repeatable {
		out += "..."
	}
	return out
}

// Display - name of the option as the user would type it.
func (s Spec) Display() string {
	if s.Long != "" {
		return "--" + s.Long
	}
	return "-" + string(s.Short)
}
