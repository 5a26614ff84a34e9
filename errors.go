// This file is part of go-cmdparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdparse

import (
	"errors"
	"fmt"

	"github.com/DavidGamba/go-cmdparse/internal/option"
	"github.com/DavidGamba/go-cmdparse/text"
)

// ErrorParsing - Indicates that there was an error with cli args parsing.
// Every *ParseError matches it.
var ErrorParsing = errors.New("")

// Parse error kinds, use with errors.Is.
var (
	ErrorUnknownOption      = errors.New("unknown option")
	ErrorMissingValue       = errors.New("missing value")
	ErrorUnexpectedValue    = errors.New("unexpected value")
	ErrorAmbiguousGrouping  = errors.New("ambiguous grouping")
	ErrorDuplicateOption    = errors.New("duplicate option")
	ErrorUnexpectedArgument = errors.New("unexpected argument")
	ErrorUnexpectedCommand  = errors.New("unexpected command")
)

// Definition error kinds, use with errors.Is.
var (
	ErrorDuplicateName = errors.New("duplicate name")
	ErrorInvalidSpec   = option.ErrorInvalidSpec
)

// ErrorKind - tag of a ParseError.
type ErrorKind int

// Parse error tags
const (
	UnknownOption ErrorKind = iota
	MissingValue
	UnexpectedValue
	AmbiguousGrouping
	DuplicateOption
	UnexpectedArgument
	UnexpectedCommand
)

func (k ErrorKind) String() string {
	return k.sentinel().Error()
}

func (k ErrorKind) sentinel() error {
	switch k {
	case MissingValue:
		return ErrorMissingValue
	case UnexpectedValue:
		return ErrorUnexpectedValue
	case AmbiguousGrouping:
		return ErrorAmbiguousGrouping
	case DuplicateOption:
		return ErrorDuplicateOption
	case UnexpectedArgument:
		return ErrorUnexpectedArgument
	case UnexpectedCommand:
		return ErrorUnexpectedCommand
	default:
		return ErrorUnknownOption
	}
}

// ParseError - Describes why Parse halted.
type ParseError struct {
	Kind ErrorKind

	// Option is the option name as found on the command line, without dashes.
	// For AmbiguousGrouping it is the value taking option inside the group.
	Option string

	// Token is the raw cli arg being processed when the error was found.
	// For UnexpectedArgument it is the positional argument found before the
	// command.
	Token string

	// Command is set for UnexpectedArgument and UnexpectedCommand.
	Command string

	// Value holds the inline value for UnexpectedValue.
	Value string

	// Cluster and Position are set for AmbiguousGrouping: the group of short
	// options without the leading dash and the 0 based rune index of Option.
	Cluster  string
	Position int

	// OptionLike is set for MissingValue when the next cli arg was not consumed
	// because it looks like an option.
	OptionLike bool
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case MissingValue:
		if e.OptionLike {
			return fmt.Sprintf(text.ErrorArgumentWithDash, e.Option)
		}
		return fmt.Sprintf(text.ErrorMissingArgument, e.Option)
	case UnexpectedValue:
		return fmt.Sprintf(text.ErrorUnexpectedArgument, e.Option, e.Value)
	case AmbiguousGrouping:
		return fmt.Sprintf(text.ErrorAmbiguousGrouping, e.Option, e.Cluster, e.Position)
	case DuplicateOption:
		return fmt.Sprintf(text.ErrorDuplicateOption, e.Option)
	case UnexpectedArgument:
		return fmt.Sprintf(text.ErrorUnexpectedPositional, e.Token, e.Command)
	case UnexpectedCommand:
		return fmt.Sprintf(text.ErrorUnexpectedCommand, e.Command)
	default:
		return fmt.Sprintf(text.ErrorUnknownOption, e.Option)
	}
}

// Is - matches the kind sentinel, for example ErrorMissingValue.
func (e *ParseError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// Unwrap - every parse error wraps ErrorParsing.
func (e *ParseError) Unwrap() error {
	return ErrorParsing
}

// DefinitionError - Returned by Register when an option definition can't be added.
type DefinitionError struct {
	Name     string // Offending name
	Existing string // Key of the option that already uses Name
	err      error
}

func (e *DefinitionError) Error() string {
	if errors.Is(e.err, ErrorDuplicateName) {
		return fmt.Sprintf(text.ErrorDuplicateName, e.Name, e.Existing)
	}
	return e.err.Error()
}

func (e *DefinitionError) Unwrap() error {
	return e.err
}
