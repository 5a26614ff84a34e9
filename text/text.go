// This file is part of go-cmdparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
// Override them to change or translate the error messages.
package text

// ErrorUnknownOption holds the text for an option that is not defined.
// It has a string placeholder '%s' for the name of the option.
var ErrorUnknownOption = "Unknown option '%s'"

// ErrorMissingArgument holds the text for missing argument error.
// It has a string placeholder '%s' for the name of the option missing the argument.
var ErrorMissingArgument = "Missing argument for option '%s'!"

// ErrorArgumentWithDash holds the text for missing argument error in cases where the next argument looks like an option (starts with '-').
// It has a string placeholder '%s' for the name of the option missing the argument.
var ErrorArgumentWithDash = "Missing argument for option '%s'!\n" +
	"If passing arguments that start with '-' use --option=-argument"

// ErrorUnexpectedArgument holds the text for an argument given to an option that doesn't take one.
// It has a string placeholder '%s' for the name of the option and one for the argument.
var ErrorUnexpectedArgument = "Option '%s' doesn't take an argument, given '%s'"

// ErrorAmbiguousGrouping holds the text for a value taking option in the middle of a group of short options.
// It has placeholders for the option, the group and the position of the option in the group.
var ErrorAmbiguousGrouping = "Option '%s' requires an argument but is not the last one in group '-%s' (position %d)"

// ErrorDuplicateOption holds the text for an option that can only be passed once.
// It has a string placeholder '%s' for the name of the option.
var ErrorDuplicateOption = "Option '%s' was given more than once"

// ErrorUnexpectedPositional holds the text for a positional argument given before a command.
// It has a string placeholder '%s' for the argument and one for the command.
var ErrorUnexpectedPositional = "Unexpected argument '%s' before command '%s'"

// ErrorUnexpectedCommand holds the text for a command that was already given.
// It has a string placeholder '%s' for the name of the command.
var ErrorUnexpectedCommand = "Unexpected command '%s', it was already given"

// ErrorDuplicateName holds the text for an option name defined twice.
// It has a string placeholder '%s' for the name and one for the option that already defines it.
var ErrorDuplicateName = "Option name '%s' is already defined in option '%s'"

// ErrorDuplicateCommand holds the text for a command name defined twice.
// It has a string placeholder '%s' for the name of the command.
var ErrorDuplicateCommand = "Command '%s' is already defined"

// ErrorInvalidCommand holds the text for a command name that is empty or looks like an option.
// It has a string placeholder '%s' for the name of the command.
var ErrorInvalidCommand = "Invalid command name '%s'"
