// This file is part of go-cmdparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package cmdparse - Go command line option parser.

It operates on any given slice of strings, matches it against a Registry of
option definitions and returns a Result with the option values and the
remaining positional arguments.

# Usage

	import "github.com/DavidGamba/go-cmdparse"

	reg := cmdparse.New()
	reg.Flag("verbose", 'v')
	reg.Value("output", 'o')
	reg.List("include", 'I')

	res, err := cmdparse.Parse(reg, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	if res.IsPresent("verbose") {
		// ... do something
	}
	output, _ := res.ValueOf("o")
	includes := res.ValuesOf("include")
	args := res.Positionals()

# Features

• Long options `--name` and short options `-n`, both with optional '='
values: `--output=file`, `--output file`, `-o=file`, `-o file` and `-ofile`.

• Grouping of short options: `-abc` is `-a -b -c`. A value taking option in
the middle of a group is only accepted when the rest of the group can't be
read as options.

• `--` stops option parsing, everything after it is positional.

• Repeatable options that accumulate values in order, and counters (`-vvv`).

• Configurable duplicate policy: last value wins (default) or fail.

• Commands with their own options: `program -v commit -m msg`.

• Require order mode to stop at the first positional.

• Typed errors: every error returned by Parse is a *ParseError and matches
ErrorParsing plus the sentinel of its kind.

Values that start with '-' must be given inline, `--opt=-value`, the next cli
arg is never consumed as a value if it looks like an option.
*/
package cmdparse

import (
	"io"
	"log"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)
