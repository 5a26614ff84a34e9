// This file is part of go-cmdparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdparse

import (
	"bytes"
	"errors"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// setupRegistry - registry used by most parsing tests.
//
//	-v|--verbose        flag
//	-q|--quiet          flag
//	-o|--output <value> value
//	-I|--include <value>... list
//	-d|--debug...       counter
//	--dry-run           long only flag
//	-n <value>          short only value
func setupRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := New()
	for _, err := range []error{
		reg.Flag("verbose", 'v'),
		reg.Flag("quiet", 'q'),
		reg.Value("output", 'o'),
		reg.List("include", 'I'),
		reg.Counter("debug", 'd'),
		reg.Flag("dry-run", 0),
		reg.Value("", 'n'),
	} {
		if err != nil {
			t.Fatalf("unexpected definition error: %s", err)
		}
	}
	return reg
}
