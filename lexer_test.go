// This file is part of go-cmdparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		unit unit
	}{
		{"empty", "", unit{Kind: unitPositional, Name: "", Raw: ""}},
		{"lone dash", "-", unit{Kind: unitPositional, Name: "-", Raw: "-"}},
		{"double dash", "--", unit{Kind: unitTerminator, Raw: "--"}},
		{"no option", "opt", unit{Kind: unitPositional, Name: "opt", Raw: "opt"}},
		{"no option with equals", "a=b", unit{Kind: unitPositional, Name: "a=b", Raw: "a=b"}},

		{"long option", "--opt", unit{Kind: unitLong, Name: "opt", Raw: "--opt"}},
		{"long option with arg", "--opt=arg", unit{Kind: unitLong, Name: "opt", Value: "arg", HasValue: true, Raw: "--opt=arg"}},
		{"long option with empty arg", "--opt=", unit{Kind: unitLong, Name: "opt", Value: "", HasValue: true, Raw: "--opt="}},
		{"long option split on first equals", "--opt=a=b", unit{Kind: unitLong, Name: "opt", Value: "a=b", HasValue: true, Raw: "--opt=a=b"}},
		{"long option with dash arg", "--opt=-1", unit{Kind: unitLong, Name: "opt", Value: "-1", HasValue: true, Raw: "--opt=-1"}},

		{"short option", "-o", unit{Kind: unitShortCluster, Name: "o", Raw: "-o"}},
		{"short cluster", "-opt", unit{Kind: unitShortCluster, Name: "opt", Raw: "-opt"}},
		{"short cluster with arg", "-opt=arg", unit{Kind: unitShortCluster, Name: "opt", Value: "arg", HasValue: true, Raw: "-opt=arg"}},
		{"short option split on first equals", "-o=x=y", unit{Kind: unitShortCluster, Name: "o", Value: "x=y", HasValue: true, Raw: "-o=x=y"}},
		{"short empty cluster", "-=x", unit{Kind: unitShortCluster, Name: "", Value: "x", HasValue: true, Raw: "-=x"}},
		{"negative number", "-1", unit{Kind: unitShortCluster, Name: "1", Raw: "-1"}},
		{"unicode cluster", "-áé", unit{Kind: unitShortCluster, Name: "áé", Raw: "-áé"}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.in)
			if diff := cmp.Diff(tt.unit, got); diff != "" {
				t.Errorf("classify(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestIsOptionLike(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"-", false},
		{"value", false},
		{"--", true},
		{"--opt", true},
		{"-o", true},
		{"-5", true},
	}
	for _, tt := range cases {
		if got := IsOptionLike(tt.in); got != tt.want {
			t.Errorf("IsOptionLike(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func collect(l *lexer) []unit {
	units := []unit{}
	for l.Next() {
		units = append(units, l.Unit())
	}
	return units
}

func TestLexer(t *testing.T) {
	t.Run("terminator makes everything positional", func(t *testing.T) {
		l := newLexer([]string{"-a", "--", "-b", "--c=d", "--", "e"})
		expected := []unit{
			{Kind: unitShortCluster, Name: "a", Raw: "-a"},
			{Kind: unitTerminator, Raw: "--"},
			{Kind: unitPositional, Name: "-b", Raw: "-b"},
			{Kind: unitPositional, Name: "--c=d", Raw: "--c=d"},
			{Kind: unitPositional, Name: "--", Raw: "--"},
			{Kind: unitPositional, Name: "e", Raw: "e"},
		}
		if diff := cmp.Diff(expected, collect(l)); diff != "" {
			t.Errorf("units mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("restartable", func(t *testing.T) {
		args := []string{"--", "-a", "b"}
		l := newLexer(args)
		first := collect(l)
		if l.Next() {
			t.Errorf("Next after the end returned true")
		}
		l.Reset()
		second := collect(l)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("units mismatch after Reset (-first +second):\n%s", diff)
		}
	})

	t.Run("take value", func(t *testing.T) {
		l := newLexer([]string{"-o", "value", "-o", "-v", "-o"})

		l.Next()
		value, optionLike, ok := l.TakeValue()
		if !ok || optionLike || value != "value" {
			t.Errorf("wrong TakeValue: %q, %v, %v", value, optionLike, ok)
		}

		l.Next()
		value, optionLike, ok = l.TakeValue()
		if ok || !optionLike || value != "" {
			t.Errorf("wrong TakeValue with option like next: %q, %v, %v", value, optionLike, ok)
		}
		// The cursor didn't move so -v is the next unit.
		l.Next()
		if diff := cmp.Diff(unit{Kind: unitShortCluster, Name: "v", Raw: "-v"}, l.Unit()); diff != "" {
			t.Errorf("unit mismatch (-want +got):\n%s", diff)
		}

		l.Next()
		value, optionLike, ok = l.TakeValue()
		if ok || optionLike || value != "" {
			t.Errorf("wrong TakeValue at the end: %q, %v, %v", value, optionLike, ok)
		}
	})

	t.Run("take value consumes the arg", func(t *testing.T) {
		l := newLexer([]string{"-o", "-", "rest"})
		l.Next()
		value, _, ok := l.TakeValue()
		if !ok || value != "-" {
			t.Errorf("lone dash should be a valid value: %q, %v", value, ok)
		}
		if diff := cmp.Diff([]string{"rest"}, l.Rest()); diff != "" {
			t.Errorf("rest mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("position", func(t *testing.T) {
		l := newLexer([]string{"-o", "value", "a"})
		if idx, size := l.Position(); idx != -1 || size != 3 {
			t.Errorf("wrong initial position: %d/%d", idx, size)
		}
		l.Next()
		l.TakeValue()
		if idx, size := l.Position(); idx != 1 || size != 3 {
			t.Errorf("TakeValue didn't move the position: %d/%d", idx, size)
		}
		l.Next()
		if idx, _ := l.Position(); idx != 2 {
			t.Errorf("wrong position: %d", idx)
		}
		l.Reset()
		if idx, _ := l.Position(); idx != -1 {
			t.Errorf("wrong position after Reset: %d", idx)
		}
	})
}
