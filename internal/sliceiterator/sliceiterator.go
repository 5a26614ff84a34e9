// This file is part of go-cmdparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - cursor over the raw cli args that allows peeking at and taking the next value.
package sliceiterator

// Iterator - cursor data. The underlying slice is never modified.
type Iterator struct {
	data []string
	idx  int
}

// New - builds a string Iterator positioned before the first element.
func New(s []string) *Iterator {
	return &Iterator{data: s, idx: -1}
}

// Size - returns the number of elements.
func (a *Iterator) Size() int {
	return len(a.data)
}

// Index - return current index, -1 before the first call to Next.
func (a *Iterator) Index() int {
	return a.idx
}

// Next - moves the cursor forward and indicates if it points to an element.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// Value - returns the current element or an empty string when out of range.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// Peek - returns the next element without moving the cursor.
func (a *Iterator) Peek() (string, bool) {
	if a.idx+1 >= len(a.data) {
		return "", false
	}
	return a.data[a.idx+1], true
}

// Take - moves the cursor forward and returns the element it lands on.
func (a *Iterator) Take() (string, bool) {
	if !a.Next() {
		return "", false
	}
	return a.data[a.idx], true
}

// Rest - copy of the elements after the current one.
func (a *Iterator) Rest() []string {
	if a.idx+1 >= len(a.data) {
		return []string{}
	}
	rest := make([]string, len(a.data)-a.idx-1)
	copy(rest, a.data[a.idx+1:])
	return rest
}

// Reset - moves the cursor back before the first element.
func (a *Iterator) Reset() {
	a.idx = -1
}
