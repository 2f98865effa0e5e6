//-----------------------------------------------------------------------------
// Copyright (c) 2025-present The notemark authors
//
// This file is part of notemark.
//
// notemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2025-present The notemark authors
//-----------------------------------------------------------------------------

// Package input provides the cursor used by all parsers of this module.
package input

// Input is a cursor over a sequence of Unicode code points. It supports
// lookahead, literal matching, and absolute repositioning, which the
// parsers use to backtrack after a speculative match failed.
type Input struct {
	src []rune
	pos int
}

// NewInput creates a cursor over the given text. The text is decoded into
// code points once, so multi-byte characters are matched correctly.
func NewInput(src string) *Input {
	return &Input{src: []rune(src)}
}

// Pos returns the current read position.
func (inp *Input) Pos() int { return inp.pos }

// SetPos repositions the cursor. It is used to backtrack to a previously
// saved position.
func (inp *Input) SetPos(pos int) { inp.pos = pos }

// IsEOS reports whether the input is exhausted.
func (inp *Input) IsEOS() bool { return inp.pos >= len(inp.src) }

// Current returns the code point at the current position, or false at the
// end of input.
func (inp *Input) Current() (rune, bool) {
	if inp.IsEOS() {
		return 0, false
	}
	return inp.src[inp.pos], true
}

// Peek returns the code point n positions after the current one, or false
// if there is none.
func (inp *Input) Peek(n int) (rune, bool) {
	if inp.pos+n >= len(inp.src) {
		return 0, false
	}
	return inp.src[inp.pos+n], true
}

// Advance moves the cursor n code points forward, at most to the end of
// input.
func (inp *Input) Advance(n int) {
	inp.pos = min(inp.pos+n, len(inp.src))
}

// Lookahead returns the next n code points as a string. Near the end of
// input the result is shorter, possibly empty.
func (inp *Input) Lookahead(n int) string {
	end := min(inp.pos+n, len(inp.src))
	if end <= inp.pos {
		return ""
	}
	return string(inp.src[inp.pos:end])
}

// Rest returns everything from the current position to the end of input.
func (inp *Input) Rest() string {
	if inp.IsEOS() {
		return ""
	}
	return string(inp.src[inp.pos:])
}

// Matches reports whether the text at the current position equals one of
// the given candidates. The cursor is not moved.
func (inp *Input) Matches(candidates ...string) bool {
	for _, cand := range candidates {
		if inp.matchesOne(cand) {
			return true
		}
	}
	return false
}

// Expect consumes the first candidate whose literal text occurs at the
// current position and returns it. When no candidate matches, the cursor
// is not moved.
func (inp *Input) Expect(candidates ...string) (string, bool) {
	for _, cand := range candidates {
		if inp.matchesOne(cand) {
			inp.pos += len([]rune(cand))
			return cand, true
		}
	}
	return "", false
}

func (inp *Input) matchesOne(cand string) bool {
	pos := inp.pos
	for _, ch := range cand {
		if pos >= len(inp.src) || inp.src[pos] != ch {
			return false
		}
		pos++
	}
	return true
}
