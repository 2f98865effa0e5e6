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

package parser_test

import (
	"testing"

	"notemark/parser"
)

// Parsing is total: any input must yield a tree, never a panic.
func FuzzParseNotemark(f *testing.F) {
	f.Add("*a* [x](y ![i](j ``code\n\n\\")
	f.Add("~~a\r\n\r\nb~~")
	f.Add("[[[[[[[[")
	f.Fuzz(func(t *testing.T, src string) {
		t.Parallel()
		if node := parser.ParseString(src, parser.SyntaxNotemark); node == nil {
			t.Errorf("no tree for %q", src)
		}
	})
}
