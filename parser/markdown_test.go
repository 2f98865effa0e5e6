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

	"notemark/ast"
	"notemark/ast/szenc"
	"notemark/parser"
)

func TestMarkdown(t *testing.T) {
	testcases := []struct {
		name string
		src  string
		exp  string
	}{
		{"empty", "", "(FRAGMENT)"},
		{"simple-para", "T1", `(PARA (TEXT "T1"))`},
		{"simple-list",
			"*   T1\n*   T2",
			`(FRAGMENT (PARA (TEXT "T1")) (PARA (TEXT "T2")))`},
		{"heading-becomes-para", "# H", `(PARA (TEXT "H"))`},
		{"emphasis", "a *b*", `(PARA (TEXT "a ") (EMPH (TEXT "b")))`},
		{"strong", "**b**", `(PARA (STRONG (TEXT "b")))`},
		{"code-span", "`c`", `(PARA (CODE "c"))`},
		{"link", "[x](y)", `(PARA (LINK "y" (TEXT "x")))`},
		{"image", "![x](y)", `(PARA (IMAGE "y" "x"))`},
		{"fenced-code", "```\ncode\n```", `(CODE "code")`},
		{"blockquote-flattened", "> q", `(PARA (TEXT "q"))`},
		{"thematic-break-dropped", "---", "(FRAGMENT)"},
		{"escaped-punctuation", `\*a\*`, `(PARA (TEXT "*a*"))`},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			node := parser.ParseString(tc.src, parser.SyntaxMD)
			if got := szenc.GetSz(node).String(); got != tc.exp {
				t.Errorf("\nExp: %s\nGot: %s", tc.exp, got)
			}
		})
	}
}

// A soft line break becomes a newline inside the merged text node.
func TestMarkdownSoftBreak(t *testing.T) {
	node := parser.ParseString("a\nb", parser.SyntaxMarkdown)
	exp := &ast.ParaNode{Children: []ast.Node{&ast.TextNode{Text: "a\nb"}}}
	got, want := szenc.GetSz(node).String(), szenc.GetSz(exp).String()
	if got != want {
		t.Errorf("\nExp: %s\nGot: %s", want, got)
	}
}
