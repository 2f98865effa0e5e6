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

	"t73f.de/r/zero/set"

	"notemark/ast"
	"notemark/parser"
)

func TestParserType(t *testing.T) {
	syntaxSet := set.New(parser.GetSyntaxes()...)
	testCases := []struct {
		syntax string
		ast    bool
		image  bool
	}{
		{parser.SyntaxNotemark, true, false},
		{parser.SyntaxNmk, true, false},
		{parser.SyntaxMarkdown, true, false},
		{parser.SyntaxMD, true, false},
		{parser.SyntaxText, false, false},
		{parser.SyntaxTxt, false, false},
		{parser.SyntaxPlain, false, false},
		{parser.SyntaxNone, false, false},
	}
	for _, tc := range testCases {
		syntaxSet.Remove(tc.syntax)
		if got := parser.IsASTParser(tc.syntax); got != tc.ast {
			t.Errorf("Syntax %q is AST: %v, but got %v", tc.syntax, tc.ast, got)
		}
		if got := parser.IsImageFormat(tc.syntax); got != tc.image {
			t.Errorf("Syntax %q is image: %v, but got %v", tc.syntax, tc.image, got)
		}
	}
	for syntax := range syntaxSet.Values() {
		t.Errorf("Forgot to test syntax %q", syntax)
	}
}

func TestGetFallback(t *testing.T) {
	pi := parser.Get("no-such-syntax")
	if pi == nil {
		t.Fatal("expected fallback parser")
	}
	if pi.Name != parser.SyntaxText {
		t.Errorf("expected fallback to %q, got %q", parser.SyntaxText, pi.Name)
	}
}

func TestParsePlain(t *testing.T) {
	node := parser.ParseString("*no* markup `here`", parser.SyntaxText)
	tn, isText := node.(*ast.TextNode)
	if !isText {
		t.Fatalf("expected text node, got %T", node)
	}
	if tn.Text != "*no* markup `here`" {
		t.Errorf("plain text was altered: %q", tn.Text)
	}
}

func TestParseNone(t *testing.T) {
	node := parser.ParseString("*a*", parser.SyntaxNone)
	fn, isFragment := node.(*ast.FragmentNode)
	if !isFragment {
		t.Fatalf("expected fragment node, got %T", node)
	}
	if len(fn.Children) != 0 {
		t.Errorf("expected empty fragment, got %d children", len(fn.Children))
	}
}
