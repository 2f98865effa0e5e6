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

// Package notemark parses a lightweight note-markup dialect into a tree of
// typed nodes: paragraphs, emphasis, strikethrough, code spans, links,
// images, and literal text. Parsing is total: every input string yields
// some well-formed tree, malformed markup degrades to literal text.
//
// Further syntaxes (markdown via goldmark, plain text) are available
// through the parser subpackage.
package notemark

import (
	"notemark/ast"
	"notemark/parser"
)

// Parse parses the given text as notemark and returns the root node of the
// resulting tree. If the document has exactly one top-level item, that
// node is returned directly; otherwise the root is a fragment.
func Parse(src string) ast.Node {
	return parser.ParseString(src, parser.SyntaxNotemark)
}
