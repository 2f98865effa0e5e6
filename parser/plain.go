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

package parser

// plain provides a parser for plain text data.

import (
	"notemark/ast"
	"notemark/input"
)

func init() {
	register(&Info{
		Name:          SyntaxText,
		AltNames:      []string{SyntaxTxt, SyntaxPlain},
		IsASTParser:   false,
		IsTextFormat:  true,
		IsImageFormat: false,
		Parse:         parsePlain,
	})
}

// parsePlain keeps the whole remaining input as one literal text leaf.
// No escape interpretation, no markup.
func parsePlain(inp *input.Input, _ string) ast.Node {
	return &ast.TextNode{Text: inp.Rest()}
}
