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

// none provides a parser that parses nothing.

import (
	"notemark/ast"
	"notemark/input"
)

func init() {
	register(&Info{
		Name:          SyntaxNone,
		AltNames:      nil,
		IsASTParser:   false,
		IsTextFormat:  false,
		IsImageFormat: false,
		Parse:         parseNone,
	})
}

func parseNone(*input.Input, string) ast.Node {
	return &ast.FragmentNode{}
}
