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

// Package szenc transforms a notemark tree into its sz representation, a
// symbolic expression that prints in a stable, comparable form.
package szenc

import (
	"t73f.de/r/sx"

	"notemark/ast"
)

// Symbols of the sz representation.
var (
	SymFragment = sx.MakeSymbol("FRAGMENT")
	SymPara     = sx.MakeSymbol("PARA")
	SymText     = sx.MakeSymbol("TEXT")
	SymEmph     = sx.MakeSymbol("EMPH")
	SymStrong   = sx.MakeSymbol("STRONG")
	SymDelete   = sx.MakeSymbol("DELETE")
	SymCode     = sx.MakeSymbol("CODE")
	SymLink     = sx.MakeSymbol("LINK")
	SymImage    = sx.MakeSymbol("IMAGE")
)

// GetSz transforms the given node into a sz list.
func GetSz(node ast.Node) *sx.Pair {
	switch n := node.(type) {
	case *ast.FragmentNode:
		return getSzList(SymFragment, n.Children)
	case *ast.ParaNode:
		return getSzList(SymPara, n.Children)
	case *ast.TextNode:
		return sx.Nil().Cons(sx.MakeString(n.Text)).Cons(SymText)
	case *ast.FormatNode:
		return sx.Nil().Cons(GetSz(n.Inner)).Cons(getFormatSym(n.Kind))
	case *ast.LiteralNode:
		return sx.Nil().Cons(sx.MakeString(n.Content)).Cons(SymCode)
	case *ast.LinkNode:
		return sx.Nil().Cons(GetSz(n.Inner)).Cons(sx.MakeString(n.Ref)).Cons(SymLink)
	case *ast.ImageNode:
		return sx.Nil().Cons(sx.MakeString(n.Alt)).Cons(sx.MakeString(n.Src)).Cons(SymImage)
	}
	return sx.Nil()
}

func getSzList(sym *sx.Symbol, children []ast.Node) *sx.Pair {
	var lb sx.ListBuilder
	lb.Add(sym)
	for _, child := range children {
		lb.Add(GetSz(child))
	}
	return lb.List()
}

func getFormatSym(kind ast.FormatKind) *sx.Symbol {
	switch kind {
	case ast.FormatStrong:
		return SymStrong
	case ast.FormatDelete:
		return SymDelete
	}
	return SymEmph
}
