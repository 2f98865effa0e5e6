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

package ast

// Visitor is a visitor for walking the tree.
type Visitor interface {
	Visit(node Node) Visitor
}

// Walk traverses the tree depth-first. It calls v.Visit(node) for the given
// node and, if the returned visitor is not nil, continues with the node's
// children.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	switch n := node.(type) {
	case *FragmentNode:
		walkChildren(v, n.Children)
	case *ParaNode:
		walkChildren(v, n.Children)
	case *FormatNode:
		if n.Inner != nil {
			Walk(v, n.Inner)
		}
	case *LinkNode:
		if n.Inner != nil {
			Walk(v, n.Inner)
		}
	}
}

func walkChildren(v Visitor, children []Node) {
	for _, child := range children {
		Walk(v, child)
	}
}
