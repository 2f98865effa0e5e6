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

// cleaner provides functions to clean up a parsed tree.

import "notemark/ast"

// CleanNode normalizes the given tree in place: adjacent text nodes are
// merged, empty text nodes and empty paragraphs are dropped. The notemark
// parser never produces such nodes, but the markdown adapter can.
func CleanNode(node ast.Node) {
	ast.Walk(&cleanVisitor{}, node)
}

type cleanVisitor struct{}

func (cv *cleanVisitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.FragmentNode:
		n.Children = cv.cleanChildren(n.Children)
		return nil
	case *ast.ParaNode:
		n.Children = cv.cleanChildren(n.Children)
		return nil
	}
	return cv
}

// cleanChildren cleans all children first, then compacts the slice, so a
// paragraph emptied by cleaning is dropped by its parent.
func (cv *cleanVisitor) cleanChildren(children []ast.Node) []ast.Node {
	for _, child := range children {
		ast.Walk(cv, child)
	}
	toPos := 0
	for fromPos := range children {
		keep := true
		switch n := children[fromPos].(type) {
		case *ast.TextNode:
			if n.Text == "" {
				keep = false
			} else if toPos > 0 {
				if prev, isText := children[toPos-1].(*ast.TextNode); isText {
					prev.Text += n.Text
					keep = false
				}
			}
		case *ast.ParaNode:
			keep = len(n.Children) > 0
		}
		if keep {
			children[toPos] = children[fromPos]
			toPos++
		}
	}
	for pos := toPos; pos < len(children); pos++ {
		children[pos] = nil // Allow excess nodes to be garbage collected.
	}
	return children[:toPos:toPos]
}
