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

// Package ast provides the abstract syntax tree of parsed notemark text.
package ast

// Node is the common interface of all tree nodes.
//
// A tree is built once, bottom-up, and is not mutated after parsing has
// returned it.
type Node interface {
	node()
}

// FragmentNode groups an ordered sequence of sibling nodes. It is the
// top-level container when a document has zero or more than one top-level
// item, and the container for multi-child subtrees inside formats and
// link labels.
type FragmentNode struct {
	Children []Node
}

// ParaNode is a paragraph, introduced lazily on the first blank-line break.
// A paragraph never contains another paragraph of the same nesting level.
type ParaNode struct {
	Children []Node
}

// TextNode is a leaf of literal text. Escape sequences are already resolved.
type TextNode struct {
	Text string
}

// FormatKind specifies the format of a FormatNode.
type FormatKind int

// Values for FormatKind.
const (
	_            FormatKind = iota
	FormatEmph              // emphasized text (italic)
	FormatStrong            // strongly emphasized text (bold)
	FormatDelete            // deleted text (strikethrough)
)

// FormatNode gives exactly one subtree a format. The subtree is a
// FragmentNode if the formatted content has more than one child.
type FormatNode struct {
	Kind  FormatKind
	Inner Node
}

// LiteralNode is a leaf of code-like text. Its content was escape-scanned
// but never parsed as markup.
type LiteralNode struct {
	Content string
}

// LinkNode references external material and holds exactly one label subtree.
type LinkNode struct {
	Ref   string
	Inner Node
}

// ImageNode embeds an image. The alternate text is plain, not a subtree.
type ImageNode struct {
	Src string
	Alt string
}

func (*FragmentNode) node() {}
func (*ParaNode) node()     {}
func (*TextNode) node()     {}
func (*FormatNode) node()   {}
func (*LiteralNode) node()  {}
func (*LinkNode) node()     {}
func (*ImageNode) node()    {}
