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

// notemark provides the parser for the notemark dialect: a single-pass,
// character-by-character recursive-descent scanner with speculative
// matching of inline markup. Malformed markup always degrades to literal
// text, so parsing is total.

import (
	"slices"
	"strings"

	"notemark/ast"
	"notemark/input"
)

func init() {
	register(&Info{
		Name:          SyntaxNotemark,
		AltNames:      []string{SyntaxNmk},
		IsASTParser:   true,
		IsTextFormat:  true,
		IsImageFormat: false,
		Parse:         parseNotemark,
	})
}

func parseNotemark(inp *input.Input, _ string) ast.Node {
	p := nmkParser{inp: inp, breaks: &defaultBreaks}
	return p.parseUntil("")
}

// maxNesting bounds the recursion depth of nested inline markup. Beyond
// the bound the dispatcher declines, so deeper markup stays literal text.
const maxNesting = 99

// breakTable holds the recognized newline sequences, longest first, and
// the blank-line sequences derived from them. It is computed once and not
// mutated thereafter.
type breakTable struct {
	newlines []string
	blanks   []string
}

var defaultBreaks = makeBreakTable("\r\n", "\r", "\n")

// makeBreakTable derives the blank-line table as the cross product of the
// newline sequences. Combinations whose concatenation is itself a single
// newline sequence are skipped: a lone CRLF is one line break, not a
// blank line.
func makeBreakTable(newlines ...string) breakTable {
	bt := breakTable{newlines: newlines}
	for _, first := range newlines {
		for _, second := range newlines {
			if blank := first + second; !slices.Contains(newlines, blank) {
				bt.blanks = append(bt.blanks, blank)
			}
		}
	}
	return bt
}

type nmkParser struct {
	inp    *input.Input
	breaks *breakTable
	depth  int
}

// parseUntil runs the main parse loop up to the given terminator, a
// newline (if the terminator is not empty), or the end of input, and
// returns the collected subtree. The empty terminator parses the whole
// remaining input. A single collected child is returned directly instead
// of a one-element fragment.
func (p *nmkParser) parseUntil(terminator string) ast.Node {
	root := &ast.FragmentNode{}
	var pending strings.Builder
	for !p.inp.IsEOS() {
		// Escapes win over every other check.
		if esc := p.scanText(""); esc != "" {
			pending.WriteString(esc)
			continue
		}
		if p.inp.Matches(p.breaks.blanks...) {
			p.skipNewlines()
			if pending.Len() > 0 || len(root.Children) > 0 {
				p.promoteParagraph(root, &pending)
			}
			continue
		}
		if terminator != "" && (p.inp.Matches(terminator) || p.inp.Matches(p.breaks.newlines...)) {
			break
		}
		save := p.inp.Pos()
		if node, ok := p.dispatch(); ok {
			target := appendTarget(root)
			flushText(target, &pending)
			*target = append(*target, node)
			continue
		}
		p.inp.SetPos(save)
		if ch, ok := p.inp.Current(); ok {
			pending.WriteRune(ch)
			p.inp.Advance(1)
		}
	}
	flushText(appendTarget(root), &pending)
	trimEmptyPara(root)
	return collapse(root)
}

// scanText consumes literal text up to the given terminator or a newline
// and returns it, with backslash escapes resolved: after a backslash the
// next character is taken verbatim, even if it would match the terminator.
// The terminator itself is never consumed. The empty terminator stops at
// the first non-escaped character, so only leading escapes are consumed.
func (p *nmkParser) scanText(terminator string) string {
	var buf strings.Builder
	for {
		ch, ok := p.inp.Current()
		if !ok {
			break
		}
		if ch == '\\' {
			if esc, hasNext := p.inp.Peek(1); hasNext {
				p.inp.Advance(2)
				buf.WriteRune(esc)
				continue
			}
		}
		if terminator == "" || p.inp.Matches(terminator) || p.inp.Matches(p.breaks.newlines...) {
			break
		}
		buf.WriteRune(ch)
		p.inp.Advance(1)
	}
	return buf.String()
}

// promoteParagraph reorganizes the collected siblings on a blank line: all
// children so far are wrapped into one paragraph (unless the last child
// already is one), the pending text is flushed into that paragraph, and a
// fresh paragraph is opened for what follows.
func (p *nmkParser) promoteParagraph(root *ast.FragmentNode, pending *strings.Builder) {
	isPara := false
	if n := len(root.Children); n > 0 {
		_, isPara = root.Children[n-1].(*ast.ParaNode)
	}
	if !isPara {
		root.Children = []ast.Node{&ast.ParaNode{Children: root.Children}}
	}
	para := root.Children[len(root.Children)-1].(*ast.ParaNode)
	flushText(&para.Children, pending)
	root.Children = append(root.Children, &ast.ParaNode{})
}

// skipNewlines consumes all consecutive newline characters.
func (p *nmkParser) skipNewlines() {
	for {
		ch, ok := p.inp.Current()
		if !ok || (ch != '\n' && ch != '\r') {
			return
		}
		p.inp.Advance(1)
	}
}

// appendTarget returns the children list new nodes are appended to: the
// last child of root if it is a paragraph, root itself otherwise.
func appendTarget(root *ast.FragmentNode) *[]ast.Node {
	if n := len(root.Children); n > 0 {
		if para, isPara := root.Children[n-1].(*ast.ParaNode); isPara {
			return &para.Children
		}
	}
	return &root.Children
}

func flushText(target *[]ast.Node, pending *strings.Builder) {
	if pending.Len() > 0 {
		*target = append(*target, &ast.TextNode{Text: pending.String()})
		pending.Reset()
	}
}

func trimEmptyPara(root *ast.FragmentNode) {
	if n := len(root.Children); n > 0 {
		if para, isPara := root.Children[n-1].(*ast.ParaNode); isPara && len(para.Children) == 0 {
			root.Children = root.Children[:n-1]
		}
	}
}

// collapse returns the fragment's sole child instead of a one-element
// fragment.
func collapse(root *ast.FragmentNode) ast.Node {
	if len(root.Children) == 1 {
		return root.Children[0]
	}
	return root
}

// dispatch attempts to parse one inline construct at the current position.
// It reports no match when the input cannot form one; the caller restores
// the cursor position in that case and takes the character as literal text.
func (p *nmkParser) dispatch() (ast.Node, bool) {
	if p.depth >= maxNesting {
		return nil, false
	}
	ch, ok := p.inp.Current()
	if !ok {
		return nil, false
	}
	switch ch {
	case '*':
		return p.parseFormat("**", "*")
	case '_':
		return p.parseFormat("__", "_")
	case '~':
		return p.parseDelete()
	case '`':
		return p.parseLiteral()
	case '!':
		return p.parseImage()
	case '[':
		return p.parseLink()
	}
	return nil, false
}

// parseFormat parses an emphasis run. The run must be closed by the exact
// delimiter that opened it: a single-delimiter run cannot be closed by a
// doubled one.
func (p *nmkParser) parseFormat(double, single string) (ast.Node, bool) {
	opener, ok := p.inp.Expect(double, single)
	if !ok {
		return nil, false
	}
	inner := p.recurse(opener)
	closer, ok := p.inp.Expect(double, single)
	if !ok || closer != opener {
		return nil, false
	}
	kind := ast.FormatEmph
	if opener == double {
		kind = ast.FormatStrong
	}
	return &ast.FormatNode{Kind: kind, Inner: inner}, true
}

// parseDelete parses a strikethrough run. Single-tilde strikethrough is
// not supported.
func (p *nmkParser) parseDelete() (ast.Node, bool) {
	if _, ok := p.inp.Expect("~~"); !ok {
		return nil, false
	}
	inner := p.recurse("~~")
	if _, ok := p.inp.Expect("~~"); !ok {
		return nil, false
	}
	return &ast.FormatNode{Kind: ast.FormatDelete, Inner: inner}, true
}

// parseLiteral parses a code span. Its content is escape-scanned and
// trimmed, never parsed as markup. Triple backticks are not supported and
// stay literal text.
func (p *nmkParser) parseLiteral() (ast.Node, bool) {
	if p.inp.Matches("```") {
		return nil, false
	}
	delim, ok := p.inp.Expect("``", "`")
	if !ok {
		return nil, false
	}
	content := strings.TrimSpace(p.scanText(delim))
	if p.inp.Matches("```") {
		return nil, false
	}
	if _, ok = p.inp.Expect(delim); !ok {
		return nil, false
	}
	return &ast.LiteralNode{Content: content}, true
}

// parseImage parses an image embed. The alternate text is escape-scanned
// plain text.
func (p *nmkParser) parseImage() (ast.Node, bool) {
	p.inp.Advance(1)
	if _, ok := p.inp.Expect("["); !ok {
		return nil, false
	}
	alt := p.scanText("]")
	if _, ok := p.inp.Expect("]("); !ok {
		return nil, false
	}
	src := p.scanText(")")
	if _, ok := p.inp.Expect(")"); !ok {
		return nil, false
	}
	return &ast.ImageNode{Src: src, Alt: alt}, true
}

// parseLink parses a link. The label is parsed recursively and supports
// nested markup.
func (p *nmkParser) parseLink() (ast.Node, bool) {
	p.inp.Advance(1)
	label := p.recurse("]")
	if _, ok := p.inp.Expect("]("); !ok {
		return nil, false
	}
	ref := p.scanText(")")
	if _, ok := p.inp.Expect(")"); !ok {
		return nil, false
	}
	return &ast.LinkNode{Ref: ref, Inner: label}, true
}

func (p *nmkParser) recurse(terminator string) ast.Node {
	p.depth++
	inner := p.parseUntil(terminator)
	p.depth--
	return inner
}
