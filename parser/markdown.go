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

// markdown provides a parser for markdown, backed by goldmark. The
// notemark node set is much smaller than markdown's, so block structure
// is flattened: headings and list items become paragraphs, code blocks
// become literals, block quotes dissolve into their content.

import (
	"bytes"
	"fmt"
	"strings"

	gm "github.com/yuin/goldmark"
	gmAst "github.com/yuin/goldmark/ast"
	gmText "github.com/yuin/goldmark/text"

	"notemark/ast"
	"notemark/input"
)

func init() {
	register(&Info{
		Name:          SyntaxMarkdown,
		AltNames:      []string{SyntaxMD},
		IsASTParser:   true,
		IsTextFormat:  true,
		IsImageFormat: false,
		Parse:         parseMarkdown,
	})
}

func parseMarkdown(inp *input.Input, _ string) ast.Node {
	source := []byte(inp.Rest())
	parser := gm.DefaultParser()
	node := parser.Parse(gmText.NewReader(source))
	p := mdP{source: source}
	return p.acceptBlockChildren(node)
}

type mdP struct {
	source []byte
}

func (p *mdP) acceptBlockChildren(docNode gmAst.Node) ast.Node {
	if docNode.Type() != gmAst.TypeDocument {
		panic(fmt.Sprintf("Expected document, but got node type %v", docNode.Type()))
	}
	root := &ast.FragmentNode{}
	for child := docNode.FirstChild(); child != nil; child = child.NextSibling() {
		if block := p.acceptBlock(child); block != nil {
			root.Children = append(root.Children, block)
		}
	}
	return collapse(root)
}

func (p *mdP) acceptBlock(node gmAst.Node) ast.Node {
	if node.Type() != gmAst.TypeBlock {
		panic(fmt.Sprintf("Expected block node, but got node type %v", node.Type()))
	}
	switch n := node.(type) {
	case *gmAst.Paragraph:
		return p.acceptParagraph(n)
	case *gmAst.TextBlock:
		return p.acceptTextBlock(n)
	case *gmAst.Heading:
		return &ast.ParaNode{Children: p.acceptInlineChildren(n)}
	case *gmAst.ThematicBreak:
		return nil
	case *gmAst.CodeBlock:
		return &ast.LiteralNode{Content: string(p.acceptRawText(n))}
	case *gmAst.FencedCodeBlock:
		return &ast.LiteralNode{Content: string(p.acceptRawText(n))}
	case *gmAst.Blockquote:
		return p.acceptContainer(n)
	case *gmAst.List:
		return p.acceptList(n)
	case *gmAst.HTMLBlock:
		return p.acceptHTMLBlock(n)
	}
	panic(fmt.Sprintf("Unhandled block node of kind %v", node.Kind()))
}

func (p *mdP) acceptParagraph(node *gmAst.Paragraph) ast.Node {
	if children := p.acceptInlineChildren(node); len(children) > 0 {
		return &ast.ParaNode{Children: children}
	}
	return nil
}

func (p *mdP) acceptTextBlock(node *gmAst.TextBlock) ast.Node {
	if children := p.acceptInlineChildren(node); len(children) > 0 {
		return &ast.ParaNode{Children: children}
	}
	return nil
}

func (p *mdP) acceptList(node *gmAst.List) ast.Node {
	root := &ast.FragmentNode{}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*gmAst.ListItem)
		if !ok {
			panic(fmt.Sprintf("Expected list item node, but got %v", child.Kind()))
		}
		if block := p.acceptContainer(item); block != nil {
			root.Children = append(root.Children, block)
		}
	}
	return collapse(root)
}

func (p *mdP) acceptContainer(node gmAst.Node) ast.Node {
	root := &ast.FragmentNode{}
	for elem := node.FirstChild(); elem != nil; elem = elem.NextSibling() {
		if block := p.acceptBlock(elem); block != nil {
			root.Children = append(root.Children, block)
		}
	}
	return collapse(root)
}

func (p *mdP) acceptRawText(node gmAst.Node) []byte {
	lines := node.Lines()
	result := make([]byte, 0, 512)
	for i := range lines.Len() {
		s := lines.At(i)
		line := s.Value(p.source)
		if l := len(line); l > 0 {
			if l > 1 && line[l-2] == '\r' && line[l-1] == '\n' {
				line = line[0 : l-2]
			} else if line[l-1] == '\n' || line[l-1] == '\r' {
				line = line[0 : l-1]
			}
		}
		if i > 0 {
			result = append(result, '\n')
		}
		result = append(result, line...)
	}
	return result
}

func (p *mdP) acceptHTMLBlock(node *gmAst.HTMLBlock) ast.Node {
	content := p.acceptRawText(node)
	if node.HasClosure() {
		closure := node.ClosureLine.Value(p.source)
		if l := len(closure); l > 1 && closure[l-1] == '\n' {
			closure = closure[:l-1]
		}
		if len(content) > 1 {
			content = append(content, '\n')
		}
		content = append(content, closure...)
	}
	return &ast.LiteralNode{Content: string(content)}
}

func (p *mdP) acceptInlineChildren(node gmAst.Node) []ast.Node {
	var result []ast.Node
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		result = append(result, p.acceptInline(child)...)
	}
	return result
}

// acceptInlines collects the inline children into the single-subtree shape
// used by formats and link labels.
func (p *mdP) acceptInlines(node gmAst.Node) ast.Node {
	return collapse(&ast.FragmentNode{Children: p.acceptInlineChildren(node)})
}

func (p *mdP) acceptInline(node gmAst.Node) []ast.Node {
	if node.Type() != gmAst.TypeInline {
		panic(fmt.Sprintf("Expected inline node, but got %v", node.Type()))
	}
	switch n := node.(type) {
	case *gmAst.Text:
		return p.acceptText(n)
	case *gmAst.CodeSpan:
		return []ast.Node{p.acceptCodeSpan(n)}
	case *gmAst.Emphasis:
		return []ast.Node{p.acceptEmphasis(n)}
	case *gmAst.Link:
		return []ast.Node{p.acceptLink(n)}
	case *gmAst.Image:
		return []ast.Node{p.acceptImage(n)}
	case *gmAst.AutoLink:
		return []ast.Node{p.acceptAutoLink(n)}
	case *gmAst.RawHTML:
		return []ast.Node{p.acceptRawHTML(n)}
	}
	panic(fmt.Sprintf("Unhandled inline node %v", node.Kind()))
}

func (p *mdP) acceptText(node *gmAst.Text) []ast.Node {
	segment := node.Segment
	text := segment.Value(p.source)
	if text == nil {
		return nil
	}
	if node.IsRaw() {
		return []ast.Node{&ast.TextNode{Text: string(text)}}
	}
	in := &ast.TextNode{Text: cleanText(text, true)}
	if node.HardLineBreak() || node.SoftLineBreak() {
		return []ast.Node{in, &ast.TextNode{Text: "\n"}}
	}
	return []ast.Node{in}
}

var ignoreAfterBS = map[byte]struct{}{
	'!': {}, '"': {}, '#': {}, '$': {}, '%': {}, '&': {}, '\'': {}, '(': {},
	')': {}, '*': {}, '+': {}, ',': {}, '-': {}, '.': {}, '/': {}, ':': {},
	';': {}, '<': {}, '=': {}, '>': {}, '?': {}, '@': {}, '[': {}, '\\': {},
	']': {}, '^': {}, '_': {}, '`': {}, '{': {}, '|': {}, '}': {}, '~': {},
}

// cleanText removes backslashes before markdown punctuation.
func cleanText(text []byte, cleanBS bool) string {
	if !cleanBS {
		return string(text)
	}
	lastPos := 0
	var sb strings.Builder
	for pos, ch := range text {
		if pos < lastPos {
			continue
		}
		if ch == '\\' && pos < len(text)-1 {
			if _, found := ignoreAfterBS[text[pos+1]]; found {
				sb.Write(text[lastPos:pos])
				sb.WriteByte(text[pos+1])
				lastPos = pos + 2
			}
		}
	}
	if lastPos < len(text) {
		sb.Write(text[lastPos:])
	}
	return sb.String()
}

func (p *mdP) acceptCodeSpan(node *gmAst.CodeSpan) ast.Node {
	var segBuf strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		segment := c.(*gmAst.Text).Segment
		segBuf.Write(segment.Value(p.source))
	}
	content := segBuf.String()

	// Newlines inside a code span become spaces.
	if len(content) > 0 {
		lastPos := 0
		var buf strings.Builder
		for pos, ch := range content {
			if ch == '\n' {
				buf.WriteString(content[lastPos:pos])
				if pos < len(content)-1 {
					buf.WriteByte(' ')
				}
				lastPos = pos + 1
			}
		}
		buf.WriteString(content[lastPos:])
		content = buf.String()
	}
	return &ast.LiteralNode{Content: content}
}

func (p *mdP) acceptEmphasis(node *gmAst.Emphasis) ast.Node {
	kind := ast.FormatEmph
	if node.Level == 2 {
		kind = ast.FormatStrong
	}
	return &ast.FormatNode{Kind: kind, Inner: p.acceptInlines(node)}
}

func (p *mdP) acceptLink(node *gmAst.Link) ast.Node {
	return &ast.LinkNode{
		Ref:   cleanText(node.Destination, true),
		Inner: p.acceptInlines(node),
	}
}

func (p *mdP) acceptImage(node *gmAst.Image) ast.Node {
	return &ast.ImageNode{
		Src: cleanText(node.Destination, true),
		Alt: p.plainText(node),
	}
}

// plainText flattens the inline content of a node into its raw text. Used
// for image alternate text, which is plain by the data model.
func (p *mdP) plainText(node gmAst.Node) string {
	var sb strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if t, isText := c.(*gmAst.Text); isText {
			sb.Write(t.Segment.Value(p.source))
			continue
		}
		sb.WriteString(p.plainText(c))
	}
	return sb.String()
}

func (p *mdP) acceptAutoLink(node *gmAst.AutoLink) ast.Node {
	u := node.URL(p.source)
	if node.AutoLinkType == gmAst.AutoLinkEmail &&
		!bytes.HasPrefix(bytes.ToLower(u), []byte("mailto:")) {
		u = append([]byte("mailto:"), u...)
	}
	ref := cleanText(u, false)
	return &ast.LinkNode{Ref: ref, Inner: &ast.TextNode{Text: ref}}
}

func (p *mdP) acceptRawHTML(node *gmAst.RawHTML) ast.Node {
	segs := make([][]byte, 0, node.Segments.Len())
	for i := range node.Segments.Len() {
		segment := node.Segments.At(i)
		segs = append(segs, segment.Value(p.source))
	}
	return &ast.LiteralNode{Content: string(bytes.Join(segs, nil))}
}
