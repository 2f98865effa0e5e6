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

// Package parser provides a generic interface to a range of different parsers.
package parser

import (
	"fmt"
	"log"

	"notemark/ast"
	"notemark/input"
)

// Names of the syntaxes implemented by this module.
const (
	SyntaxNotemark = "notemark"
	SyntaxNmk      = "nmk"
	SyntaxMarkdown = "markdown"
	SyntaxMD       = "md"
	SyntaxText     = "text"
	SyntaxTxt      = "txt"
	SyntaxPlain    = "plain"
	SyntaxNone     = "none"
)

// Info describes a single parser.
//
// Before Parse() is called, ensure the input cursor to be valid.
type Info struct {
	Name          string
	AltNames      []string
	IsASTParser   bool
	IsTextFormat  bool
	IsImageFormat bool
	Parse         func(*input.Input, string) ast.Node
}

var registry = map[string]*Info{}

// register the parser (info) for later retrieval.
func register(pi *Info) {
	if _, ok := registry[pi.Name]; ok {
		panic(fmt.Sprintf("Parser %q already registered", pi.Name))
	}
	registry[pi.Name] = pi
	for _, alt := range pi.AltNames {
		if _, ok := registry[alt]; ok {
			panic(fmt.Sprintf("Parser %q already registered", alt))
		}
		registry[alt] = pi
	}
}

// GetSyntaxes returns a list of syntaxes implemented by all registered parsers.
func GetSyntaxes() []string {
	result := make([]string, 0, len(registry))
	for syntax := range registry {
		result = append(result, syntax)
	}
	return result
}

// Get the parser (info) by name. If name not found, use the plain text parser.
func Get(name string) *Info {
	if pi := registry[name]; pi != nil {
		return pi
	}
	if pi := registry[SyntaxText]; pi != nil {
		return pi
	}
	panic(fmt.Sprintf("No parser for %q found", name))
}

// IsASTParser returns whether the given syntax parses text into an AST or not.
func IsASTParser(syntax string) bool {
	pi, ok := registry[syntax]
	if !ok {
		return false
	}
	return pi.IsASTParser
}

// IsImageFormat returns whether the given syntax is known to be an image format.
func IsImageFormat(syntax string) bool {
	pi, ok := registry[syntax]
	if !ok {
		return false
	}
	return pi.IsImageFormat
}

// Parse parses some input with the given syntax and returns the tree.
// It is total: every input yields a non-nil node.
func Parse(inp *input.Input, syntax string) ast.Node {
	pi := Get(syntax)
	node := pi.Parse(inp, syntax)
	if node == nil {
		log.Printf("parser %q produced no tree", syntax)
		return &ast.FragmentNode{}
	}
	if pi.IsASTParser {
		CleanNode(node)
	}
	return node
}

// ParseString parses the given string with the given syntax.
func ParseString(src, syntax string) ast.Node {
	return Parse(input.NewInput(src), syntax)
}
