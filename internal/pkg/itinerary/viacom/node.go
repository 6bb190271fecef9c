package viacom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

type nodeKind int

const (
	elementNode nodeKind = iota
	textNode
)

// node is one element or character-data node of a parsed document.
type node struct {
	kind     nodeKind
	name     string
	attrs    []xml.Attr
	text     string
	children []*node
}

// parseTree reads the whole document into a node tree rooted at a synthetic element.
func parseTree(reader io.Reader) (*node, error) {
	root := &node{kind: elementNode}
	stack := []*node{root}

	d := xml.NewDecoder(reader)
	d.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decode token: %w", err)
		}

		parent := stack[len(stack)-1]

		switch ty := tok.(type) {
		case xml.StartElement:
			child := &node{
				kind:  elementNode,
				name:  ty.Name.Local,
				attrs: ty.Copy().Attr,
			}
			parent.children = append(parent.children, child)
			stack = append(stack, child)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			parent.children = append(parent.children, &node{kind: textNode, text: string(ty)})
		default:
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("decode token: %w", io.ErrUnexpectedEOF)
	}

	return root, nil
}

// elements returns the element children of n, dropping text nodes.
func (n *node) elements() []*node {
	result := make([]*node, 0, len(n.children))
	for _, child := range n.children {
		if child.kind == elementNode {
			result = append(result, child)
		}
	}

	return result
}

// child returns the first element child named name, or nil.
func (n *node) child(name string) *node {
	for _, child := range n.elements() {
		if child.name == name {
			return child
		}
	}

	return nil
}

// find returns the first element named name below n in document order, or nil.
func (n *node) find(name string) *node {
	for _, child := range n.elements() {
		if child.name == name {
			return child
		}

		if found := child.find(name); found != nil {
			return found
		}
	}

	return nil
}

// findAll returns every element named name below n in document order.
// Matches are not searched for nested matches.
func (n *node) findAll(name string) []*node {
	var result []*node
	for _, child := range n.elements() {
		if child.name == name {
			result = append(result, child)
			continue
		}

		result = append(result, child.findAll(name)...)
	}

	return result
}

func (n *node) attr(name string) (string, bool) {
	for _, attr := range n.attrs {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}

	return "", false
}

// textContent returns the trimmed character data of n and its descendants.
func (n *node) textContent() string {
	var sb strings.Builder
	n.writeText(&sb)

	return strings.TrimSpace(sb.String())
}

func (n *node) writeText(sb *strings.Builder) {
	for _, child := range n.children {
		if child.kind == textNode {
			sb.WriteString(child.text)
			continue
		}

		child.writeText(sb)
	}
}
