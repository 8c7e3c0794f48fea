// Package trees projects a directory into a display tree and maps nodes back to paths.
package trees

import (
	"path/filepath"
	"strings"
)

type Kind int

const (
	KindFolder Kind = iota + 1
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindFolder:
		return "Folder"
	case KindFile:
		return "File"
	}
	return "Unknown"
}

type Node struct {
	Name string
	Kind Kind
	// Detail is "Folder" for folders and the extension for files, empty when the name has none.
	Detail   string
	Children []*Node
	Parent   *Node
}

func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

func (n *Node) IsFolder() bool {
	return n.Kind == KindFolder
}

func (n *Node) add(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Walk visits n and its descendants pre-order with their depth. Returning false skips a node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Find returns the node at a slash or OS separated path relative to n.
func (n *Node) Find(rel string) *Node {
	rel = filepath.ToSlash(filepath.Clean(rel))
	if rel == "." || rel == "" {
		return n
	}
	cur := n
	for _, name := range strings.Split(rel, "/") {
		var next *Node
		for _, child := range cur.Children {
			if child.Name == name {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// Contains reports whether node is reachable from the tree rooted at n.
func (n *Node) Contains(node *Node) bool {
	for cur := node; cur != nil; cur = cur.Parent {
		if cur == n {
			return true
		}
	}
	return false
}

func (n *Node) Files() (ret []*Node) {
	n.Walk(func(node *Node, _ int) bool {
		if node.Kind == KindFile {
			ret = append(ret, node)
		}
		return true
	})
	return
}
