package trees

import (
	"fmt"
	"os"
	"path/filepath"
)

const DefaultMaxDepth = 64

type Options struct {
	// MaxDepth bounds recursion; folders deeper than it are listed without children.
	MaxDepth int
}

// Materialize lists root recursively, folders pre-order depth-first, children in os.ReadDir order.
// Symlinks are not followed, so a link to a folder shows as a file and cannot form a cycle.
func Materialize(root string, opts Options) (*Node, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	node := &Node{
		Name:   filepath.Base(root),
		Kind:   KindFolder,
		Detail: KindFolder.String(),
	}
	if err := fill(node, root, 1, maxDepth); err != nil {
		return nil, err
	}
	return node, nil
}

func fill(parent *Node, dir string, depth int, maxDepth int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			folder := &Node{
				Name:   name,
				Kind:   KindFolder,
				Detail: KindFolder.String(),
			}
			parent.add(folder)
			if depth < maxDepth {
				if err := fill(folder, filepath.Join(dir, name), depth+1, maxDepth); err != nil {
					return err
				}
			}
			continue
		}
		parent.add(&Node{
			Name:   name,
			Kind:   KindFile,
			Detail: filepath.Ext(name),
		})
	}
	return nil
}

// ResolvePath joins the names from below the tree root down to node onto root.
// node must belong to the tree materialized from root.
func ResolvePath(root string, node *Node) string {
	var names []string
	for cur := node; cur != nil && !cur.IsRoot(); cur = cur.Parent {
		names = append(names, cur.Name)
	}
	parts := make([]string, 0, len(names)+1)
	parts = append(parts, root)
	for i := len(names) - 1; i >= 0; i-- {
		parts = append(parts, names[i])
	}
	return filepath.Join(parts...)
}
