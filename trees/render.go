package trees

import (
	"strings"
	"unicode/utf8"
)

// Render lists the tree below root as two columns, name and type, like the explorer pane.
func Render(root *Node) string {
	type row struct {
		name   string
		detail string
	}
	var rows []row
	width := 0
	root.Walk(func(node *Node, depth int) bool {
		if node == root {
			return true
		}
		name := strings.Repeat("  ", depth-1) + node.Name
		if node.IsFolder() {
			name += "/"
		}
		width = max(width, utf8.RuneCountInString(name))
		rows = append(rows, row{name, node.Detail})
		return true
	})

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(r.name)
		if r.detail != "" {
			b.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(r.name)+2))
			b.WriteString(r.detail)
		}
		b.WriteString("\n")
	}
	return b.String()
}
