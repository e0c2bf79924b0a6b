package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 40
)

// treeNode is a node in the rendered file tree.
type treeNode struct {
	name        string
	description string
	isDir       bool
	children    []*treeNode
}

func (n *treeNode) child(name string) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	c := &treeNode{name: name}
	n.children = append(n.children, c)
	return c
}

// RenderFileTree renders the files of a scaffolded plugin as a tree rooted at root.
// files maps slash-separated relative paths to optional descriptions. A path ending
// in "/" is a directory.
func RenderFileTree(root string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	top := &treeNode{name: root, isDir: true}
	for path, desc := range files {
		path = filepath.ToSlash(path)
		isDir := strings.HasSuffix(path, "/")
		parts := strings.Split(strings.Trim(path, "/"), "/")

		current := top
		for i, part := range parts {
			if part == "" {
				continue
			}
			current = current.child(part)
			if i < len(parts)-1 || isDir {
				current.isDir = true
			}
		}
		if current != top {
			current.description = desc
		}
	}

	sortTree(top)

	var sb strings.Builder
	sb.WriteString(GetStyles().Bold.Render(root + "/"))
	sb.WriteString("\n")
	for i, c := range top.children {
		renderNode(&sb, c, "", i == len(top.children)-1)
	}
	return sb.String()
}

// sortTree orders children directories first, then alphabetically.
func sortTree(node *treeNode) {
	sort.Slice(node.children, func(i, j int) bool {
		a, b := node.children[i], node.children[j]
		if a.isDir != b.isDir {
			return a.isDir
		}
		return a.name < b.name
	})

	for _, c := range node.children {
		sortTree(c)
	}
}

func renderNode(sb *strings.Builder, node *treeNode, prefix string, isLast bool) {
	connector := treeEdge
	childPrefix := prefix + treeVert
	if isLast {
		connector = treeLast
		childPrefix = prefix + treeSpace
	}

	name := node.name
	if node.isDir {
		name += "/"
	}
	line := prefix + connector + name

	if node.description != "" {
		padding := descriptionColumn - len([]rune(line))
		if padding < 2 {
			padding = 2
		}
		line += strings.Repeat(" ", padding) + GetStyles().Muted.Render(node.description)
	}

	sb.WriteString(line)
	sb.WriteString("\n")

	for i, c := range node.children {
		renderNode(sb, c, childPrefix, i == len(node.children)-1)
	}
}
