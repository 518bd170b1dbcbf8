package search

import (
	"strings"

	"github.com/xlab/treeprint"
)

// Node is one path component of the pruned result tree. Leaves carry the
// Match they came from; interior nodes are the directories leading to
// matches.
type Node struct {
	Name     string
	Match    *Match
	Children []*Node

	index map[string]*Node
}

// BuildTree folds matches into a tree of their relative paths, keeping
// only directories that lead to a match. Children keep the order in which
// matches were found.
func BuildTree(matches []Match) *Node {
	root := &Node{}
	for i := range matches {
		node := root
		for _, part := range strings.Split(matches[i].Rel, "/") {
			node = node.child(part)
		}
		node.Match = &matches[i]
	}
	return root
}

func (n *Node) child(name string) *Node {
	if n.index == nil {
		n.index = make(map[string]*Node)
	}
	if c, ok := n.index[name]; ok {
		return c
	}
	c := &Node{Name: name}
	n.index[name] = c
	n.Children = append(n.Children, c)
	return c
}

// Render draws the tree under rootLabel. label formats each matched file;
// directories are shown by name with a trailing slash.
func (n *Node) Render(rootLabel string, label func(Match) string) string {
	tree := treeprint.NewWithRoot(rootLabel)
	n.addTo(tree, label)
	return tree.String()
}

func (n *Node) addTo(tree treeprint.Tree, label func(Match) string) {
	for _, c := range n.Children {
		if c.Match != nil && len(c.Children) == 0 {
			tree.AddNode(label(*c.Match))
			continue
		}
		c.addTo(tree.AddBranch(c.Name+"/"), label)
	}
}
