package hierarchy

import "orgconsole/internal/models"

// TreeState tracks which nodes of a department hierarchy are expanded in
// the read-only viewer.
type TreeState struct {
	expanded map[int]struct{}
	tree     []models.DepartmentNode
}

// NewTreeState starts from a fetched tree with every depth-0 node expanded
// and everything deeper collapsed.
func NewTreeState(tree []models.DepartmentNode) *TreeState {
	s := &TreeState{
		expanded: make(map[int]struct{}, len(tree)),
		tree:     tree,
	}
	for _, node := range tree {
		s.expanded[node.ID] = struct{}{}
	}
	return s
}

// IsExpanded reports whether a node's children are shown.
func (s *TreeState) IsExpanded(id int) bool {
	_, ok := s.expanded[id]
	return ok
}

// Toggle flips one node's expansion.
func (s *TreeState) Toggle(id int) {
	if _, ok := s.expanded[id]; ok {
		delete(s.expanded, id)
		return
	}
	s.expanded[id] = struct{}{}
}

// ExpandAll walks the whole tree and expands every node.
func (s *TreeState) ExpandAll() {
	s.expanded = map[int]struct{}{}
	var walk func(nodes []models.DepartmentNode)
	walk = func(nodes []models.DepartmentNode) {
		for _, node := range nodes {
			s.expanded[node.ID] = struct{}{}
			walk(node.Children)
		}
	}
	walk(s.tree)
}

// CollapseAll empties the expanded set.
func (s *TreeState) CollapseAll() {
	s.expanded = map[int]struct{}{}
}

// ExpandedIDs returns the current set, mainly for tests and rendering.
func (s *TreeState) ExpandedIDs() map[int]struct{} {
	out := make(map[int]struct{}, len(s.expanded))
	for id := range s.expanded {
		out[id] = struct{}{}
	}
	return out
}

// Count returns the number of nodes in the tree, all depths included.
func (s *TreeState) Count() int {
	var walk func(nodes []models.DepartmentNode) int
	walk = func(nodes []models.DepartmentNode) int {
		n := len(nodes)
		for _, node := range nodes {
			n += walk(node.Children)
		}
		return n
	}
	return walk(s.tree)
}
