package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orgconsole/internal/models"
)

func dept(id int, name string, children ...models.DepartmentNode) models.DepartmentNode {
	return models.DepartmentNode{
		Department: models.Department{ID: id, DepartmentName: name},
		Children:   children,
	}
}

func TestNewTreeStateExpandsRootsOnly(t *testing.T) {
	tree := []models.DepartmentNode{
		dept(1, "Operations", dept(2, "Assembly", dept(4, "Line A"))),
		dept(3, "Finance"),
	}
	s := NewTreeState(tree)

	assert.True(t, s.IsExpanded(1))
	assert.True(t, s.IsExpanded(3))
	assert.False(t, s.IsExpanded(2))
	assert.False(t, s.IsExpanded(4))
}

func TestToggle(t *testing.T) {
	s := NewTreeState([]models.DepartmentNode{dept(1, "Operations", dept(2, "Assembly"))})

	s.Toggle(2)
	assert.True(t, s.IsExpanded(2))
	s.Toggle(2)
	assert.False(t, s.IsExpanded(2))

	s.Toggle(1)
	assert.False(t, s.IsExpanded(1))
}

func TestExpandAllCollapseAll(t *testing.T) {
	tree := []models.DepartmentNode{dept(1, "Operations", dept(2, "Assembly", dept(4, "Line A")))}
	s := NewTreeState(tree)

	s.ExpandAll()
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}, 4: {}}, s.ExpandedIDs())

	s.CollapseAll()
	assert.Empty(t, s.ExpandedIDs())
}

func TestCount(t *testing.T) {
	tree := []models.DepartmentNode{
		dept(1, "Operations", dept(2, "Assembly", dept(4, "Line A")), dept(5, "Packing")),
		dept(3, "Finance"),
	}
	assert.Equal(t, 5, NewTreeState(tree).Count())
	assert.Equal(t, 0, NewTreeState(nil).Count())
}
