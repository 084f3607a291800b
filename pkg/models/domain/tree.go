package domain

type Measure string

const (
	MeasureNEP Measure = "nep"
	MeasureGAA Measure = "gaa"
)

// BudgetType is the budget variant discriminant carried by records.
type BudgetType string

const (
	BudgetTypeNEP BudgetType = "NEP"
	BudgetTypeGAA BudgetType = "GAA"
)

func (t BudgetType) Valid() bool {
	return t == BudgetTypeNEP || t == BudgetTypeGAA
}

func (t BudgetType) Measure() Measure {
	if t == BudgetTypeGAA {
		return MeasureGAA
	}
	return MeasureNEP
}

// Ref is a lookup reference attached to a node, e.g. a funding source's financing source.
type Ref struct {
	Code        string
	Description string
}

// TreeNode is one node of an assembled hierarchy. Internal node totals are the sum of their
// children's totals. Nodes are not modified after assembly.
type TreeNode struct {
	Key        string
	Label      string
	Level      string
	Attributes map[string]string
	References map[string]Optional[Ref]
	Totals     map[Measure]Money
	Comparison *Comparison
	Children   []TreeNode
}

func (n TreeNode) Total(m Measure) Money {
	return n.Totals[m]
}

func (n TreeNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Walk visits the node and its descendants depth first.
func (n TreeNode) Walk(fn func(node TreeNode, depth int)) {
	n.walk(fn, 0)
}

func (n TreeNode) walk(fn func(node TreeNode, depth int), depth int) {
	fn(n, depth)
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// CountLevels returns the number of nodes per level name across a forest.
func CountLevels(forest []TreeNode) map[string]int {
	counts := make(map[string]int)
	for _, root := range forest {
		root.Walk(func(node TreeNode, _ int) {
			counts[node.Level]++
		})
	}
	return counts
}

// Hierarchy is an assembled forest plus per-level metadata counts.
type Hierarchy struct {
	Nodes []TreeNode
	Meta  map[string]int
}
