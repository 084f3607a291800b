package grouping

import (
	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/models/store"
)

type Mode int

const (
	// Strict drops rows with an empty key at any level.
	Strict Mode = iota
	// Partial keeps the non-empty key prefix of a row as structure only.
	// Measures are accumulated only by rows that reach the deepest level.
	Partial
)

// Reference is an optional lookup attached to each node of a level. It is absent
// when its code field is empty.
type Reference struct {
	Name             string
	CodeField        string
	DescriptionField string
}

type Level struct {
	Name       string
	KeyField   string
	LabelField string
	// Attributes maps attribute names to row fields.
	Attributes map[string]string
	References []Reference
}

// MeasureSelector sums Field into Measure for rows matching Where.
// A nil Where matches every row.
type MeasureSelector struct {
	Measure domain.Measure
	Field   string
	Where   func(store.Row) bool
}

// Comparison annotates every node with Compare(totals[Base], totals[Comparand]).
type Comparison struct {
	Base      domain.Measure
	Comparand domain.Measure
}

type Spec struct {
	Levels   []Level
	Measures []MeasureSelector
	Mode     Mode
	Compare  *Comparison
}

// DualMeasures reads NEP and GAA amounts from two columns of the same row.
func DualMeasures(nepField, gaaField string) []MeasureSelector {
	return []MeasureSelector{
		{Measure: domain.MeasureNEP, Field: nepField},
		{Measure: domain.MeasureGAA, Field: gaaField},
	}
}

// DiscriminatedMeasures reads one amount column and routes it to NEP or GAA by
// the row's budget type.
func DiscriminatedMeasures(typeField, amountField string) []MeasureSelector {
	return []MeasureSelector{
		{Measure: domain.MeasureNEP, Field: amountField, Where: BudgetTypeIs(typeField, domain.BudgetTypeNEP)},
		{Measure: domain.MeasureGAA, Field: amountField, Where: BudgetTypeIs(typeField, domain.BudgetTypeGAA)},
	}
}

func BudgetTypeIs(field string, t domain.BudgetType) func(store.Row) bool {
	return func(row store.Row) bool {
		return domain.BudgetType(row.String(field)) == t
	}
}

var NEPvsGAA = &Comparison{Base: domain.MeasureNEP, Comparand: domain.MeasureGAA}

type node struct {
	key        string
	label      string
	level      *Level
	attributes map[string]string
	references map[string]domain.Optional[domain.Ref]
	totals     map[domain.Measure]domain.Money
	children   *OrderedMap[string, *node]
}

func newNode(level *Level, key string, row store.Row) *node {
	n := &node{
		key:      key,
		label:    row.String(level.LabelField),
		level:    level,
		totals:   make(map[domain.Measure]domain.Money),
		children: NewOrderedMap[string, *node](),
	}
	if len(level.Attributes) > 0 {
		n.attributes = make(map[string]string, len(level.Attributes))
		for name, field := range level.Attributes {
			n.attributes[name] = row.String(field)
		}
	}
	if len(level.References) > 0 {
		n.references = make(map[string]domain.Optional[domain.Ref], len(level.References))
		for _, ref := range level.References {
			code := row.String(ref.CodeField)
			if code == "" {
				n.references[ref.Name] = domain.None[domain.Ref]()
				continue
			}
			n.references[ref.Name] = domain.Some(domain.Ref{
				Code:        code,
				Description: row.String(ref.DescriptionField),
			})
		}
	}
	return n
}

// Group builds an ordered forest from flat rows in a single pass. Siblings keep the
// order in which their keys were first seen. Leaf totals are summed from rows, then
// every internal node's totals are recomputed from its children.
func Group(rows []store.Row, spec Spec) []domain.TreeNode {
	if len(spec.Levels) == 0 {
		return nil
	}

	roots := NewOrderedMap[string, *node]()
	keys := make([]string, len(spec.Levels))

	for _, row := range rows {
		depth := 0
		for i := range spec.Levels {
			keys[i] = row.String(spec.Levels[i].KeyField)
			if keys[i] == "" {
				break
			}
			depth++
		}

		complete := depth == len(spec.Levels)
		if depth == 0 || (!complete && spec.Mode == Strict) {
			continue
		}

		siblings := roots
		var current *node
		for i := 0; i < depth; i++ {
			level := &spec.Levels[i]
			current = siblings.GetOrInsert(keys[i], func() *node {
				return newNode(level, keys[i], row)
			})
			siblings = current.children
		}

		if complete {
			accumulate(current, row, spec.Measures)
		}
	}

	forest := make([]domain.TreeNode, 0, roots.Len())
	for _, root := range roots.Values() {
		rollup(root, spec.Measures)
		forest = append(forest, freeze(root, spec.Compare))
	}
	return forest
}

func accumulate(leaf *node, row store.Row, measures []MeasureSelector) {
	for _, m := range measures {
		if m.Where != nil && !m.Where(row) {
			continue
		}
		leaf.totals[m.Measure] = leaf.totals[m.Measure].Add(domain.NewMoney(row.Float(m.Field)))
	}
}

func rollup(n *node, measures []MeasureSelector) {
	if n.children.Len() == 0 {
		for _, m := range measures {
			if _, ok := n.totals[m.Measure]; !ok {
				n.totals[m.Measure] = domain.NewMoney(0)
			}
		}
		return
	}

	totals := make(map[domain.Measure]domain.Money, len(measures))
	for _, m := range measures {
		totals[m.Measure] = domain.NewMoney(0)
	}
	for _, child := range n.children.Values() {
		rollup(child, measures)
		for measure, money := range child.totals {
			totals[measure] = totals[measure].Add(money)
		}
	}
	n.totals = totals
}

func freeze(n *node, cmp *Comparison) domain.TreeNode {
	out := domain.TreeNode{
		Key:        n.key,
		Label:      n.label,
		Level:      n.level.Name,
		Attributes: n.attributes,
		References: n.references,
		Totals:     n.totals,
		Children:   make([]domain.TreeNode, 0, n.children.Len()),
	}
	if cmp != nil {
		c := domain.Compare(n.totals[cmp.Base], n.totals[cmp.Comparand])
		out.Comparison = &c
	}
	for _, child := range n.children.Values() {
		out.Children = append(out.Children, freeze(child, cmp))
	}
	return out
}
