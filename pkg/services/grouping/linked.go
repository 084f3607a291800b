package grouping

import (
	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/models/store"
)

// LinkedLevel is one level of a hierarchy whose entities arrive as separate row sets
// and are attached to their parents through a derived key.
type LinkedLevel struct {
	Level
	Rows []store.Row
	// ParentOf returns the value a row stores to reference its parent. Unused on the root level.
	ParentOf func(store.Row) string
	// LinkOf derives, from a parent's key, the value children reference it by.
	// Nil means the key itself.
	LinkOf func(key string) string
	// Keep filters rows before linking. Nil keeps rows with a non-empty key.
	Keep func(store.Row) bool
}

// LinkedSpec describes a linked hierarchy. Links resolve within one root: every
// non-root row carries the root key in ScopeField.
type LinkedSpec struct {
	ScopeField string
	Levels     []LinkedLevel
}

type bucketKey struct {
	scope string
	link  string
}

// AssembleLinked builds a forest from per-level row sets. Rows whose parent
// cannot be found are dropped. Duplicate keys under one parent keep the first row.
func AssembleLinked(spec LinkedSpec) []domain.TreeNode {
	if len(spec.Levels) == 0 {
		return nil
	}

	buckets := make([]map[bucketKey]*OrderedMap[string, store.Row], len(spec.Levels))
	for i := 1; i < len(spec.Levels); i++ {
		level := &spec.Levels[i]
		buckets[i] = make(map[bucketKey]*OrderedMap[string, store.Row])
		for _, row := range level.Rows {
			if !level.keep(row) {
				continue
			}
			bk := bucketKey{scope: row.String(spec.ScopeField), link: level.ParentOf(row)}
			bucket, ok := buckets[i][bk]
			if !ok {
				bucket = NewOrderedMap[string, store.Row]()
				buckets[i][bk] = bucket
			}
			bucket.GetOrInsert(row.String(level.KeyField), func() store.Row { return row })
		}
	}

	root := &spec.Levels[0]
	seen := NewOrderedMap[string, store.Row]()
	for _, row := range root.Rows {
		if root.keep(row) {
			seen.GetOrInsert(row.String(root.KeyField), func() store.Row { return row })
		}
	}

	forest := make([]domain.TreeNode, 0, seen.Len())
	rows := seen.Values()
	for i, key := range seen.Keys() {
		forest = append(forest, buildLinked(spec, buckets, 0, key, key, rows[i]))
	}
	return forest
}

func buildLinked(
	spec LinkedSpec,
	buckets []map[bucketKey]*OrderedMap[string, store.Row],
	depth int,
	scope, key string,
	row store.Row,
) domain.TreeNode {
	level := &spec.Levels[depth]
	n := newNode(&level.Level, key, row)
	out := domain.TreeNode{
		Key:        key,
		Label:      n.label,
		Level:      level.Name,
		Attributes: n.attributes,
		References: n.references,
		Children:   []domain.TreeNode{},
	}

	next := depth + 1
	if next >= len(spec.Levels) {
		return out
	}

	bucket, ok := buckets[next][bucketKey{scope: scope, link: level.link(key)}]
	if !ok {
		return out
	}
	rows := bucket.Values()
	for i, childKey := range bucket.Keys() {
		out.Children = append(out.Children, buildLinked(spec, buckets, next, scope, childKey, rows[i]))
	}
	return out
}

func (l *LinkedLevel) keep(row store.Row) bool {
	if l.Keep != nil {
		return l.Keep(row)
	}
	return row.String(l.KeyField) != ""
}

func (l *LinkedLevel) link(key string) string {
	if l.LinkOf != nil {
		return l.LinkOf(key)
	}
	return key
}
