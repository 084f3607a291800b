package grouping

// OrderedMap keeps values in first-insertion order.
type OrderedMap[K comparable, V any] struct {
	index  map[K]int
	keys   []K
	values []V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{index: make(map[K]int)}
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.values[i], true
}

// GetOrInsert returns the value stored under key, inserting create() when absent.
func (m *OrderedMap[K, V]) GetOrInsert(key K, create func() V) V {
	if i, ok := m.index[key]; ok {
		return m.values[i]
	}
	v := create()
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, v)
	return v
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

func (m *OrderedMap[K, V]) Keys() []K {
	return m.keys
}

func (m *OrderedMap[K, V]) Values() []V {
	return m.values
}
