package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is one flat result row from the query collaborator. Values are scalars or nil,
// except nested entity bags which are Row values themselves.
//
// Field lookup falls back to a case-insensitive match since some warehouses
// fold unquoted column aliases to upper case.
type Row map[string]any

// EntitySeparator joins entity and field names in flattened relational columns.
const EntitySeparator = "__"

func (r Row) get(field string) (any, bool) {
	if v, ok := r[field]; ok {
		return v, true
	}
	for k, v := range r {
		if strings.EqualFold(k, field) {
			return v, true
		}
	}
	return nil, false
}

func (r Row) value(field string) any {
	v, _ := r.get(field)
	return v
}

// String returns the field as a string, or "" when it is absent or nil.
func (r Row) String(field string) string {
	switch v := r.value(field).(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Float returns the field as a float64. Absent, nil and unparsable values yield 0.
func (r Row) Float(field string) float64 {
	switch v := r.value(field).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(string(v), 64)
		return f
	default:
		return 0
	}
}

func (r Row) Int(field string) int {
	switch v := r.value(field).(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	case []byte:
		n, _ := strconv.Atoi(string(v))
		return n
	default:
		return 0
	}
}

func (r Row) Bool(field string) bool {
	switch v := r.value(field).(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

func (r Row) IsNull(field string) bool {
	v, ok := r.get(field)
	return !ok || v == nil
}

// Entity returns the nested entity bag stored under name. Relational backends flatten
// entities into "name__field" columns; such an entity is present iff any of its columns is non-null.
func (r Row) Entity(name string) (Row, bool) {
	switch v := r.value(name).(type) {
	case Row:
		return v, v != nil
	case map[string]any:
		return Row(v), v != nil
	}

	prefix := strings.ToLower(name + EntitySeparator)
	var entity Row
	present := false
	for k, v := range r {
		key := strings.ToLower(k)
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if entity == nil {
			entity = Row{}
		}
		entity[strings.TrimPrefix(key, prefix)] = v
		if v != nil {
			present = true
		}
	}
	if !present {
		return nil, false
	}
	return entity, true
}
