package sql

import (
	"fmt"
	"strings"
)

// Bind rewrites $name placeholders to positional ? markers and returns the
// arguments in placeholder order. Placeholders inside quoted literals are left alone.
func Bind(text string, params map[string]any) (string, []any, error) {
	var (
		out     strings.Builder
		args    []any
		inQuote bool
	)
	out.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\'' {
			inQuote = !inQuote
			out.WriteByte(c)
			continue
		}
		if c != '$' || inQuote || i+1 >= len(text) || !isNameStart(text[i+1]) {
			out.WriteByte(c)
			continue
		}

		j := i + 1
		for j < len(text) && isNamePart(text[j]) {
			j++
		}
		name := text[i+1 : j]
		value, ok := params[name]
		if !ok {
			return "", nil, fmt.Errorf("missing query parameter %q", name)
		}
		out.WriteByte('?')
		args = append(args, value)
		i = j - 1
	}

	return out.String(), args, nil
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNamePart(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
