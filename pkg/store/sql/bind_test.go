package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		params map[string]any
		want   string
		args   []any
	}{
		{
			name:   "repeated names bind in order",
			text:   "WHERE y = $year AND ($department = '' OR d = $department) LIMIT $limit",
			params: map[string]any{"year": "2025", "department": "07", "limit": 10},
			want:   "WHERE y = ? AND (? = '' OR d = ?) LIMIT ?",
			args:   []any{"2025", "07", "07", 10},
		},
		{
			name:   "quoted dollar is literal",
			text:   "SELECT '$year' AS label, $year AS y",
			params: map[string]any{"year": "2024"},
			want:   "SELECT '$year' AS label, ? AS y",
			args:   []any{"2024"},
		},
		{
			name:   "no placeholders",
			text:   "SELECT 1 AS ok",
			params: nil,
			want:   "SELECT 1 AS ok",
		},
		{
			name:   "bare dollar",
			text:   "SELECT $ || $1",
			params: nil,
			want:   "SELECT $ || $1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, args, err := Bind(tt.text, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestBind_MissingParam(t *testing.T) {
	_, _, err := Bind("WHERE code = $code", map[string]any{})
	assert.ErrorContains(t, err, `"code"`)
}
