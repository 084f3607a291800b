package duckdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/budget-atlas/pkg/store/query"
	budgetsql "github.com/de-tools/budget-atlas/pkg/store/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = `
	INSERT INTO departments VALUES ('07', 'Department of Education', 'DepEd');
	INSERT INTO agencies VALUES ('07', '001', '07001', 'Office of the Secretary');
	INSERT INTO organizations VALUES
		('070010100001', 'OSEC Central', '07', 'Department of Education', '001', 'Office of the Secretary', '01'),
		('070020100001', 'Unlinked Office', '07', 'Department of Education', '002', 'Unknown Agency', '01');
	INSERT INTO regions VALUES ('13', 'National Capital Region');
	INSERT INTO classifications VALUES ('1', 'Current Operating Expenditures');
	INSERT INTO sub_classes VALUES ('10', 'Personnel Services', '1');
	INSERT INTO expense_groups VALUES ('100', 'Salaries', '10');
	INSERT INTO objects VALUES ('1001', 'Basic Salary', '100'), ('1002', 'Overtime', '100');
	INSERT INTO expense_categories VALUES ('PS', 'Personnel Services');
	INSERT INTO sub_objects VALUES ('5010101001', 'Salaries - Civilian', '1001', 'PS'), ('5010101002', 'Overtime Pay', '1002', 'PS');
	INSERT INTO budget_records VALUES
		('BR-1', '2025', 'NEP', 500, 'Salaries', 'P-1', '070010100001', '13', NULL, NULL, NULL, '5010101001'),
		('BR-2', '2025', 'NEP', 300, 'Overtime', 'P-2', '070010100001', NULL, NULL, NULL, NULL, '5010101002'),
		('BR-3', '2025', 'GAA', 600, 'Salaries', 'P-1', '070010100001', '13', NULL, NULL, NULL, '5010101001'),
		('BR-4', '2025', 'GAA', 250, 'Overtime', '', '070020100001', NULL, NULL, NULL, NULL, '5010101002');
`

func newMirror(t *testing.T) query.Runner {
	t.Helper()

	db, err := NewDB(Settings{DbPath: inMemory})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close database connection: %v", err)
		}
	})

	_, err = db.Exec(fixtures)
	require.NoError(t, err)

	return query.NewRunner(budgetsql.NewExecutor(db), budgetsql.Catalog)
}

func TestNewDB_FileBacked(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "duckdb-test-*")
	require.NoError(t, err)
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Errorf("failed to cleanup test directory: %v", err)
		}
	}()

	db, err := NewDB(Settings{DbPath: filepath.Join(tmpDir, "budget.db")})
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO regions VALUES (?, ?)`, "13", "NCR")
	require.NoError(t, err)

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM regions WHERE code = ?", "13").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMirror_YearTotals(t *testing.T) {
	runner := newMirror(t)
	ctx := context.Background()

	row, ok, err := runner.QuerySingle(ctx, query.YearTotals, map[string]any{"year": "2025"})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 800.0, row.Float("nepTotal"))
	assert.Equal(t, 850.0, row.Float("gaaTotal"))
	assert.Equal(t, 2, row.Int("nepRecords"))
	assert.Equal(t, 2, row.Int("gaaRecords"))

	row, _, err = runner.QuerySingle(ctx, query.ProjectCount, map[string]any{"year": "2025"})
	require.NoError(t, err)
	assert.Equal(t, 2, row.Int("total"))
}

func TestMirror_RecordsMapped(t *testing.T) {
	runner := newMirror(t)

	rows, err := runner.Query(context.Background(), query.RecordsMapped, map[string]any{
		"year": "2025", "type": "GAA", "limit": 10, "offset": 0,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	record, ok := first.Entity("record")
	require.True(t, ok)
	assert.Equal(t, "BR-3", record.String("id"))

	_, ok = first.Entity("agency")
	assert.True(t, ok)
	_, ok = first.Entity("region")
	assert.True(t, ok)
	_, ok = first.Entity("province")
	assert.False(t, ok)

	second := rows[1]
	_, ok = second.Entity("department")
	assert.True(t, ok)
	_, ok = second.Entity("agency")
	assert.False(t, ok)
	_, ok = second.Entity("operatingUnit")
	assert.False(t, ok)
}

func TestMirror_ExpenseHierarchy(t *testing.T) {
	runner := newMirror(t)

	rows, err := runner.Query(context.Background(), query.ExpenseHierarchy, map[string]any{
		"year": "2025", "department": "",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "1001", rows[0].String("objectCode"))
	assert.Equal(t, 500.0, rows[0].Float("nepBudget"))
	assert.Equal(t, 600.0, rows[0].Float("gaaBudget"))
	assert.Equal(t, "1002", rows[1].String("objectCode"))
	assert.Equal(t, 300.0, rows[1].Float("nepBudget"))
	assert.Equal(t, 250.0, rows[1].Float("gaaBudget"))
}
