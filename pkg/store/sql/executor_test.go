package sql

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_Query(t *testing.T) {
	// Given
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT code, description FROM regions WHERE year = ?`)).
		WithArgs("2025").
		WillReturnRows(sqlmock.NewRows([]string{"code", "description", "AGENCY__CODE", "agency__description"}).
			AddRow("13", []byte("NCR"), nil, nil).
			AddRow("07", "Central Visayas", "001", "Office"))

	exec := NewExecutor(db)

	// When
	rows, err := exec.Query(context.Background(),
		"SELECT code, description FROM regions WHERE year = $year",
		map[string]any{"year": "2025"})

	// Then
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "NCR", rows[0].String("description"))

	_, ok := rows[0].Entity("agency")
	assert.False(t, ok)

	agency, ok := rows[1].Entity("agency")
	require.True(t, ok)
	assert.Equal(t, "001", agency.String("code"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecutor_ThroughRunner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM budget_records`).
		WithArgs("2025").
		WillReturnRows(sqlmock.NewRows([]string{"nepTotal", "gaaTotal", "nepRecords", "gaaRecords"}).
			AddRow(800.0, 850.0, int64(2), int64(2)))

	runner := query.NewRunner(NewExecutor(db), Catalog)
	row, ok, err := runner.QuerySingle(context.Background(), query.YearTotals, map[string]any{"year": "2025"})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 850.0, row.Float("gaaTotal"))
	assert.Equal(t, 2, row.Int("nepRecords"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecutor_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT 1`).WillReturnError(assert.AnError)

	_, err = NewExecutor(db).Query(context.Background(), "SELECT 1 AS ok", nil)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCatalog_DefinesEveryQuery(t *testing.T) {
	for _, name := range query.Names {
		_, err := Catalog.Lookup(name)
		assert.NoError(t, err, name)
	}
}
