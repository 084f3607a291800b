package domain

import (
	"fmt"
	"strconv"
)

type YearTotals struct {
	Year       string
	NEP        Money
	GAA        Money
	NEPRecords int
	GAARecords int
}

// HasData reports whether any record of either variant backs the totals.
func (t YearTotals) HasData() bool {
	return t.NEPRecords > 0 || t.GAARecords > 0
}

type SelectedYear struct {
	YearTotals
	NEPvsGAA Comparison
}

// AdjacentYear is a neighbouring fiscal year compared against the selected one.
type AdjacentYear struct {
	YearTotals
	NEPComparison Comparison
	GAAComparison Comparison
}

type SummaryStatistics struct {
	TotalDepartments int
	TotalProjects    int
}

type YearSummary struct {
	Selected   SelectedYear
	Previous   AdjacentYear
	Next       AdjacentYear
	Statistics SummaryStatistics
}

// AdjacentYears returns year-1 and year+1 for a 4-digit year string.
func AdjacentYears(year string) (string, string, error) {
	if len(year) != 4 {
		return "", "", fmt.Errorf("%w: year %q must have 4 digits", ErrInvalidInput, year)
	}
	n, err := strconv.Atoi(year)
	if err != nil {
		return "", "", fmt.Errorf("%w: year %q: %v", ErrInvalidInput, year, err)
	}
	return strconv.Itoa(n - 1), strconv.Itoa(n + 1), nil
}
