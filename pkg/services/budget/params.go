package budget

import (
	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/models/store"
)

const (
	defaultDepartmentLimit = 20
	allDepartmentsLimit    = 50
	topItemsLimit          = 10
	defaultSearchLimit     = 50
)

// BudgetQuery asks for the optional budget columns of a dimension list. Budgets are
// only included when WithBudget is set and both year and type are given.
type BudgetQuery struct {
	WithBudget bool
	Year       string
	Type       domain.BudgetType
}

func (q BudgetQuery) Enabled() bool {
	return q.WithBudget && q.Year != "" && q.Type != ""
}

// params always binds year and type; disabled queries bind empty strings so the
// budget columns come back as zero.
func (q BudgetQuery) params() map[string]any {
	if !q.Enabled() {
		return map[string]any{"year": "", "type": ""}
	}
	return map[string]any{"year": q.Year, "type": string(q.Type)}
}

func money(row store.Row, field string) domain.Money {
	return domain.NewMoney(row.Float(field))
}

// attributes copies the named row fields, skipping empty ones.
func attributes(row store.Row, fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for name, field := range fields {
		if v := row.String(field); v != "" {
			out[name] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// variantMember maps a row carrying nepBudget and gaaBudget columns.
func variantMember(row store.Row, codeField string, attrs map[string]string) domain.Member {
	return domain.Member{
		Code:        row.String(codeField),
		Description: row.String("description"),
		Attributes:  attributes(row, attrs),
		Variants:    domain.Some(domain.NewVariantTotals(money(row, "nepBudget"), money(row, "gaaBudget"))),
	}
}

func variantMembers(rows []store.Row, codeField string, attrs map[string]string) []domain.Member {
	members := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, variantMember(row, codeField, attrs))
	}
	return members
}

// rankedMembers maps rows carrying totalBudgetNep (the requested variant) and totalBudgetGaa,
// ranking each against total.
func rankedMembers(rows []store.Row, total domain.Money, attrs map[string]string) []domain.Member {
	members := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, domain.Member{
			Code:        row.String("code"),
			Description: row.String("description"),
			Attributes:  attributes(row, attrs),
			Budget:      domain.Some(domain.NewRankedBudget(money(row, "totalBudgetNep"), money(row, "totalBudgetGaa"), total)),
		})
	}
	return members
}

func plainMembers(rows []store.Row, codeField string, attrs map[string]string) []domain.Member {
	members := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, domain.Member{
			Code:        row.String(codeField),
			Description: row.String("description"),
			Attributes:  attributes(row, attrs),
		})
	}
	return members
}

func keyedAmounts(rows []store.Row, keyField, labelField, amountField string) []domain.KeyedAmount {
	items := make([]domain.KeyedAmount, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.KeyedAmount{
			Key:    row.String(keyField),
			Label:  row.String(labelField),
			Amount: money(row, amountField),
		})
	}
	return items
}
