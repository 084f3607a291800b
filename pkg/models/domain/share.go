package domain

// KeyedAmount is one member of a pre-aggregated group.
type KeyedAmount struct {
	Key    string
	Label  string
	Amount Money
}

type ShareItem struct {
	Key               string
	Label             string
	Amount            Money
	PercentageOfTotal float64
}

// AllocateShares computes each item's percentage of the sum of all items.
// Input order is preserved.
func AllocateShares(items []KeyedAmount) []ShareItem {
	var total Money
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return AllocateSharesOf(items, total)
}

// AllocateSharesOf computes percentages against an externally supplied group total,
// for callers whose items are a filtered subset of the group.
func AllocateSharesOf(items []KeyedAmount, total Money) []ShareItem {
	shares := make([]ShareItem, 0, len(items))
	for _, item := range items {
		shares = append(shares, ShareItem{
			Key:               item.Key,
			Label:             item.Label,
			Amount:            item.Amount,
			PercentageOfTotal: ShareOf(item.Amount, total),
		})
	}
	return shares
}

func ShareOf(amount, total Money) float64 {
	if total.Amount() > 0 {
		return amount.Amount() / total.Amount() * 100
	}
	return 0
}
