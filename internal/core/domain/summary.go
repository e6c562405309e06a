package domain

// Summary aggregates the collection for the dashboard. Income is the sum of
// positive amounts, Expense the sum of negative amounts (kept negative), and
// Balance their total. It is derived on every read, never stored.
type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// Summarize computes the dashboard summary for a collection.
func Summarize(txs []Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		if tx.Amount > 0 {
			s.Income += tx.Amount
		} else {
			s.Expense += tx.Amount
		}
	}
	s.Balance = s.Income + s.Expense
	return s
}
