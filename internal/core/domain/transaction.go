package domain

// TransactionType classifies a transaction by the sign of its amount.
type TransactionType string

const (
	Deposit    TransactionType = "Deposit"
	Withdrawal TransactionType = "Withdrawal"
)

// Transaction is the central entity: a single dated movement of money.
// The sign of Amount encodes the kind (positive = deposit, negative =
// withdrawal); a zero amount is rejected by validation and never stored.
type Transaction struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // ISO-8601; only YYYY-MM-DD is significant
}

// Type derives the transaction kind from the amount sign.
func (t Transaction) Type() TransactionType {
	if t.Amount >= 0 {
		return Deposit
	}
	return Withdrawal
}

// DateOnly returns the YYYY-MM-DD portion of the stored date.
func (t Transaction) DateOnly() string {
	if len(t.Date) > 10 {
		return t.Date[:10]
	}
	return t.Date
}

// NewTransaction is the validated input for creating a transaction.
// Date is optional; the store defaults it to today when empty.
type NewTransaction struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date,omitempty"`
}

// TransactionPatch describes a partial update. Nil fields are left untouched.
type TransactionPatch struct {
	Amount      *float64 `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty"`
	Date        *string  `json:"date,omitempty"`
}
