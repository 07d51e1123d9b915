package models

// BalanceType is the side of the books a balance sits on.
type BalanceType string

const (
	BalanceDebit  BalanceType = "debit"
	BalanceCredit BalanceType = "credit"
)

// Valid reports whether t is one of the two known sides.
func (t BalanceType) Valid() bool {
	return t == BalanceDebit || t == BalanceCredit
}

// Opposite returns the other side.
func (t BalanceType) Opposite() BalanceType {
	if t == BalanceDebit {
		return BalanceCredit
	}
	return BalanceDebit
}
