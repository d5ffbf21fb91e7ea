package models

import "github.com/shopspring/decimal"

// Side tags a posting as a debit or a credit.
type Side string

const (
	Debit  Side = "debit"
	Credit Side = "credit"
)

// Opposite returns the other side of the books.
func (s Side) Opposite() Side {
	if s == Debit {
		return Credit
	}
	return Debit
}

// Posting is a single movement recorded against one account.
type Posting struct {
	Seq    uint64          `json:"seq"`    // position in the owning account, assigned on append
	Side   Side            `json:"side"`   // debit or credit
	Amount decimal.Decimal `json:"amount"` // always a non-negative magnitude
}

// Debited returns a debit posting of amount.
func Debited(amount decimal.Decimal) Posting {
	return Posting{Side: Debit, Amount: amount.Abs()}
}

// Credited returns a credit posting of amount.
func Credited(amount decimal.Decimal) Posting {
	return Posting{Side: Credit, Amount: amount.Abs()}
}

// NewPosting normalizes a signed amount into a posting for category c:
// a non-negative amount lands on the increasing side, a negative one on the
// decreasing side with its magnitude.
func NewPosting(c Category, signed decimal.Decimal) Posting {
	if signed.IsNegative() {
		return Posting{Side: c.Decreasing(), Amount: signed.Abs()}
	}
	return Posting{Side: c.Increasing(), Amount: signed}
}

// Contribution returns the signed effect of p on the balance of an account in c.
func (p Posting) Contribution(c Category) decimal.Decimal {
	if p.Side == c.Increasing() {
		return p.Amount
	}
	return p.Amount.Neg()
}

// SumContributions folds the contributions of postings into a balance for c.
func SumContributions(c Category, postings []Posting) decimal.Decimal {
	balance := decimal.Zero
	for _, p := range postings {
		balance = balance.Add(p.Contribution(c))
	}
	return balance
}
