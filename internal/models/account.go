package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Account is an immutable snapshot of a ledger account. Every change produces
// a new Account that shares the earlier posting history.
type Account struct {
	ID       string
	Name     string
	Category Category

	postings []Posting
}

// NewAccount returns an empty account of category c.
func NewAccount(c Category, name, id string) Account {
	return Account{ID: id, Name: name, Category: c}
}

// Postings returns a copy of the account history in insertion order.
func (a Account) Postings() []Posting {
	out := make([]Posting, len(a.postings))
	copy(out, a.postings)
	return out
}

// Len returns the number of postings recorded against the account.
func (a Account) Len() int {
	return len(a.postings)
}

// Balance sums the contribution of every posting.
func (a Account) Balance() decimal.Decimal {
	return SumContributions(a.Category, a.postings)
}

// Appending returns a copy of a with p added at the end of its history.
// The posting sequence number is assigned here.
func (a Account) Appending(p Posting) Account {
	p.Seq = uint64(len(a.postings)) + 1
	// cap the slice so append never writes into an array shared with a prior snapshot
	a.postings = append(a.postings[:len(a.postings):len(a.postings)], p)
	return a
}

type accountJSON struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Balance  decimal.Decimal `json:"balance"`
	Postings []Posting       `json:"postings"`
}

// MarshalJSON renders the account with its derived balance.
func (a Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(accountJSON{
		ID:       a.ID,
		Name:     a.Name,
		Category: a.Category,
		Balance:  a.Balance(),
		Postings: a.Postings(),
	})
}
