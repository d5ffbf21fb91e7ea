package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/temporal-ledger/internal/models"
)

// Kind identifies the type of a ledger event.
type Kind string

const (
	// KindCreateAccount records the opening of an account.
	KindCreateAccount Kind = "account.created"
	// KindPost records a posting against an existing account.
	KindPost Kind = "account.posted"
)

// Event is an immutable fact applied to a ledger. Only the fields relevant to
// Kind are set.
type Event struct {
	Kind      Kind            `json:"kind"`
	Category  models.Category `json:"category"`
	AccountID string          `json:"account_id"`
	Name      string          `json:"name,omitempty"`
	Posting   models.Posting  `json:"posting"`
}

// CreateAccount returns an event opening an empty account.
func CreateAccount(c models.Category, name, accountID string) Event {
	return Event{Kind: KindCreateAccount, Category: c, Name: name, AccountID: accountID}
}

// Post returns an event appending p to the account (c, accountID).
func Post(c models.Category, p models.Posting, accountID string) Event {
	return Event{Kind: KindPost, Category: c, Posting: p, AccountID: accountID}
}

func PostAsset(p models.Posting, accountID string) Event     { return Post(models.Asset, p, accountID) }
func PostLiability(p models.Posting, accountID string) Event { return Post(models.Liability, p, accountID) }
func PostEquity(p models.Posting, accountID string) Event    { return Post(models.Equity, p, accountID) }
func PostRevenue(p models.Posting, accountID string) Event   { return Post(models.Revenue, p, accountID) }
func PostExpense(p models.Posting, accountID string) Event   { return Post(models.Expense, p, accountID) }

// PostSigned returns a post event for a signed amount, normalized through the
// polarity of c.
func PostSigned(c models.Category, signed decimal.Decimal, accountID string) Event {
	return Post(c, models.NewPosting(c, signed), accountID)
}
