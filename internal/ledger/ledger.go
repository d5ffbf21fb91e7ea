package ledger

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/temporal-ledger/internal/models"
)

// Ledger is an immutable set of accounts partitioned by category plus the
// general journal of every event that shaped them. Applying an event returns
// a new Ledger; untouched account maps are shared with the receiver.
type Ledger struct {
	id       string
	accounts map[models.Category]map[string]models.Account
	order    []accountRef // creation order
	journal  []JournalEntry
}

type accountRef struct {
	category models.Category
	id       string
}

// New returns an empty ledger identified by id.
func New(id string) Ledger {
	return Ledger{id: id}
}

// ID returns the ledger identifier.
func (l Ledger) ID() string {
	return l.id
}

// Applying returns the ledger that results from applying e at period at.
// Creating an account whose id is already taken and posting to an unknown
// account are silent no-ops: the receiver is returned and no journal entry
// is written.
func (l Ledger) Applying(e Event, at uint64) Ledger {
	switch e.Kind {
	case KindCreateAccount:
		return l.createAccount(e, at)
	case KindPost:
		return l.post(e, at)
	default:
		return l
	}
}

// ApplyingAll folds Applying over events in order with a single timestamp.
// Order matters: a post may reference an account created earlier in events.
func (l Ledger) ApplyingAll(events []Event, at uint64) Ledger {
	for _, e := range events {
		l = l.Applying(e, at)
	}
	return l
}

func (l Ledger) createAccount(e Event, at uint64) Ledger {
	if !e.Category.IsValid() || l.hasAccount(e.AccountID) {
		return l
	}

	next := l.withAccount(models.NewAccount(e.Category, e.Name, e.AccountID))
	next.order = append(l.order[:len(l.order):len(l.order)], accountRef{category: e.Category, id: e.AccountID})
	next.journal = l.recording(e, at)
	return next
}

func (l Ledger) post(e Event, at uint64) Ledger {
	acct, ok := l.Account(e.Category, e.AccountID)
	if !ok {
		return l
	}

	next := l.withAccount(acct.Appending(e.Posting))
	next.journal = l.recording(e, at)
	return next
}

func (l Ledger) hasAccount(id string) bool {
	for _, byID := range l.accounts {
		if _, ok := byID[id]; ok {
			return true
		}
	}
	return false
}

// withAccount copies the outer map and the map of acct's category, leaving
// every other category shared with l.
func (l Ledger) withAccount(acct models.Account) Ledger {
	accounts := make(map[models.Category]map[string]models.Account, len(l.accounts)+1)
	for c, byID := range l.accounts {
		accounts[c] = byID
	}

	byID := make(map[string]models.Account, len(l.accounts[acct.Category])+1)
	for id, a := range l.accounts[acct.Category] {
		byID[id] = a
	}
	byID[acct.ID] = acct
	accounts[acct.Category] = byID

	l.accounts = accounts
	return l
}

// Account looks up the account id within category c.
func (l Ledger) Account(c models.Category, id string) (models.Account, bool) {
	acct, ok := l.accounts[c][id]
	return acct, ok
}

// Accounts returns the accounts of category c in creation order.
func (l Ledger) Accounts(c models.Category) []models.Account {
	var out []models.Account
	for _, ref := range l.order {
		if ref.category == c {
			out = append(out, l.accounts[c][ref.id])
		}
	}
	return out
}

// CategoryBalance sums the balances of every account in c.
func (l Ledger) CategoryBalance(c models.Category) decimal.Decimal {
	total := decimal.Zero
	for _, acct := range l.accounts[c] {
		total = total.Add(acct.Balance())
	}
	return total
}

// Balance returns (assets + expenses) - (liabilities + equity + revenue).
// It is zero when the books balance.
func (l Ledger) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, c := range models.Categories {
		if c.DebitNormal() {
			balance = balance.Add(l.CategoryBalance(c))
		} else {
			balance = balance.Sub(l.CategoryBalance(c))
		}
	}
	return balance
}

type ledgerJSON struct {
	ID       string           `json:"id"`
	Balance  decimal.Decimal  `json:"balance"`
	Accounts []models.Account `json:"accounts"`
	Journal  []JournalEntry   `json:"journal"`
}

// MarshalJSON renders the ledger with accounts in creation order.
func (l Ledger) MarshalJSON() ([]byte, error) {
	accounts := make([]models.Account, 0, len(l.order))
	for _, ref := range l.order {
		accounts = append(accounts, l.accounts[ref.category][ref.id])
	}
	return json.Marshal(ledgerJSON{
		ID:       l.id,
		Balance:  l.Balance(),
		Accounts: accounts,
		Journal:  l.Journal(),
	})
}

// ApplyEach applies to every ledger the events addressed to its id and
// returns the resulting ledgers in the same order. Events for ids that are
// not in ledgers are ignored.
func ApplyEach(ledgers []Ledger, events map[string][]Event, at uint64) []Ledger {
	out := make([]Ledger, len(ledgers))
	for i, l := range ledgers {
		out[i] = l.ApplyingAll(events[l.ID()], at)
	}
	return out
}
