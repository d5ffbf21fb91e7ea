package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountBalance(t *testing.T) {
	acct := NewAccount(Asset, "Cash", "1").
		Appending(Debited(decimal.NewFromInt(100))).
		Appending(Debited(decimal.NewFromInt(50))).
		Appending(Credited(decimal.NewFromInt(25)))

	assert.True(t, acct.Balance().Equal(decimal.NewFromInt(125)), "balance = %s", acct.Balance())
	assert.Equal(t, 3, acct.Len())
}

func TestAccountBalance_CreditNormal(t *testing.T) {
	acct := NewAccount(Liability, "Deposits", "2").
		Appending(Credited(decimal.NewFromInt(350))).
		Appending(Debited(decimal.NewFromInt(50)))

	assert.True(t, acct.Balance().Equal(decimal.NewFromInt(300)), "balance = %s", acct.Balance())
}

func TestAccountAppending_LeavesReceiverUnchanged(t *testing.T) {
	base := NewAccount(Asset, "Cash", "1").Appending(Debited(decimal.NewFromInt(10)))
	left := base.Appending(Debited(decimal.NewFromInt(1)))
	right := base.Appending(Credited(decimal.NewFromInt(2)))

	assert.Equal(t, 1, base.Len())
	assert.True(t, base.Balance().Equal(decimal.NewFromInt(10)))
	assert.True(t, left.Balance().Equal(decimal.NewFromInt(11)))
	assert.True(t, right.Balance().Equal(decimal.NewFromInt(8)))
	assert.Equal(t, Debit, left.Postings()[1].Side)
	assert.Equal(t, Credit, right.Postings()[1].Side)
}

func TestAccountAppending_AssignsSequence(t *testing.T) {
	acct := NewAccount(Expense, "Rent", "3")
	for i := 0; i < 3; i++ {
		acct = acct.Appending(Posting{Seq: 99, Side: Debit, Amount: decimal.NewFromInt(1)})
	}

	for i, p := range acct.Postings() {
		assert.Equal(t, uint64(i+1), p.Seq)
	}
}

func TestAccountPostings_ReturnsCopy(t *testing.T) {
	acct := NewAccount(Asset, "Cash", "1").Appending(Debited(decimal.NewFromInt(10)))
	postings := acct.Postings()
	postings[0].Amount = decimal.NewFromInt(1000)

	assert.True(t, acct.Balance().Equal(decimal.NewFromInt(10)))
}

func TestAccountMarshalJSON(t *testing.T) {
	acct := NewAccount(Revenue, "Interest", "9").Appending(Credited(decimal.NewFromInt(5)))

	data, err := json.Marshal(acct)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "9", got["id"])
	assert.Equal(t, "revenue", got["category"])
	assert.Equal(t, "5", got["balance"])
}
