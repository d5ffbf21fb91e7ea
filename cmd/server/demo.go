package main

import (
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/temporal-ledger/internal/duality"
	"github.com/sheikh-saqib/temporal-ledger/internal/id"
	"github.com/sheikh-saqib/temporal-ledger/internal/ledger"
	"github.com/sheikh-saqib/temporal-ledger/internal/models"
	"github.com/sheikh-saqib/temporal-ledger/internal/record"
)

// depositDemo is a customer moving a fixed amount of cash into a bank
// account every period. The customer's claim on the bank and the bank's
// deposit liability are kept equal through a Duality.
type depositDemo struct {
	amount decimal.Decimal

	bankID, customerID string

	bankCash, bankDeposits, bankCapital string
	customerCash, customerHolding, customerEquity string
}

func newDepositDemo(ids id.Generator, amount decimal.Decimal) *depositDemo {
	return &depositDemo{
		amount:          amount,
		bankID:          ids.NewID(),
		customerID:      ids.NewID(),
		bankCash:        ids.NewID(),
		bankDeposits:    ids.NewID(),
		bankCapital:     ids.NewID(),
		customerCash:    ids.NewID(),
		customerHolding: ids.NewID(),
		customerEquity:  ids.NewID(),
	}
}

// Ledgers returns the opened ledgers the run starts from.
func (d *depositDemo) Ledgers() []ledger.Ledger {
	opening := d.opening()
	return []ledger.Ledger{
		ledger.New(d.bankID).ApplyingAll(opening[d.bankID], 0),
		ledger.New(d.customerID).ApplyingAll(opening[d.customerID], 0),
	}
}

// Events deposits the configured amount in every period after the opening one.
func (d *depositDemo) Events(period uint64, ledgers []ledger.Ledger) record.StepEvents {
	if period == 0 {
		return nil
	}

	var bank, customer ledger.Ledger
	for _, l := range ledgers {
		switch l.ID() {
		case d.bankID:
			bank = l
		case d.customerID:
			customer = l
		}
	}
	holding, _ := customer.Account(models.Asset, d.customerHolding)
	deposits, _ := bank.Account(models.Liability, d.bankDeposits)

	holdingEvent, depositsEvent := duality.New(holding, deposits).Events(d.amount)
	return record.StepEvents{
		d.customerID: {
			ledger.PostAsset(models.Credited(d.amount), d.customerCash),
			holdingEvent,
		},
		d.bankID: {
			ledger.PostAsset(models.Debited(d.amount), d.bankCash),
			depositsEvent,
		},
	}
}

func (d *depositDemo) opening() record.StepEvents {
	return record.StepEvents{
		d.bankID: {
			ledger.CreateAccount(models.Asset, "Cash", d.bankCash),
			ledger.CreateAccount(models.Liability, "Customer deposits", d.bankDeposits),
			ledger.CreateAccount(models.Equity, "Capital", d.bankCapital),
		},
		d.customerID: {
			ledger.CreateAccount(models.Asset, "Cash", d.customerCash),
			ledger.CreateAccount(models.Asset, "Bank deposit", d.customerHolding),
			ledger.CreateAccount(models.Equity, "Net worth", d.customerEquity),
		},
	}
}
