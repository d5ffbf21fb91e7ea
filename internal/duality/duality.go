// Package duality couples an asset account with a liability account that
// must always report the same balance, so that one economic movement is
// reflected identically in two books.
package duality

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/temporal-ledger/internal/ledger"
	"github.com/sheikh-saqib/temporal-ledger/internal/models"
)

var (
	// ErrUnbalanced is wrapped by the violation raised for legs with unequal balances.
	ErrUnbalanced = errors.New("duality legs have unequal balances")
	// ErrInvalidLegs is wrapped by the violation raised for legs of the wrong category.
	ErrInvalidLegs = errors.New("duality requires an asset leg and a liability leg")
)

// InvariantViolation is the panic value raised when a Duality would be built
// from legs that do not mirror each other. It marks a programming error in
// the caller and is never returned as an ordinary error.
type InvariantViolation struct {
	Err              error
	AssetID          string
	AssetBalance     decimal.Decimal
	LiabilityID      string
	LiabilityBalance decimal.Decimal
}

// Error returns the formatted violation message.
func (v *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %v (asset %s = %s, liability %s = %s)",
		v.Err, v.AssetID, v.AssetBalance, v.LiabilityID, v.LiabilityBalance)
}

// Unwrap returns the sentinel describing the breach.
func (v *InvariantViolation) Unwrap() error {
	return v.Err
}

// Duality is an immutable asset/liability pair with equal balances.
type Duality struct {
	asset     models.Account
	liability models.Account
}

// New pairs asset and liability. It panics with an *InvariantViolation when
// the legs are not an Asset and a Liability account or when their balances
// differ.
func New(asset, liability models.Account) Duality {
	if asset.Category != models.Asset || liability.Category != models.Liability {
		panic(violation(ErrInvalidLegs, asset, liability))
	}
	if !asset.Balance().Equal(liability.Balance()) {
		panic(violation(ErrUnbalanced, asset, liability))
	}
	return Duality{asset: asset, liability: liability}
}

func violation(err error, asset, liability models.Account) *InvariantViolation {
	return &InvariantViolation{
		Err:              err,
		AssetID:          asset.ID,
		AssetBalance:     asset.Balance(),
		LiabilityID:      liability.ID,
		LiabilityBalance: liability.Balance(),
	}
}

func (d Duality) Asset() models.Account     { return d.asset }
func (d Duality) Liability() models.Account { return d.liability }

// Balance returns the balance shared by both legs.
func (d Duality) Balance() decimal.Decimal {
	return d.asset.Balance()
}

// ChangeAsset moves the asset leg by the signed amount and mirrors it on the
// liability leg with the opposite side, so both balances move together.
func (d Duality) ChangeAsset(amount decimal.Decimal) Duality {
	assetEvent, liabilityEvent := d.Events(amount)
	return New(
		d.asset.Appending(assetEvent.Posting),
		d.liability.Appending(liabilityEvent.Posting),
	)
}

// ChangeLiability moves the liability leg by the signed amount and mirrors it
// on the asset leg.
func (d Duality) ChangeLiability(amount decimal.Decimal) Duality {
	assetEvent, liabilityEvent := d.Events(amount)
	return New(
		d.asset.Appending(assetEvent.Posting),
		d.liability.Appending(liabilityEvent.Posting),
	)
}

// Events returns the pair of post events that apply a change of amount to
// the ledgers holding each leg.
func (d Duality) Events(amount decimal.Decimal) (asset, liability ledger.Event) {
	asset = ledger.PostSigned(models.Asset, amount, d.asset.ID)
	liability = ledger.PostSigned(models.Liability, amount, d.liability.ID)
	return asset, liability
}
