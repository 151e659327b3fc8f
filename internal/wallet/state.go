package wallet

import (
	"slices"

	"github.com/shopspring/decimal"
)

// TokenDecimals is the base-unit exponent of the wallet's token. Amounts are
// held in base units; display conversion shifts by this constant and never
// goes through floats.
const TokenDecimals = 18

// State is the local view of the multisig wallet contract. It is owned
// exclusively by the Store; everyone else sees copies.
type State struct {
	Address                  string
	Balance                  string
	Owners                   []string
	NumConfirmationsRequired int
	TransactionCount         int
	// Transactions is kept newest-first.
	Transactions []Transaction
}

type Transaction struct {
	TxIndex  uint64
	To       string
	Amount   decimal.Decimal
	Purpose  string
	Executed bool
	// NumConfirmations may transiently go negative when revoke events arrive
	// out of causal order; it is intentionally not clamped.
	NumConfirmations            int
	IsConfirmedByCurrentAccount bool
}

func newState() State {
	return State{
		Balance: "0",
	}
}

func (s State) clone() State {
	s.Owners = slices.Clone(s.Owners)
	s.Transactions = slices.Clone(s.Transactions)
	return s
}

// DisplayAmount converts a base-unit amount into display units.
func DisplayAmount(amount decimal.Decimal) string {
	return amount.Shift(-TokenDecimals).String()
}

// DisplayBalance converts a base-unit balance string into display units.
// Non-numeric input is returned unchanged.
func DisplayBalance(balance string) string {
	d, err := decimal.NewFromString(balance)
	if err != nil {
		return balance
	}

	return DisplayAmount(d)
}
