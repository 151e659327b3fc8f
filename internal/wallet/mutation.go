package wallet

import "github.com/shopspring/decimal"

// Mutation is the closed set of state transitions the Store accepts.
type Mutation interface {
	name() string
}

// Set unconditionally replaces the whole State. Bootstrap only.
type Set struct {
	Snapshot State
}

// UpdateBalance replaces the balance following a deposit.
type UpdateBalance struct {
	Balance string
}

// UpdateBalanceWithdraw replaces the balance following an executed outgoing
// transfer. Same transition as UpdateBalance; kept distinct because it
// originates from a different event class.
type UpdateBalanceWithdraw struct {
	Balance string
}

// AddTx prepends a freshly submitted, unconfirmed transaction.
type AddTx struct {
	TxIndex uint64
	To      string
	Amount  decimal.Decimal
	Purpose string
}

// UpdateTx adjusts an existing transaction. Executed only ever transitions
// false to true. Confirmed nil means no confirmation change; true/false
// increments/decrements the confirmation count, and touches the viewer's
// confirmed flag only when Owner equals Account.
type UpdateTx struct {
	TxIndex   uint64
	Owner     string
	Account   string
	Executed  bool
	Confirmed *bool
}

func (Set) name() string                   { return "set" }
func (UpdateBalance) name() string         { return "update_balance" }
func (UpdateBalanceWithdraw) name() string { return "update_balance_withdraw" }
func (AddTx) name() string                 { return "add_tx" }
func (UpdateTx) name() string              { return "update_tx" }
