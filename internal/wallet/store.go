package wallet

import (
	"sync"
)

// Store holds the canonical State and is its single writer. Mutations are
// applied strictly in arrival order with no reordering or buffering; see the
// notes on applyUpdateTx and applyAddTx for the accepted out-of-order gaps.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{
		state: newState(),
	}
}

// Snapshot returns a copy of the current State. It never observes a
// partially-applied mutation.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.clone()
}

// Apply applies a single mutation. It is total: mutations that cannot take
// effect (duplicate AddTx, UpdateTx for an unknown txIndex) are counted
// no-ops, never errors.
func (s *Store) Apply(m Mutation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch m := m.(type) {
	case Set:
		s.state = m.Snapshot.clone()
	case UpdateBalance:
		s.state.Balance = m.Balance
	case UpdateBalanceWithdraw:
		s.state.Balance = m.Balance
	case AddTx:
		s.applyAddTx(m)
	case UpdateTx:
		s.applyUpdateTx(m)
	}

	mutationsApplied.WithLabelValues(m.name()).Inc()
}

func (s *Store) applyAddTx(m AddTx) {
	// duplicate event delivery; keep the existing entry
	for i := range s.state.Transactions {
		if s.state.Transactions[i].TxIndex == m.TxIndex {
			duplicateSubmissions.Inc()
			return
		}
	}

	tx := Transaction{
		TxIndex: m.TxIndex,
		To:      m.To,
		Amount:  m.Amount,
		Purpose: m.Purpose,
	}
	s.state.Transactions = append([]Transaction{tx}, s.state.Transactions...)
	s.state.TransactionCount++
}

func (s *Store) applyUpdateTx(m UpdateTx) {
	var tx *Transaction
	for i := range s.state.Transactions {
		if s.state.Transactions[i].TxIndex == m.TxIndex {
			tx = &s.state.Transactions[i]
			break
		}
	}
	if tx == nil {
		// the event outran its AddTx (or the entry predates the retained
		// window); dropped rather than deferred
		orphanTxUpdates.Inc()
		return
	}

	if m.Executed {
		tx.Executed = true
	}
	if m.Confirmed != nil {
		if *m.Confirmed {
			tx.NumConfirmations++
			if m.Owner == m.Account {
				tx.IsConfirmedByCurrentAccount = true
			}
		} else {
			tx.NumConfirmations--
			if m.Owner == m.Account {
				tx.IsConfirmedByCurrentAccount = false
			}
		}
	}
}
