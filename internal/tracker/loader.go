package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/nbarak/multisigwatch/internal/celo"
	"github.com/nbarak/multisigwatch/internal/wallet"
)

// ErrSuperseded is returned when a bootstrap finished after a newer attempt
// had already started; its result is dropped so a stale read can never
// clobber a fresher one.
var ErrSuperseded = errors.New("bootstrap superseded by a newer attempt")

type BulkReader interface {
	BulkRead(ctx context.Context, viewerAccount string) (*celo.WalletSnapshot, error)
}

type Store interface {
	Apply(m wallet.Mutation)
}

// Loader performs the initial bulk read and seeds the store with a single
// Set mutation. It never retries on its own: a failed bootstrap leaves the
// store stale or empty until an external change triggers a new attempt.
type Loader struct {
	logger *logrus.Logger
	reader BulkReader
	store  Store

	// mu guards gen and is held across the staleness check and the apply, so
	// a superseded result can never land after a newer one.
	mu  sync.Mutex
	gen uint64
}

func NewLoader(logger *logrus.Logger, reader BulkReader, store Store) *Loader {
	return &Loader{
		logger: logger,
		reader: reader,
		store:  store,
	}
}

// Bootstrap reads the wallet state for the given viewer account and applies
// it wholesale, fully superseding whatever the store held. It returns the
// wallet address the subscription should be keyed on.
func (l *Loader) Bootstrap(ctx context.Context, viewerAccount string) (string, error) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	snapshot, err := l.reader.BulkRead(ctx, viewerAccount)
	if err != nil {
		bootstrapFailures.Inc()
		return "", fmt.Errorf("bulk read wallet state: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gen != gen {
		l.logger.WithField("account", viewerAccount).Debug("Dropping superseded bootstrap result")
		return "", ErrSuperseded
	}

	l.store.Apply(wallet.Set{Snapshot: snapshotToState(snapshot)})
	bootstraps.Inc()

	l.logger.WithFields(logrus.Fields{
		"address":           snapshot.Address,
		"owners":            len(snapshot.Owners),
		"transaction_count": snapshot.TransactionCount,
	}).Info("Bootstrapped wallet state")

	return snapshot.Address, nil
}

func snapshotToState(snapshot *celo.WalletSnapshot) wallet.State {
	transactions := make([]wallet.Transaction, 0, len(snapshot.Transactions))
	for _, tx := range snapshot.Transactions {
		transactions = append(transactions, wallet.Transaction{
			TxIndex:                     tx.TxIndex,
			To:                          tx.To,
			Amount:                      tx.Amount,
			Purpose:                     tx.Purpose,
			Executed:                    tx.Executed,
			NumConfirmations:            tx.NumConfirmations,
			IsConfirmedByCurrentAccount: tx.IsConfirmedByCurrentAccount,
		})
	}

	return wallet.State{
		Address:                  snapshot.Address,
		Balance:                  snapshot.Balance,
		Owners:                   snapshot.Owners,
		NumConfirmationsRequired: snapshot.NumConfirmationsRequired,
		TransactionCount:         snapshot.TransactionCount,
		Transactions:             transactions,
	}
}
