package tracker

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/nbarak/multisigwatch/internal/celo"
)

type Bootstrapper interface {
	Bootstrap(ctx context.Context, viewerAccount string) (string, error)
}

type Subscription interface {
	Subscribe(ctx context.Context, address, viewerAccount string)
	Unsubscribe()
}

type ChangeWatcher interface {
	WatchAccounts(ctx context.Context) <-chan string
	WatchNetwork(ctx context.Context) <-chan string
}

// Session ties the pieces together for the lifetime of a node connection:
// it watches for viewer account and network changes, re-runs the bootstrap
// whenever either changes, and points the subscription at the freshly
// bootstrapped address with the current viewer account.
type Session struct {
	logger       *logrus.Logger
	loader       Bootstrapper
	subscription Subscription
	watcher      ChangeWatcher

	mu      sync.RWMutex
	account string
	network string
}

func NewSession(logger *logrus.Logger, loader Bootstrapper, subscription Subscription, watcher ChangeWatcher) *Session {
	return &Session{
		logger:       logger,
		loader:       loader,
		subscription: subscription,
		watcher:      watcher,
	}
}

// CurrentAccount returns the viewer account the session last observed.
func (s *Session) CurrentAccount() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.account
}

// Run blocks until ctx is cancelled, reacting to account and network change
// notifications. The subscription is guaranteed to be torn down on exit.
func (s *Session) Run(ctx context.Context) {
	defer s.subscription.Unsubscribe()

	accounts := s.watcher.WatchAccounts(ctx)
	networks := s.watcher.WatchNetwork(ctx)

	for accounts != nil || networks != nil {
		select {
		case <-ctx.Done():
			return
		case account, ok := <-accounts:
			if !ok {
				accounts = nil
				continue
			}
			s.onAccountChange(ctx, account)
		case network, ok := <-networks:
			if !ok {
				networks = nil
				continue
			}
			s.onNetworkChange(ctx, network)
		}
	}
}

func (s *Session) onAccountChange(ctx context.Context, account string) {
	s.mu.Lock()
	if account == s.account {
		s.mu.Unlock()
		return
	}
	s.account = account
	s.mu.Unlock()

	s.logger.WithField("account", account).Info("Viewer account changed")
	accountChanges.Inc()
	s.rebootstrap(ctx)
}

func (s *Session) onNetworkChange(ctx context.Context, network string) {
	s.mu.Lock()
	if network == s.network {
		s.mu.Unlock()
		return
	}
	s.network = network
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"net_id":  network,
		"network": celo.NetworkName(network),
	}).Info("Network changed")
	s.rebootstrap(ctx)
}

// rebootstrap re-seeds the store for the current viewer account and swings
// the subscription over to the resulting address. On failure the store keeps
// its previous (possibly empty) state until the next externally triggered
// attempt.
func (s *Session) rebootstrap(ctx context.Context) {
	account := s.CurrentAccount()
	if account == "" {
		s.logger.Warn("No viewer account available, suspending subscription")
		s.subscription.Unsubscribe()
		return
	}

	address, err := s.loader.Bootstrap(ctx, account)
	if err != nil {
		if errors.Is(err, ErrSuperseded) {
			return
		}
		s.logger.WithError(err).Error("Bootstrap failed, keeping previous state")
		return
	}
	if address == "" {
		return
	}

	s.subscription.Subscribe(ctx, address, account)
}
