package tracker

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/pipeline/chans"

	"github.com/nbarak/multisigwatch/internal/celo"
	"github.com/nbarak/multisigwatch/internal/wallet"
)

type EventStreamer interface {
	StreamEvents(ctx context.Context, address string) <-chan celo.Event
}

type Mapper interface {
	Map(ev celo.Event, viewerAccount string) wallet.Mutation
}

// Manager owns the lifecycle of the contract event subscription: idle until
// an address is known, subscribed while a stream is open. Each inbound event
// is mapped and, if a mutation results, applied to the store: one mutation
// at most per event, no batching, no deduplication.
type Manager struct {
	logger   *logrus.Logger
	streamer EventStreamer
	mapper   Mapper
	store    Store
	journal  *Journal

	mu      sync.Mutex
	address string
	account string
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewManager(logger *logrus.Logger, streamer EventStreamer, mapper Mapper, store Store, journal *Journal) *Manager {
	return &Manager{
		logger:   logger,
		streamer: streamer,
		mapper:   mapper,
		store:    store,
		journal:  journal,
	}
}

// Subscribe opens an event stream for the given wallet address and viewer
// account, first tearing down any existing stream. Re-subscribing with the
// same address and account is a no-op.
func (m *Manager) Subscribe(ctx context.Context, address, viewerAccount string) {
	m.mu.Lock()
	if m.cancel != nil && m.address == address && m.account == viewerAccount {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	m.Unsubscribe()

	streamCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	events := m.streamer.StreamEvents(streamCtx, address)

	m.mu.Lock()
	m.address = address
	m.account = viewerAccount
	m.cancel = cancel
	m.done = done
	m.mu.Unlock()

	subscriptionsOpened.Inc()
	m.logger.WithFields(logrus.Fields{
		"address": address,
		"account": viewerAccount,
	}).Info("Subscribed to wallet events")

	go m.consume(streamCtx, events, viewerAccount, done)
}

func (m *Manager) consume(ctx context.Context, events <-chan celo.Event, viewerAccount string, done chan struct{}) {
	defer close(done)
	// if the stream ended on its own (terminal stream error rather than an
	// explicit teardown), transition back to idle
	defer func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.done == done {
			m.cancel()
			m.cancel = nil
			m.done = nil
			m.address = ""
			m.account = ""
		}
	}()

	for ev := range chans.ReceiveOrDoneSeq(ctx, events) {
		m.journal.Record(ev)
		mutation := m.mapper.Map(ev, viewerAccount)
		if mutation == nil {
			continue
		}
		m.store.Apply(mutation)
		eventsApplied.Inc()
	}

	// the stream ended: either an explicit teardown or a terminal stream
	// error; either way we are idle until an external change resubscribes
	m.logger.Info("Wallet event stream closed")
}

// Unsubscribe tears the current stream down and waits until its consumer has
// stopped, so no event is applied after it returns. Safe to call repeatedly
// and while idle.
func (m *Manager) Unsubscribe() {
	m.mu.Lock()
	cancel := m.cancel
	done := m.done
	m.cancel = nil
	m.done = nil
	m.address = ""
	m.account = ""
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Subscribed reports whether an event stream is currently open.
func (m *Manager) Subscribed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cancel != nil
}
