package tracker_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbarak/multisigwatch/internal/celo"
	"github.com/nbarak/multisigwatch/internal/tracker"
	"github.com/nbarak/multisigwatch/internal/tracker/mocks"
	"github.com/nbarak/multisigwatch/internal/wallet"
)

//go:generate moq -out mocks/event_streamer.go -pkg mocks -skip-ensure . EventStreamer

// TestSubscribeAppliesEventsInOrder plays the full wallet lifecycle through a
// real store and mapper: bootstrap, submit, confirm by the viewer, confirm by
// another owner, execute.
func TestSubscribeAppliesEventsInOrder(t *testing.T) {
	store := wallet.NewStore()
	store.Apply(wallet.Set{Snapshot: wallet.State{
		Address:                  "0xA",
		Balance:                  "0",
		Owners:                   []string{"0x1", "0x2"},
		NumConfirmationsRequired: 2,
		TransactionCount:         0,
		Transactions:             []wallet.Transaction{},
	}})

	events := make(chan celo.Event)
	streamerMock := &mocks.EventStreamerMock{
		StreamEventsFunc: func(ctx context.Context, address string) <-chan celo.Event {
			assert.Equal(t, "0xA", address)
			return events
		},
	}

	logger := logrus.New()
	manager := tracker.NewManager(logger, streamerMock, wallet.NewMapper(logger), store, tracker.NewJournal(10))
	manager.Subscribe(context.Background(), "0xA", "0x1")
	require.True(t, manager.Subscribed())

	amount := decimal.RequireFromString("1000000000000000000")
	events <- celo.SubmitTransactionEvent{Owner: "0x1", TxIndex: 0, To: "0xB", Amount: amount, Purpose: "rent"}
	events <- celo.ConfirmTransactionEvent{Owner: "0x1", TxIndex: 0}
	events <- celo.ConfirmTransactionEvent{Owner: "0x2", TxIndex: 0}
	events <- celo.ExecuteTransactionEvent{Owner: "0x1", TxIndex: 0}
	close(events)

	// the stream ended; the manager transitions back to idle
	require.Eventually(t, func() bool {
		return !manager.Subscribed()
	}, time.Second, time.Millisecond*10)

	state := store.Snapshot()
	assert.Equal(t, 1, state.TransactionCount)
	require.Len(t, state.Transactions, 1)
	assert.Equal(t, wallet.Transaction{
		TxIndex:                     0,
		To:                          "0xB",
		Amount:                      amount,
		Purpose:                     "rent",
		Executed:                    true,
		NumConfirmations:            2,
		IsConfirmedByCurrentAccount: true,
	}, state.Transactions[0])
}

func TestUnsubscribeStopsEventDelivery(t *testing.T) {
	store := wallet.NewStore()
	events := make(chan celo.Event, 1)
	streamerMock := &mocks.EventStreamerMock{
		StreamEventsFunc: func(ctx context.Context, address string) <-chan celo.Event {
			return events
		},
	}

	logger := logrus.New()
	manager := tracker.NewManager(logger, streamerMock, wallet.NewMapper(logger), store, tracker.NewJournal(10))
	manager.Subscribe(context.Background(), "0xA", "0x1")

	manager.Unsubscribe()
	assert.False(t, manager.Subscribed())

	// events sent after teardown must never reach the store
	events <- celo.SubmitTransactionEvent{Owner: "0x1", TxIndex: 0, To: "0xB", Amount: decimal.NewFromInt(1)}
	time.Sleep(time.Millisecond * 50)
	assert.Empty(t, store.Snapshot().Transactions)

	// cancelling twice is safe
	manager.Unsubscribe()
}

func TestSubscribeAddressChangeReopensStream(t *testing.T) {
	store := wallet.NewStore()
	streamerMock := &mocks.EventStreamerMock{
		StreamEventsFunc: func(ctx context.Context, address string) <-chan celo.Event {
			events := make(chan celo.Event)
			go func() {
				<-ctx.Done()
				close(events)
			}()
			return events
		},
	}

	logger := logrus.New()
	manager := tracker.NewManager(logger, streamerMock, wallet.NewMapper(logger), store, tracker.NewJournal(10))
	defer manager.Unsubscribe()

	manager.Subscribe(context.Background(), "0xA", "0x1")
	// same address and viewer: no-op
	manager.Subscribe(context.Background(), "0xA", "0x1")
	require.Equal(t, 1, len(streamerMock.StreamEventsCalls()))

	// new address: the old stream is torn down and a new one opened
	manager.Subscribe(context.Background(), "0xB", "0x1")
	require.Equal(t, 2, len(streamerMock.StreamEventsCalls()))
	assert.Equal(t, "0xB", streamerMock.StreamEventsCalls()[1].Address)
	assert.True(t, manager.Subscribed())

	// viewer change alone also reopens, to re-attribute confirmations
	manager.Subscribe(context.Background(), "0xB", "0x2")
	require.Equal(t, 3, len(streamerMock.StreamEventsCalls()))
}
