package tracker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbarak/multisigwatch/internal/tracker"
	"github.com/nbarak/multisigwatch/internal/tracker/mocks"
)

//go:generate moq -out mocks/bootstrapper.go -pkg mocks -skip-ensure . Bootstrapper
//go:generate moq -out mocks/subscription.go -pkg mocks -skip-ensure . Subscription
//go:generate moq -out mocks/change_watcher.go -pkg mocks -skip-ensure . ChangeWatcher

func TestSessionBootstrapsOnAccountAndNetworkChanges(t *testing.T) {
	accounts := make(chan string)
	networks := make(chan string)
	watcherMock := &mocks.ChangeWatcherMock{
		WatchAccountsFunc: func(ctx context.Context) <-chan string { return accounts },
		WatchNetworkFunc:  func(ctx context.Context) <-chan string { return networks },
	}

	var mu sync.Mutex
	bootstrapErr := error(nil)
	loaderMock := &mocks.BootstrapperMock{
		BootstrapFunc: func(ctx context.Context, viewerAccount string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			if bootstrapErr != nil {
				return "", bootstrapErr
			}
			return "0xwallet", nil
		},
	}
	subscriptionMock := &mocks.SubscriptionMock{
		SubscribeFunc:   func(ctx context.Context, address, viewerAccount string) {},
		UnsubscribeFunc: func() {},
	}

	session := tracker.NewSession(logrus.New(), loaderMock, subscriptionMock, watcherMock)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		session.Run(ctx)
	}()

	// first account observed: bootstrap and subscribe
	accounts <- "0x1"
	require.Eventually(t, func() bool {
		return len(subscriptionMock.SubscribeCalls()) == 1
	}, time.Second, time.Millisecond*10)
	assert.Equal(t, "0xwallet", subscriptionMock.SubscribeCalls()[0].Address)
	assert.Equal(t, "0x1", subscriptionMock.SubscribeCalls()[0].ViewerAccount)
	assert.Equal(t, "0x1", session.CurrentAccount())

	// unchanged account: nothing happens
	accounts <- "0x1"
	// account change: a fresh bootstrap with the new viewer
	accounts <- "0x2"
	require.Eventually(t, func() bool {
		return len(subscriptionMock.SubscribeCalls()) == 2
	}, time.Second, time.Millisecond*10)
	assert.Equal(t, "0x2", subscriptionMock.SubscribeCalls()[1].ViewerAccount)
	assert.Equal(t, 2, len(loaderMock.BootstrapCalls()))

	// network change: re-bootstrap for the current viewer
	networks <- "44787"
	require.Eventually(t, func() bool {
		return len(loaderMock.BootstrapCalls()) == 3
	}, time.Second, time.Millisecond*10)
	assert.Equal(t, "0x2", loaderMock.BootstrapCalls()[2].ViewerAccount)

	// a failing bootstrap leaves the subscription untouched
	mu.Lock()
	bootstrapErr = errors.New("node unavailable")
	mu.Unlock()
	networks <- "42220"
	require.Eventually(t, func() bool {
		return len(loaderMock.BootstrapCalls()) == 4
	}, time.Second, time.Millisecond*10)
	assert.Equal(t, 3, len(subscriptionMock.SubscribeCalls()))

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("session did not stop after context cancellation")
	}
	// teardown is guaranteed on exit
	assert.NotEmpty(t, subscriptionMock.UnsubscribeCalls())
}

func TestSessionSuspendsWithoutAccount(t *testing.T) {
	accounts := make(chan string)
	watcherMock := &mocks.ChangeWatcherMock{
		WatchAccountsFunc: func(ctx context.Context) <-chan string { return accounts },
		WatchNetworkFunc:  func(ctx context.Context) <-chan string { return make(chan string) },
	}
	loaderMock := &mocks.BootstrapperMock{
		BootstrapFunc: func(ctx context.Context, viewerAccount string) (string, error) {
			return "0xwallet", nil
		},
	}
	subscriptionMock := &mocks.SubscriptionMock{
		SubscribeFunc:   func(ctx context.Context, address, viewerAccount string) {},
		UnsubscribeFunc: func() {},
	}

	session := tracker.NewSession(logrus.New(), loaderMock, subscriptionMock, watcherMock)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go session.Run(ctx)

	accounts <- "0x1"
	require.Eventually(t, func() bool {
		return len(subscriptionMock.SubscribeCalls()) == 1
	}, time.Second, time.Millisecond*10)

	// the account went away: no bootstrap, subscription suspended
	accounts <- ""
	require.Eventually(t, func() bool {
		return len(subscriptionMock.UnsubscribeCalls()) == 1
	}, time.Second, time.Millisecond*10)
	assert.Equal(t, 1, len(loaderMock.BootstrapCalls()))
}
