package celo

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/pipeline/chans"
)

// StreamEvents polls the node for new logs emitted by the given contract
// address and delivers them as decoded events, in log order. The channel is
// closed when ctx is cancelled; cancelling is the (idempotent) way to tear
// the subscription down. Transient node errors are logged and do not
// terminate the stream.
func (c *Client) StreamEvents(ctx context.Context, address string) <-chan Event {
	out := make(chan Event)

	go func() {
		defer close(out)

		t := time.NewTicker(c.cfg.EventPollInterval)
		defer t.Stop()

		var nextBlock uint64
		var initialized bool
		for range chans.ReceiveOrDoneSeq(ctx, t.C) {
			head, err := c.blockNumber(ctx)
			if err != nil {
				c.logger.WithError(err).Error("Failed to get head block number for event poll")
				continue
			}
			if !initialized {
				// only events emitted after the subscription opened
				nextBlock = head + 1
				initialized = true
				continue
			}
			if head < nextBlock {
				c.logger.WithField("head", head).Debug("No new blocks yet")
				continue
			}

			logs, err := c.getLogs(ctx, address, nextBlock, head)
			if err != nil {
				c.logger.WithError(err).Error("Failed to get contract logs")
				continue
			}

			for _, lg := range logs {
				ev, err := decodeLog(lg)
				if err != nil {
					c.logger.WithFields(logrus.Fields{
						"topics": lg.Topics,
						"data":   lg.Data,
					}).WithError(err).Warn("Dropping malformed contract log")
					malformedLogs.Inc()
					continue
				}
				if !chans.SendOrDone(ctx, out, ev) {
					return
				}
				decodedEvents.WithLabelValues(ev.Kind()).Inc()
			}
			nextBlock = head + 1
		}
	}()

	return out
}

func (c *Client) getLogs(ctx context.Context, address string, fromBlock, toBlock uint64) ([]*rpcLog, error) {
	params := map[string]any{
		"address":   address,
		"fromBlock": fmt.Sprintf("0x%x", fromBlock),
		"toBlock":   fmt.Sprintf("0x%x", toBlock),
	}

	var logs []*rpcLog
	err := c.call(ctx, ethGetLogs, &logs, params)
	if err != nil {
		return nil, fmt.Errorf("get logs: %w", err)
	}

	return logs, nil
}

// WatchAccounts periodically re-reads the node's account list and emits the
// primary account whenever it changes, starting with the value seen on the
// first successful poll. An empty string means no account is available.
func (c *Client) WatchAccounts(ctx context.Context) <-chan string {
	return c.watchString(ctx, "account", func(ctx context.Context) (string, error) {
		accounts, err := c.accounts(ctx)
		if err != nil {
			return "", err
		}
		if len(accounts) == 0 {
			return "", nil
		}
		return accounts[0], nil
	})
}

// WatchNetwork periodically re-reads the node's network id and emits it
// whenever it changes. A change of network identifies a new connection: the
// session layer reacts with a fresh bootstrap.
func (c *Client) WatchNetwork(ctx context.Context) <-chan string {
	return c.watchString(ctx, "network", c.networkID)
}

func (c *Client) watchString(ctx context.Context, what string, read func(context.Context) (string, error)) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)

		t := time.NewTicker(c.cfg.ChangePollInterval)
		defer t.Stop()

		var last string
		var seen bool
		for range chans.ReceiveOrDoneSeq(ctx, t.C) {
			current, err := read(ctx)
			if err != nil {
				c.logger.WithField("watch", what).WithError(err).Error("Periodic re-check failed")
				continue
			}
			if seen && current == last {
				continue
			}
			if !chans.SendOrDone(ctx, out, current) {
				return
			}
			last = current
			seen = true
		}
	}()

	return out
}
