package celo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

const (
	ethCall            rpcMethod = "eth_call"
	ethSendTransaction rpcMethod = "eth_sendTransaction"
	ethGetLogs         rpcMethod = "eth_getLogs"
	ethBlockNumber     rpcMethod = "eth_blockNumber"
	ethAccounts        rpcMethod = "eth_accounts"
	netVersion         rpcMethod = "net_version"
)

type rpcMethod string

// ID returns the ID associated with the rpc method used in json-rpc requests.
func (rm rpcMethod) ID() int {
	switch rm {
	case ethCall:
		return 1
	case ethSendTransaction:
		return 2
	case ethGetLogs:
		return 3
	case ethBlockNumber:
		return 4
	case ethAccounts:
		return 5
	case netVersion:
		return 6
	default:
		return -1
	}
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Config carries the node endpoint and the addresses of the two contracts the
// client talks to: the multisig wallet itself and the ERC-20 token it holds.
type Config struct {
	NodeAddr           string
	WalletAddr         string
	TokenAddr          string
	EventPollInterval  time.Duration
	ChangePollInterval time.Duration
}

type Client struct {
	logger     *logrus.Logger
	httpClient *http.Client
	cfg        Config
}

func New(logger *logrus.Logger, httpClient *http.Client, cfg Config) *Client {
	return &Client{
		logger:     logger,
		httpClient: httpClient,
		cfg:        cfg,
	}
}

func (c *Client) call(ctx context.Context, method rpcMethod, result any, rpcParams ...any) error {
	req, err := c.newRequest(ctx, method, rpcParams...)
	if err != nil {
		return fmt.Errorf("create new http request: %w", err)
	}

	resp, err := c.doRequestWithRetry(req, string(method))
	if err != nil {
		rpcFailures.WithLabelValues(string(method)).Inc()
		return fmt.Errorf("do request with retry: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.WithFields(logrus.Fields{
			"method":   method,
			"response": string(body),
		}).Error("Node returned unexpected status code")
		rpcFailures.WithLabelValues(string(method)).Inc()
		return fmt.Errorf("received unexpected status: %s", resp.Status)
	}

	var response struct {
		Result json.RawMessage `json:"result"`
		Err    *rpcError       `json:"error"`
	}
	err = json.NewDecoder(resp.Body).Decode(&response)
	if err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	if response.Err != nil {
		rpcFailures.WithLabelValues(string(method)).Inc()
		return response.Err
	}

	if result != nil {
		err = json.Unmarshal(response.Result, result)
		if err != nil {
			return fmt.Errorf("unmarshal rpc result: %w", err)
		}
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method rpcMethod, rpcParams ...any) (*http.Request, error) {
	payload := map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  rpcParams,
		"id":      method.ID(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("could not marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.NodeAddr, bytes.NewBuffer(data))
	if err != nil {
		return nil, fmt.Errorf("could not make new request with context: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Length", strconv.Itoa(len(data)))

	return req, nil
}

func (c *Client) doRequestWithRetry(req *http.Request, method string) (*http.Response, error) {
	bk := newExponentialBackoffConfig()
	resp, err := backoff.RetryWithData[*http.Response](func() (*http.Response, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return nil, backoff.Permanent(fmt.Errorf("could not make http call: %w", err))
			}
			c.logger.WithField("method", method).WithError(err).Error("Failed to make http request, retrying...")
			return nil, fmt.Errorf("http request failed: %w", err)
		}
		return resp, nil
	}, bk)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func newExponentialBackoffConfig() *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(time.Second*3),
		backoff.WithMaxInterval(time.Second),
		backoff.WithInitialInterval(time.Millisecond*100),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0.2),
	)
}

func (c *Client) blockNumber(ctx context.Context) (uint64, error) {
	var result string
	err := c.call(ctx, ethBlockNumber, &result)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}

	return parseHexUint(result)
}

func (c *Client) accounts(ctx context.Context) ([]string, error) {
	var result []string
	err := c.call(ctx, ethAccounts, &result)
	if err != nil {
		return nil, fmt.Errorf("get node accounts: %w", err)
	}

	return result, nil
}

func (c *Client) networkID(ctx context.Context) (string, error) {
	var result string
	err := c.call(ctx, netVersion, &result)
	if err != nil {
		return "", fmt.Errorf("get network id: %w", err)
	}

	return result, nil
}

// ethCallHex performs a read-only contract call and returns the raw hex result.
func (c *Client) ethCallHex(ctx context.Context, to, data string) (string, error) {
	params := map[string]string{
		"to":   to,
		"data": data,
	}

	var result string
	err := c.call(ctx, ethCall, &result, params, "latest")
	if err != nil {
		return "", err
	}

	return result, nil
}

// sendTransaction forwards a state-changing contract call to the node to be
// signed by its unlocked account. The returned value is the transaction hash.
func (c *Client) sendTransaction(ctx context.Context, from, to, data string) (string, error) {
	params := map[string]string{
		"from": from,
		"to":   to,
		"data": data,
	}

	var txHash string
	err := c.call(ctx, ethSendTransaction, &txHash, params)
	if err != nil {
		return "", err
	}

	return txHash, nil
}

func parseHexUint(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex quantity %q: %w", s, err)
	}

	return v, nil
}

// NetworkName maps a net_version id to a human readable Celo network name.
func NetworkName(netID string) string {
	switch netID {
	case "42220":
		return "Celo Main Network"
	case "44787":
		return "Alfajores Test Network"
	case "62320":
		return "Baklava Test Network"
	case "5777":
		return "Dev Network"
	default:
		return "unknown network"
	}
}
