package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	restapi "github.com/nbarak/multisigwatch/api/rest"
	"github.com/nbarak/multisigwatch/api/rest/mocks"
	"github.com/nbarak/multisigwatch/internal/celo"
	"github.com/nbarak/multisigwatch/internal/tracker"
	"github.com/nbarak/multisigwatch/internal/wallet"
)

//go:generate moq -out mocks/state_reader.go -pkg mocks -skip-ensure . StateReader
//go:generate moq -out mocks/event_journal.go -pkg mocks -skip-ensure . EventJournal
//go:generate moq -out mocks/account_source.go -pkg mocks -skip-ensure . AccountSource
//go:generate moq -out mocks/submitter.go -pkg mocks -skip-ensure . Submitter

func TestGetWallet(t *testing.T) {
	tests := map[string]struct {
		state        wallet.State
		account      string
		expectedResp *restapi.GetWalletResponse
		expectedErr  *restapi.Err
	}{
		"not bootstrapped yet": {
			state: wallet.State{},
			expectedErr: &restapi.Err{
				StatusCode: http.StatusServiceUnavailable,
				Message:    "Wallet state not bootstrapped yet, please retry later",
			},
		},
		"success": {
			state: wallet.State{
				Address:                  "0xaaaa",
				Balance:                  "2500000000000000000",
				Owners:                   []string{"0x1111", "0x2222"},
				NumConfirmationsRequired: 2,
				TransactionCount:         3,
			},
			account: "0x1111",
			expectedResp: &restapi.GetWalletResponse{
				Address:                  "0xaaaa",
				Balance:                  "2500000000000000000",
				BalanceDisplay:           "2.5",
				Owners:                   []string{"0x1111", "0x2222"},
				NumConfirmationsRequired: 2,
				TransactionCount:         3,
				ViewerAccount:            "0x1111",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			stateMock := &mocks.StateReaderMock{
				SnapshotFunc: func() wallet.State {
					return test.state
				},
			}
			accountsMock := &mocks.AccountSourceMock{
				CurrentAccountFunc: func() string {
					return test.account
				},
			}
			s := restapi.NewServer(logrus.New(), stateMock, nil, accountsMock, nil)
			resp, err := s.GetWallet(context.Background(), &restapi.GetWalletRequest{})
			assert.Equal(t, 1, len(stateMock.SnapshotCalls()))
			if test.expectedErr != nil {
				require.Error(t, err)
				castedErr := &restapi.Err{}
				if errors.As(err, &castedErr) {
					assert.Equal(t, test.expectedErr, castedErr)
					return
				}
				assert.Equal(t, test.expectedErr.Message, err.Error())
				return
			}
			require.NoError(t, err)

			assert.Equal(t, test.expectedResp, resp)
		})
	}
}

func TestListTransactions(t *testing.T) {
	tests := map[string]struct {
		state        wallet.State
		expectedResp *restapi.ListTransactionsResponse
		expectedErr  *restapi.Err
	}{
		"not bootstrapped yet": {
			state: wallet.State{},
			expectedErr: &restapi.Err{
				StatusCode: http.StatusServiceUnavailable,
				Message:    "Wallet state not bootstrapped yet, please retry later",
			},
		},
		"no transactions": {
			state: wallet.State{
				Address: "0xaaaa",
				Balance: "0",
			},
			expectedResp: &restapi.ListTransactionsResponse{
				Transactions: []*restapi.Transaction{},
			},
		},
		"success": {
			state: wallet.State{
				Address:          "0xaaaa",
				Balance:          "0",
				TransactionCount: 2,
				Transactions: []wallet.Transaction{
					{
						TxIndex:                     1,
						To:                          "0xbbbb",
						Amount:                      decimal.RequireFromString("1000000000000000000"),
						Purpose:                     "rent",
						NumConfirmations:            2,
						Executed:                    true,
						IsConfirmedByCurrentAccount: true,
					},
					{
						TxIndex:          0,
						To:               "0xcccc",
						Amount:           decimal.RequireFromString("250000000000000000"),
						NumConfirmations: 1,
					},
				},
			},
			expectedResp: &restapi.ListTransactionsResponse{
				Transactions: []*restapi.Transaction{
					{
						TxIndex:           1,
						To:                "0xbbbb",
						Amount:            "1000000000000000000",
						AmountDisplay:     "1",
						Purpose:           "rent",
						NumConfirmations:  2,
						Executed:          true,
						ConfirmedByViewer: true,
					},
					{
						TxIndex:          0,
						To:               "0xcccc",
						Amount:           "250000000000000000",
						AmountDisplay:    "0.25",
						NumConfirmations: 1,
					},
				},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			stateMock := &mocks.StateReaderMock{
				SnapshotFunc: func() wallet.State {
					return test.state
				},
			}
			s := restapi.NewServer(logrus.New(), stateMock, nil, nil, nil)
			resp, err := s.ListTransactions(context.Background(), &restapi.ListTransactionsRequest{})
			assert.Equal(t, 1, len(stateMock.SnapshotCalls()))
			if test.expectedErr != nil {
				require.Error(t, err)
				castedErr := &restapi.Err{}
				if errors.As(err, &castedErr) {
					assert.Equal(t, test.expectedErr, castedErr)
					return
				}
				assert.Equal(t, test.expectedErr.Message, err.Error())
				return
			}
			require.NoError(t, err)

			assert.Equal(t, test.expectedResp, resp)
		})
	}
}

func TestListRecentEvents(t *testing.T) {
	now := time.Now().UTC()
	journalMock := &mocks.EventJournalMock{
		RecentFunc: func() []tracker.Entry {
			return []tracker.Entry{
				{Kind: "ConfirmTransaction", ObservedAt: now, Event: celo.ConfirmTransactionEvent{Owner: "0x1111", TxIndex: 0}},
				{Kind: "Deposit", ObservedAt: now.Add(-time.Second), Event: celo.DepositEvent{Sender: "0x1111"}},
			}
		},
	}

	s := restapi.NewServer(logrus.New(), nil, journalMock, nil, nil)
	resp, err := s.ListRecentEvents(context.Background(), &restapi.ListRecentEventsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, len(journalMock.RecentCalls()))
	assert.Equal(t, &restapi.ListRecentEventsResponse{
		Events: []*restapi.Event{
			{Kind: "ConfirmTransaction", ObservedAt: now},
			{Kind: "Deposit", ObservedAt: now.Add(-time.Second)},
		},
	}, resp)
}

func TestDeposit(t *testing.T) {
	tests := map[string]struct {
		req                    *restapi.DepositRequest
		account                string
		submitterErr           error
		expectedForwardedFrom  string
		expectedForwardedValue string
		expectedSubmitterCalls int
		expectedResp           *restapi.DepositResponse
		expectedErr            *restapi.Err
	}{
		"no viewer account": {
			req: &restapi.DepositRequest{Amount: "1.5"},
			expectedErr: &restapi.Err{
				StatusCode: http.StatusServiceUnavailable,
				Message:    "No account available on the node to send the call from",
			},
		},
		"invalid amount": {
			req:     &restapi.DepositRequest{Amount: "abc"},
			account: "0x1111",
			expectedErr: &restapi.Err{
				StatusCode: http.StatusBadRequest,
				Message:    "Invalid 'amount': expected a positive decimal number",
			},
		},
		"zero amount": {
			req:     &restapi.DepositRequest{Amount: "0"},
			account: "0x1111",
			expectedErr: &restapi.Err{
				StatusCode: http.StatusBadRequest,
				Message:    "Invalid 'amount': expected a positive decimal number",
			},
		},
		"negative amount": {
			req:     &restapi.DepositRequest{Amount: "-2"},
			account: "0x1111",
			expectedErr: &restapi.Err{
				StatusCode: http.StatusBadRequest,
				Message:    "Invalid 'amount': expected a positive decimal number",
			},
		},
		"amount finer than one base unit": {
			req:     &restapi.DepositRequest{Amount: "0.0000000000000000001"},
			account: "0x1111",
			expectedErr: &restapi.Err{
				StatusCode: http.StatusBadRequest,
				Message:    "Invalid 'amount': expected a positive decimal number",
			},
		},
		"node failure": {
			req:                    &restapi.DepositRequest{Amount: "1.5"},
			account:                "0x1111",
			submitterErr:           errors.New("dummy error"),
			expectedForwardedFrom:  "0x1111",
			expectedForwardedValue: "1500000000000000000",
			expectedSubmitterCalls: 1,
			expectedErr: &restapi.Err{
				StatusCode: http.StatusBadGateway,
				Message:    "Could not forward deposit call to the node",
			},
		},
		"success": {
			req:                    &restapi.DepositRequest{Amount: "1.5"},
			account:                "0x1111",
			expectedForwardedFrom:  "0x1111",
			expectedForwardedValue: "1500000000000000000",
			expectedSubmitterCalls: 1,
			expectedResp:           &restapi.DepositResponse{Ok: true},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			accountsMock := &mocks.AccountSourceMock{
				CurrentAccountFunc: func() string {
					return test.account
				},
			}
			submitterMock := &mocks.SubmitterMock{
				DepositFunc: func(ctx context.Context, from string, amount decimal.Decimal) error {
					assert.Equal(t, test.expectedForwardedFrom, from)
					assert.Equal(t, test.expectedForwardedValue, amount.String())
					return test.submitterErr
				},
			}
			s := restapi.NewServer(logrus.New(), nil, nil, accountsMock, submitterMock)
			resp, err := s.Deposit(context.Background(), test.req)
			assert.Equal(t, test.expectedSubmitterCalls, len(submitterMock.DepositCalls()))
			if test.expectedErr != nil {
				require.Error(t, err)
				castedErr := &restapi.Err{}
				if errors.As(err, &castedErr) {
					assert.Equal(t, test.expectedErr, castedErr)
					return
				}
				assert.Equal(t, test.expectedErr.Message, err.Error())
				return
			}
			require.NoError(t, err)

			assert.Equal(t, test.expectedResp, resp)
		})
	}
}

func TestSubmitTransaction(t *testing.T) {
	tests := map[string]struct {
		req                    *restapi.SubmitTransactionRequest
		account                string
		submitterErr           error
		expectedForwardedTo    string
		expectedForwardedValue string
		expectedSubmitterCalls int
		expectedResp           *restapi.SubmitTransactionResponse
		expectedErr            *restapi.Err
	}{
		"no viewer account": {
			req: &restapi.SubmitTransactionRequest{
				To:     "0x7a250d5630b4cf539739df2c5dacb4c659f2488d",
				Amount: "1",
			},
			expectedErr: &restapi.Err{
				StatusCode: http.StatusServiceUnavailable,
				Message:    "No account available on the node to send the call from",
			},
		},
		"invalid recipient address": {
			req: &restapi.SubmitTransactionRequest{
				To:     "0x1234",
				Amount: "1",
			},
			account: "0x1111",
			expectedErr: &restapi.Err{
				StatusCode: http.StatusBadRequest,
				Message:    restapi.InvalidAddrMessage,
			},
		},
		"invalid amount": {
			req: &restapi.SubmitTransactionRequest{
				To:     "0x7a250d5630b4cf539739df2c5dacb4c659f2488d",
				Amount: "-1",
			},
			account: "0x1111",
			expectedErr: &restapi.Err{
				StatusCode: http.StatusBadRequest,
				Message:    "Invalid 'amount': expected a positive decimal number",
			},
		},
		"amount finer than one base unit": {
			req: &restapi.SubmitTransactionRequest{
				To:     "0x7a250d5630b4cf539739df2c5dacb4c659f2488d",
				Amount: "1.0000000000000000005",
			},
			account: "0x1111",
			expectedErr: &restapi.Err{
				StatusCode: http.StatusBadRequest,
				Message:    "Invalid 'amount': expected a positive decimal number",
			},
		},
		"node failure": {
			req: &restapi.SubmitTransactionRequest{
				To:      "0x7a250d5630b4cf539739df2c5dacb4c659f2488d",
				Amount:  "0.25",
				Purpose: "groceries",
			},
			account:                "0x1111",
			submitterErr:           errors.New("dummy error"),
			expectedForwardedTo:    "0x7a250d5630b4cf539739df2c5dacb4c659f2488d",
			expectedForwardedValue: "250000000000000000",
			expectedSubmitterCalls: 1,
			expectedErr: &restapi.Err{
				StatusCode: http.StatusBadGateway,
				Message:    "Could not forward submitTransaction call to the node",
			},
		},
		"address normalized before forwarding": {
			req: &restapi.SubmitTransactionRequest{
				To:      "  7A250D5630B4CF539739DF2C5DACB4C659F2488D ",
				Amount:  "0.25",
				Purpose: "groceries",
			},
			account:                "0x1111",
			expectedForwardedTo:    "0x7a250d5630b4cf539739df2c5dacb4c659f2488d",
			expectedForwardedValue: "250000000000000000",
			expectedSubmitterCalls: 1,
			expectedResp:           &restapi.SubmitTransactionResponse{Ok: true},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			accountsMock := &mocks.AccountSourceMock{
				CurrentAccountFunc: func() string {
					return test.account
				},
			}
			submitterMock := &mocks.SubmitterMock{
				SubmitTransactionFunc: func(ctx context.Context, from, to string, amount decimal.Decimal, purpose string) error {
					assert.Equal(t, test.account, from)
					assert.Equal(t, test.expectedForwardedTo, to)
					assert.Equal(t, test.expectedForwardedValue, amount.String())
					assert.Equal(t, test.req.Purpose, purpose)
					return test.submitterErr
				},
			}
			s := restapi.NewServer(logrus.New(), nil, nil, accountsMock, submitterMock)
			resp, err := s.SubmitTransaction(context.Background(), test.req)
			assert.Equal(t, test.expectedSubmitterCalls, len(submitterMock.SubmitTransactionCalls()))
			if test.expectedErr != nil {
				require.Error(t, err)
				castedErr := &restapi.Err{}
				if errors.As(err, &castedErr) {
					assert.Equal(t, test.expectedErr, castedErr)
					return
				}
				assert.Equal(t, test.expectedErr.Message, err.Error())
				return
			}
			require.NoError(t, err)

			assert.Equal(t, test.expectedResp, resp)
		})
	}
}

// The txIndex intents read a path parameter so they are exercised through a
// mux with the registered routes rather than by calling the handlers directly.
func TestTxIndexIntents(t *testing.T) {
	tests := map[string]struct {
		path                   string
		account                string
		submitterErr           error
		expectedTxIndex        uint64
		expectedSubmitterCalls int
		expectedStatusCode     int
	}{
		"confirm success": {
			path:                   "/api/v1/wallet/transactions/3/confirm",
			account:                "0x1111",
			expectedTxIndex:        3,
			expectedSubmitterCalls: 1,
			expectedStatusCode:     http.StatusOK,
		},
		"revoke success": {
			path:                   "/api/v1/wallet/transactions/0/revoke",
			account:                "0x1111",
			expectedTxIndex:        0,
			expectedSubmitterCalls: 1,
			expectedStatusCode:     http.StatusOK,
		},
		"execute success": {
			path:                   "/api/v1/wallet/transactions/12/execute",
			account:                "0x1111",
			expectedTxIndex:        12,
			expectedSubmitterCalls: 1,
			expectedStatusCode:     http.StatusOK,
		},
		"invalid txIndex": {
			path:               "/api/v1/wallet/transactions/notanumber/confirm",
			account:            "0x1111",
			expectedStatusCode: http.StatusBadRequest,
		},
		"negative txIndex": {
			path:               "/api/v1/wallet/transactions/-1/execute",
			account:            "0x1111",
			expectedStatusCode: http.StatusBadRequest,
		},
		"no viewer account": {
			path:               "/api/v1/wallet/transactions/3/confirm",
			expectedStatusCode: http.StatusServiceUnavailable,
		},
		"node failure": {
			path:                   "/api/v1/wallet/transactions/3/revoke",
			account:                "0x1111",
			submitterErr:           errors.New("dummy error"),
			expectedTxIndex:        3,
			expectedSubmitterCalls: 1,
			expectedStatusCode:     http.StatusBadGateway,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			accountsMock := &mocks.AccountSourceMock{
				CurrentAccountFunc: func() string {
					return test.account
				},
			}
			intent := func(ctx context.Context, from string, txIndex uint64) error {
				assert.Equal(t, test.account, from)
				assert.Equal(t, test.expectedTxIndex, txIndex)
				return test.submitterErr
			}
			submitterMock := &mocks.SubmitterMock{
				ConfirmTransactionFunc: intent,
				RevokeConfirmationFunc: intent,
				ExecuteTransactionFunc: intent,
			}
			s := restapi.NewServer(logrus.New(), nil, nil, accountsMock, submitterMock)

			logger := logrus.New()
			mux := http.NewServeMux()
			restapi.RegisterFunc(logger, mux, http.MethodPost, "/api/v1/wallet/transactions/{txIndex}/confirm", s.ConfirmTransaction)
			restapi.RegisterFunc(logger, mux, http.MethodPost, "/api/v1/wallet/transactions/{txIndex}/revoke", s.RevokeConfirmation)
			restapi.RegisterFunc(logger, mux, http.MethodPost, "/api/v1/wallet/transactions/{txIndex}/execute", s.ExecuteTransaction)

			req := httptest.NewRequest(http.MethodPost, test.path, bytes.NewReader(nil))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, test.expectedStatusCode, rec.Code)
			calls := len(submitterMock.ConfirmTransactionCalls()) +
				len(submitterMock.RevokeConfirmationCalls()) +
				len(submitterMock.ExecuteTransactionCalls())
			assert.Equal(t, test.expectedSubmitterCalls, calls)
			if test.expectedStatusCode == http.StatusOK {
				var body struct {
					Ok bool `json:"ok"`
				}
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.True(t, body.Ok)
			}
		})
	}
}
