package rest

import (
	"context"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/nbarak/multisigwatch/internal/tracker"
	"github.com/nbarak/multisigwatch/internal/wallet"
)

const (
	// InvalidAddrMessage is returned when users make a request with an invalid addr.
	InvalidAddrMessage = "Invalid address. Expected a 40-character hex string, with or without '0x' prefix. Example: 0x12ab34cd56ef7890a1234567890abcdef1234567"
)

type StateReader interface {
	Snapshot() wallet.State
}

type EventJournal interface {
	Recent() []tracker.Entry
}

type AccountSource interface {
	CurrentAccount() string
}

// Submitter formats and forwards state-changing wallet calls to the node.
// The store never observes these requests, only their effects through the
// event stream.
type Submitter interface {
	Deposit(ctx context.Context, from string, amount decimal.Decimal) error
	SubmitTransaction(ctx context.Context, from, to string, amount decimal.Decimal, purpose string) error
	ConfirmTransaction(ctx context.Context, from string, txIndex uint64) error
	RevokeConfirmation(ctx context.Context, from string, txIndex uint64) error
	ExecuteTransaction(ctx context.Context, from string, txIndex uint64) error
}

type Server struct {
	logger    *logrus.Logger
	state     StateReader
	journal   EventJournal
	accounts  AccountSource
	submitter Submitter
}

func NewServer(logger *logrus.Logger, state StateReader, journal EventJournal, accounts AccountSource, submitter Submitter) *Server {
	return &Server{
		logger:    logger,
		state:     state,
		journal:   journal,
		accounts:  accounts,
		submitter: submitter,
	}
}

func (s *Server) GetWallet(ctx context.Context, _ *GetWalletRequest) (*GetWalletResponse, error) {
	logger := s.logger.WithContext(ctx)

	state := s.state.Snapshot()
	if state.Address == "" {
		logger.Warn("Wallet state requested before bootstrap completed")
		return nil, NewErrf(http.StatusServiceUnavailable, "Wallet state not bootstrapped yet, please retry later")
	}

	return &GetWalletResponse{
		Address:                  state.Address,
		Balance:                  state.Balance,
		BalanceDisplay:           wallet.DisplayBalance(state.Balance),
		Owners:                   state.Owners,
		NumConfirmationsRequired: state.NumConfirmationsRequired,
		TransactionCount:         state.TransactionCount,
		ViewerAccount:            s.accounts.CurrentAccount(),
	}, nil
}

func (s *Server) ListTransactions(ctx context.Context, _ *ListTransactionsRequest) (*ListTransactionsResponse, error) {
	logger := s.logger.WithContext(ctx)

	state := s.state.Snapshot()
	if state.Address == "" {
		logger.Warn("Transactions requested before bootstrap completed")
		return nil, NewErrf(http.StatusServiceUnavailable, "Wallet state not bootstrapped yet, please retry later")
	}

	txs := make([]*Transaction, 0, len(state.Transactions))
	for _, tx := range state.Transactions {
		txs = append(txs, &Transaction{
			TxIndex:           tx.TxIndex,
			To:                tx.To,
			Amount:            tx.Amount.String(),
			AmountDisplay:     wallet.DisplayAmount(tx.Amount),
			Purpose:           tx.Purpose,
			Executed:          tx.Executed,
			NumConfirmations:  tx.NumConfirmations,
			ConfirmedByViewer: tx.IsConfirmedByCurrentAccount,
		})
	}

	return &ListTransactionsResponse{
		Transactions: txs,
	}, nil
}

func (s *Server) ListRecentEvents(_ context.Context, _ *ListRecentEventsRequest) (*ListRecentEventsResponse, error) {
	entries := s.journal.Recent()

	events := make([]*Event, 0, len(entries))
	for _, entry := range entries {
		events = append(events, &Event{
			Kind:       entry.Kind,
			ObservedAt: entry.ObservedAt,
		})
	}

	return &ListRecentEventsResponse{
		Events: events,
	}, nil
}

func (s *Server) Deposit(ctx context.Context, req *DepositRequest) (*DepositResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("amount", req.Amount)

	from, err := s.viewerAccount(logger)
	if err != nil {
		return nil, err
	}
	amount, err := parseDisplayAmount(req.Amount)
	if err != nil {
		logger.Warn("Invalid deposit amount")
		return nil, NewErrf(http.StatusBadRequest, "Invalid 'amount': expected a positive decimal number")
	}

	err = s.submitter.Deposit(ctx, from, amount)
	if err != nil {
		logger.WithError(err).Error("Failed to forward deposit call")
		return nil, NewErrf(http.StatusBadGateway, "Could not forward deposit call to the node")
	}

	return &DepositResponse{Ok: true}, nil
}

func (s *Server) SubmitTransaction(ctx context.Context, req *SubmitTransactionRequest) (*SubmitTransactionResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("to", req.To)

	from, err := s.viewerAccount(logger)
	if err != nil {
		return nil, err
	}
	to, valid := validateAndNormalizeAddress(req.To)
	if !valid {
		logger.Warn("Invalid recipient address provided to submit a transaction")
		return nil, NewErrf(http.StatusBadRequest, InvalidAddrMessage)
	}
	amount, err := parseDisplayAmount(req.Amount)
	if err != nil {
		logger.Warn("Invalid transaction amount")
		return nil, NewErrf(http.StatusBadRequest, "Invalid 'amount': expected a positive decimal number")
	}

	err = s.submitter.SubmitTransaction(ctx, from, to, amount, req.Purpose)
	if err != nil {
		logger.WithError(err).Error("Failed to forward submitTransaction call")
		return nil, NewErrf(http.StatusBadGateway, "Could not forward submitTransaction call to the node")
	}

	return &SubmitTransactionResponse{Ok: true}, nil
}

func (s *Server) ConfirmTransaction(ctx context.Context, req *ConfirmTransactionRequest) (*ConfirmTransactionResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("tx_index", req.rawTxIndex)

	from, err := s.viewerAccount(logger)
	if err != nil {
		return nil, err
	}
	if !req.valid() {
		logger.Warn("Invalid txIndex provided to confirm a transaction")
		return nil, NewErrf(http.StatusBadRequest, "Invalid 'txIndex': expected a non-negative integer")
	}

	err = s.submitter.ConfirmTransaction(ctx, from, req.TxIndex)
	if err != nil {
		logger.WithError(err).Error("Failed to forward confirmTransaction call")
		return nil, NewErrf(http.StatusBadGateway, "Could not forward confirmTransaction call to the node")
	}

	return &ConfirmTransactionResponse{Ok: true}, nil
}

func (s *Server) RevokeConfirmation(ctx context.Context, req *RevokeConfirmationRequest) (*RevokeConfirmationResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("tx_index", req.rawTxIndex)

	from, err := s.viewerAccount(logger)
	if err != nil {
		return nil, err
	}
	if !req.valid() {
		logger.Warn("Invalid txIndex provided to revoke a confirmation")
		return nil, NewErrf(http.StatusBadRequest, "Invalid 'txIndex': expected a non-negative integer")
	}

	err = s.submitter.RevokeConfirmation(ctx, from, req.TxIndex)
	if err != nil {
		logger.WithError(err).Error("Failed to forward revokeConfirmation call")
		return nil, NewErrf(http.StatusBadGateway, "Could not forward revokeConfirmation call to the node")
	}

	return &RevokeConfirmationResponse{Ok: true}, nil
}

func (s *Server) ExecuteTransaction(ctx context.Context, req *ExecuteTransactionRequest) (*ExecuteTransactionResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("tx_index", req.rawTxIndex)

	from, err := s.viewerAccount(logger)
	if err != nil {
		return nil, err
	}
	if !req.valid() {
		logger.Warn("Invalid txIndex provided to execute a transaction")
		return nil, NewErrf(http.StatusBadRequest, "Invalid 'txIndex': expected a non-negative integer")
	}

	err = s.submitter.ExecuteTransaction(ctx, from, req.TxIndex)
	if err != nil {
		logger.WithError(err).Error("Failed to forward executeTransaction call")
		return nil, NewErrf(http.StatusBadGateway, "Could not forward executeTransaction call to the node")
	}

	return &ExecuteTransactionResponse{Ok: true}, nil
}

func (s *Server) viewerAccount(logger *logrus.Entry) (string, error) {
	from := s.accounts.CurrentAccount()
	if from == "" {
		logger.Warn("No viewer account available to send a call from")
		return "", NewErrf(http.StatusServiceUnavailable, "No account available on the node to send the call from")
	}

	return from, nil
}

func parseDisplayAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, errors.New("amount must be positive")
	}

	// the base unit is the smallest representable amount; finer fractions
	// would be silently truncated on the wire
	amount = amount.Shift(wallet.TokenDecimals)
	if !amount.IsInteger() {
		return decimal.Zero, errors.New("amount is finer than one base unit")
	}

	return amount, nil
}

func validateAndNormalizeAddress(addr string) (string, bool) {
	addr = strings.ToLower(strings.TrimSpace(addr))
	addr = strings.TrimPrefix(addr, "0x")
	if len(addr) != 40 {
		return "", false
	}

	_, err := hex.DecodeString(addr)
	if err != nil {
		return "", false
	}

	addr = "0x" + addr
	return addr, true
}
