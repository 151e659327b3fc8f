package celo

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	topicDeposit            = eventTopic("Deposit(address,uint256,uint256)")
	topicSubmitTransaction  = eventTopic("SubmitTransaction(address,uint256,address,uint256,string)")
	topicConfirmTransaction = eventTopic("ConfirmTransaction(address,uint256)")
	topicRevokeConfirmation = eventTopic("RevokeConfirmation(address,uint256)")
	topicExecuteTransaction = eventTopic("ExecuteTransaction(address,uint256)")
	topicWithdrawal         = eventTopic("Withdrawal(address,uint256)")
)

// Event is the closed set of multisig wallet contract events. UnknownEvent is
// the passthrough variant for logs with an unrecognized topic so that
// downstream consumers can observe (and log) them instead of losing them here.
type Event interface {
	Kind() string
	isEvent()
}

// DepositEvent reports an incoming token transfer and the resulting balance.
type DepositEvent struct {
	Sender  string
	Amount  decimal.Decimal
	Balance string
}

// SubmitTransactionEvent reports a newly submitted, unconfirmed transaction.
type SubmitTransactionEvent struct {
	Owner   string
	TxIndex uint64
	To      string
	Amount  decimal.Decimal
	Purpose string
}

// ConfirmTransactionEvent reports an owner confirming a transaction.
type ConfirmTransactionEvent struct {
	Owner   string
	TxIndex uint64
}

// RevokeConfirmationEvent reports an owner revoking a prior confirmation.
type RevokeConfirmationEvent struct {
	Owner   string
	TxIndex uint64
}

// ExecuteTransactionEvent reports a transaction being executed.
type ExecuteTransactionEvent struct {
	Owner   string
	TxIndex uint64
}

// WithdrawalEvent reports an executed outgoing transfer and the resulting balance.
type WithdrawalEvent struct {
	Owner   string
	Balance string
}

// UnknownEvent carries the topic of a log this client does not recognize.
type UnknownEvent struct {
	Topic string
}

func (DepositEvent) Kind() string            { return "Deposit" }
func (SubmitTransactionEvent) Kind() string  { return "SubmitTransaction" }
func (ConfirmTransactionEvent) Kind() string { return "ConfirmTransaction" }
func (RevokeConfirmationEvent) Kind() string { return "RevokeConfirmation" }
func (ExecuteTransactionEvent) Kind() string { return "ExecuteTransaction" }
func (WithdrawalEvent) Kind() string         { return "Withdrawal" }
func (UnknownEvent) Kind() string            { return "Unknown" }

func (DepositEvent) isEvent()            {}
func (SubmitTransactionEvent) isEvent()  {}
func (ConfirmTransactionEvent) isEvent() {}
func (RevokeConfirmationEvent) isEvent() {}
func (ExecuteTransactionEvent) isEvent() {}
func (WithdrawalEvent) isEvent()         {}
func (UnknownEvent) isEvent()            {}

type rpcLog struct {
	Address     string   `json:"address"`
	Topics      []string `json:"topics"`
	Data        string   `json:"data"`
	BlockNumber string   `json:"blockNumber"`
}

func decodeLog(lg *rpcLog) (Event, error) {
	if len(lg.Topics) == 0 {
		return nil, errors.New("log has no topics")
	}

	switch lg.Topics[0] {
	case topicDeposit:
		return decodeDeposit(lg)
	case topicSubmitTransaction:
		return decodeSubmitTransaction(lg)
	case topicConfirmTransaction:
		owner, txIndex, err := decodeOwnerTxIndex(lg)
		if err != nil {
			return nil, err
		}
		return ConfirmTransactionEvent{Owner: owner, TxIndex: txIndex}, nil
	case topicRevokeConfirmation:
		owner, txIndex, err := decodeOwnerTxIndex(lg)
		if err != nil {
			return nil, err
		}
		return RevokeConfirmationEvent{Owner: owner, TxIndex: txIndex}, nil
	case topicExecuteTransaction:
		owner, txIndex, err := decodeOwnerTxIndex(lg)
		if err != nil {
			return nil, err
		}
		return ExecuteTransactionEvent{Owner: owner, TxIndex: txIndex}, nil
	case topicWithdrawal:
		return decodeWithdrawal(lg)
	default:
		return UnknownEvent{Topic: lg.Topics[0]}, nil
	}
}

func decodeDeposit(lg *rpcLog) (Event, error) {
	if len(lg.Topics) != 2 {
		return nil, fmt.Errorf("deposit log: want 2 topics, got %d", len(lg.Topics))
	}
	sender, err := topicAddress(lg.Topics[1])
	if err != nil {
		return nil, fmt.Errorf("deposit log sender: %w", err)
	}

	w, err := parseWords(lg.Data)
	if err != nil {
		return nil, fmt.Errorf("deposit log data: %w", err)
	}
	amount, err := w.uint(0)
	if err != nil {
		return nil, fmt.Errorf("deposit log amount: %w", err)
	}
	balance, err := w.uint(1)
	if err != nil {
		return nil, fmt.Errorf("deposit log balance: %w", err)
	}

	return DepositEvent{
		Sender:  sender,
		Amount:  decimal.NewFromBigInt(amount, 0),
		Balance: balance.String(),
	}, nil
}

func decodeSubmitTransaction(lg *rpcLog) (Event, error) {
	if len(lg.Topics) != 4 {
		return nil, fmt.Errorf("submit log: want 4 topics, got %d", len(lg.Topics))
	}
	owner, err := topicAddress(lg.Topics[1])
	if err != nil {
		return nil, fmt.Errorf("submit log owner: %w", err)
	}
	txIndex, err := topicUint(lg.Topics[2])
	if err != nil {
		return nil, fmt.Errorf("submit log txIndex: %w", err)
	}
	to, err := topicAddress(lg.Topics[3])
	if err != nil {
		return nil, fmt.Errorf("submit log to: %w", err)
	}

	w, err := parseWords(lg.Data)
	if err != nil {
		return nil, fmt.Errorf("submit log data: %w", err)
	}
	amount, err := w.uint(0)
	if err != nil {
		return nil, fmt.Errorf("submit log amount: %w", err)
	}
	purpose, err := w.str(1)
	if err != nil {
		return nil, fmt.Errorf("submit log purpose: %w", err)
	}

	return SubmitTransactionEvent{
		Owner:   owner,
		TxIndex: txIndex,
		To:      to,
		Amount:  decimal.NewFromBigInt(amount, 0),
		Purpose: purpose,
	}, nil
}

func decodeOwnerTxIndex(lg *rpcLog) (string, uint64, error) {
	if len(lg.Topics) != 3 {
		return "", 0, fmt.Errorf("want 3 topics, got %d", len(lg.Topics))
	}
	owner, err := topicAddress(lg.Topics[1])
	if err != nil {
		return "", 0, fmt.Errorf("owner topic: %w", err)
	}
	txIndex, err := topicUint(lg.Topics[2])
	if err != nil {
		return "", 0, fmt.Errorf("txIndex topic: %w", err)
	}

	return owner, txIndex, nil
}

func decodeWithdrawal(lg *rpcLog) (Event, error) {
	if len(lg.Topics) != 2 {
		return nil, fmt.Errorf("withdrawal log: want 2 topics, got %d", len(lg.Topics))
	}
	owner, err := topicAddress(lg.Topics[1])
	if err != nil {
		return nil, fmt.Errorf("withdrawal log owner: %w", err)
	}

	w, err := parseWords(lg.Data)
	if err != nil {
		return nil, fmt.Errorf("withdrawal log data: %w", err)
	}
	balance, err := w.uint(0)
	if err != nil {
		return nil, fmt.Errorf("withdrawal log balance: %w", err)
	}

	return WithdrawalEvent{
		Owner:   owner,
		Balance: balance.String(),
	}, nil
}
