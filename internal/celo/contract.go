package celo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	selGetBalance         = methodID("getBalance()")
	selGetOwners          = methodID("getOwners()")
	selGetNumConfRequired = methodID("getNumConfirmationsRequired()")
	selGetTxCount         = methodID("getTransactionCount()")
	selGetTransaction     = methodID("getTransaction(uint256)")
	selIsConfirmed        = methodID("isConfirmed(uint256,address)")
	selDeposit            = methodID("deposit(uint256)")
	selSubmitTransaction  = methodID("submitTransaction(address,uint256,string)")
	selConfirmTransaction = methodID("confirmTransaction(uint256)")
	selRevokeConfirmation = methodID("revokeConfirmation(uint256)")
	selExecuteTransaction = methodID("executeTransaction(uint256)")
	selApprove            = methodID("approve(address,uint256)")
)

// recentTxWindow is how many of the most recent transactions BulkRead fetches.
const recentTxWindow = 10

// WalletSnapshot is the result of a bulk read of the wallet contract,
// evaluated for a specific viewer account.
type WalletSnapshot struct {
	Address                  string
	Balance                  string
	Owners                   []string
	NumConfirmationsRequired int
	TransactionCount         int
	Transactions             []TxSnapshot
}

type TxSnapshot struct {
	TxIndex                     uint64
	To                          string
	Amount                      decimal.Decimal
	Purpose                     string
	Executed                    bool
	NumConfirmations            int
	IsConfirmedByCurrentAccount bool
}

// BulkRead reads the wallet's metadata, owners, confirmation threshold,
// transaction count, and the most recent transactions (walked newest-first
// from the count) with the viewer's per-transaction confirmation status.
func (c *Client) BulkRead(ctx context.Context, viewerAccount string) (*WalletSnapshot, error) {
	balance, err := c.readUint(ctx, selGetBalance)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	owners, err := c.readOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("get owners: %w", err)
	}

	required, err := c.readUint(ctx, selGetNumConfRequired)
	if err != nil {
		return nil, fmt.Errorf("get confirmation threshold: %w", err)
	}

	count, err := c.readUint(ctx, selGetTxCount)
	if err != nil {
		return nil, fmt.Errorf("get transaction count: %w", err)
	}

	transactions := make([]TxSnapshot, 0, recentTxWindow)
	for i := 1; i <= recentTxWindow; i++ {
		txIndex := count.IntPart() - int64(i)
		if txIndex < 0 {
			break
		}

		tx, err := c.readTransaction(ctx, uint64(txIndex))
		if err != nil {
			return nil, fmt.Errorf("get transaction %d: %w", txIndex, err)
		}
		confirmed, err := c.readIsConfirmed(ctx, uint64(txIndex), viewerAccount)
		if err != nil {
			return nil, fmt.Errorf("get confirmation status of transaction %d: %w", txIndex, err)
		}
		tx.IsConfirmedByCurrentAccount = confirmed

		transactions = append(transactions, *tx)
	}

	bulkReads.Inc()

	return &WalletSnapshot{
		Address:                  c.cfg.WalletAddr,
		Balance:                  balance.String(),
		Owners:                   owners,
		NumConfirmationsRequired: int(required.IntPart()),
		TransactionCount:         int(count.IntPart()),
		Transactions:             transactions,
	}, nil
}

func (c *Client) readUint(ctx context.Context, selector []byte) (decimal.Decimal, error) {
	result, err := c.ethCallHex(ctx, c.cfg.WalletAddr, callData(selector))
	if err != nil {
		return decimal.Zero, err
	}

	w, err := parseWords(result)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := w.uint(0)
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromBigInt(v, 0), nil
}

func (c *Client) readOwners(ctx context.Context) ([]string, error) {
	result, err := c.ethCallHex(ctx, c.cfg.WalletAddr, callData(selGetOwners))
	if err != nil {
		return nil, err
	}

	w, err := parseWords(result)
	if err != nil {
		return nil, err
	}

	return w.addresses(0)
}

// readTransaction decodes the getTransaction return tuple
// (address to, uint256 amount, string purpose, bool executed, uint256 numConfirmations).
func (c *Client) readTransaction(ctx context.Context, txIndex uint64) (*TxSnapshot, error) {
	result, err := c.ethCallHex(ctx, c.cfg.WalletAddr, callData(selGetTransaction, uint64Word(txIndex)))
	if err != nil {
		return nil, err
	}

	w, err := parseWords(result)
	if err != nil {
		return nil, err
	}
	to, err := w.address(0)
	if err != nil {
		return nil, fmt.Errorf("decode to: %w", err)
	}
	amount, err := w.uint(1)
	if err != nil {
		return nil, fmt.Errorf("decode amount: %w", err)
	}
	purpose, err := w.str(2)
	if err != nil {
		return nil, fmt.Errorf("decode purpose: %w", err)
	}
	executed, err := w.bool(3)
	if err != nil {
		return nil, fmt.Errorf("decode executed: %w", err)
	}
	numConfirmations, err := w.uint(4)
	if err != nil {
		return nil, fmt.Errorf("decode numConfirmations: %w", err)
	}

	return &TxSnapshot{
		TxIndex:          txIndex,
		To:               to,
		Amount:           decimal.NewFromBigInt(amount, 0),
		Purpose:          purpose,
		Executed:         executed,
		NumConfirmations: int(numConfirmations.Int64()),
	}, nil
}

func (c *Client) readIsConfirmed(ctx context.Context, txIndex uint64, account string) (bool, error) {
	accountArg, err := addressWord(account)
	if err != nil {
		return false, err
	}

	result, err := c.ethCallHex(ctx, c.cfg.WalletAddr, callData(selIsConfirmed, uint64Word(txIndex), accountArg))
	if err != nil {
		return false, err
	}

	w, err := parseWords(result)
	if err != nil {
		return false, err
	}

	return w.bool(0)
}

// Deposit approves the wallet contract to spend the given base-unit amount of
// the token and then calls deposit on the wallet. The store only observes the
// effect through the Deposit event, never this call.
func (c *Client) Deposit(ctx context.Context, from string, amount decimal.Decimal) error {
	walletArg, err := addressWord(c.cfg.WalletAddr)
	if err != nil {
		return fmt.Errorf("encode wallet address: %w", err)
	}
	amountArg := uintWord(amount.BigInt())

	_, err = c.sendTransaction(ctx, from, c.cfg.TokenAddr, callData(selApprove, walletArg, amountArg))
	if err != nil {
		return fmt.Errorf("approve token spend: %w", err)
	}

	_, err = c.sendTransaction(ctx, from, c.cfg.WalletAddr, callData(selDeposit, amountArg))
	if err != nil {
		return fmt.Errorf("deposit: %w", err)
	}

	submittedCalls.WithLabelValues("deposit").Inc()
	return nil
}

// SubmitTransaction submits a new transfer proposal to the wallet contract.
func (c *Client) SubmitTransaction(ctx context.Context, from, to string, amount decimal.Decimal, purpose string) error {
	toArg, err := addressWord(to)
	if err != nil {
		return fmt.Errorf("encode recipient address: %w", err)
	}

	// head: to, amount, offset of the dynamic purpose string
	data := callData(selSubmitTransaction,
		toArg,
		uintWord(amount.BigInt()),
		uint64Word(3*wordSize),
		packString(purpose),
	)
	_, err = c.sendTransaction(ctx, from, c.cfg.WalletAddr, data)
	if err != nil {
		return fmt.Errorf("submit transaction: %w", err)
	}

	submittedCalls.WithLabelValues("submit").Inc()
	return nil
}

// ConfirmTransaction confirms the transaction at txIndex as the from account.
func (c *Client) ConfirmTransaction(ctx context.Context, from string, txIndex uint64) error {
	_, err := c.sendTransaction(ctx, from, c.cfg.WalletAddr, callData(selConfirmTransaction, uint64Word(txIndex)))
	if err != nil {
		return fmt.Errorf("confirm transaction %d: %w", txIndex, err)
	}

	submittedCalls.WithLabelValues("confirm").Inc()
	return nil
}

// RevokeConfirmation revokes the from account's confirmation of txIndex.
func (c *Client) RevokeConfirmation(ctx context.Context, from string, txIndex uint64) error {
	_, err := c.sendTransaction(ctx, from, c.cfg.WalletAddr, callData(selRevokeConfirmation, uint64Word(txIndex)))
	if err != nil {
		return fmt.Errorf("revoke confirmation of transaction %d: %w", txIndex, err)
	}

	submittedCalls.WithLabelValues("revoke").Inc()
	return nil
}

// ExecuteTransaction executes the fully confirmed transaction at txIndex.
func (c *Client) ExecuteTransaction(ctx context.Context, from string, txIndex uint64) error {
	_, err := c.sendTransaction(ctx, from, c.cfg.WalletAddr, callData(selExecuteTransaction, uint64Word(txIndex)))
	if err != nil {
		return fmt.Errorf("execute transaction %d: %w", txIndex, err)
	}

	submittedCalls.WithLabelValues("execute").Inc()
	return nil
}
