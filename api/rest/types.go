package rest

import (
	"net/http"
	"strconv"
	"time"
)

// request and response types are defined below
// these types can be defined as protobuf messages in a production system (specifically if using gRPC + gRPC-gateway)

type GetWalletRequest struct{}

type GetWalletResponse struct {
	Address                  string   `json:"address"`
	Balance                  string   `json:"balance"`
	BalanceDisplay           string   `json:"balanceDisplay"`
	Owners                   []string `json:"owners"`
	NumConfirmationsRequired int      `json:"numConfirmationsRequired"`
	TransactionCount         int      `json:"transactionCount"`
	ViewerAccount            string   `json:"viewerAccount,omitempty"`
}

type ListTransactionsRequest struct{}

type ListTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type Transaction struct {
	TxIndex           uint64 `json:"txIndex"`
	To                string `json:"to"`
	Amount            string `json:"amount"`
	AmountDisplay     string `json:"amountDisplay"`
	Purpose           string `json:"purpose,omitempty"`
	Executed          bool   `json:"executed"`
	NumConfirmations  int    `json:"numConfirmations"`
	ConfirmedByViewer bool   `json:"confirmedByViewer"`
}

type ListRecentEventsRequest struct{}

type ListRecentEventsResponse struct {
	Events []*Event `json:"events"`
}

type Event struct {
	Kind       string    `json:"kind"`
	ObservedAt time.Time `json:"observedAt"`
}

type DepositRequest struct {
	// Amount is in display units, e.g. "1.5" tokens.
	Amount string `json:"amount"`
}

type DepositResponse struct {
	Ok bool `json:"ok"`
}

type SubmitTransactionRequest struct {
	To string `json:"to"`
	// Amount is in display units.
	Amount  string `json:"amount"`
	Purpose string `json:"purpose"`
}

type SubmitTransactionResponse struct {
	Ok bool `json:"ok"`
}

type txIndexRequest struct {
	TxIndex    uint64
	rawTxIndex string
}

func (r *txIndexRequest) setPathParams(req *http.Request) {
	r.rawTxIndex = req.PathValue("txIndex")
	v, err := strconv.ParseUint(r.rawTxIndex, 10, 64)
	if err == nil {
		r.TxIndex = v
	}
}

func (r *txIndexRequest) valid() bool {
	_, err := strconv.ParseUint(r.rawTxIndex, 10, 64)
	return err == nil
}

type ConfirmTransactionRequest struct {
	txIndexRequest
}

type ConfirmTransactionResponse struct {
	Ok bool `json:"ok"`
}

type RevokeConfirmationRequest struct {
	txIndexRequest
}

type RevokeConfirmationResponse struct {
	Ok bool `json:"ok"`
}

type ExecuteTransactionRequest struct {
	txIndexRequest
}

type ExecuteTransactionResponse struct {
	Ok bool `json:"ok"`
}
