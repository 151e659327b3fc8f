package celo

import (
	"encoding/hex"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addrTopic(t *testing.T, addr string) string {
	t.Helper()
	arg, err := addressWord(addr)
	require.NoError(t, err)
	return "0x" + hex.EncodeToString(arg)
}

func uintTopic(v uint64) string {
	return "0x" + hex.EncodeToString(uint64Word(v))
}

func dataHex(chunks ...[]byte) string {
	var data []byte
	for _, chunk := range chunks {
		data = append(data, chunk...)
	}
	return "0x" + hex.EncodeToString(data)
}

func TestDecodeLog(t *testing.T) {
	owner := "0x1111111111111111111111111111111111111111"
	to := "0x2222222222222222222222222222222222222222"

	tests := map[string]struct {
		log           *rpcLog
		expectedEvent Event
		errContains   string
	}{
		"deposit": {
			log: &rpcLog{
				Topics: []string{topicDeposit, addrTopic(t, owner)},
				Data:   dataHex(uint64Word(500), uint64Word(1500)),
			},
			expectedEvent: DepositEvent{
				Sender:  owner,
				Amount:  decimal.NewFromInt(500),
				Balance: "1500",
			},
		},
		"submit transaction": {
			log: &rpcLog{
				Topics: []string{topicSubmitTransaction, addrTopic(t, owner), uintTopic(7), addrTopic(t, to)},
				Data:   dataHex(uint64Word(1000), uint64Word(2*wordSize), packString("rent")),
			},
			expectedEvent: SubmitTransactionEvent{
				Owner:   owner,
				TxIndex: 7,
				To:      to,
				Amount:  decimal.NewFromInt(1000),
				Purpose: "rent",
			},
		},
		"confirm transaction": {
			log: &rpcLog{
				Topics: []string{topicConfirmTransaction, addrTopic(t, owner), uintTopic(7)},
			},
			expectedEvent: ConfirmTransactionEvent{Owner: owner, TxIndex: 7},
		},
		"revoke confirmation": {
			log: &rpcLog{
				Topics: []string{topicRevokeConfirmation, addrTopic(t, owner), uintTopic(7)},
			},
			expectedEvent: RevokeConfirmationEvent{Owner: owner, TxIndex: 7},
		},
		"execute transaction": {
			log: &rpcLog{
				Topics: []string{topicExecuteTransaction, addrTopic(t, owner), uintTopic(7)},
			},
			expectedEvent: ExecuteTransactionEvent{Owner: owner, TxIndex: 7},
		},
		"withdrawal": {
			log: &rpcLog{
				Topics: []string{topicWithdrawal, addrTopic(t, owner)},
				Data:   dataHex(uint64Word(900)),
			},
			expectedEvent: WithdrawalEvent{Owner: owner, Balance: "900"},
		},
		"unknown topic passes through": {
			log: &rpcLog{
				Topics: []string{eventTopic("SomethingElse(address)"), addrTopic(t, owner)},
			},
			expectedEvent: UnknownEvent{Topic: eventTopic("SomethingElse(address)")},
		},
		"no topics": {
			log:         &rpcLog{},
			errContains: "no topics",
		},
		"deposit with missing data": {
			log: &rpcLog{
				Topics: []string{topicDeposit, addrTopic(t, owner)},
				Data:   dataHex(uint64Word(500)),
			},
			errContains: "deposit log balance",
		},
		"confirm with missing txIndex topic": {
			log: &rpcLog{
				Topics: []string{topicConfirmTransaction, addrTopic(t, owner)},
			},
			errContains: "want 3 topics",
		},
		"submit with truncated purpose": {
			log: &rpcLog{
				Topics: []string{topicSubmitTransaction, addrTopic(t, owner), uintTopic(7), addrTopic(t, to)},
				Data:   dataHex(uint64Word(1000), uint64Word(20*wordSize)),
			},
			errContains: "submit log purpose",
		},
		// hostile purpose-offset word near 2^64; must error, never panic
		"submit with purpose offset near uint64 max": {
			log: &rpcLog{
				Topics: []string{topicSubmitTransaction, addrTopic(t, owner), uintTopic(7), addrTopic(t, to)},
				Data:   dataHex(uint64Word(1000), uintWord(hugeWord(wordSize)), uint64Word(0)),
			},
			errContains: "submit log purpose",
		},
		"submit with purpose length near uint64 max": {
			log: &rpcLog{
				Topics: []string{topicSubmitTransaction, addrTopic(t, owner), uintTopic(7), addrTopic(t, to)},
				Data:   dataHex(uint64Word(1000), uint64Word(2*wordSize), uintWord(hugeWord(wordSize/2))),
			},
			errContains: "submit log purpose",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ev, err := decodeLog(test.log)
			if test.errContains != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, test.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedEvent, ev)
		})
	}
}
