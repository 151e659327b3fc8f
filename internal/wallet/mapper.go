package wallet

import (
	"github.com/sirupsen/logrus"

	"github.com/nbarak/multisigwatch/internal/celo"
)

// Mapper translates raw contract events into store mutations, attributing
// confirmation ownership to the current viewer account.
type Mapper struct {
	logger *logrus.Logger
}

func NewMapper(logger *logrus.Logger) *Mapper {
	return &Mapper{
		logger: logger,
	}
}

// Map returns the mutation for the given event, or nil for event kinds with
// no local effect. Unrecognized kinds are logged and counted, never fatal.
func (m *Mapper) Map(ev celo.Event, viewerAccount string) Mutation {
	switch ev := ev.(type) {
	case celo.DepositEvent:
		return UpdateBalance{Balance: ev.Balance}
	case celo.SubmitTransactionEvent:
		return AddTx{
			TxIndex: ev.TxIndex,
			To:      ev.To,
			Amount:  ev.Amount,
			Purpose: ev.Purpose,
		}
	case celo.ConfirmTransactionEvent:
		confirmed := true
		return UpdateTx{
			TxIndex:   ev.TxIndex,
			Owner:     ev.Owner,
			Account:   viewerAccount,
			Confirmed: &confirmed,
		}
	case celo.RevokeConfirmationEvent:
		confirmed := false
		return UpdateTx{
			TxIndex:   ev.TxIndex,
			Owner:     ev.Owner,
			Account:   viewerAccount,
			Confirmed: &confirmed,
		}
	case celo.ExecuteTransactionEvent:
		return UpdateTx{
			TxIndex:  ev.TxIndex,
			Owner:    ev.Owner,
			Account:  viewerAccount,
			Executed: true,
		}
	case celo.WithdrawalEvent:
		return UpdateBalanceWithdraw{Balance: ev.Balance}
	default:
		m.logger.WithField("kind", ev.Kind()).Warn("Ignoring event with no known mutation")
		unmappedEvents.Inc()
		return nil
	}
}
