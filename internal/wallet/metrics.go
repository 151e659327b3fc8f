package wallet

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nbarak/multisigwatch/internal/promreg"
)

var (
	mutationsApplied = promreg.Auto().NewCounterVec(prometheus.CounterOpts{
		Name: "multisigwatch_mutations_applied_total",
		Help: "Total number of mutations applied to the store by kind",
	}, []string{"kind"})

	duplicateSubmissions = promreg.Auto().NewCounter(prometheus.CounterOpts{
		Name: "multisigwatch_duplicate_submissions_total",
		Help: "Total number of AddTx mutations dropped because the txIndex already exists",
	})
	orphanTxUpdates = promreg.Auto().NewCounter(prometheus.CounterOpts{
		Name: "multisigwatch_orphan_tx_updates_total",
		Help: "Total number of UpdateTx mutations dropped because the txIndex is unknown",
	})
	unmappedEvents = promreg.Auto().NewCounter(prometheus.CounterOpts{
		Name: "multisigwatch_unmapped_events_total",
		Help: "Total number of events that mapped to no mutation",
	})
)
