package celo

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nbarak/multisigwatch/internal/promreg"
)

var rpcFailures = promreg.Auto().NewCounterVec(prometheus.CounterOpts{
	Name: "multisigwatch_rpc_failures_total",
	Help: "Number of failed json-rpc calls by method",
}, []string{"method"})

var bulkReads = promreg.Auto().NewCounter(prometheus.CounterOpts{
	Name: "multisigwatch_bulk_reads_total",
	Help: "Number of successful wallet bulk reads",
})

var decodedEvents = promreg.Auto().NewCounterVec(prometheus.CounterOpts{
	Name: "multisigwatch_decoded_events_total",
	Help: "Number of contract logs decoded into events by kind",
}, []string{"kind"})

var malformedLogs = promreg.Auto().NewCounter(prometheus.CounterOpts{
	Name: "multisigwatch_malformed_logs_total",
	Help: "Number of contract logs dropped because they could not be decoded",
})

var submittedCalls = promreg.Auto().NewCounterVec(prometheus.CounterOpts{
	Name: "multisigwatch_submitted_calls_total",
	Help: "Number of state-changing contract calls forwarded to the node",
}, []string{"call"})
