package tracker

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nbarak/multisigwatch/internal/promreg"
)

var (
	bootstraps = promreg.Auto().NewCounter(prometheus.CounterOpts{
		Name: "multisigwatch_bootstraps_total",
		Help: "Total number of successful bootstraps applied to the store",
	})
	bootstrapFailures = promreg.Auto().NewCounter(prometheus.CounterOpts{
		Name: "multisigwatch_bootstrap_failures_total",
		Help: "Total number of failed bootstrap attempts",
	})
	subscriptionsOpened = promreg.Auto().NewCounter(prometheus.CounterOpts{
		Name: "multisigwatch_subscriptions_opened_total",
		Help: "Total number of event subscriptions opened",
	})
	eventsApplied = promreg.Auto().NewCounter(prometheus.CounterOpts{
		Name: "multisigwatch_events_applied_total",
		Help: "Total number of events that resulted in a store mutation",
	})
	accountChanges = promreg.Auto().NewCounter(prometheus.CounterOpts{
		Name: "multisigwatch_account_changes_total",
		Help: "Total number of observed viewer account changes",
	})
)
