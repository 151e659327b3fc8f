package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	restapi "github.com/nbarak/multisigwatch/api/rest"
	"github.com/nbarak/multisigwatch/internal/celo"
	"github.com/nbarak/multisigwatch/internal/promreg"
	"github.com/nbarak/multisigwatch/internal/tracker"
	"github.com/nbarak/multisigwatch/internal/wallet"
)

type Options struct {
	ServerAddr         string
	NodeAddr           string
	WalletAddr         string
	TokenAddr          string
	EventPollInterval  time.Duration
	ChangePollInterval time.Duration
	JournalSize        uint
	Verbose            bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.ServerAddr, "server-addr", "localhost:8080", "Server addr to serve the http server on")
	flag.StringVar(&opts.NodeAddr, "node-addr", "https://alfajores-forno.celo-testnet.org", "The Celo/Ethereum node to connect to")
	flag.StringVar(&opts.WalletAddr, "wallet-addr", "", "The multisig wallet contract address to track")
	flag.StringVar(&opts.TokenAddr, "token-addr", "0x874069Fa1Eb16D44d622F2e0Ca25eeA172369bC1", "The ERC-20 token contract the wallet holds")
	flag.DurationVar(&opts.EventPollInterval, "event-poll-interval", time.Second*5, "Contract event polling interval. Recommend no less than 3 seconds")
	flag.DurationVar(&opts.ChangePollInterval, "change-poll-interval", time.Second, "Account/network change re-check interval")
	flag.UintVar(&opts.JournalSize, "journal-size", 50, "Number of recent events to keep for the events endpoint")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := logrus.New()
	ensureValidOpts(logger, opts)

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	httpClient := &http.Client{Timeout: time.Second * 10}
	celoClient := celo.New(logger, httpClient, celo.Config{
		NodeAddr:           opts.NodeAddr,
		WalletAddr:         opts.WalletAddr,
		TokenAddr:          opts.TokenAddr,
		EventPollInterval:  opts.EventPollInterval,
		ChangePollInterval: opts.ChangePollInterval,
	})

	store := wallet.NewStore()
	mapper := wallet.NewMapper(logger)
	journal := tracker.NewJournal(opts.JournalSize)
	loader := tracker.NewLoader(logger, celoClient, store)
	manager := tracker.NewManager(logger, celoClient, mapper, store, journal)
	session := tracker.NewSession(logger, loader, manager, celoClient)
	go session.Run(ctx)

	restServer := restapi.NewServer(logger, store, journal, session, celoClient)
	mux := http.NewServeMux()
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/wallet", restServer.GetWallet)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/wallet/transactions", restServer.ListTransactions)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/events/recent", restServer.ListRecentEvents)
	restapi.RegisterFunc(logger, mux, http.MethodPost, "/api/v1/wallet/deposit", restServer.Deposit)
	restapi.RegisterFunc(logger, mux, http.MethodPost, "/api/v1/wallet/transactions", restServer.SubmitTransaction)
	restapi.RegisterFunc(logger, mux, http.MethodPost, "/api/v1/wallet/transactions/{txIndex}/confirm", restServer.ConfirmTransaction)
	restapi.RegisterFunc(logger, mux, http.MethodPost, "/api/v1/wallet/transactions/{txIndex}/revoke", restServer.RevokeConfirmation)
	restapi.RegisterFunc(logger, mux, http.MethodPost, "/api/v1/wallet/transactions/{txIndex}/execute", restServer.ExecuteTransaction)

	// use a custom prom registry to avoid recording the default http handler metrics
	mux.Handle("/metrics", promhttp.HandlerFor(promreg.Registry(), promhttp.HandlerOpts{}))

	mustListenAndServe(ctx, logger, opts.ServerAddr, mux)
}

func mustListenAndServe(ctx context.Context, logger *logrus.Logger, addr string, handler http.Handler) {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		logger.WithField("addr", addr).Info("Serving server...")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed with error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger.Info("Shutting down server...")
	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.WithError(err).Error("Failed to shutdown server gracefully")
	}
}

func ensureValidOpts(logger *logrus.Logger, opts Options) {
	if opts.ServerAddr == "" {
		logger.Error("--server-addr is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.NodeAddr == "" {
		logger.Error("--node-addr is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.WalletAddr == "" {
		logger.Error("--wallet-addr is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.TokenAddr == "" {
		logger.Error("--token-addr is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.EventPollInterval < time.Second*3 {
		logger.Error("--event-poll-interval is too small, it cannot be less than 3 seconds")
		flag.Usage()
		os.Exit(1)
	}
	if opts.ChangePollInterval < time.Millisecond*100 {
		logger.Error("--change-poll-interval is too small, it cannot be less than 100ms")
		flag.Usage()
		os.Exit(1)
	}
}
