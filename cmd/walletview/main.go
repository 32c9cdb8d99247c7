package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/walletview7000-backend/internal/history/bitcoin"
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/model"
	"github.com/goodnatureofminers/walletview7000-backend/internal/history/service"
	"github.com/goodnatureofminers/walletview7000-backend/internal/metrics"
	observed "github.com/goodnatureofminers/walletview7000-backend/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/walletview7000-backend/internal/transport"
)

type config struct {
	Network         string            `long:"network" env:"WALLETVIEW_NETWORK" description:"network name" required:"true"`
	RPCURL          string            `long:"rpc-url" env:"WALLETVIEW_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser         string            `long:"rpc-user" env:"WALLETVIEW_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword     string            `long:"rpc-password" env:"WALLETVIEW_RPC_PASSWORD" description:"Bitcoin RPC password"`
	Addr            string            `long:"addr" env:"WALLETVIEW_ADDR" description:"HTTP listen address" default:":8000"`
	WatchAddrs      []string          `long:"watch" env:"WALLETVIEW_WATCH" env-delim:"," description:"owned wallet addresses"`
	ReceiveLabels   map[string]string `long:"label" env:"WALLETVIEW_LABELS" env-delim:"," description:"address:label pairs handed out for receiving"`
	Batch           int               `long:"batch" env:"WALLETVIEW_BATCH" description:"wallet entries fetched per sync" default:"1000"`
	RefreshInterval time.Duration     `long:"refresh-interval" env:"WALLETVIEW_REFRESH_INTERVAL" description:"chain refresh interval" default:"30s"`
	RefreshRPS      int               `long:"refresh-rps" env:"WALLETVIEW_REFRESH_RPS" description:"max chain polls per second" default:"5"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if len(cfg.WatchAddrs) == 0 && len(cfg.ReceiveLabels) == 0 {
		logger.Fatal("at least one watched address or labeled address is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("walletview failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network := model.Network(cfg.Network)
	params, err := bitcoin.ChainParamsForNetwork(network)
	if err != nil {
		return err
	}

	rpc, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpc.Shutdown()
		rpc.WaitForShutdown()
	}()
	client := observed.NewObservedClient(rpc, metrics.NewRPCClient(network))

	view := bitcoin.NewChainView(client, params, nil)
	if err := view.Refresh(); err != nil {
		logger.Warn("initial chain refresh failed", zap.Error(err))
	}

	converter, err := bitcoin.NewConverter(client, network)
	if err != nil {
		return fmt.Errorf("init converter: %w", err)
	}
	book := bitcoin.NewAddressBook(cfg.WatchAddrs, cfg.ReceiveLabels, view)
	loader := bitcoin.NewLoader(client, converter, book, cfg.Batch, logger)

	svc := service.New(book, view, loader, metrics.NewHistory(network), logger)
	if err := svc.Sync(ctx); err != nil {
		logger.Warn("initial wallet sync failed", zap.Error(err))
	}

	refresher := service.NewRefresher(svc, view, cfg.RefreshInterval, cfg.RefreshRPS, logger)
	go func() {
		if err := refresher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("refresher stopped", zap.Error(err))
		}
	}()

	mux := http.NewServeMux()
	transport.NewHistoryHandler(svc, logger).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server",
		zap.String("addr", cfg.Addr),
		zap.String("network", cfg.Network))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(cfg, nil)
}
