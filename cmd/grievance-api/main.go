// Package main contains the entrypoint for the grievance API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/rizzabh6717/zentigrity-supernova/internal/chain"
	"github.com/rizzabh6717/zentigrity-supernova/internal/classifier"
	"github.com/rizzabh6717/zentigrity-supernova/internal/metrics"
	"github.com/rizzabh6717/zentigrity-supernova/internal/service"
	"github.com/rizzabh6717/zentigrity-supernova/internal/store"
	"github.com/rizzabh6717/zentigrity-supernova/internal/transport"
)

type config struct {
	Addr            string `long:"addr" env:"GRIEVANCE_API_ADDR" description:"address for the HTTP API" default:":8000"`
	MetricsAddr     string `long:"metrics-addr" env:"GRIEVANCE_API_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	RPCURL          string `long:"rpc-url" env:"GRIEVANCE_API_RPC_URL" description:"EVM JSON-RPC endpoint" default:"https://sepolia.base.org"`
	Network         string `long:"network" env:"GRIEVANCE_API_NETWORK" description:"network name" default:"base-sepolia"`
	ChainID         int64  `long:"chain-id" env:"GRIEVANCE_API_CHAIN_ID" description:"expected chain id" default:"84532"`
	PrivateKey      string `long:"private-key" env:"GRIEVANCE_API_PRIVATE_KEY" description:"hex-encoded sender private key" required:"true"`
	ContractAddress string `long:"contract-address" env:"GRIEVANCE_API_CONTRACT_ADDRESS" description:"grievance registry contract address" required:"true"`
	ClipAPIURL      string `long:"clip-api-url" env:"GRIEVANCE_API_CLIP_API_URL" description:"CLIP inference endpoint (hosted default when empty)"`
	ClipAPIKey      string `long:"clip-api-key" env:"GRIEVANCE_API_CLIP_API_KEY" description:"CLIP inference API key"`
	ClassifierRPS   int    `long:"classifier-rps" env:"GRIEVANCE_API_CLASSIFIER_RPS" description:"classifier request rate limit" default:"2"`
	ExplorerBase    string `long:"explorer-base" env:"GRIEVANCE_API_EXPLORER_BASE" description:"block explorer transaction URL prefix" default:"https://base-sepolia.blockscout.com/tx/"`
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

	if !common.IsHexAddress(cfg.ContractAddress) {
		logger.Fatal("invalid contract address", zap.String("address", cfg.ContractAddress))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("grievance api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	rpcClient, err := rpc.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("dial rpc: %w", err)
	}
	defer rpcClient.Close()

	client := chain.NewObservedClient(rpcClient, metrics.NewChainClient(cfg.Network))

	chainID := big.NewInt(cfg.ChainID)
	if nodeID, err := client.ChainID(ctx); err != nil {
		logger.Warn("could not verify chain id against node", zap.Error(err))
	} else if nodeID.Cmp(chainID) != 0 {
		return fmt.Errorf("node reports chain id %s, configured %s", nodeID, chainID)
	}

	account, err := chain.NewAccount(cfg.PrivateKey)
	if err != nil {
		return err
	}
	registry, err := chain.NewRegistry(common.HexToAddress(cfg.ContractAddress))
	if err != nil {
		return fmt.Errorf("init registry: %w", err)
	}

	builder := chain.NewBuilder(client, registry, account.Address(), logger)
	submitter := chain.NewSubmitter(client, account, chainID, logger)
	clip := classifier.NewClient(cfg.ClipAPIURL, cfg.ClipAPIKey, cfg.ClassifierRPS, metrics.NewClassifierClient(), logger)

	svc, err := service.NewSubmissionService(
		clip,
		builder,
		submitter,
		store.NewMemory(),
		metrics.NewSubmission(),
		account.Address().Hex(),
		cfg.ExplorerBase,
		logger,
	)
	if err != nil {
		return err
	}

	handler := transport.NewGrievanceHandler(svc, logger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(handler.Routes()),
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      3 * time.Minute, // submissions wait for receipt confirmation
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting grievance api",
		zap.String("addr", cfg.Addr),
		zap.String("sender", account.Address().Hex()),
		zap.String("contract", cfg.ContractAddress),
		zap.Int64("chainId", cfg.ChainID),
	)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
