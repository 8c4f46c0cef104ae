package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/Niki1320/supply-chain/internal/catalog"
	"github.com/Niki1320/supply-chain/internal/config"
	supplyHttp "github.com/Niki1320/supply-chain/internal/http"
	productHandler "github.com/Niki1320/supply-chain/internal/http/product"
	"github.com/Niki1320/supply-chain/internal/ledger"
	"github.com/Niki1320/supply-chain/internal/payment"
	"github.com/Niki1320/supply-chain/internal/register"
	"github.com/Niki1320/supply-chain/internal/transition"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	gateway, err := ledger.Dial(context.Background(), ledger.Options{
		Endpoint:  cfg.Ledger.RPCURL,
		Contracts: cfg.Ledger.Contracts,
		From:      cfg.Ledger.From,
		Timeout:   cfg.Ledger.Timeout,
	})
	if err != nil {
		slog.Error("failed to connect to ledger", "error", err)
		os.Exit(1)
	}

	calc := payment.NewCalculator(cfg.Token.Decimals)

	var (
		catalogService    = catalog.NewService(gateway)
		transitionService = transition.NewService(gateway, calc, cfg.Gas.FallbackLimit)
		registerService   = register.NewService(gateway, calc, cfg.Gas.FallbackLimit)
	)

	productH := productHandler.NewHandler(catalogService, gateway, transitionService, registerService)

	router := supplyHttp.New(productH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "chain_id", gateway.ChainID(), "contract", gateway.ContractAddress())

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
