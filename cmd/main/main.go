package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stock-dashboard/src/config"
	"stock-dashboard/src/dashboard"
	"stock-dashboard/src/data_source/yahoo"
	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/monitor"
	"stock-dashboard/src/network"
	"stock-dashboard/src/server"
	"stock-dashboard/src/utils"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	config, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(config.LogLevel, config.Name)

	// Setup Components
	var networkManager interfaces.INetworkManager = network.NewNetworkManager(config.MConfig, appLogger)
	var source interfaces.IQuoteSource = yahoo.NewYahooFinanceSource(config.MConfig, networkManager)

	calendar := utils.NewTradingCalendar()
	mon := monitor.New()
	service := dashboard.NewService(config.MConfig, source, calendar, mon)
	srv := server.NewDashboardServer(config.MConfig, appLogger, service, mon)

	// Implicit startup refresh for the fixed watchlist, so the first
	// page load and the first WebSocket connect see real quotes.
	appLogger.Info("Refreshing watchlist (%d symbols)...", len(config.Dashboard.Watchlist))
	initialState := service.RefreshWatchlist()
	initialState.Type = "INITIAL"
	srv.Broadcast(initialState)

	// Start Server
	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Critical("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down...")
	if err := srv.Stop(); err != nil {
		appLogger.Error("Server stop failed: %v", err)
	}
}
