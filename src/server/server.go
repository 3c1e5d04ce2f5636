package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"stock-dashboard/src/dashboard"
	"stock-dashboard/src/helpers"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
	"stock-dashboard/src/monitor"
	"stock-dashboard/src/utils"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// DashboardServer
// -----------------------------------------------------------------------------

type DashboardServer struct {
	Config  *models.MConfig
	Logger  *logger.Logger
	Service *dashboard.Service
	Monitor *monitor.Monitor
	engine  *gin.Engine

	// WebSocket clients
	clients    map[*Client]struct{}
	broadcast  chan *models.MWatchlistState
	register   chan *Client
	unregister chan *Client

	// Latest watchlist snapshot, replayed to new connections
	latestState *models.MWatchlistState
	stateMutex  sync.RWMutex
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewDashboardServer(cfg *models.MConfig, log *logger.Logger, svc *dashboard.Service, mon *monitor.Monitor) *DashboardServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &DashboardServer{
		Config:  cfg,
		Logger:  log,
		Service: svc,
		Monitor: mon,
		engine:  gin.Default(),
		clients: make(map[*Client]struct{}),
		// Buffered channel so a burst of refreshes never blocks handlers
		broadcast:  make(chan *models.MWatchlistState, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		latestState: &models.MWatchlistState{
			Type:    "INITIAL",
			Entries: []models.MWatchlistEntry{},
		},
	}

	// Add CORS Middleware
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// setup web routes
	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *DashboardServer) setupRoutes() {
	// REST API endpoints
	s.engine.GET("/api/dashboard", s.getDashboard)
	s.engine.GET("/api/watchlist", s.getWatchlist)
	s.engine.GET("/api/config", s.getConfig)
	s.engine.GET("/api/health", s.getHealth)

	// Prometheus endpoint
	s.engine.GET("/metrics", gin.WrapH(s.Monitor.Handler()))

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *DashboardServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)

	go s.handleWebsockets()

	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) Stop() error {
	close(s.broadcast)
	close(s.register)
	close(s.unregister)
	return nil
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

// getDashboard runs the full pipeline for the requested chart. Pipeline
// errors are not retried; they surface here as a generic failure.
func (s *DashboardServer) getDashboard(c *gin.Context) {
	req := models.MChartRequest{
		Ticker:     strings.TrimSpace(c.Query("ticker")),
		Period:     c.DefaultQuery("period", s.Config.Dashboard.DefaultPeriod),
		ChartType:  c.DefaultQuery("chart_type", "Candlestick"),
		Indicators: c.QueryArray("indicators"),
	}
	if req.Ticker == "" {
		req.Ticker = s.Config.Dashboard.DefaultTicker
	}

	if !utils.IsValidPeriod(req.Period) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid period: %s", req.Period)})
		return
	}
	if !utils.IsValidChartType(req.ChartType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid chart type: %s", req.ChartType)})
		return
	}

	payload, err := s.Service.BuildDashboard(req)
	if err != nil {
		s.Logger.Error("Dashboard refresh failed for %s: %v", req.Ticker, err)
		status := http.StatusInternalServerError
		if helpers.IsFetchError(err) || helpers.IsMalformedColumnError(err) {
			status = http.StatusBadGateway
		} else if errors.Is(err, helpers.ErrZeroBaseline) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// -----------------------------------------------------------------------------

// getWatchlist recomputes the sidebar quotes. Per-symbol failures are
// already folded into the entries, so the response is always 200.
func (s *DashboardServer) getWatchlist(c *gin.Context) {
	state := s.Service.RefreshWatchlist()
	s.Broadcast(state)
	c.JSON(http.StatusOK, state)
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"periods":        utils.Periods,
		"chart_types":    utils.ChartTypes,
		"indicators":     utils.IndicatorNames,
		"watchlist":      s.Config.Dashboard.Watchlist,
		"default_ticker": s.Config.Dashboard.DefaultTicker,
		"default_period": s.Config.Dashboard.DefaultPeriod,
	})
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) getHealth(c *gin.Context) {
	s.stateMutex.RLock()
	connections := len(s.clients)
	timestamp := s.latestState.Timestamp
	s.stateMutex.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"connections":   connections,
		"latest_update": timestamp,
	})
}
