package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/user/life-city/config"
	"github.com/user/life-city/internal/game"
	"github.com/user/life-city/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "./config/config.json", "Path to configuration file")
	flag.Parse()

	// Set up logger
	logger := setupLogger()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize engine
	engine := game.NewEngine(cfg.Game)
	engine.SetLogger(logger)

	// Load catalog overrides when present
	loadGameData(engine, cfg.Game.DataDir, logger)

	// Wire the run-state checkpoint store and resume any saved run
	storage := game.NewStateStorage(cfg.Game.StatePath)
	if state, err := storage.LoadGameState(); err != nil {
		logger.Error("Failed to load saved game state", zap.Error(err))
	} else if state.IsActive {
		engine.RestoreState(state)
		logger.Info("Resumed saved run",
			zap.Int("day", state.Time.Day),
			zap.String("location", state.CurrentLocation))
	}
	engine.SetStorage(storage)

	// Initialize the real-time scheduler
	scheduler := game.NewScheduler(engine, cfg.Game, logger)

	// Set up HTTP server exposing the engine to the UI
	server := setupHTTPServer(cfg, engine, logger)

	// Start HTTP server
	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	// Start ticking after everything else is initialized
	scheduler.Start()
	defer scheduler.Stop()

	// Wait for shutdown signal
	waitForShutdown(logger)
}

func setupLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}

func loadGameData(engine *game.Engine, dataDir string, logger *zap.Logger) {
	dataLoader := game.NewDataLoader(dataDir)

	// Both catalogs ship with built-in defaults; files only override them
	if locations, err := dataLoader.LoadLocations(); err != nil {
		logger.Info("Using built-in location catalog", zap.Error(err))
	} else {
		engine.LoadLocations(locations)
		logger.Info("Loaded locations", zap.Int("count", len(locations)))
	}

	if events, err := dataLoader.LoadEvents(); err != nil {
		logger.Info("Using built-in event catalog", zap.Error(err))
	} else {
		engine.LoadEvents(events)
		logger.Info("Loaded events", zap.Int("count", len(events)))
	}
}

func setupHTTPServer(cfg config.Config, engine *game.Engine, logger *zap.Logger) *http.Server {
	// Create router
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	router.Get("/game/state", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.State())
	})

	router.Get("/game/locations", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.Locations())
	})

	router.Get("/game/event", func(w http.ResponseWriter, r *http.Request) {
		event := engine.PendingEvent()
		if event == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, event)
	})

	router.Post("/game/start", func(w http.ResponseWriter, r *http.Request) {
		engine.StartGame()
		writeJSON(w, engine.State())
	})

	router.Post("/game/pause", func(w http.ResponseWriter, r *http.Request) {
		engine.TogglePause()
		writeJSON(w, engine.State())
	})

	router.Post("/game/reset", func(w http.ResponseWriter, r *http.Request) {
		engine.ResetGame()
		writeJSON(w, engine.State())
	})

	router.Post("/game/move", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			LocationID string `json:"location_id"`
			X          int    `json:"x"`
			Y          int    `json:"y"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		engine.MoveToLocation(req.LocationID, types.Position{X: req.X, Y: req.Y})
		writeJSON(w, engine.State())
	})

	router.Post("/game/action", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ActionID string `json:"action_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		if !engine.PerformAction(req.ActionID) {
			http.Error(w, "Action rejected", http.StatusConflict)
			return
		}
		writeJSON(w, engine.State())
	})

	router.Post("/game/event/respond", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			OptionID string `json:"option_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		engine.HandleEventResponse(req.OptionID)
		writeJSON(w, engine.State())
	})

	// Create HTTP server
	return &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func waitForShutdown(logger *zap.Logger) {
	// Set up channel for shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	sig := <-sigChan
	logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	logger.Info("Shutting down")
}
