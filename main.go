package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/EmpoweredVote/senkyo-guide/internal/config"
	"github.com/EmpoweredVote/senkyo-guide/internal/dataset"
	"github.com/EmpoweredVote/senkyo-guide/internal/db"
	"github.com/EmpoweredVote/senkyo-guide/internal/electiondb"
	"github.com/EmpoweredVote/senkyo-guide/internal/guide"
	"github.com/EmpoweredVote/senkyo-guide/internal/logging"
	"github.com/EmpoweredVote/senkyo-guide/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func openStore(cfg config.Config, log *zap.Logger) (dataset.Store, error) {
	switch cfg.Source {
	case config.SourcePostgres:
		d, err := db.Connect(cfg.DatabaseURL, cfg.LogLevel == "debug")
		if err != nil {
			return nil, err
		}
		log.Info("connected to database")
		return electiondb.NewStore(d), nil
	default:
		return dataset.OpenFileStore(cfg.DataDir, log)
	}
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	store, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("open data store", zap.String("source", string(cfg.Source)), zap.Error(err))
	}

	guide.Init(store, log)
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(limiter.Middleware)
	r.Get("/", RootHandler)

	r.Mount("/senkyo", guide.SetupRoutes())

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info("server listening", zap.String("port", cfg.Port), zap.String("source", string(cfg.Source)))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server stopped", zap.Error(err))
	}
}
