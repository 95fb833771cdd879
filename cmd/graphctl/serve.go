package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/vexedge/graphcore/alloc"
	"github.com/vexedge/graphcore/ingest"
)

// serveCmd runs an HTTP façade over the three algorithm entry points. Each
// request carries its own CSV body plus weighted/directed query parameters
// and builds a brand-new in-memory Graph; algorithm parameters come from the
// --config file loaded at startup, not from the request. The response is the
// text/csv table the run subcommand prints. No graph is shared across requests,
// so this stays a single-process external collaborator wrapping the core
// engine rather than a step toward distributed execution.
func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "listen address")
	configPath := fs.String("config", "", "optional YAML algorithm descriptor")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/v1/louvain", handleAlgorithm(cfg, "louvain"))
	r.Post("/v1/shortest-paths", handleAlgorithm(cfg, "shortest-paths"))
	r.Post("/v1/connected-components", handleAlgorithm(cfg, "connected-components"))

	srv := &http.Server{Addr: *addr, Handler: r}

	go func() {
		log.Info().Str("addr", *addr).Msg("graphctl serve listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func handleAlgorithm(cfg *AlgorithmConfig, mode string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		weighted := req.URL.Query().Get("weighted") == "true"
		directed := req.URL.Query().Get("directed") == "true"
		m := ingest.EdgeList
		if weighted {
			m = ingest.WeightedEdgeList
		}

		a := alloc.Heap()
		g, err := ingest.Read(req.Body, m, directed, a)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)

		var runErr error
		switch mode {
		case "louvain":
			runErr = runLouvain(w, g, cfg)
		case "shortest-paths":
			runErr = runShortestPaths(w, g, cfg)
		case "connected-components":
			runErr = runConnectedComponents(w, g, cfg)
		}
		if runErr != nil {
			log.Error().Err(runErr).Str("mode", mode).Msg("algorithm run failed")
		}
	}
}
