// Command graphctl is a thin CLI and HTTP façade over the graph engine: it
// loads a CSV edge list, runs one of the three algorithms, and prints the
// resulting table. The engine packages it calls never log or print
// (spec §7); graphctl's outer shell is the only place in this module that
// does either.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vexedge/graphcore/alloc"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		runCmd(os.Args[2:])
	case "serve":
		serveCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: graphctl run <louvain|shortest-paths|connected-components> [flags]")
	fmt.Fprintln(os.Stderr, "       graphctl serve [flags]")
}

func runCmd(args []string) {
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}
	mode := args[0]

	fs := flag.NewFlagSet("run "+mode, flag.ExitOnError)
	input := fs.String("input", "", "path to a CSV edge list")
	configPath := fs.String("config", "", "optional YAML algorithm descriptor")
	directed := fs.Bool("directed", false, "treat the input as a directed graph")
	weighted := fs.Bool("weighted", false, "parse a trailing weight column")
	watchDir := fs.String("watch", "", "directory to watch; rerun whenever --input is rewritten")
	fs.Parse(args[1:])

	if *input == "" {
		log.Fatal().Msg("--input is required")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	runOnce := func() {
		a := alloc.Heap()
		g, err := loadGraph(*input, *weighted, *directed, a)
		if err != nil {
			log.Error().Err(err).Str("input", *input).Msg("failed to load graph")
			return
		}

		var runErr error
		switch mode {
		case "louvain":
			runErr = runLouvain(os.Stdout, g, cfg)
		case "shortest-paths":
			runErr = runShortestPaths(os.Stdout, g, cfg)
		case "connected-components":
			runErr = runConnectedComponents(os.Stdout, g, cfg)
		default:
			log.Fatal().Str("mode", mode).Msg("unknown algorithm")
		}
		if runErr != nil {
			log.Error().Err(runErr).Str("mode", mode).Msg("algorithm run failed")
		}
	}

	runOnce()

	if *watchDir == "" {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(*watchDir); err != nil {
		log.Fatal().Err(err).Str("dir", *watchDir).Msg("failed to watch directory")
	}

	target := filepath.Clean(*input)
	log.Info().Str("dir", *watchDir).Msg("watching for changes")

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Info().Str("file", ev.Name).Msg("input changed, rerunning")
			runOnce()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("watcher error")
		}
	}
}
