package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mlatu/beesolver/config"
	"github.com/mlatu/beesolver/report"
	"github.com/mlatu/beesolver/shell"
	"github.com/mlatu/beesolver/solver"
	"github.com/mlatu/beesolver/wordlist"
)

var GitVersion string

func main() {
	// A .env file is optional; ignore a missing one.
	godotenv.Load()

	// Relative data paths resolve against the executable's directory.
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.AdjustRelativePaths(exPath)

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	var logger zerolog.Logger
	if cfg.GetBool(config.KeyDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger
	log.Debug().Interface("config", cfg.SanitizedSettings()).Msg("loaded config")

	args := cfg.Args()
	if len(args) >= 2 {
		// one-shot: beesolver [flags] <may-use> <must-use> [minlength]
		if err := solveOnce(cfg, args); err != nil {
			log.Fatal().Err(err).Msg("solve failed")
		}
		return
	}
	if len(args) == 1 {
		log.Fatal().Msg("need both a may-use and a must-use letter expression")
	}

	idleConnsClosed := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")
		close(idleConnsClosed)
	}()

	sc := shell.NewShellController(cfg)
	if GitVersion != "" {
		fmt.Println("beesolver " + GitVersion)
	}
	go sc.Loop(sig)

	<-idleConnsClosed
}

func solveOnce(cfg *config.Config, args []string) error {
	rawMinLength := strconv.Itoa(cfg.GetInt(config.KeyMinWordLength))
	if len(args) >= 3 {
		rawMinLength = strings.TrimSpace(args[2])
	}
	words, err := wordlist.Load(cfg)
	if err != nil {
		return err
	}
	opts := solver.Options{Parallel: cfg.GetBool(config.KeyParallel)}
	res, err := solver.Solve(context.Background(), words, args[0], args[1], rawMinLength, opts)
	if err != nil {
		return err
	}
	return report.Write(os.Stdout, res, report.Options{ShowSummary: true})
}
