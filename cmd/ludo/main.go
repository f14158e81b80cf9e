package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Alucard666haku/front-end-ludo-app/internal/advisor"
	"github.com/Alucard666haku/front-end-ludo-app/internal/config"
	"github.com/Alucard666haku/front-end-ludo-app/internal/engine"
	"github.com/Alucard666haku/front-end-ludo-app/internal/tui"
	log "github.com/sirupsen/logrus"
)

func main() {
	players := flag.Int("players", 0, "number of players (2-8)")
	pawns := flag.Int("pawns", 0, "pawns per player")
	path := flag.Int("path", 0, "cells on each player's path")
	configPath := flag.String("config", "", "YAML config file")
	seed := flag.Uint64("seed", 0, "dice seed, 0 picks one at random")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "players":
			cfg.NumPlayers = *players
		case "pawns":
			cfg.PawnsPerPlayer = *pawns
		case "path":
			cfg.PathLength = *path
		case "seed":
			cfg.Seed = *seed
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.WithError(err).Warn("unknown log level, keeping info")
	}
	logger := log.WithField("app", "ludo")

	var adv advisor.Advisor = advisor.Greedy{}
	if cfg.AdvisorEnabled() {
		gem, err := advisor.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.WithError(err).Warn("gemini unavailable, hints use the greedy advisor")
		} else {
			defer gem.Close()
			adv = advisor.Fallback{Primary: gem, Secondary: advisor.Greedy{}, Log: logger}
		}
	}

	logger.WithField("seed", cfg.Seed).Info("starting")
	if err := tui.Run(cfg, adv, logger, engine.WithDice(engine.NewRandomDice(cfg.Seed))); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
