package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/nstehr/soakbot/agent"
	"github.com/nstehr/soakbot/ipc"
	"github.com/nstehr/soakbot/rules"
	"github.com/nstehr/soakbot/tactics"
)

func main() {
	weightsPath := flag.String("weights", "", "JSON file overriding the heuristic weights")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	budget := flag.Duration("budget", agent.DefaultBudget, "planning time allowed per turn")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}

	// stdout carries the orders, so logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})).With("session", uuid.NewString())
	slog.SetDefault(logger)

	weights := tactics.DefaultWeights()
	if *weightsPath != "" {
		w, err := tactics.LoadWeights(*weightsPath)
		if err != nil {
			slog.Error("failed to load weights", "path", *weightsPath, "error", err)
			os.Exit(1)
		}
		weights = w
	}

	engine, err := rules.NewEngine(rules.CombatRules())
	if err != nil {
		slog.Error("failed to compile rules", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("starting soakbot", "budget", *budget, "weights", *weightsPath)
	start := time.Now()

	a := agent.New(engine, weights, *budget)
	c := ipc.NewConnection(os.Stdin, os.Stdout)
	c.HandleInit(a.HandleInit)
	c.HandleTurn(a.HandleTurn)
	if err := c.ReadLoop(ctx); err != nil {
		slog.Error("session ended", "error", err, "uptime", time.Since(start))
		os.Exit(1)
	}
	slog.Info("session ended", "uptime", time.Since(start))
}
