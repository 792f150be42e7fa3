package main

import (
	"fmt"
	"os"

	dragon "github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/fiftymoves/lookahead/config"
	"github.com/fiftymoves/lookahead/search"
	"github.com/fiftymoves/lookahead/standard"
)

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var logger zerolog.Logger
	switch cfg.GetString("log-level") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(os.Stderr).Level(zerolog.InfoLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
		logger = zerolog.New(os.Stderr).Level(zerolog.Disabled)
	}
	zerolog.DefaultContextLogger = &logger

	fen := cfg.GetString("fen")
	if fen == "startpos" {
		fen = dragon.Startpos
	}
	side, board, flags, err := standard.FromFEN(fen)
	if err != nil {
		logger.Fatal().Err(err).Str("fen", fen).Msg("could not parse position")
	}
	logger.Debug().Interface("settings", cfg.AllSettings()).Msg("loaded config")

	depth := cfg.GetInt("depth")
	breadth := cfg.GetInt("breadth")

	run := func(strategy string) error {
		// One solver per strategy; a Solver is not safe for concurrent use.
		s := search.NewSolver(standard.Rules{})
		var v search.Variation
		var err error
		switch strategy {
		case "minimax":
			v, err = s.Minimax(side, board, flags, depth)
		case "alphabeta":
			v, err = s.AlphaBeta(side, board, flags, depth)
		case "stochastic":
			if path := cfg.GetString("sim-log"); path != "" {
				f, ferr := os.Create(path)
				if ferr != nil {
					return ferr
				}
				defer f.Close()
				s.SetLogStream(f)
			}
			v, err = s.Stochastic(side, board, flags, depth, breadth, search.RandomChooser())
		default:
			return fmt.Errorf("unknown strategy %q", strategy)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%-10s value %8.1f  nodes %8d  pv %s\n",
			strategy, v.Value, s.NodesExpanded(), v)
		return nil
	}

	strategy := cfg.GetString("strategy")
	if strategy == "all" {
		var g errgroup.Group
		for _, st := range []string{"minimax", "alphabeta", "stochastic"} {
			st := st
			g.Go(func() error { return run(st) })
		}
		err = g.Wait()
	} else {
		err = run(strategy)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("search failed")
	}
}
