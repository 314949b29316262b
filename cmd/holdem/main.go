package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/Tehes/poker/internal/bot"
	"github.com/Tehes/poker/internal/config"
	"github.com/Tehes/poker/internal/evaluator"
	"github.com/Tehes/poker/internal/game"
	"github.com/Tehes/poker/internal/randutil"
	"github.com/Tehes/poker/internal/ui"
)

var cli struct {
	Config   string `help:"Path to an HCL table configuration." type:"existingfile" short:"c"`
	Seed     int64  `help:"RNG seed for reproducible games (0 seeds from the clock)." default:"0"`
	Hands    int    `help:"Stop after this many hands (0 plays to a champion)." default:"0"`
	Speed    bool   `help:"Skip bot think delays." short:"s"`
	Headless bool   `help:"Run without table rendering."`
	Debug    bool   `help:"Log bot decision traces."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("No-limit Texas hold'em against heuristic bots."),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := config.Default()
	if cli.Config != "" {
		loaded, err := config.Load(cli.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)
	logger.Info("starting game", "seed", seed, "seats", len(cfg.Seats))

	players := make([]*game.Player, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		chips := cfg.Table.StartingChips
		if seat.Chips > 0 {
			chips = seat.Chips
		}
		players[i] = game.NewPlayer(seat.Name, chips, seat.Bot)
	}

	table, err := game.NewTable(players,
		game.WithBlinds(cfg.Table.SmallBlind, cfg.Table.BigBlind),
		game.WithRNG(rng),
		game.WithLogger(logger.WithPrefix("table")),
	)
	if err != nil {
		return err
	}

	eval := evaluator.New()
	seatBot := bot.New(eval, rng, bot.WithLogger(logger.WithPrefix("bot")))

	thinkDelay := time.Duration(cfg.Table.ThinkDelayMS) * time.Millisecond
	if cli.Speed {
		thinkDelay = 0
	}

	opts := []game.EngineOption{
		game.WithFallbackAgent(seatBot),
		game.WithThinkDelay(thinkDelay),
		game.WithEngineLogger(logger.WithPrefix("engine")),
	}
	if cli.Headless {
		opts = append(opts, game.WithRenderer(game.NopRenderer{}))
	} else {
		opts = append(opts, game.WithRenderer(ui.NewConsole(os.Stdout)))
	}
	for _, seat := range cfg.Seats {
		if !seat.Bot {
			human := ui.NewHuman(os.Stdin, os.Stdout,
				ui.WithTimeout(time.Duration(cfg.Table.ActionTimeoutSeconds)*time.Second))
			opts = append(opts, game.WithAgent(seat.Name, human))
		}
	}

	engine := game.NewEngine(table, eval, opts...)
	champion, err := engine.Run(cli.Hands)
	if err != nil {
		return err
	}
	if champion != "" {
		logger.Info("tournament over", "champion", champion)
	} else {
		logger.Info("hand limit reached", "hands", cli.Hands)
	}
	return nil
}
