package ui

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/asibahi/terminal-chess-app/src"
	"github.com/asibahi/terminal-chess-app/src/conf"
	"github.com/asibahi/terminal-chess-app/src/engine/chesslib"
	"github.com/asibahi/terminal-chess-app/src/logx"
	clic "github.com/asibahi/terminal-chess-app/ui/cli"
	"github.com/asibahi/terminal-chess-app/ui/gui"
	"github.com/asibahi/terminal-chess-app/ui/gui/gctx"
)

const logfile string = "chessapp.log"

func getLogger(file *os.File, cfg *conf.Config, c *cli.Command) *logx.Logx {
	lvl := cfg.LogLevel
	if c.String("level") != "" {
		lvl = c.String("level")
	}
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(lvl),
		c.Bool("debug"),
		cfg.Console || c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func getConfig(c *cli.Command) *conf.Config {
	cfg, err := conf.Load(c.String("config"))
	if err != nil {
		fmt.Printf("error read config, using defaults: %v\n", err)
		cfg = conf.Default()
	}
	return cfg
}

func newEngine(c *cli.Command) (*chesslib.Engine, error) {
	if fen := c.String("fen"); fen != "" {
		return chesslib.NewFromFEN(fen)
	}
	return chesslib.New(), nil
}

func newRNG(cfg *conf.Config, c *cli.Command) *rand.Rand {
	seed := cfg.Seed
	if c.Int("seed") != 0 {
		seed = int64(c.Int("seed"))
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RunApp is the command tree: `cli` plays in the terminal, `gui` opens the
// ebiten window, default is gui.
func RunApp() error {
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "start position in FEN format",
	}
	sf := &cli.IntFlag{
		Name:  "seed",
		Usage: "opponent RNG seed (0 = time-seeded)",
	}
	cff := &cli.StringFlag{
		Name:  "config",
		Usage: "path to yaml config",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	common := []cli.Flag{ff, sf, cff, df, lf, cf}

	runCLI := func(ctx context.Context, c *cli.Command) error {
		cfg := getConfig(c)
		file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Printf("error open logfile: %v", err)
			return nil
		}
		defer file.Close()
		logger := getLogger(file, cfg, c)

		eng, err := newEngine(c)
		if err != nil {
			fmt.Printf("error create game: %v\n", err)
			return nil
		}
		sess := src.NewSession(eng, newRNG(cfg, c), logger.Named("session"))

		clic.EnableANSI()
		cl := clic.NewCLI(sess, logger.Named("cli"), cfg.Glyphs)
		if err := cl.Run(); err != nil {
			fmt.Printf("error chessapp: %v", err)
		}
		return nil
	}

	runGUI := func(ctx context.Context, c *cli.Command) error {
		cfg := getConfig(c)
		file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Printf("error open logfile: %v", err)
			return nil
		}
		defer file.Close()
		logger := getLogger(file, cfg, c)

		gameCtx := &gctx.GUIGameContext{
			Conf:  cfg,
			Logx:  logger.Named("gui"),
			Theme: gctx.DefaultPalette(),
			Fresh: func() *src.Session {
				eng, err := newEngine(c)
				if err != nil {
					logger.Errorf("error create game: %v", err)
					eng = chesslib.New()
				}
				return src.NewSession(eng, newRNG(cfg, c), logger.Named("session"))
			},
		}
		if err := gui.NewGUI(gameCtx).Run(); err != nil {
			fmt.Printf("error GUI: %v", err)
		}
		return nil
	}

	return (&cli.Command{
		Name:  "chessapp",
		Usage: "play chess against a random mover",
		Commands: []*cli.Command{
			{
				Name:   "cli",
				Flags:  common,
				Action: runCLI,
			},
			{
				Name:   "gui",
				Flags:  common,
				Action: runGUI,
			},
		},
		Flags:  common,
		Action: runGUI,
	}).Run(context.Background(), os.Args)
}
