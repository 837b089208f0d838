package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/blockworld/audio"
	"github.com/lixenwraith/blockworld/config"
	"github.com/lixenwraith/blockworld/engine"
	"github.com/lixenwraith/blockworld/engine/status"
	"github.com/lixenwraith/blockworld/input"
	"github.com/lixenwraith/blockworld/level"
	"github.com/lixenwraith/blockworld/parameter"
	"github.com/lixenwraith/blockworld/render/raster"
)

// options are the command-line switches layered over the config file
type options struct {
	configPath string
	debug      bool
	save       string
	seed       int64
	generator  string
	metrics    string
	zombies    int
	noSound    bool
}

// parseFlags reads args into options and applies only the flags that were set explicitly
func parseFlags(args []string, stderr io.Writer) (*config.Config, options, error) {
	var opts options
	fset := flag.NewFlagSet("blockworld", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&opts.configPath, "config", "", "config file (.toml, .yaml)")
	fset.BoolVar(&opts.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	fset.StringVar(&opts.save, "level", "", "level save file")
	fset.Int64Var(&opts.seed, "seed", 0, "world seed, 0 for time-based")
	fset.StringVar(&opts.generator, "generator", "", "terrain generator (flat, perlin)")
	fset.StringVar(&opts.metrics, "metrics", "", "prometheus listen address, empty disables")
	fset.IntVar(&opts.zombies, "zombies", 0, "zombie count")
	fset.BoolVar(&opts.noSound, "nosound", false, "disable sound")
	if err := fset.Parse(args); err != nil {
		return nil, opts, err
	}

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, opts, err
		}
		cfg = loaded
	}

	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			cfg.World.SavePath = opts.save
		case "seed":
			cfg.World.Seed = opts.seed
		case "generator":
			cfg.World.Generator = opts.generator
		case "metrics":
			cfg.Metrics.Address = opts.metrics
		case "zombies":
			cfg.Engine.Zombies = opts.zombies
		case "nosound":
			cfg.Sound.Enabled = !opts.noSound
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, opts, err
	}
	return cfg, opts, nil
}

func main() {
	cfg, opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "blockworld: %v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}
	logger := newLogger(logFile)
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("exit", zap.Error(err))
		fmt.Fprintf(os.Stderr, "blockworld: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	world := buildWorld(cfg, logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	// Restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\nPANIC: %v\n\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			logger.Error("panic", zap.Any("value", r), zap.ByteString("stack", debug.Stack()))
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	textures := raster.NewTextureCache(logger)
	terrain, err := textures.Load(cfg.Render.TexturePath)
	if err != nil {
		return err
	}
	skin, err := textures.Load(cfg.Render.SkinPath)
	if err != nil {
		return err
	}

	w, h := screen.Size()
	in := input.New(nil)
	in.SetSize(w, h)
	surface := raster.New(textures, w, max(h-1, 1)*2)

	sound := audio.NewSoundManager()
	if cfg.Sound.Enabled {
		if err := sound.Initialize(); err != nil {
			logger.Warn("sound unavailable", zap.Error(err))
		} else {
			defer sound.Cleanup()
		}
	}

	metrics := status.NewRegistry()

	game, err := engine.NewGame(engine.Deps{
		Config:         cfg,
		Grid:           world,
		Surface:        surface,
		Screen:         screen,
		Input:          in,
		Sound:          sound,
		Metrics:        metrics,
		Logger:         logger,
		TerrainTexture: terrain,
		SkinTexture:    skin,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := startInputReader(screen, logger)

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Metrics.Address != "" {
		g.Go(func() error {
			if err := metrics.Serve(gctx, cfg.Metrics.Address, logger); err != nil {
				logger.Warn("metrics endpoint stopped", zap.Error(err))
			}
			return nil
		})
	}
	g.Go(func() error {
		defer stop()
		return game.Run(gctx, events)
	})
	return g.Wait()
}

// buildWorld generates the grid and overlays the saved level when one is readable
func buildWorld(cfg *config.Config, logger *zap.Logger) *level.Grid {
	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen, err := level.GeneratorByName(cfg.World.Generator, seed)
	if err != nil {
		logger.Warn("falling back to flat generator", zap.Error(err))
		gen = level.FlatGenerator{}
	}

	world := level.New(cfg.World.Width, cfg.World.Height, cfg.World.Depth, gen)
	world.SetLogger(logger)

	if cfg.World.SavePath == "" {
		return world
	}
	switch err := world.Load(cfg.World.SavePath); {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("no saved level, using generated world", zap.String("path", cfg.World.SavePath))
	default:
		logger.Warn("saved level unreadable, using generated world", zap.Error(err))
	}
	return world
}

// startInputReader pumps terminal events into a buffered channel, closed when the screen finalizes
func startInputReader(screen tcell.Screen, logger *zap.Logger) <-chan tcell.Event {
	events := make(chan tcell.Event, parameter.InputQueueSize)
	go func() {
		defer close(events)
		defer func() {
			if r := recover(); r != nil {
				logger.Error("input reader panic", zap.Any("value", r))
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	return events
}
