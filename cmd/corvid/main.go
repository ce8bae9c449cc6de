// Command corvid is a terminal chess player: a Main Menu / Player vs
// Player / Engine vs Player state machine reading commands from
// standard input, per spec.md §6.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/corvidchess/corvid/cli"
	"github.com/corvidchess/corvid/config"
)

var (
	buildVersion = "(devel)"

	configPath = flag.String("config", "", "path to a TOML config file of engine options; they are loaded and logged at startup, and the game's engine still starts from the defaults")
	verbose    = flag.Bool("verbose", false, "enable debug-level logging")
	version    = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()
	if *version {
		fmt.Printf("corvid %v, running on %v\n", buildVersion, runtime.GOARCH)
		return
	}

	log := newLogger(*verbose)
	defer log.Sync()

	opts, err := config.Load(*configPath)
	if err != nil {
		log.Fatalw("failed to load config", "path", *configPath, "error", err)
	}
	log.Infow("starting corvid", "options", opts)

	c := cli.New(os.Stdin, os.Stdout, log)
	c.Run()
}

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = nil
	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l.Sugar()
}
