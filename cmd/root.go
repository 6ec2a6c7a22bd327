package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/termsweep/director/constraint"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
)

type options struct {
	game       game.Config
	configPath string
	director   directorMode
	delay      time.Duration
	showMines  bool
	noClear    bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := options{game: game.NewConfig()}

	rootCmd := &cobra.Command{
		Use:   "termsweep",
		Short: "Play Minesweeper in the terminal",
		Long: `termsweep is a Minesweeper game played by typing the cell to
reveal as 'row,col'.

Play a 5x5 board with 3 mines
	termsweep

Play a bigger board, or let the computer play
	termsweep --rows 16 --cols 30 --mines 99
	termsweep --director constraint
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.IntVarP(&opts.game.Rows, "rows", "r", opts.game.Rows, "Number of rows on the board")
	flags.IntVarP(&opts.game.Cols, "cols", "c", opts.game.Cols, "Number of columns on the board")
	flags.IntVarP(&opts.game.NumMines, "mines", "m", opts.game.NumMines, "Number of mines to place on the board")
	flags.Int64Var(&opts.game.Seed, "seed", 0, "Seed for mine placement; 0 picks one at random")
	flags.StringVar(&opts.configPath, "config", "", "YAML file with rows, cols, mines, seed and layout; flags override it")
	flags.VarP(newDirectorModeValue(noDirector, &opts.director), "director", "d", `Let the computer play.
none: play yourself
random: select hidden cells at random
constraint: select cells proven safe, guessing only when stuck`)
	flags.DurationVar(&opts.delay, "delay", 500*time.Millisecond, "Pause between moves when the computer plays")
	flags.BoolVar(&opts.showMines, "show-mines", false, "Print mine locations above the board")
	flags.BoolVar(&opts.noClear, "no-clear", false, "Do not clear the screen between turns")
	flags.StringVar(&opts.logLevel, "log-level", logrus.WarnLevel.String(), "Log level, written to stderr")

	return rootCmd
}

func run(cmd *cobra.Command, opts options) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	game.Log.SetLevel(level)
	game.Log.SetOutput(cmd.ErrOrStderr())

	config, err := loadConfig(cmd.Flags(), opts)
	if err != nil {
		return err
	}

	g, err := config.NewGame()
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}

	t := newTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
	t.clearScreen = !opts.noClear
	t.showMines = opts.showMines

	_, err = t.play(g, newDirector(opts.director, g.Seed()), opts.delay)
	return err
}

// loadConfig reads the config file, if any, then applies the flags that were
// set explicitly on the command line.
func loadConfig(flags *pflag.FlagSet, opts options) (game.Config, error) {
	if opts.configPath == "" {
		return opts.game, opts.game.Validate()
	}

	config := game.NewConfig()
	if err := game.ReadConfig(opts.configPath, &config); err != nil {
		return config, fmt.Errorf("cannot read config: %w", err)
	}

	if flags.Changed("rows") {
		config.Rows = opts.game.Rows
	}
	if flags.Changed("cols") {
		config.Cols = opts.game.Cols
	}
	if flags.Changed("mines") {
		config.NumMines = opts.game.NumMines
		config.Layout = nil
	}
	if flags.Changed("seed") {
		config.Seed = opts.game.Seed
	}

	game.Log.WithFields(config.Fields()).WithField("path", opts.configPath).Debug("loaded config")
	return config, config.Validate()
}

func newDirector(mode directorMode, seed int64) game.Director {
	r := rand.New(rand.NewPCG(uint64(seed), 1))
	switch mode {
	case randomDirector:
		return random.New(r)
	case constraintDirector:
		return constraint.New(r)
	default:
		return nil
	}
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type directorMode int

const (
	noDirector directorMode = iota
	randomDirector
	constraintDirector
)

var directorModes = map[string]directorMode{
	"none":       noDirector,
	"random":     randomDirector,
	"constraint": constraintDirector,
}

type directorModeValue directorMode

func newDirectorModeValue(val directorMode, p *directorMode) *directorModeValue {
	*p = val
	return (*directorModeValue)(p)
}

func (modeVal *directorModeValue) String() string {
	for name, mode := range directorModes {
		if mode == directorMode(*modeVal) {
			return name
		}
	}
	return fmt.Sprint(*modeVal)
}

func (modeVal *directorModeValue) Set(value string) error {
	if mode, isValid := directorModes[value]; isValid {
		*modeVal = directorModeValue(mode)
		return nil
	} else {
		return fmt.Errorf("invalid director %q", value)
	}
}

func (modeVal *directorModeValue) Type() string {
	return "director"
}
