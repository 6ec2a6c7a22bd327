package game

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Rows     int   `yaml:"rows"`
	Cols     int   `yaml:"cols"`
	NumMines int   `yaml:"mines"`
	Seed     int64 `yaml:"seed"`

	// Fixed mine positions. When set, these replace random placement and
	// NumMines is ignored.
	Layout []Coord `yaml:"layout,flow"`
}

func NewConfig() Config {
	return Config{
		Rows:     5,
		Cols:     5,
		NumMines: 3,
	}
}

// ReadConfig fills config from a YAML file. Keys missing from the file keep
// their current values.
func ReadConfig(path string, config *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(b, config); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (config Config) mineCount() int {
	if len(config.Layout) > 0 {
		return len(config.Layout)
	}
	return config.NumMines
}

func (config Config) Validate() error {
	return validateDimensions(config.Rows, config.Cols, config.mineCount())
}

func (config Config) Fields() logrus.Fields {
	return logrus.Fields{
		"rows":   config.Rows,
		"cols":   config.Cols,
		"mines":  config.mineCount(),
		"seed":   config.Seed,
		"layout": len(config.Layout) > 0,
	}
}

// NewGame builds a game from the config. A zero Seed picks a random one.
func (config Config) NewGame() (*Game, error) {
	if len(config.Layout) > 0 {
		Log.WithFields(config.Fields()).Info("new game from layout")
		return NewGameWithMines(config.Rows, config.Cols, config.Layout)
	}

	seed := config.Seed
	if seed == 0 {
		seed = randomSeed()
	}

	board, err := generateBoard(config.Rows, config.Cols, config.NumMines, newRand(seed))
	if err != nil {
		return nil, err
	}

	Log.WithFields(config.Fields()).WithField("seed", seed).Info("new game")
	return newGame(board, seed), nil
}

// UnmarshalYAML reads a coordinate written as a [row, col] pair.
func (c *Coord) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var pair []int
	if err := unmarshal(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinate must be [row, col], got %v", pair)
	}
	c.Row, c.Col = pair[0], pair[1]
	return nil
}

func (c Coord) MarshalYAML() (interface{}, error) {
	return []int{c.Row, c.Col}, nil
}
