package app

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"pathgrid/internal/search"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "PATHGRID_"

// Config represents the command-line parameters for the application.
type Config struct {
	Rows     int
	Cols     int
	Scale    int
	TPS      int
	Rate     int
	Seed     int64
	Algo     string
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rows: 25, Cols: 45, Scale: 20, TPS: 60, Rate: 60, Seed: 42, Algo: "bfs", LogLevel: "info"}
}

// LoadDotEnv loads the given .env files (".env" when none are named) into
// the process environment. Variables already set win, and missing files are
// not an error.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("app: load env: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from PATHGRID_* variables found by lookup.
// Values that fail to parse are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	intVar := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				*dst = n
			}
		}
	}
	intVar("ROWS", &c.Rows)
	intVar("COLS", &c.Cols)
	intVar("SCALE", &c.Scale)
	intVar("TPS", &c.TPS)
	intVar("RATE", &c.Rate)
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	if v, ok := lookup(EnvPrefix + "ALGO"); ok {
		if _, err := search.ParseAlgorithm(v); err == nil {
			c.Algo = v
		}
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "animation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for maze generation")
	fs.StringVar(&c.Algo, "algo", c.Algo, "search algorithm (bfs, dfs, dijkstra, astar)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
}

// Algorithm resolves the configured search strategy.
func (c *Config) Algorithm() (search.Algorithm, error) {
	return search.ParseAlgorithm(c.Algo)
}

// Validate reports the first unusable value.
func (c *Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return fmt.Errorf("app: grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	case c.Scale < 1:
		return fmt.Errorf("app: scale must be positive, got %d", c.Scale)
	case c.TPS < 1 || c.Rate < 1:
		return fmt.Errorf("app: tps and rate must be positive")
	}
	if _, err := c.Algorithm(); err != nil {
		return err
	}
	return nil
}
