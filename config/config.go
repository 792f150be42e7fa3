// Package config holds runtime settings for the lookahead CLI, with
// defaults, LOOKAHEAD_-prefixed environment overrides, and flag overrides
// layered in that order.
package config

import (
	"flag"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	v *viper.Viper
}

func DefaultConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix("lookahead")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log-level", "info")
	v.SetDefault("strategy", "alphabeta")
	v.SetDefault("depth", 4)
	v.SetDefault("breadth", 8)
	v.SetDefault("fen", "startpos")
	v.SetDefault("sim-log", "")
	return &Config{v: v}
}

// Load parses command-line flags over the current settings.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("lookahead", flag.ContinueOnError)
	logLevel := fs.String("log-level", c.GetString("log-level"), "log level: debug, info, or disabled")
	strategy := fs.String("strategy", c.GetString("strategy"), "minimax, alphabeta, stochastic, or all")
	depth := fs.Int("depth", c.GetInt("depth"), "search depth in plies")
	breadth := fs.Int("breadth", c.GetInt("breadth"), "random samples per candidate move (stochastic only)")
	fen := fs.String("fen", c.GetString("fen"), `position to search, as FEN or "startpos"`)
	simLog := fs.String("sim-log", c.GetString("sim-log"), "write the stochastic sample log to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.v.Set("log-level", *logLevel)
	c.v.Set("strategy", *strategy)
	c.v.Set("depth", *depth)
	c.v.Set("breadth", *breadth)
	c.v.Set("fen", *fen)
	c.v.Set("sim-log", *simLog)
	return nil
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) AllSettings() map[string]interface{} {
	return c.v.AllSettings()
}
