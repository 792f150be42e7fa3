package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetString("strategy"), "alphabeta")
	is.Equal(cfg.GetInt("depth"), 4)
	is.Equal(cfg.GetString("fen"), "startpos")
}

func TestEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("LOOKAHEAD_DEPTH", "6")
	t.Setenv("LOOKAHEAD_LOG_LEVEL", "debug")
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt("depth"), 6)
	is.Equal(cfg.GetString("log-level"), "debug")
}

func TestFlagOverride(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	err := cfg.Load([]string{"-strategy", "stochastic", "-breadth", "16"})
	is.NoErr(err)
	is.Equal(cfg.GetString("strategy"), "stochastic")
	is.Equal(cfg.GetInt("breadth"), 16)
	// Untouched settings keep their defaults.
	is.Equal(cfg.GetInt("depth"), 4)
}

func TestBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	err := cfg.Load([]string{"-depth", "not-a-number"})
	is.True(err != nil)
}
