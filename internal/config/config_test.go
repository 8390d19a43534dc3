package config

import (
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
)

func TestInstance(t *testing.T) {
	clear1 := setEnv("QUINCE_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := setEnv("QUINCE_LISTEN_ADDR", ":7000")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(":7000", cfg.ListenAddr) // env beats file
	a.Equal("debug", cfg.Log.Level)
	a.Equal(3, cfg.Game.DefaultNPCCount)
	a.Equal(4, cfg.Game.MaxPlayers) // default survives

	// ensure that it's only loaded once
	_ = os.Setenv("QUINCE_LISTEN_ADDR", ":8000")
	// ensure we aren't using a pointer
	cfg.ListenAddr = "bad"
	cfg = Instance()
	a.Equal(":7000", cfg.ListenAddr)
}

func TestDefaults(t *testing.T) {
	clear := setEnv("QUINCE_CONFIG_FILE", "no-such-file.yaml")
	defer clear()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, ":5000", cfg.ListenAddr)
	assert.Equal(t, 1, cfg.Game.DefaultNPCCount)
}

func setEnv(key, val string) func() {
	orig := os.Getenv(key)
	_ = os.Setenv(key, val)
	return func() {
		if orig == "" {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}
