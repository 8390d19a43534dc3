package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"quince-server/internal/util"
)

// Config provides configuration for the quince server
type Config struct {
	loaded     bool
	ListenAddr string `yaml:"listenAddr" envconfig:"listen_addr"`
	Log        struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		DefaultNPCCount int `yaml:"defaultNpcCount" envconfig:"default_npc_count"`
		MaxPlayers      int `yaml:"maxPlayers" envconfig:"max_players"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is fine; defaults and the environment still apply.
func Load() error {
	config = Config{}
	config.ListenAddr = ":5000"
	config.Game.DefaultNPCCount = 1
	config.Game.MaxPlayers = 4

	configFile := util.Getenv("QUINCE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("quince", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
