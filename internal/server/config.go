package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete advisor-server configuration.
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Game   GameSettings   `hcl:"game,block"`
}

// ServerSettings contains listener-level configuration.
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// GameSettings configures the practice sessions the server runs.
type GameSettings struct {
	// StartingStack is each player's stack in BB at session start.
	StartingStack float64 `hcl:"starting_stack,optional"`
	// AITendency is the profile the advisor plays as.
	AITendency string `hcl:"ai_tendency,optional"`
	// SearchAlgorithm selects a_star or brute_force for AI actions.
	SearchAlgorithm string `hcl:"search_algorithm,optional"`
	// Heuristic selects the a_star heuristic.
	Heuristic string `hcl:"heuristic,optional"`
	// SessionTTLMinutes is how long an idle session survives before the
	// sweeper removes it.
	SessionTTLMinutes int `hcl:"session_ttl_minutes,optional"`
}

// DefaultConfig returns the configuration used when no file is present:
// 50 BB stacks against an Unknown opponent, as the practice frontend
// always started.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
			LogFile:  "preflop-advisor.log",
		},
		Game: GameSettings{
			StartingStack:     50,
			AITendency:        "Unknown",
			SearchAlgorithm:   "a_star",
			Heuristic:         "hand_strength",
			SessionTTLMinutes: 30,
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields
// the defaults; a present file is decoded and then backfilled with
// defaults for any omitted value.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if config.Server.Address == "" {
		config.Server.Address = defaults.Server.Address
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Server.Port
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = defaults.Server.LogLevel
	}
	if config.Server.LogFile == "" {
		config.Server.LogFile = defaults.Server.LogFile
	}
	if config.Game.StartingStack == 0 {
		config.Game.StartingStack = defaults.Game.StartingStack
	}
	if config.Game.AITendency == "" {
		config.Game.AITendency = defaults.Game.AITendency
	}
	if config.Game.SearchAlgorithm == "" {
		config.Game.SearchAlgorithm = defaults.Game.SearchAlgorithm
	}
	if config.Game.Heuristic == "" {
		config.Game.Heuristic = defaults.Game.Heuristic
	}
	if config.Game.SessionTTLMinutes == 0 {
		config.Game.SessionTTLMinutes = defaults.Game.SessionTTLMinutes
	}

	return &config, nil
}

// Validate checks the configuration for values the server cannot run
// with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Game.StartingStack <= 1 {
		return fmt.Errorf("starting stack must exceed the big blind, got %.1f", c.Game.StartingStack)
	}
	switch c.Game.SearchAlgorithm {
	case "a_star", "brute_force":
	default:
		return fmt.Errorf("invalid search algorithm %q", c.Game.SearchAlgorithm)
	}
	switch c.Game.Heuristic {
	case "hand_strength", "optimistic":
	default:
		return fmt.Errorf("invalid heuristic %q", c.Game.Heuristic)
	}
	if c.Game.SessionTTLMinutes < 1 {
		return fmt.Errorf("session TTL must be at least one minute, got %d", c.Game.SessionTTLMinutes)
	}
	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
