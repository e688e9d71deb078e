// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/dicebot/internal/platform/cmd"
	"github.com/louisbranch/dicebot/internal/platform/config"
	mcpservice "github.com/louisbranch/dicebot/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	Addr      string `env:"DICEBOT_DICE_ADDR"      envDefault:"localhost:8090"`
	HTTPAddr  string `env:"DICEBOT_MCP_HTTP_ADDR"  envDefault:"localhost:8081"`
	Transport string `env:"DICEBOT_MCP_TRANSPORT"  envDefault:"stdio"`
}

// ParseConfig parses environment and flags into a Config. A nil lookup
// reads the process environment.
func ParseConfig(fs *flag.FlagSet, args []string, lookup func(string) (string, bool)) (Config, error) {
	var cfg Config
	if lookup == nil {
		if err := config.ParseEnv(&cfg); err != nil {
			return Config{}, err
		}
	} else {
		environ := map[string]string{}
		for _, key := range []string{"DICEBOT_DICE_ADDR", "DICEBOT_MCP_HTTP_ADDR", "DICEBOT_MCP_TRANSPORT"} {
			if value, ok := lookup(key); ok {
				environ[key] = value
			}
		}
		if err := config.ParseEnvMap(&cfg, environ); err != nil {
			return Config{}, err
		}
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "dice server address")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return mcpservice.Run(ctx, mcpservice.Config{
			GRPCAddr:  cfg.Addr,
			HTTPAddr:  cfg.HTTPAddr,
			Transport: mcpservice.TransportKind(cfg.Transport),
		})
	})
}
