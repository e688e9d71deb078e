// Package timeouts defines timeout constants shared by dicebot services.
package timeouts

import "time"

// GRPCDial caps the wait for a dice service to report healthy.
const GRPCDial = 2 * time.Second

// GRPCRequest caps a single dice RPC issued by an MCP tool call.
const GRPCRequest = 2 * time.Second

// ReadHeader limits how long the MCP HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits graceful shutdown of the MCP HTTP server.
const Shutdown = 5 * time.Second
