// Package domain defines the dicebot MCP tools and their handlers.
//
// Handlers are thin adapters: they translate tool input into DiceService
// calls with a bounded timeout and map responses back into tool output.
// Correlation IDs are forwarded as gRPC metadata and echoed in the tool
// result metadata.
package domain
