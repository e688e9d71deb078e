// Package service wires MCP transports to the dice tool handlers.
//
// It knows how to run MCP over stdio or streamable HTTP and delegates tool
// semantics to the domain package, which talks to the dice gRPC service.
package service
