package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	dicev1 "github.com/louisbranch/dicebot/internal/api/dice/v1"
	platformgrpc "github.com/louisbranch/dicebot/internal/platform/grpc"
	"github.com/louisbranch/dicebot/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	switch cfg.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}

	server, err := dialServer(ctx, cfg.GRPCAddr)
	if err != nil {
		return err
	}

	if cfg.Transport == TransportHTTP {
		defer server.Close()
		httpAddr := strings.TrimSpace(cfg.HTTPAddr)
		if httpAddr == "" {
			httpAddr = defaultHTTPAddr
		}
		listener, err := net.Listen("tcp", httpAddr)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", httpAddr, err)
		}
		return server.ServeHTTP(ctx, listener)
	}
	return server.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// dialServer connects to the dice service and builds the MCP server on top.
func dialServer(ctx context.Context, grpcAddr string) (*Server, error) {
	addr := strings.TrimSpace(grpcAddr)
	if addr == "" {
		return nil, errors.New("dice service address is required")
	}
	logf := func(format string, args ...any) {
		log.Printf("dice %s", fmt.Sprintf(format, args...))
	}
	conn, err := platformgrpc.Dial(ctx, addr, timeouts.GRPCDial, logf)
	if err != nil {
		return nil, fmt.Errorf("connect to dice server at %s: %w", addr, err)
	}
	server, err := New(dicev1.NewDiceServiceClient(conn), conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return server, nil
}

// Handler returns the streamable HTTP handler for this server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

// ServeHTTP serves the streamable HTTP transport on listener until ctx ends.
func (s *Server) ServeHTTP(ctx context.Context, listener net.Listener) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	serveErr := make(chan error, 1)
	go func() {
		log.Printf("mcp http listening at %s", listener.Addr())
		serveErr <- httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			// Streaming sessions may outlive the grace period.
			_ = httpServer.Close()
			log.Printf("mcp http shutdown: %v", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve mcp http: %w", err)
	}
}
