package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	dicev1 "github.com/louisbranch/dicebot/internal/api/dice/v1"
	"github.com/louisbranch/dicebot/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "dicebot"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over the streamable HTTP transport.
	TransportHTTP TransportKind = "http"
)

// defaultHTTPAddr keeps the HTTP transport on loopback unless configured.
const defaultHTTPAddr = "localhost:8081"

// Config configures the MCP server.
type Config struct {
	// GRPCAddr is the dice service address.
	GRPCAddr  string
	Transport TransportKind
	// HTTPAddr is the listen address for the HTTP transport.
	HTTPAddr string
}

// Server hosts the MCP server and the dice connection behind it.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
}

// New creates an MCP server whose tools call client. The returned server
// owns conn when it is non-nil and closes it in Close.
func New(client dicev1.DiceServiceClient, conn *grpc.ClientConn) (*Server, error) {
	if client == nil {
		return nil, errors.New("dice client is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerDiceTools(mcpServer, client)
	return &Server{mcpServer: mcpServer, conn: conn}, nil
}

func registerDiceTools(server *mcp.Server, client dicev1.DiceServiceClient) {
	mcp.AddTool(server, domain.RollDiceTool(), domain.RollDiceHandler(client))
	mcp.AddTool(server, domain.ParseDiceTool(), domain.ParseDiceHandler(client))
	mcp.AddTool(server, domain.GetRollTool(), domain.GetRollHandler(client))
	mcp.AddTool(server, domain.ListRollsTool(), domain.ListRollsHandler(client))
}

// MCPServer exposes the underlying SDK server.
func (s *Server) MCPServer() *mcp.Server {
	if s == nil {
		return nil
	}
	return s.mcpServer
}

// Close releases the gRPC connection held by the server.
func (s *Server) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return err
	}
	s.conn = nil
	return nil
}

// serveWithTransport runs the MCP server on transport until the session ends
// or ctx is canceled, then closes the gRPC connection.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close gRPC connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	log.Printf("mcp session closed")
	return nil
}
