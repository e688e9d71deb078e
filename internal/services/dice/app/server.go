// Package server hosts the dice gRPC service.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"

	dicev1 "github.com/louisbranch/dicebot/internal/api/dice/v1"
	grpcmeta "github.com/louisbranch/dicebot/internal/api/grpc/metadata"
	"github.com/louisbranch/dicebot/internal/core/dice"
	platformgrpc "github.com/louisbranch/dicebot/internal/platform/grpc"
	"github.com/louisbranch/dicebot/internal/services/dice/api/grpc/rolls"
	storagesqlite "github.com/louisbranch/dicebot/internal/services/dice/storage/sqlite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

// Config configures the dice server.
type Config struct {
	// Addr is the listen address, e.g. ":8090".
	Addr string
	// DBPath enables roll history when set.
	DBPath   string
	Limits   dice.Limits
	SeedFunc func() (int64, error)
}

// Server hosts the dice service and its health checks.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *storagesqlite.Store
}

// New creates a dice server listening on cfg.Addr.
func New(cfg Config) (*Server, error) {
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	opts := []rolls.Option{
		rolls.WithLimits(cfg.Limits),
		rolls.WithSeedFunc(cfg.SeedFunc),
	}
	var store *storagesqlite.Store
	if path := strings.TrimSpace(cfg.DBPath); path != "" {
		store, err = storagesqlite.Open(path)
		if err != nil {
			_ = listener.Close()
			return nil, fmt.Errorf("open roll store: %w", err)
		}
		opts = append(opts, rolls.WithStore(store))
		log.Printf("roll history stored at %s", path)
	} else {
		log.Printf("roll history disabled")
	}

	serverOpts := append(platformgrpc.DefaultServerOptions(),
		grpc.ChainUnaryInterceptor(grpcmeta.UnaryServerInterceptor(nil)),
	)
	grpcServer := grpc.NewServer(serverOpts...)
	dicev1.RegisterDiceServiceServer(grpcServer, rolls.NewService(opts...))
	healthServer := platformgrpc.RegisterHealth(grpcServer, dicev1.DiceService_ServiceDesc.ServiceName)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
	}, nil
}

// Addr returns the listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a dice server until the context ends.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve blocks until the server stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeStore()

	log.Printf("dice server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		return handleErr(<-serveErr)
	case err := <-serveErr:
		return handleErr(err)
	}
}

func (s *Server) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close roll store: %v", err)
	}
}
