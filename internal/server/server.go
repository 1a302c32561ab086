package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"marketlens/internal/catalog"
	"marketlens/internal/config"
	"marketlens/pkg/logging"
)

// Server exposes the tool catalog as an MCP server over the configured
// transport (stdio or streamable HTTP).
type Server struct {
	cfg      config.ServerConfig
	registry *catalog.Registry
	invoker  *catalog.Invoker

	server               *server.MCPServer
	streamableHTTPServer *server.StreamableHTTPServer
	stdioServer          *server.StdioServer

	ctx        context.Context
	cancelFunc context.CancelFunc
	mu         sync.RWMutex
}

// New creates a server around an immutable registry and an invoker. The
// catalog is registered once here; there is no runtime mutation of tools,
// prompts or resources.
func New(cfg config.ServerConfig, registry *catalog.Registry, invoker *catalog.Invoker) *Server {
	s := &Server{
		cfg:      cfg,
		registry: registry,
		invoker:  invoker,
	}

	s.server = server.NewMCPServer(
		"marketlens",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
	)

	s.registerTools()
	s.registerPrompts()
	s.registerResources()

	return s
}

// Start serves on the configured transport. It returns once the transport
// is accepting traffic; transport errors after that are logged.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx != nil {
		return fmt.Errorf("server already started")
	}
	s.ctx, s.cancelFunc = context.WithCancel(ctx)

	switch s.cfg.Transport {
	case config.MCPTransportStdio:
		logging.Info("Server", "Starting MCP server with stdio transport")
		s.stdioServer = server.NewStdioServer(s.server)
		stdioServer := s.stdioServer
		go func() {
			if err := stdioServer.Listen(s.ctx, os.Stdin, os.Stdout); err != nil {
				logging.Error("Server", err, "Stdio server error")
			}
		}()

	case config.MCPTransportStreamableHTTP:
		addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
		logging.Info("Server", "Starting MCP server with streamable-http transport on %s", addr)
		s.streamableHTTPServer = server.NewStreamableHTTPServer(s.server)
		streamableServer := s.streamableHTTPServer
		go func() {
			if err := streamableServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "Streamable HTTP server error")
			}
		}()

	default:
		return fmt.Errorf("unsupported transport: %s", s.cfg.Transport)
	}

	return nil
}

// Stop shuts the transport down, allowing in-flight requests a short
// grace period.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancelFunc := s.cancelFunc
	streamableServer := s.streamableHTTPServer
	s.ctx = nil
	s.cancelFunc = nil
	s.streamableHTTPServer = nil
	s.stdioServer = nil
	s.mu.Unlock()

	if cancelFunc == nil {
		return fmt.Errorf("server not started")
	}

	logging.Info("Server", "Stopping MCP server")
	cancelFunc()

	if streamableServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := streamableServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down streamable HTTP server")
			return err
		}
	}
	// The stdio server stops on context cancellation.

	return nil
}

// Endpoint returns the address callers use to reach the server.
func (s *Server) Endpoint() string {
	if s.cfg.Transport == config.MCPTransportStreamableHTTP {
		return fmt.Sprintf("http://%s:%d/mcp", s.cfg.Host, s.cfg.Port)
	}
	return "stdio"
}
