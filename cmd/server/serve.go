package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpggio/timewizard/internal/mcp"
	"github.com/rpggio/timewizard/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API and MCP endpoint",
		Long: `Run the server. In "http" transport mode it serves the REST API under /api,
a health check at /health, and (unless disabled) the MCP endpoint at /mcp.
In "stdio" mode it serves only the MCP tools on stdin/stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.serve(cmd.Context())
		},
	}
}

func (c *cli) serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx, c.cfg.DB.Path, c.logger)
	if err != nil {
		c.logger.Error("failed to open database", "error", err)
		return err
	}
	defer a.Close()

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Entries:   a.entries,
			Lines:     a.lines,
			Notes:     a.notes,
			Settings:  a.settings,
			Summaries: a.summaries,
		},
		Version: version,
		Logger:  c.logger,
	})

	if c.cfg.Transport.Mode == "stdio" {
		return c.runStdio(ctx, mcpServer)
	}
	return c.runHTTP(ctx, a, mcpServer)
}

func (c *cli) runStdio(ctx context.Context, mcpServer *sdkmcp.Server) error {
	c.logger.Info("starting stdio transport")

	// Run blocks until stdin closes or ctx is canceled.
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		c.logger.Error("stdio server error", "error", err)
		return err
	}
	return nil
}

func (c *cli) runHTTP(ctx context.Context, a *app, mcpServer *sdkmcp.Server) error {
	opts := transport.Options{Logger: c.logger}
	if c.cfg.MCP.Enabled {
		opts.MCP = sdkmcp.NewStreamableHTTPHandler(
			func(*http.Request) *sdkmcp.Server { return mcpServer },
			&sdkmcp.StreamableHTTPOptions{
				Stateless:      false,
				SessionTimeout: 30 * time.Minute,
			},
		)
	}

	router := transport.NewServer(transport.Services{
		Entries:   a.entries,
		Lines:     a.lines,
		Notes:     a.notes,
		Settings:  a.settings,
		Summaries: a.summaries,
		Backups:   a.backups,
	}, opts)

	httpServer := &http.Server{
		Addr:              c.cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c.logger.Info("server listening", "addr", httpServer.Addr, "mcp", c.cfg.MCP.Enabled)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		c.logger.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		c.logger.Error("server error", "error", err)
		return err
	}
	return nil
}
