package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/finvops/aplookup-mcp/internal/config"
	"github.com/finvops/aplookup-mcp/internal/logging"
	"github.com/finvops/aplookup-mcp/internal/server"
	"github.com/finvops/aplookup-mcp/internal/tools"
)

var rootCmd = &cobra.Command{
	Use:   "aplookup-mcp",
	Short: "MCP server for accounts payable lookups over PostgreSQL",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the tool definitions as JSON without connecting to the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.NewLogger(&config.LoggingConfig{Level: "error", Format: "text"})

		registry := tools.NewRegistry(logger)
		tools.RegisterAll(registry, nil, logger)

		data, err := json.MarshalIndent(registry.GetAllDefinitions(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func runServer() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	srv, err := server.NewServer()
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Start(ctx); err != nil && err != context.Canceled {
		srv.Stop()
		return fmt.Errorf("server error: %w", err)
	}

	return srv.Stop()
}

func main() {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	rootCmd.AddCommand(toolsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
