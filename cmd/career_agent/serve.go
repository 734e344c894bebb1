package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jordan/career-agent/internal/config"
	"github.com/jordan/career-agent/internal/server"
)

var (
	servePort       int
	serveCorpusPath string
	serveConfigPath string
	serveModel      string
	serveTimeout    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for skill matching, resume analysis, and learning resource lookups.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveCorpusPath, "corpus", "", "Path to the job corpus JSON file (or set CORPUS_PATH)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to an optional JSON config file")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Override for the standard-tier reasoning model")
	serveCmd.Flags().IntVar(&serveTimeout, "timeout", 0, "Per-call reasoning timeout in seconds (default 30)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(serveConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}

	// CLI flags win over config file values.
	flagCfg := config.Config{Port: servePort, Model: serveModel, PlanTimeoutSeconds: serveTimeout}
	merged := flagCfg.MergeWithDefaults(fileCfg)
	if merged.Port == 0 {
		merged.Port = 8080
	}
	if err := merged.Validate(); err != nil {
		return err
	}

	corpusPath, err := resolveCorpusPath(serveCorpusPath, merged)
	if err != nil {
		return err
	}

	apiKey, err := resolveAPIKey(merged)
	if err != nil {
		return err
	}

	cfg := server.Config{
		Port:        merged.Port,
		APIKey:      apiKey,
		CorpusPath:  corpusPath,
		Model:       merged.Model,
		PlanTimeout: time.Duration(merged.PlanTimeoutSeconds) * time.Second,
	}

	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
