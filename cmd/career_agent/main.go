// Package main provides the entry point for the Career Agent HTTP API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jordan/career-agent/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Career Agent HTTP API Server",
	Long:  "Career Agent matches candidate skills against a job corpus, computes per-job skill gaps, and generates learning plans for missing skills via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadFileConfig loads the optional JSON config file. An empty path yields a
// zero config so flags and environment variables alone can drive a command.
func loadFileConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

// resolveCorpusPath picks the corpus path from flag, config file, or the
// CORPUS_PATH environment variable, in that order.
func resolveCorpusPath(flagValue string, fileCfg config.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if fileCfg.Corpus != "" {
		return fileCfg.Corpus, nil
	}
	if env := os.Getenv("CORPUS_PATH"); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("no corpus configured: set --corpus, the config file 'corpus' field, or CORPUS_PATH")
}

// resolveAPIKey picks the Gemini API key from the config file or the
// GEMINI_API_KEY environment variable.
func resolveAPIKey(fileCfg config.Config) (string, error) {
	if fileCfg.APIKey != "" {
		return fileCfg.APIKey, nil
	}
	if env := os.Getenv("GEMINI_API_KEY"); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("GEMINI_API_KEY environment variable is required")
}
