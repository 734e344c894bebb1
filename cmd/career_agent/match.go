package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jordan/career-agent/internal/config"
	"github.com/jordan/career-agent/internal/corpus"
	"github.com/jordan/career-agent/internal/extract"
	"github.com/jordan/career-agent/internal/llm"
	"github.com/jordan/career-agent/internal/observability"
	"github.com/jordan/career-agent/internal/planner"
	"github.com/jordan/career-agent/internal/skills"
)

var (
	matchSkills     string
	matchResume     string
	matchTitle      string
	matchCorpusPath string
	matchConfigPath string
	matchModel      string
	matchTimeout    int
	matchVerbose    bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match skills against the job corpus and print learning plans",
	Long:  `Run the match-and-plan pipeline once from the command line, using either an explicit skill list or a resume file.`,
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchSkills, "skills", "", "Comma-separated candidate skills (e.g. \"python,sql\")")
	matchCmd.Flags().StringVar(&matchResume, "resume", "", "Path to a plain-text resume to extract skills from")
	matchCmd.Flags().StringVar(&matchTitle, "title", "", "Case-insensitive job title filter")
	matchCmd.Flags().StringVar(&matchCorpusPath, "corpus", "", "Path to the job corpus JSON file (or set CORPUS_PATH)")
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to an optional JSON config file")
	matchCmd.Flags().StringVar(&matchModel, "model", "", "Override for the standard-tier reasoning model")
	matchCmd.Flags().IntVar(&matchTimeout, "timeout", 0, "Per-call reasoning timeout in seconds (default 30)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print the candidate skill set before the report")
	rootCmd.AddCommand(matchCmd)
}

// parseSkills splits a comma-separated flag value into a normalized skill
// set. Blank entries are dropped.
func parseSkills(raw string) skills.Set {
	parts := strings.Split(raw, ",")
	return skills.NewSet(parts...)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if matchSkills == "" && matchResume == "" {
		return fmt.Errorf("either --skills or --resume must be provided")
	}
	if matchSkills != "" && matchResume != "" {
		return fmt.Errorf("--skills and --resume are mutually exclusive; provide only one")
	}

	fileCfg, err := loadFileConfig(matchConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}

	flagCfg := config.Config{Model: matchModel, PlanTimeoutSeconds: matchTimeout}
	merged := flagCfg.MergeWithDefaults(fileCfg)
	if err := merged.Validate(); err != nil {
		return err
	}

	corpusPath, err := resolveCorpusPath(matchCorpusPath, merged)
	if err != nil {
		return err
	}

	apiKey, err := resolveAPIKey(merged)
	if err != nil {
		return err
	}

	jobCorpus, err := corpus.Load(corpusPath)
	if err != nil {
		return err
	}

	ctx := context.Background()

	llmConfig := llm.DefaultConfig()
	if merged.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, merged.Model)
	}
	client, err := llm.NewGeminiClient(ctx, llmConfig, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	timeout := time.Duration(merged.PlanTimeoutSeconds) * time.Second

	var candidate skills.Set
	if matchResume != "" {
		content, err := os.ReadFile(matchResume)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		candidate, err = extract.NewExtractor(client, timeout).Skills(ctx, string(content))
		if err != nil {
			return err
		}
	} else {
		candidate = parseSkills(matchSkills)
		if len(candidate) == 0 {
			return fmt.Errorf("--skills did not contain any skills")
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	if matchVerbose {
		printer.PrintSkills(candidate.Sorted())
	}

	report, err := planner.New(jobCorpus, client, timeout).MatchAndPlan(ctx, candidate, matchTitle)
	if err != nil {
		return err
	}

	printer.PrintReport(report)
	return nil
}
