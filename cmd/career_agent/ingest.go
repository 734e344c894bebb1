package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jordan/career-agent/internal/config"
	"github.com/jordan/career-agent/internal/corpus"
	"github.com/jordan/career-agent/internal/ingest"
	"github.com/jordan/career-agent/internal/llm"
)

var (
	ingestURL        string
	ingestCorpusPath string
	ingestConfigPath string
	ingestBrowser    bool
	ingestTimeout    int
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a job posting from a URL into the corpus",
	Long:  "Fetch a job posting page, extract the posting text, structure it into a corpus entry, and append it to the corpus file.",
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the job posting from (required)")
	ingestCmd.Flags().StringVar(&ingestCorpusPath, "corpus", "", "Path to the job corpus JSON file (or set CORPUS_PATH)")
	ingestCmd.Flags().StringVar(&ingestConfigPath, "config", "", "Path to an optional JSON config file")
	ingestCmd.Flags().BoolVar(&ingestBrowser, "browser", false, "Force a headless browser fetch for JavaScript-rendered pages")
	ingestCmd.Flags().IntVar(&ingestTimeout, "timeout", 0, "Per-call reasoning timeout in seconds (default 30)")

	_ = ingestCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(ingestConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}

	flagCfg := config.Config{PlanTimeoutSeconds: ingestTimeout}
	merged := flagCfg.MergeWithDefaults(fileCfg)
	if err := merged.Validate(); err != nil {
		return err
	}

	corpusPath, err := resolveCorpusPath(ingestCorpusPath, merged)
	if err != nil {
		return err
	}

	apiKey, err := resolveAPIKey(merged)
	if err != nil {
		return err
	}

	ctx := context.Background()

	postingText, err := fetchPostingText(ctx, ingestURL, ingestBrowser)
	if err != nil {
		return err
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	timeout := time.Duration(merged.PlanTimeoutSeconds) * time.Second
	posting, err := ingest.Structure(ctx, client, postingText, timeout)
	if err != nil {
		return err
	}

	saved, err := corpus.Append(corpusPath, posting)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Ingested job posting #%d: %s", saved.ID, saved.Title)
	if saved.Company != "" {
		fmt.Fprintf(os.Stdout, " @ %s", saved.Company)
	}
	fmt.Fprintf(os.Stdout, "\nRequired skills: %d\n", len(saved.RequiredSkills))
	return nil
}

// fetchPostingText fetches the page over plain HTTP first and falls back to
// a headless browser when the page looks JavaScript-rendered.
func fetchPostingText(ctx context.Context, url string, forceBrowser bool) (string, error) {
	if !forceBrowser {
		html, err := ingest.FetchURL(ctx, url, ingest.DefaultOptions())
		if err != nil {
			return "", err
		}
		text, err := ingest.ExtractPostingText(html)
		if err == nil && !ingest.ShouldUseBrowser(text) {
			return text, nil
		}
		fmt.Fprintln(os.Stderr, "Plain fetch yielded too little content; retrying with headless browser...")
	}

	html, err := ingest.FetchWithBrowser(ctx, url, 60*time.Second)
	if err != nil {
		return "", err
	}
	return ingest.ExtractPostingText(html)
}
