package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jordan/career-agent/internal/corpus"
	"github.com/jordan/career-agent/internal/extract"
	"github.com/jordan/career-agent/internal/llm"
	"github.com/jordan/career-agent/internal/planner"
	"github.com/jordan/career-agent/internal/server/ratelimit"
	"github.com/jordan/career-agent/internal/skills"
	"github.com/jordan/career-agent/internal/types"
)

// SkillExtractor extracts a candidate's skill set from resume text.
type SkillExtractor interface {
	Skills(ctx context.Context, resumeText string) (skills.Set, error)
}

// MatchPlanner runs the match-and-plan pipeline.
type MatchPlanner interface {
	MatchAndPlan(ctx context.Context, resumeSkills skills.Set, titleFilter string) (*types.MatchReport, error)
	ResourcesForSkill(ctx context.Context, skill string) ([]types.Resource, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	corpus      *corpus.Corpus
	extractor   SkillExtractor
	planner     MatchPlanner
	llmClient   llm.Client
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration.
type Config struct {
	Port        int
	APIKey      string
	CorpusPath  string
	Model       string        // Optional override for the standard-tier model
	PlanTimeout time.Duration // Per-call reasoning timeout; zero uses the default
}

// New creates a new server instance. Corpus load failures are fatal: a
// server without a corpus must not accept requests.
func New(ctx context.Context, cfg Config) (*Server, error) {
	jobCorpus, err := corpus.Load(cfg.CorpusPath)
	if err != nil {
		return nil, err
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, cfg.Model)
	}
	client, err := llm.NewGeminiClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	s := &Server{
		corpus:      jobCorpus,
		extractor:   extract.NewExtractor(client, cfg.PlanTimeout),
		planner:     planner.New(jobCorpus, client, cfg.PlanTimeout),
		llmClient:   client,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Reasoning calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request multiplexer with the middleware chain applied.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/find_jobs", s.handleFindJobs)
	mux.HandleFunc("POST /api/analyze_skills", s.handleAnalyzeSkills)
	mux.HandleFunc("POST /api/learning_resources", s.handleLearningResources)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s (corpus: %d postings)", s.httpServer.Addr, s.corpus.Len())
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers so the browser UI can call the API directly.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging with a per-request correlation id.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		log.Printf("[%s] %s %s %s", requestID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

// withRateLimit adds rate limiting middleware.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error in the report shape the UI expects.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{
		"status": types.StatusError,
		"report": message,
	})
}

// extractClientID extracts the client identifier (IP) from the request.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	if info.RetryAfter > 0 {
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}
	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))
	s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
}
