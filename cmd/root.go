package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/discovery"
	"github.com/tutorloop/tutorloop/internal/knowledge"
	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/mastery"
	"github.com/tutorloop/tutorloop/internal/mission"
	"github.com/tutorloop/tutorloop/internal/predictor"
	"github.com/tutorloop/tutorloop/internal/scoring"
	"github.com/tutorloop/tutorloop/internal/sequencer"
	"github.com/tutorloop/tutorloop/internal/store"
	"github.com/tutorloop/tutorloop/internal/wrongbook"
)

var rootCmd = &cobra.Command{
	Use:   "tutorloop",
	Short: "Adaptive learning-path recommendation engine",
	Long: "Tutorloop tracks per-user mastery over a prerequisite knowledge graph and\n" +
		"recommends what to learn next: sequencing modules, discovering reachable\n" +
		"candidates, scoring them with an LLM judge, and packaging study missions.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTORLOOP_DB env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(weakpointCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(wrongbookCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TUTORLOOP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the slog logger every component shares. Default level
// is warn so normal CLI output stays clean.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openStore opens the SQLite store using the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// pipeline bundles the recommendation components commands wire together.
type pipeline struct {
	store    *store.Store
	graph    *knowledge.Graph
	tracker  *mastery.Tracker
	ledger   *wrongbook.Ledger
	provider llm.Provider
	packager *mission.Packager
	log      *slog.Logger
}

// buildPipeline opens the store, loads the graph, and wires the full
// recommendation stack. The caller owns closing the store.
func buildPipeline(ctx context.Context, cmd *cobra.Command) (*pipeline, error) {
	log := newLogger(cmd)

	s, err := openStore(cmd)
	if err != nil {
		return nil, err
	}

	graph, err := knowledge.Load(ctx, s.GraphRepo())
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("load knowledge graph: %w", err)
	}

	provider, err := newProvider(ctx, s, log)
	if err != nil {
		s.Close()
		return nil, err
	}

	tracker := mastery.NewTracker(s.MasteryRepo(), log)
	ledger := wrongbook.NewLedger(s.WrongAnswerRepo(), log)
	seq := sequencer.New(graph, tracker, log)
	disc := discovery.New(graph, tracker, log)
	scorer := scoring.New(provider, predictor.FromEnv(predictor.WithLogger(log)), tracker, graph, log)

	return &pipeline{
		store:    s,
		graph:    graph,
		tracker:  tracker,
		ledger:   ledger,
		provider: provider,
		packager: mission.New(seq, disc, scorer, graph, s.QuestionRepo(), ledger, log),
		log:      log,
	}, nil
}

func (p *pipeline) Close() {
	p.store.Close()
}

// newProvider builds the LLM provider from TUTORLOOP_ env configuration,
// falling back to probing the standard provider key variables.
func newProvider(ctx context.Context, s *store.Store, log *slog.Logger) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		}
	}

	provider, err := llm.NewProvider(ctx, cfg, s.EventRepo(), log)
	if err != nil {
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}
	return provider, nil
}

// requireUser reads the --user flag every learner-facing command needs.
func requireUser(cmd *cobra.Command) (string, error) {
	user, _ := cmd.Flags().GetString("user")
	if user == "" {
		return "", fmt.Errorf("--user is required")
	}
	return user, nil
}
