package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/tutorloop/tutorloop/ent"
	"github.com/tutorloop/tutorloop/ent/answerevent"
	"github.com/tutorloop/tutorloop/ent/masteryrecord"
	"github.com/tutorloop/tutorloop/ent/wronganswerrecord"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// GraphRepo returns the knowledge graph repository backed by this store.
func (s *Store) GraphRepo() GraphRepo {
	return &graphRepo{client: s.client}
}

// QuestionRepo returns the question repository backed by this store.
func (s *Store) QuestionRepo() QuestionRepo {
	return &questionRepo{client: s.client}
}

// MasteryRepo returns the mastery record repository backed by this store.
func (s *Store) MasteryRepo() MasteryRepo {
	return &masteryRepo{client: s.client}
}

// WrongAnswerRepo returns the wrong-answer ledger repository backed by this store.
func (s *Store) WrongAnswerRepo() WrongAnswerRepo {
	return &wrongAnswerRepo{client: s.client}
}

// EventRepo returns the append-only event repository backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// ResetUser deletes a learner's mastery records, wrong-answer entries and
// answer events. Curriculum content and LLM request events are untouched.
func (s *Store) ResetUser(ctx context.Context, userID string) (int, error) {
	var total int

	n, err := s.client.MasteryRecord.Delete().
		Where(masteryrecord.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return total, fmt.Errorf("delete mastery records: %w", err)
	}
	total += n

	n, err = s.client.WrongAnswerRecord.Delete().
		Where(wronganswerrecord.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return total, fmt.Errorf("delete wrong-answer records: %w", err)
	}
	total += n

	n, err = s.client.AnswerEvent.Delete().
		Where(answerevent.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return total, fmt.Errorf("delete answer events: %w", err)
	}
	total += n

	return total, nil
}

// applyPragmas configures SQLite for single-writer request-scoped use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. TUTORLOOP_DB environment variable
// 2. $XDG_DATA_HOME/tutorloop/tutorloop.db
// 3. ~/.local/share/tutorloop/tutorloop.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("TUTORLOOP_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "tutorloop", "tutorloop.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
