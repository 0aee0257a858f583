package module

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SnapshotStore durably records a Module's statements so a long-running
// folp session can resume, audit, or diff against an earlier checkpoint
// without replaying an external SMT backend from scratch. It is not a
// term deserializer: rows store each statement's rendered text (via
// Term.String), not a reconstructible term tree, which matches this
// tree's stance that term serialization is out of scope — a snapshot is
// a checkpoint log, not a save format.
type SnapshotStore struct {
	db *sql.DB
}

// OpenSnapshotStore opens (creating if absent) a SQLite database at path
// and ensures its schema exists.
func OpenSnapshotStore(path string) (*SnapshotStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating snapshot directory %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot store %s: %w", path, err)
	}
	store := &SnapshotStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SnapshotStore) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	session     TEXT NOT NULL,
	seq         INTEGER NOT NULL,
	frame_idx   INTEGER NOT NULL,
	kind        TEXT NOT NULL,
	rendered    TEXT NOT NULL,
	PRIMARY KEY (session, seq)
);
`
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the underlying database handle.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// Save records m's current statements under session, replacing any
// earlier checkpoint for that session.
func (s *SnapshotStore) Save(session string, m *Module) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM snapshots WHERE session = ?`, session); err != nil {
		return fmt.Errorf("clearing prior snapshot for %s: %w", session, err)
	}

	seq := 0
	for frameIdx := 0; frameIdx < m.frames.Len(); frameIdx++ {
		fr := m.frames.Get(frameIdx)
		for _, stmt := range fr.statements.Slice() {
			_, err := tx.Exec(
				`INSERT INTO snapshots (session, seq, frame_idx, kind, rendered) VALUES (?, ?, ?, ?, ?)`,
				session, seq, frameIdx, stmt.Kind.String(), stmt.Formula.String(),
			)
			if err != nil {
				return fmt.Errorf("inserting snapshot row for %s: %w", session, err)
			}
			seq++
		}
	}
	return tx.Commit()
}

// SnapshotRow is one recorded statement from a prior Save.
type SnapshotRow struct {
	FrameIndex int
	Kind       string
	Rendered   string
}

// Load returns session's most recently saved statements in recording order.
func (s *SnapshotStore) Load(session string) ([]SnapshotRow, error) {
	rows, err := s.db.Query(
		`SELECT frame_idx, kind, rendered FROM snapshots WHERE session = ? ORDER BY seq ASC`,
		session,
	)
	if err != nil {
		return nil, fmt.Errorf("querying snapshot for %s: %w", session, err)
	}
	defer rows.Close()

	var out []SnapshotRow
	for rows.Next() {
		var row SnapshotRow
		if err := rows.Scan(&row.FrameIndex, &row.Kind, &row.Rendered); err != nil {
			return nil, fmt.Errorf("scanning snapshot row for %s: %w", session, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Sessions lists every session name with at least one recorded row.
func (s *SnapshotStore) Sessions() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT session FROM snapshots ORDER BY session ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing snapshot sessions: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var session string
		if err := rows.Scan(&session); err != nil {
			return nil, fmt.Errorf("scanning session name: %w", err)
		}
		out = append(out, session)
	}
	return out, rows.Err()
}
