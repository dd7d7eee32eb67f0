// Package boardstore persists reconciled draft views to a local SQLite
// database: the live pick sheet, the remaining-player draftboard, per-user
// rosters, and league settings. It also reads back manually maintained
// draft tiers.
package boardstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"draft-companion/internal/board"
	"draft-companion/internal/catalog"
	"draft-companion/internal/domain/picks"
	"draft-companion/internal/logging"
	"draft-companion/internal/names"
	"draft-companion/internal/providers"
)

const busyTimeout = 5 * time.Second

// Store wraps the SQLite connection used for draft persistence. Writes
// happen on a single poll loop, so the pool is capped at one connection.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ catalog.TierSource = (*Store)(nil)

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds()),
		"PRAGMA journal_mode = WAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %s: %w", pragma, err)
		}
	}

	store := &Store{db: db, logger: logger}
	if err := store.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS draftboard (
	adp REAL NOT NULL,
	player_id TEXT NOT NULL,
	full_name TEXT NOT NULL,
	position TEXT NOT NULL,
	team TEXT,
	tier INTEGER,
	injury_status TEXT,
	age INTEGER
);
CREATE TABLE IF NOT EXISTS rosters (
	username TEXT NOT NULL,
	pick_no INTEGER NOT NULL,
	player_id TEXT NOT NULL,
	full_name TEXT,
	position TEXT
);
CREATE TABLE IF NOT EXISTS league_settings (
	scope TEXT NOT NULL,
	key TEXT NOT NULL,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tiers (
	full_name TEXT NOT NULL,
	normalized_name TEXT,
	tier INTEGER NOT NULL,
	rank INTEGER NOT NULL DEFAULT 0
);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}

// SaveSnapshot replaces the persisted pick sheet, draftboard, and rosters
// with the given snapshot. The pick sheet's columns follow the tabular
// pick view, so columns empty across the whole draft are not persisted.
func (s *Store) SaveSnapshot(ctx context.Context, snap *board.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning snapshot write: %w", err)
	}
	defer tx.Rollback()

	if err := writePicks(ctx, tx, snap.Picks); err != nil {
		return err
	}
	if err := writeDraftboard(ctx, tx, snap); err != nil {
		return err
	}
	if err := writeRosters(ctx, tx, snap); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot write: %w", err)
	}
	logging.Info(s.logger, "persisted draft snapshot",
		slog.Int("picks", len(snap.Picks)),
		slog.Int("remaining", len(snap.Remaining)))
	return nil
}

// writePicks rebuilds the picks table from the tabular view. The column
// set varies with the draft (all-empty columns are dropped), so the table
// is recreated on every write. Column names come from our own renderer,
// never from user input.
func writePicks(ctx context.Context, tx *sql.Tx, enriched []picks.EnrichedPick) error {
	headers, rows := picks.Table(enriched)

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS picks"); err != nil {
		return fmt.Errorf("dropping picks table: %w", err)
	}
	if len(headers) == 0 {
		return nil
	}
	cols := make([]string, len(headers))
	for i, h := range headers {
		cols[i] = h + " TEXT"
	}
	create := "CREATE TABLE picks (" + strings.Join(cols, ", ") + ")"
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("creating picks table: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(headers)), ", ")
	insert := "INSERT INTO picks (" + strings.Join(headers, ", ") + ") VALUES (" + placeholders + ")"
	for _, row := range rows {
		args := make([]any, len(row))
		for i, v := range row {
			args[i] = v
		}
		if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
			return fmt.Errorf("inserting pick row: %w", err)
		}
	}
	return nil
}

func writeDraftboard(ctx context.Context, tx *sql.Tx, snap *board.Snapshot) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM draftboard"); err != nil {
		return fmt.Errorf("clearing draftboard: %w", err)
	}

	const insert = `INSERT INTO draftboard (adp, player_id, full_name, position, team, tier, injury_status, age)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for _, p := range snap.Remaining {
		if _, err := tx.ExecContext(ctx, insert, p.ADP, p.PlayerID, p.FullName, string(p.Position), p.Team, p.Tier, p.InjuryStatus, p.Age); err != nil {
			return fmt.Errorf("inserting draftboard row: %w", err)
		}
	}
	return nil
}

func writeRosters(ctx context.Context, tx *sql.Tx, snap *board.Snapshot) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM rosters"); err != nil {
		return fmt.Errorf("clearing rosters: %w", err)
	}

	const insert = `INSERT INTO rosters (username, pick_no, player_id, full_name, position)
		VALUES (?, ?, ?, ?, ?)`
	for _, roster := range snap.Rosters {
		for _, p := range roster.Picks {
			fullName, position := "", ""
			if p.Player != nil {
				fullName = p.Player.FullName
				position = string(p.Player.Position)
			}
			if _, err := tx.ExecContext(ctx, insert, roster.Username, p.PickNo, p.PlayerID, fullName, position); err != nil {
				return fmt.Errorf("inserting roster row: %w", err)
			}
		}
	}
	return nil
}

// SaveLeagueSettings replaces the persisted league and draft settings.
// Zero-valued settings are unused in the league and elided.
func (s *Store) SaveLeagueSettings(ctx context.Context, league providers.LeagueInfo, draft picks.DraftInfo) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning settings write: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM league_settings"); err != nil {
		return fmt.Errorf("clearing league settings: %w", err)
	}

	const insert = "INSERT INTO league_settings (scope, key, value) VALUES (?, ?, ?)"
	rows := [][3]string{
		{"league", "name", league.Name},
		{"league", "league_id", league.LeagueID},
		{"league", "season", league.Season},
		{"draft", "draft_id", draft.DraftID},
		{"draft", "type", draft.Type},
	}
	for _, row := range rows {
		if row[2] == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, insert, row[0], row[1], row[2]); err != nil {
			return fmt.Errorf("inserting setting: %w", err)
		}
	}
	for key, value := range draft.Settings {
		if value == 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx, insert, "draft", key, fmt.Sprintf("%d", value)); err != nil {
			return fmt.Errorf("inserting draft setting: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing settings write: %w", err)
	}
	return nil
}

// Tiers reads the manually maintained tier sheet. Rows without a stored
// normalized name are normalized from the full name on the way out.
func (s *Store) Tiers(ctx context.Context) ([]catalog.TierEntry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT full_name, COALESCE(normalized_name, ''), tier, rank FROM tiers ORDER BY tier, rank")
	if err != nil {
		return nil, fmt.Errorf("reading tiers: %w", err)
	}
	defer rows.Close()

	var out []catalog.TierEntry
	for rows.Next() {
		var fullName, normalized string
		var entry catalog.TierEntry
		if err := rows.Scan(&fullName, &normalized, &entry.Tier, &entry.Rank); err != nil {
			return nil, fmt.Errorf("scanning tier row: %w", err)
		}
		if normalized == "" {
			normalized = names.Normalize(fullName)
		}
		entry.NormalizedName = normalized
		out = append(out, entry)
	}
	return out, rows.Err()
}

// SeedTiers replaces the tier sheet, normalizing names on the way in.
// Intended for tooling and tests; during a draft the sheet is maintained
// by hand.
func (s *Store) SeedTiers(ctx context.Context, entries []catalog.TierEntry, fullNames []string) error {
	if len(entries) != len(fullNames) {
		return fmt.Errorf("boardstore: %d tier entries but %d names", len(entries), len(fullNames))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tier write: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tiers"); err != nil {
		return fmt.Errorf("clearing tiers: %w", err)
	}
	const insert = "INSERT INTO tiers (full_name, normalized_name, tier, rank) VALUES (?, ?, ?, ?)"
	for i, entry := range entries {
		normalized := entry.NormalizedName
		if normalized == "" {
			normalized = names.Normalize(fullNames[i])
		}
		if _, err := tx.ExecContext(ctx, insert, fullNames[i], normalized, entry.Tier, entry.Rank); err != nil {
			return fmt.Errorf("inserting tier row: %w", err)
		}
	}
	return tx.Commit()
}
