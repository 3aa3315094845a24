// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/projectbook/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

const metaVersion = "version"

// SQLiteStore implements storage.Store using SQLite. Every save replaces the
// whole snapshot inside one transaction.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, storage.WrapIO("create database directory", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// PRAGMA settings are per connection
	db.SetMaxOpenConns(1)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Path() string { return s.path }

// Save replaces the stored snapshot.
func (s *SQLiteStore) Save(ctx context.Context, snap *storage.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{
		"person_tags", "remarks", "person_projects", "persons",
		"project_updates", "memberships", "projects", "meta",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO meta (key, value) VALUES (?, ?)",
		metaVersion, strconv.Itoa(snap.Version),
	)
	if err != nil {
		return fmt.Errorf("failed to insert version: %w", err)
	}

	for i, p := range snap.Persons {
		if err := insertPerson(ctx, tx, i, p); err != nil {
			return err
		}
	}
	for i, p := range snap.Projects {
		if err := insertProject(ctx, tx, i, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertPerson(ctx context.Context, tx *sql.Tx, pos int, p storage.PersonRecord) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO persons (position, role, name, email, phone, telegram, committee, organisation)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		pos, p.Role, p.Name, p.Email, p.Phone, p.Telegram, p.Committee, p.Organisation,
	)
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}

	for i, tag := range p.Tags {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO person_tags (person, position, tag) VALUES (?, ?, ?)",
			pos, i, tag,
		)
		if err != nil {
			return fmt.Errorf("failed to insert tag: %w", err)
		}
	}

	for i, r := range p.Remarks {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO remarks (person, position, content, status) VALUES (?, ?, ?, ?)",
			pos, i, r.Content, r.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert remark: %w", err)
		}
	}

	for i, name := range p.Projects {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO person_projects (person, position, project_name) VALUES (?, ?, ?)",
			pos, i, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert person project: %w", err)
		}
	}
	return nil
}

func insertProject(ctx context.Context, tx *sql.Tx, pos int, p storage.ProjectRecord) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO projects (position, name, description, created_at) VALUES (?, ?, ?, ?)",
		pos, p.Name, p.Description, p.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	for i, u := range p.Updates {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO project_updates (project, position, message, at) VALUES (?, ?, ?, ?)",
			pos, i, u.Message, u.At.UnixNano(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert project update: %w", err)
		}
	}

	for i, email := range p.Members {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO memberships (project, position, member_email) VALUES (?, ?, ?)",
			pos, i, email,
		)
		if err != nil {
			return fmt.Errorf("failed to insert membership: %w", err)
		}
	}
	return nil
}

// Load reads the stored snapshot. Returns nil if nothing has been saved.
func (s *SQLiteStore) Load(ctx context.Context) (*storage.Snapshot, error) {
	var version string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM meta WHERE key = ?", metaVersion,
	).Scan(&version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get version: %w", err)
	}

	snap := &storage.Snapshot{
		Persons:  []storage.PersonRecord{},
		Projects: []storage.ProjectRecord{},
	}
	if snap.Version, err = strconv.Atoi(version); err != nil {
		return nil, fmt.Errorf("%w: version %q", storage.ErrMalformedRecord, version)
	}

	if snap.Persons, err = s.loadPersons(ctx); err != nil {
		return nil, err
	}
	if snap.Projects, err = s.loadProjects(ctx); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *SQLiteStore) loadPersons(ctx context.Context) ([]storage.PersonRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, role, name, email, phone, telegram, committee, organisation
		 FROM persons ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get persons: %w", err)
	}
	defer rows.Close()

	persons := []storage.PersonRecord{}
	var positions []int
	for rows.Next() {
		var (
			pos int
			p   storage.PersonRecord
		)
		if err := rows.Scan(&pos, &p.Role, &p.Name, &p.Email, &p.Phone, &p.Telegram, &p.Committee, &p.Organisation); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, p)
		positions = append(positions, pos)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate persons: %w", err)
	}
	rows.Close()

	for i, pos := range positions {
		p := &persons[i]
		if p.Tags, err = s.strings(ctx, "SELECT tag FROM person_tags WHERE person = ? ORDER BY position", pos); err != nil {
			return nil, fmt.Errorf("failed to get tags: %w", err)
		}
		if p.Projects, err = s.strings(ctx, "SELECT project_name FROM person_projects WHERE person = ? ORDER BY position", pos); err != nil {
			return nil, fmt.Errorf("failed to get person projects: %w", err)
		}
		if p.Remarks, err = s.loadRemarks(ctx, pos); err != nil {
			return nil, err
		}
	}
	return persons, nil
}

func (s *SQLiteStore) loadRemarks(ctx context.Context, person int) ([]storage.RemarkRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT content, status FROM remarks WHERE person = ? ORDER BY position", person,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get remarks: %w", err)
	}
	defer rows.Close()

	var remarks []storage.RemarkRecord
	for rows.Next() {
		var r storage.RemarkRecord
		if err := rows.Scan(&r.Content, &r.Status); err != nil {
			return nil, fmt.Errorf("failed to scan remark: %w", err)
		}
		remarks = append(remarks, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate remarks: %w", err)
	}
	return remarks, nil
}

func (s *SQLiteStore) loadProjects(ctx context.Context) ([]storage.ProjectRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT position, name, description, created_at FROM projects ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	defer rows.Close()

	projects := []storage.ProjectRecord{}
	var positions []int
	for rows.Next() {
		var (
			pos       int
			createdAt int64
			p         storage.ProjectRecord
		)
		if err := rows.Scan(&pos, &p.Name, &p.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.CreatedAt = fromUnixNano(createdAt)
		projects = append(projects, p)
		positions = append(positions, pos)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	rows.Close()

	for i, pos := range positions {
		p := &projects[i]
		if p.Updates, err = s.loadUpdates(ctx, pos); err != nil {
			return nil, err
		}
		members, err := s.strings(ctx, "SELECT member_email FROM memberships WHERE project = ? ORDER BY position", pos)
		if err != nil {
			return nil, fmt.Errorf("failed to get memberships: %w", err)
		}
		p.Members = append([]string{}, members...)
	}
	return projects, nil
}

func (s *SQLiteStore) loadUpdates(ctx context.Context, project int) ([]storage.UpdateRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT message, at FROM project_updates WHERE project = ? ORDER BY position", project,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get project updates: %w", err)
	}
	defer rows.Close()

	var updates []storage.UpdateRecord
	for rows.Next() {
		var (
			u  storage.UpdateRecord
			at int64
		)
		if err := rows.Scan(&u.Message, &at); err != nil {
			return nil, fmt.Errorf("failed to scan project update: %w", err)
		}
		u.At = fromUnixNano(at)
		updates = append(updates, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project updates: %w", err)
	}
	return updates, nil
}

// strings runs a single-column query.
func (s *SQLiteStore) strings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func fromUnixNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
