package sqlite

import "database/sql"

// schema is applied on startup to ensure tables exist.
// Child tables reference their parent row by position.
// Memberships store member emails without a foreign key: a snapshot may name
// an email that no person has, and loading skips it.
const schema = `
CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS persons (
    position INTEGER PRIMARY KEY,
    role TEXT NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    telegram TEXT NOT NULL DEFAULT '',
    committee TEXT NOT NULL DEFAULT '',
    organisation TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS person_tags (
    person INTEGER NOT NULL,
    position INTEGER NOT NULL,
    tag TEXT NOT NULL,
    PRIMARY KEY (person, position),
    FOREIGN KEY (person) REFERENCES persons(position) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS remarks (
    person INTEGER NOT NULL,
    position INTEGER NOT NULL,
    content TEXT NOT NULL,
    status TEXT NOT NULL,
    PRIMARY KEY (person, position),
    FOREIGN KEY (person) REFERENCES persons(position) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS person_projects (
    person INTEGER NOT NULL,
    position INTEGER NOT NULL,
    project_name TEXT NOT NULL,
    PRIMARY KEY (person, position),
    FOREIGN KEY (person) REFERENCES persons(position) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS projects (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS project_updates (
    project INTEGER NOT NULL,
    position INTEGER NOT NULL,
    message TEXT NOT NULL,
    at INTEGER NOT NULL,
    PRIMARY KEY (project, position),
    FOREIGN KEY (project) REFERENCES projects(position) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS memberships (
    project INTEGER NOT NULL,
    position INTEGER NOT NULL,
    member_email TEXT NOT NULL,
    PRIMARY KEY (project, position),
    FOREIGN KEY (project) REFERENCES projects(position) ON DELETE CASCADE
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
