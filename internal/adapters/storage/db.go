package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by stores when a row does not exist. Handlers map it
// to an explicit 404 instead of letting the lookup failure propagate.
var ErrNotFound = errors.New("not found")

// latestSchemaVersion is bumped whenever addMigrations gains an entry.
const latestSchemaVersion = 2

// baselineSchema creates the six core tables as the first installations had
// them. Later columns arrive via the add-column-if-missing migrations so an
// existing database file keeps its data.
const baselineSchema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL,
	role TEXT NOT NULL CHECK(role IN ('admin', 'trainer'))
);

CREATE TABLE IF NOT EXISTS members (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT,
	email TEXT,
	phone TEXT
);

CREATE TABLE IF NOT EXISTS trainers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT,
	email TEXT,
	phone TEXT
);

CREATE TABLE IF NOT EXISTS classes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT,
	trainer_id INTEGER,
	FOREIGN KEY (trainer_id) REFERENCES trainers(id)
);

CREATE TABLE IF NOT EXISTS enrollments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	member_id INTEGER,
	class_id INTEGER,
	FOREIGN KEY (member_id) REFERENCES members(id),
	FOREIGN KEY (class_id) REFERENCES classes(id)
);

CREATE TABLE IF NOT EXISTS payments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	member_id INTEGER,
	amount REAL,
	date TEXT,
	note TEXT,
	FOREIGN KEY (member_id) REFERENCES members(id)
);

CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);
`

// columnAddition describes an evolved column added after the baseline.
type columnAddition struct {
	table, column, columnType string
}

// addMigrations lists evolved columns per schema version. Version 1 is the
// member/trainer/payment evolution; version 2 adds the columns the class and
// user tables always needed but were never declared with.
var addMigrations = map[int][]columnAddition{
	1: {
		{"members", "join_date", "TEXT"},
		{"members", "trainer_id", "INTEGER"},
		{"members", "birth_date", "TEXT"},
		{"members", "height", "REAL"},
		{"members", "weight", "REAL"},
		{"members", "belt_level", "TEXT"},
		{"members", "weight_category", "TEXT"},
		{"members", "parent_name", "TEXT"},
		{"members", "parent_phone", "TEXT"},
		{"members", "parent_email", "TEXT"},
		{"members", "registration_date", "TEXT"},
		{"trainers", "share_percent", "REAL"},
		{"payments", "payment_date", "TEXT"},
		{"payments", "start_date", "TEXT"},
		{"payments", "end_date", "TEXT"},
	},
	2: {
		{"classes", "description", "TEXT"},
		{"classes", "day", "TEXT"},
		{"classes", "time", "TEXT"},
		{"users", "trainer_id", "INTEGER"},
	},
}

// MigrateDB brings the database to the latest schema. It creates missing
// tables, then adds each evolved column only if the live schema lacks it, so
// running it any number of times is safe and never loses data.
// PRE: db is a valid open connection
// POST: Schema is at LatestSchemaVersion; existing rows untouched
func MigrateDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec(baselineSchema); err != nil {
		return fmt.Errorf("failed to create baseline schema: %w", err)
	}

	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}

	for v := current + 1; v <= latestSchemaVersion; v++ {
		for _, add := range addMigrations[v] {
			if err := addColumnIfMissing(db, add.table, add.column, add.columnType); err != nil {
				return fmt.Errorf("migration %d: %w", v, err)
			}
		}
		if err := setSchemaVersion(db, v); err != nil {
			return err
		}
	}

	return nil
}

// SchemaVersion reports the current schema version, 0 for a fresh or
// pre-versioning database.
func SchemaVersion(db *sql.DB) (int, error) {
	var exists int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect schema: %w", err)
	}
	if exists == 0 {
		return 0, nil
	}

	var version int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// LatestSchemaVersion returns the version MigrateDB migrates to.
func LatestSchemaVersion() int {
	return latestSchemaVersion
}

// addColumnIfMissing inspects the live table definition before altering it.
// PRE: table exists
// POST: Column exists; existing rows get NULL for the new column
func addColumnIfMissing(db *sql.DB, table, column, columnType string) error {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return fmt.Errorf("failed to inspect table %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			ctype      string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &defaultVal, &pk); err != nil {
			return err
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	_, err = db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, columnType))
	if err != nil {
		return fmt.Errorf("failed to add %s.%s: %w", table, column, err)
	}
	return nil
}

func setSchemaVersion(db *sql.DB, version int) error {
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		return fmt.Errorf("failed to clear schema version: %w", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}
