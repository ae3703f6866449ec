package database

import (
	"database/sql"
	"fmt"
)

// Schema is applied on every startup; CREATE TABLE IF NOT EXISTS keeps
// it safe against an existing database. A reference copy lives in
// docs/schema.sql.
const Schema = `
CREATE TABLE IF NOT EXISTS movies (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    title       TEXT    NOT NULL UNIQUE,
    year        INTEGER NOT NULL,
    description TEXT    NOT NULL,
    rating      REAL,
    ranking     INTEGER,
    review      TEXT,
    img_url     TEXT
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
