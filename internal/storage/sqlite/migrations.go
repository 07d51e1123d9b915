package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: groups and contacts must be created BEFORE ledgers, and
// entries before entry_details, due to foreign key constraints.
const schema = `
CREATE TABLE IF NOT EXISTS contacts (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS groups (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    parent_group_id TEXT,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (parent_group_id) REFERENCES groups(id)
);

CREATE TABLE IF NOT EXISTS ledgers (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    group_id TEXT NOT NULL,
    contact_id TEXT,
    opening_balance TEXT NOT NULL,
    opening_balance_type TEXT NOT NULL CHECK (opening_balance_type IN ('debit', 'credit')),
    created_at INTEGER NOT NULL,
    FOREIGN KEY (group_id) REFERENCES groups(id),
    FOREIGN KEY (contact_id) REFERENCES contacts(id)
);

CREATE TABLE IF NOT EXISTS financial_years (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL,
    is_active INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
    id TEXT PRIMARY KEY,
    entry_number TEXT NOT NULL UNIQUE,
    entry_date TEXT NOT NULL,
    description TEXT NOT NULL,
    total_amount TEXT NOT NULL,
    is_correction INTEGER NOT NULL DEFAULT 0,
    original_entry_id TEXT,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (original_entry_id) REFERENCES entries(id)
);

CREATE TABLE IF NOT EXISTS entry_details (
    id TEXT PRIMARY KEY,
    entry_id TEXT NOT NULL,
    ledger_id TEXT NOT NULL,
    debit_amount TEXT NOT NULL,
    credit_amount TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (entry_id) REFERENCES entries(id),
    FOREIGN KEY (ledger_id) REFERENCES ledgers(id)
);

CREATE TABLE IF NOT EXISTS entry_counters (
    kind TEXT PRIMARY KEY,
    value INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

INSERT OR IGNORE INTO entry_counters (kind, value) VALUES ('entry', 0), ('correction', 0);

CREATE UNIQUE INDEX IF NOT EXISTS idx_financial_years_active ON financial_years(is_active) WHERE is_active = 1;
CREATE INDEX IF NOT EXISTS idx_ledgers_group_id ON ledgers(group_id);
CREATE INDEX IF NOT EXISTS idx_entries_entry_date ON entries(entry_date);
CREATE INDEX IF NOT EXISTS idx_entry_details_entry_id ON entry_details(entry_id);
CREATE INDEX IF NOT EXISTS idx_entry_details_ledger_id ON entry_details(ledger_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
