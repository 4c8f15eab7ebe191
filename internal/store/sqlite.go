package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteKV stores every key-value pair in a single kv table. It is the
// alternative backend for users who prefer one database file over a
// directory of JSON files.
type SQLiteKV struct {
	db *sql.DB
}

// OpenSQLiteKV initializes the database file and runs the required migration.
func OpenSQLiteKV(dbPath string) (*SQLiteKV, error) {
	if dbPath == "" {
		return nil, &Error{Op: "open", Err: fmt.Errorf("empty database path")}
	}

	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &Error{Op: "open", Err: err}
		}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath))
	if err != nil {
		return nil, &Error{Op: "open", Err: err}
	}

	// Single connection keeps per-key writes serialized.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	kv := &SQLiteKV{db: db}
	if err := kv.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return kv, nil
}

func (kv *SQLiteKV) migrate() error {
	_, err := kv.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
        key TEXT PRIMARY KEY,
        value BLOB NOT NULL
    );`)
	if err != nil {
		return &Error{Op: "migrate", Err: err}
	}
	return nil
}

// Get returns the stored value for key.
func (kv *SQLiteKV) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := kv.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &Error{Op: "get", Key: key, Err: err}
	}
	return value, true, nil
}

// Set overwrites the value for key in a single statement.
func (kv *SQLiteKV) Set(key string, value []byte) error {
	_, err := kv.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return &Error{Op: "set", Key: key, Err: err}
	}
	return nil
}

// Delete removes the key.
func (kv *SQLiteKV) Delete(key string) error {
	if _, err := kv.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return &Error{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// Keys lists all stored keys.
func (kv *SQLiteKV) Keys() ([]string, error) {
	rows, err := kv.db.Query(`SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, &Error{Op: "keys", Err: err}
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, &Error{Op: "keys", Err: err}
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, &Error{Op: "keys", Err: err}
	}
	return keys, nil
}

// Close releases the database resources.
func (kv *SQLiteKV) Close() error {
	if kv.db == nil {
		return nil
	}
	return kv.db.Close()
}
