// Package export appends zonecheck results to a SQLite database so the history of a
// network's consistency can be queried after the fact.
//
// Each call to SaveRun creates one row in "runs", identified by a UUIDv7, along with
// every reconciled row of every network in "host_rows" and every anomaly in
// "anomalies". The schema is embedded and applied idempotently by Open.
package export

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/markdingo/zonecheck/database"
	"github.com/markdingo/zonecheck/report"
)

//go:embed schema.sql
var schemaSQL string

// SchemaVersion is the highest version recorded in schema_migrations by this package.
const SchemaVersion = 1

// Store wraps the SQLite connection.
type Store struct {
	conn *sql.DB
}

// Run summarizes one saved run.
type Run struct {
	ID        string
	Started   time.Time
	Networks  int
	Anomalies int
	Digest    uint64
}

// Open opens or creates the SQLite database at path and applies the schema.
func Open(path string) (*Store, error) {
	dsn := "file:" + path +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	conn.SetMaxOpenConns(1) // A single writer avoids SQLITE_BUSY between our own conns

	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to apply schema to %s: %w", path, err)
	}

	return &Store{conn: conn}, nil
}

// Close closes the database connection.
func (t *Store) Close() error {
	return t.conn.Close()
}

// Version returns the highest applied schema version.
func (t *Store) Version() (int, error) {
	var v int
	err := t.conn.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("checking schema version: %w", err)
	}

	return v, nil
}

// SaveRun writes the results of checking nets as a single transaction and returns the new
// run id.
func (t *Store) SaveRun(started time.Time, nets []*database.Network, digest uint64) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating run id: %w", err)
	}
	runID := id.String()

	tx, err := t.conn.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs (id, started_at, networks, anomalies, digest)
		VALUES (?, ?, ?, 0, ?)`,
		runID, started.UTC().Format(time.RFC3339Nano), len(nets), formatDigest(digest))
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	rowStmt, err := tx.Prepare(`INSERT INTO host_rows (run_id, network, seq, address,
		forward, reverse, meta_hostname, class, room, comment, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer rowStmt.Close()

	anStmt, err := tx.Prepare(`INSERT INTO anomalies (run_id, network, direction, kind,
		key, target, found) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer anStmt.Close()

	var total int
	for _, db := range nets {
		network := db.Space().String()
		for seq, r := range db.Rows() {
			_, err = rowStmt.Exec(runID, network, seq, r.Address.String(),
				r.Forward, r.Reverse, r.MetaHostname, r.Class, r.Room, r.Comment,
				report.Status(r))
			if err != nil {
				return "", fmt.Errorf("inserting row for %s: %w", r.Address, err)
			}
		}

		for _, a := range report.Anomalies(db) {
			_, err = anStmt.Exec(runID, a.Network, string(a.Direction), string(a.Kind),
				a.Key, a.Target, strings.Join(a.Found, ", "))
			if err != nil {
				return "", fmt.Errorf("inserting anomaly for %s: %w", a.Key, err)
			}
			total++
		}
	}

	_, err = tx.Exec("UPDATE runs SET anomalies = ? WHERE id = ?", total, runID)
	if err != nil {
		return "", fmt.Errorf("updating run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	return runID, nil
}

// Runs returns up to limit of the most recent runs, newest first.
func (t *Store) Runs(limit int) ([]Run, error) {
	rows, err := t.conn.Query(`SELECT id, started_at, networks, anomalies, digest
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, digest string
		if err := rows.Scan(&r.ID, &started, &r.Networks, &r.Anomalies, &digest); err != nil {
			return nil, err
		}
		if r.Started, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("run %s: %w", r.ID, err)
		}
		if r.Digest, err = strconv.ParseUint(digest, 16, 64); err != nil {
			return nil, fmt.Errorf("run %s: %w", r.ID, err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// LastDigest returns the digest of the most recent run. The bool is false if there are no
// runs.
func (t *Store) LastDigest() (uint64, bool, error) {
	runs, err := t.Runs(1)
	if err != nil || len(runs) == 0 {
		return 0, false, err
	}

	return runs[0].Digest, true, nil
}

func formatDigest(d uint64) string {
	return fmt.Sprintf("%016x", d)
}
