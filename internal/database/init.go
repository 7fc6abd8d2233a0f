package database

import (
	"context"
	"database/sql"
	"time"

	// for database/sql
	_ "github.com/mattn/go-sqlite3"
)

type databaseConnection struct {
	conn *sql.DB
}

// Run is one bibliography file written for an organization
type Run struct {
	Organization string
	Repositories int
	OutputFile   string
	WrittenAt    time.Time
}

// Service is the main interface for database package
type Service interface {
	Initialize() error
	Close()

	RecordRun(ctx context.Context, run Run) error
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

// NewDatabase create a new connection to database
func NewDatabase(dbURI string) (Service, error) {
	conn, err := sql.Open("sqlite3", dbURI)

	return &databaseConnection{
		conn: conn,
	}, err
}

func (dbc *databaseConnection) Initialize() error {
	_, err := dbc.conn.Exec(`
		CREATE TABLE IF NOT EXISTS runs(
			id INTEGER PRIMARY KEY,
			organization VARCHAR(255) NOT NULL,
			repositories INTEGER NOT NULL,
			output_file TEXT NOT NULL,
			written_at TIMESTAMP NOT NULL
		);
	`)
	return err
}

func (dbc *databaseConnection) Close() {
	dbc.conn.Close()
}
