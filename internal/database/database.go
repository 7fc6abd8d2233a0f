package database

import (
	"context"
)

func (db *databaseConnection) RecordRun(ctx context.Context, run Run) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO runs (
			organization, repositories, output_file, written_at
		) VALUES (?, ?, ?, ?)`,
		run.Organization, run.Repositories, run.OutputFile, run.WrittenAt.UTC())
	return err
}

// ListRuns returns the latest runs first, limit <= 0 returns all of them
func (db *databaseConnection) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT organization, repositories, output_file, written_at
		FROM runs ORDER BY written_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.Organization, &run.Repositories,
			&run.OutputFile, &run.WrittenAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
