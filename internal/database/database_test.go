package database_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circleous/gitbib/internal/database"
)

func TestRuns(t *testing.T) {
	ctx := context.Background()

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "gitbib.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Initialize())
	require.NoError(t, db.Initialize(), "initialize is idempotent")

	runs, err := db.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, runs)

	first := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.RecordRun(ctx, database.Run{
		Organization: "anoma", Repositories: 3, OutputFile: "anoma-repos.bib", WrittenAt: first,
	}))
	require.NoError(t, db.RecordRun(ctx, database.Run{
		Organization: "heliax", Repositories: 0, OutputFile: "heliax-repos.bib",
		WrittenAt: first.Add(time.Hour),
	}))

	runs, err = db.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "heliax", runs[0].Organization, "newest first")
	assert.Equal(t, "anoma", runs[1].Organization)
	assert.Equal(t, 3, runs[1].Repositories)
	assert.Equal(t, "anoma-repos.bib", runs[1].OutputFile)
	assert.True(t, first.Equal(runs[1].WrittenAt))

	runs, err = db.ListRuns(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
