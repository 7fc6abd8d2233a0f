package bibtex_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"emperror.dev/errors"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circleous/gitbib/pkg/bibtex"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "anoma-repos.bib", bibtex.FileName("anoma"))
	assert.Equal(t, "-repos.bib", bibtex.FileName(""))
}

func TestWriteFile(t *testing.T) {
	fs := memfs.New()
	entries := []string{"@misc{a,\n}", "@misc{b,\n}", "@misc{c,\n}"}

	path, err := bibtex.WriteFile(fs, "anoma", entries)
	require.NoError(t, err)
	assert.Equal(t, "anoma-repos.bib", filepath.Base(path))

	content, err := util.ReadFile(fs, "anoma-repos.bib")
	require.NoError(t, err)
	assert.Equal(t, "@misc{a,\n}\n\n@misc{b,\n}\n\n@misc{c,\n}\n\n", string(content))

	blocks := strings.Split(strings.TrimSuffix(string(content), "\n\n"), "\n\n")
	assert.Equal(t, entries, blocks, "entries are kept in input order")
}

func TestWriteFileEmpty(t *testing.T) {
	fs := memfs.New()

	_, err := bibtex.WriteFile(fs, "nothing", nil)
	require.NoError(t, err)

	fi, err := fs.Stat("nothing-repos.bib")
	require.NoError(t, err)
	assert.Zero(t, fi.Size())
}

func TestWriteFileOverwrites(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "anoma-repos.bib",
		[]byte(strings.Repeat("stale content\n", 100)), 0o644))

	for i := 0; i < 2; i++ {
		_, err := bibtex.WriteFile(fs, "anoma", []string{"@misc{a,\n}"})
		require.NoError(t, err)
	}

	content, err := util.ReadFile(fs, "anoma-repos.bib")
	require.NoError(t, err)
	assert.Equal(t, "@misc{a,\n}\n\n", string(content))
}

func TestWriteFileError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-directory")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := bibtex.WriteFile(osfs.New(blocker), "anoma", []string{"@misc{a,\n}"})
	require.Error(t, err)

	var wErr *bibtex.WriteError
	require.True(t, errors.As(err, &wErr))
	assert.Equal(t, filepath.Join(blocker, "anoma-repos.bib"), wErr.Path)
}
