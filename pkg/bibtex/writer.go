package bibtex

import (
	"bufio"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
)

// WriteError is returned when the bibliography file can't be opened or written
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// FileName returns the bibliography file name for prefix
func FileName(prefix string) string {
	return prefix + fileSuffix
}

// WriteFile truncates or creates <prefix>-repos.bib in fs and writes every entry
// followed by a blank line, the last one included. It returns the path of the
// written file.
func WriteFile(fs billy.Filesystem, prefix string, entries []string) (path string, err error) {
	name := FileName(prefix)
	path = fs.Join(fs.Root(), name)

	f, err := fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return path, &WriteError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	for _, entry := range entries {
		if _, err = w.WriteString(entry + "\n\n"); err != nil {
			return path, &WriteError{Path: path, Err: err}
		}
	}

	if err = w.Flush(); err != nil {
		return path, &WriteError{Path: path, Err: err}
	}

	return path, nil
}
