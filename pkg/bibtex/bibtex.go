package bibtex

import (
	"fmt"
	"strings"

	"github.com/circleous/gitbib/pkg/git"
)

// MissingFieldError is returned when a repository lacks a field the citation
// template needs
type MissingFieldError struct {
	// Field is the listing field name, e.g. owner.login
	Field string
	// Repository identifies the record, it may be empty when even the name is
	// missing
	Repository string
}

func (e *MissingFieldError) Error() string {
	if e.Repository == "" {
		return fmt.Sprintf("repository record is missing field %q", e.Field)
	}
	return fmt.Sprintf("repository %q is missing field %q", e.Repository, e.Field)
}

// FromRepository builds the citation entry of repo. The url field points at host.
func FromRepository(repo git.Repository, host string) (Entry, error) {
	id := repo.FullName
	if id == "" {
		id = repo.Name
	}

	switch {
	case repo.Name == "":
		return Entry{}, &MissingFieldError{Field: "name", Repository: id}
	case repo.Owner.Login == "":
		return Entry{}, &MissingFieldError{Field: "owner.login", Repository: id}
	case repo.CreatedAt.IsZero():
		return Entry{}, &MissingFieldError{Field: "created_at", Repository: id}
	case repo.FullName == "":
		return Entry{}, &MissingFieldError{Field: "full_name", Repository: id}
	}

	return Entry{
		Type: EntryType,
		Key:  KeyPrefix + repo.Name,
		Fields: []Field{
			{Name: "author", Value: repo.Owner.Login},
			{Name: "title", Value: repo.Name},
			{Name: "year", Value: repo.CreatedAt.Format("2006")},
			{Name: "publisher", Value: Publisher},
			{Name: "journal", Value: Journal},
			{Name: "url", Value: "https://" + host + "/" + repo.FullName},
		},
	}, nil
}

// Format renders the citation of repo hosted on github.com
func Format(repo git.Repository) (string, error) {
	entry, err := FromRepository(repo, DefaultHost)
	if err != nil {
		return "", err
	}
	return entry.String(), nil
}

// String renders the entry without a trailing newline
func (e Entry) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "@%s{%s,\n", e.Type, e.Key)
	for i, field := range e.Fields {
		fmt.Fprintf(&sb, "  %s = {%s}", field.Name, field.Value)
		if i < len(e.Fields)-1 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('}')

	return sb.String()
}
