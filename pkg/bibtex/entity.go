package bibtex

const (
	// EntryType is the bibtex entry type used for repositories
	EntryType = "misc"
	// KeyPrefix is prepended to the repository name to build the citation key
	KeyPrefix = "github-"
	// Publisher identifies the hosting platform
	Publisher = "GitHub"
	// Journal describes the kind of record being cited
	Journal = "GitHub repository"
	// DefaultHost is the web host used for the url field
	DefaultHost = "github.com"

	fileSuffix = "-repos.bib"
)

// Field is a single `name = {value}` pair of an entry
type Field struct {
	Name  string
	Value string
}

// Entry is one bibtex citation
type Entry struct {
	// Type is the entry type, e.g. misc
	Type string
	// Key is the citation key
	Key string
	// Fields in output order
	Fields []Field
}
