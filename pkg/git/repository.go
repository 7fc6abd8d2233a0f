package git

import "time"

// Owner is the account owning a repository
type Owner struct {
	// Login account login name
	Login string
}

// Repository is the struct containing the repo data from an organization listing.
// Empty fields mean the listing response did not carry them.
type Repository struct {
	// Name short repository name
	Name string
	// FullName repository name in owner/example-git-repo format
	FullName string
	// Owner account owning the repository
	Owner Owner
	// CreatedAt creation time of the repository
	CreatedAt time.Time
}
