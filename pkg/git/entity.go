package git

const (
	// GITHUB service type
	GITHUB = "github"
)

// PublicVisibility is the repository type requested from the listing endpoint
const PublicVisibility = "public"
