/*
Package license defines the core domain entities of osla: license aliases,
the per-user configuration and the results produced by the catalog and the
generator.
*/
package license

// ProgramName is the command name shown in usage text and hints.
const ProgramName = "osla"

// AliasEntry maps a short, user-typed alias to a canonical license name.
type AliasEntry struct {
	Alias   string `yaml:"alias"`
	License string `yaml:"license"`
}

/*
Config holds the values substituted into templates and the license used by
--default. It is built once per invocation and read-only afterwards.
*/
type Config struct {
	Author         string
	Year           string
	DefaultLicense string
}

// Default configuration values, also written to a freshly created config file.
const (
	DefaultAuthor  = "Your Name"
	DefaultYear    = "2025"
	DefaultLicense = "mit"
)

// Maximum lengths, in characters, of the Config fields.
const (
	MaxAuthorLen  = 127
	MaxYearLen    = 15
	MaxLicenseLen = 63
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Author:         DefaultAuthor,
		Year:           DefaultYear,
		DefaultLicense: DefaultLicense,
	}
}

// Info describes one template of the store for listing.
type Info struct {
	Name    string
	Aliases []string
}

// SearchMatch is a template whose name or first line matched a keyword.
type SearchMatch struct {
	Name      string
	FirstLine string
}

// Generated is the outcome of a generation request.
type Generated struct {
	Requested string // name or alias as typed by the user
	Canonical string // template name after alias resolution
	Content   string
}
