package ports

import "github.com/AntonioJCosta/osla/internal/core/domain/license"

// CatalogService defines the read-only queries over the template database.
type CatalogService interface {
	// List returns every template with the aliases that point to it.
	List() ([]license.Info, error)

	// Describe returns the description text of a license name or alias.
	Describe(name string) (string, error)

	// Search returns templates whose name or first line contains keyword,
	// ignoring case.
	Search(keyword string) ([]license.SearchMatch, error)

	// Source names the directory the catalog reads, for headers and logs.
	Source() string
}
