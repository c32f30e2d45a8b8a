package ports

import "github.com/AntonioJCosta/osla/internal/core/domain/license"

// LicenseGenerator produces filled license text for a license name or alias.
type LicenseGenerator interface {
	// Generate resolves name, loads its template and substitutes the values
	// of cfg. The returned error is marked ErrTemplateNotFound when no
	// template exists for the resolved name.
	Generate(name string, cfg license.Config) (license.Generated, error)
}
