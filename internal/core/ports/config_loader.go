package ports

import "github.com/AntonioJCosta/osla/internal/core/domain/license"

// ConfigLoader loads the per-user configuration, creating it on first use.
type ConfigLoader interface {
	Load() (license.Config, error)
	Path() string
}
