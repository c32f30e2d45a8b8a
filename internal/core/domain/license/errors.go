package license

import "github.com/AntonioJCosta/osla/internal/errors"

// Error kinds. Adapters mark their errors with these so callers can test
// them with errors.Is regardless of the wrapped cause.
var (
	ErrTemplateNotFound    = errors.New("template not found")
	ErrTemplateRead        = errors.New("template read failed")
	ErrDescriptionNotFound = errors.New("description not found")
	ErrCatalogUnavailable  = errors.New("licenses directory unavailable")
	ErrConfig              = errors.New("configuration error")
	ErrWriteOutput         = errors.New("output write failed")
	ErrUsage               = errors.New("usage error")
)
