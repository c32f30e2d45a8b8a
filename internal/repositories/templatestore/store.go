package templatestore

import (
	"path/filepath"

	"github.com/AntonioJCosta/osla/internal/core/ports"
	"github.com/AntonioJCosta/osla/internal/logging"
	"go.uber.org/zap"
)

const (
	licensesSubdir     = "licenses"
	descriptionsSubdir = "descriptions"
	templateExt        = ".txt"
	descriptionExt     = ".desc"
)

// Store provides access to the license database on the file system.
type Store struct {
	root   string
	logger *zap.Logger
}

// NewStore creates a Store reading from root/licenses and root/descriptions.
func NewStore(root string, logger *zap.Logger) ports.TemplateStore {
	return &Store{root: root, logger: logging.OrNop(logger)}
}

// LicensesDir implements ports.TemplateStore.
func (s *Store) LicensesDir() string {
	return filepath.Join(s.root, licensesSubdir)
}

func (s *Store) descriptionsDir() string {
	return filepath.Join(s.root, descriptionsSubdir)
}

func (s *Store) templatePath(name string) string {
	return filepath.Join(s.LicensesDir(), name+templateExt)
}

func (s *Store) descriptionPath(name string) string {
	return filepath.Join(s.descriptionsDir(), name+descriptionExt)
}
